package genre

import "context"

// ServiceInterface - business logic contract cho genre domain
type ServiceInterface interface {
	GetAll(ctx context.Context) ([]GenreDTO, error)
	GetByID(ctx context.Context, id int) (*GenreDTO, error)
	Create(ctx context.Context, req CreateUpdateGenreRequest) (*GenreDTO, error)
	Update(ctx context.Context, id int, req CreateUpdateGenreRequest) error
	Delete(ctx context.Context, id int) error
}
