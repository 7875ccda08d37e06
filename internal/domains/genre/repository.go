package genre

import "context"

// RepositoryInterface - data access contract cho genre domain
type RepositoryInterface interface {
	GetAll(ctx context.Context) ([]Genre, error)
	GetByID(ctx context.Context, id int) (*Genre, error)
	Add(ctx context.Context, name string) (int, error)
	Update(ctx context.Context, g *Genre) error
	Delete(ctx context.Context, id int) error
	CountBooks(ctx context.Context, id int) (int, error)
}
