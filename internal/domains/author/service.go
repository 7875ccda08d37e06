package author

import (
	"context"

	"github.com/google/uuid"
)

// ServiceInterface - business logic contract cho author domain
type ServiceInterface interface {
	GetAll(ctx context.Context) ([]AuthorDTO, error)
	GetByID(ctx context.Context, id uuid.UUID) (*AuthorDTO, error)
	Create(ctx context.Context, req CreateUpdateAuthorRequest) (*AuthorDTO, error)
	Update(ctx context.Context, id uuid.UUID, req CreateUpdateAuthorRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
}
