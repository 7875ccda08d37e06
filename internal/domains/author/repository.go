package author

import (
	"context"

	"github.com/google/uuid"
)

// RepositoryInterface - data access contract cho author domain
type RepositoryInterface interface {
	GetAll(ctx context.Context) ([]Author, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Author, error)
	Add(ctx context.Context, a *Author) error
	Update(ctx context.Context, a *Author) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountBooks(ctx context.Context, id uuid.UUID) (int, error)
}
