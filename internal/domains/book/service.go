package book

import (
	"context"

	"github.com/google/uuid"
)

// ServiceInterface - business logic contract cho book domain
type ServiceInterface interface {
	GetAll(ctx context.Context) ([]BookDTO, error)
	GetByID(ctx context.Context, id uuid.UUID) (*BookDTO, error)
	GetFiltered(ctx context.Context, filter BookFilter) ([]BookDTO, error)
	GetByGenre(ctx context.Context, genreID int) ([]BookDTO, error)
	Create(ctx context.Context, req CreateBookRequest) (*BookDTO, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateBookRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
	AssignGenres(ctx context.Context, bookID uuid.UUID, genreIDs []int) error
}
