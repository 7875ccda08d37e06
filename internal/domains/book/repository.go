package book

import (
	"context"

	"github.com/google/uuid"
)

// RepositoryInterface - data access contract cho book domain.
// Catalog engine (domains/catalog) dùng một subset của interface này
// qua các collaborator interfaces riêng của nó.
type RepositoryInterface interface {
	GetAll(ctx context.Context) ([]BookWithDetails, error)
	GetByID(ctx context.Context, id uuid.UUID) (*BookWithDetails, error)
	GetFiltered(ctx context.Context, filter BookFilter) ([]BookWithDetails, error)
	GetByGenre(ctx context.Context, genreID int) ([]BookWithDetails, error)
	Add(ctx context.Context, b *Book) error
	Update(ctx context.Context, b *Book) error
	Delete(ctx context.Context, id uuid.UUID) error
	AssignGenres(ctx context.Context, bookID uuid.UUID, genreIDs []int) error
	ExistsByISBN(ctx context.Context, isbn string) (bool, error)
	ExistsByTitle(ctx context.Context, title string, authorID uuid.UUID, excludeID *uuid.UUID) (bool, error)
}
