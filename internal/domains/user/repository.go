package user

import (
	"context"

	"github.com/google/uuid"
)

// RepositoryInterface - data access contract cho user domain
type RepositoryInterface interface {
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Add(ctx context.Context, u *User) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
