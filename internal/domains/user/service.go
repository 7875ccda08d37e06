package user

import (
	"context"

	"github.com/google/uuid"
)

// ServiceInterface - business logic contract cho user domain
type ServiceInterface interface {
	Register(ctx context.Context, req RegisterRequest) (*UserDTO, error)
	Login(ctx context.Context, req LoginRequest) (*LoginResult, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	GetProfile(ctx context.Context, id uuid.UUID) (*UserDTO, error)
}
