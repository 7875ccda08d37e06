package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"library-backend/internal/domains/user"
	"library-backend/internal/shared"
	"library-backend/pkg/jwt"
)

const bcryptCost = 12

type userService struct {
	repo       user.RepositoryInterface
	jwtManager *jwt.Manager
}

// NewUserService - Constructor
func NewUserService(repo user.RepositoryInterface, jwtManager *jwt.Manager) user.ServiceInterface {
	return &userService{
		repo:       repo,
		jwtManager: jwtManager,
	}
}

func (s *userService) Register(ctx context.Context, req user.RegisterRequest) (*user.UserDTO, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	exists, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, user.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	u := &user.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		FullName:     strings.TrimSpace(req.FullName),
		Role:         shared.RoleUser,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.repo.Add(ctx, u); err != nil {
		return nil, err
	}

	log.Info().Str("email", u.Email).Msg("[UserService] ✅ User registered")

	dto := u.ToDTO()
	return &dto, nil
}

func (s *userService) Login(ctx context.Context, req user.LoginRequest) (*user.LoginResult, error) {
	u, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		// Không phân biệt "email không tồn tại" với "sai password"
		if err == user.ErrUserNotFound {
			return nil, user.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, user.ErrInvalidCredentials
	}

	tokens, err := s.issueTokens(u)
	if err != nil {
		return nil, err
	}

	return &user.LoginResult{User: u.ToDTO(), Tokens: *tokens}, nil
}

func (s *userService) Refresh(ctx context.Context, refreshToken string) (*user.TokenPair, error) {
	claims, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, user.ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, user.ErrInvalidToken
	}

	// Re-load user để role/email trong access token mới luôn fresh
	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if err == user.ErrUserNotFound {
			return nil, user.ErrInvalidToken
		}
		return nil, err
	}

	return s.issueTokens(u)
}

func (s *userService) GetProfile(ctx context.Context, id uuid.UUID) (*user.UserDTO, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := u.ToDTO()
	return &dto, nil
}

func (s *userService) issueTokens(u *user.User) (*user.TokenPair, error) {
	accessToken, err := s.jwtManager.GenerateAccessToken(u.ID.String(), u.Email, u.Role)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.jwtManager.GenerateRefreshToken(u.ID.String())
	if err != nil {
		return nil, err
	}
	return &user.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
