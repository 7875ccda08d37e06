package service

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-backend/internal/domains/user"
	"library-backend/internal/shared"
	"library-backend/pkg/jwt"
)

type fakeUserRepo struct {
	users map[string]*user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*user.User)}
}

func (f *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*user.User, error) {
	if u, ok := f.users[strings.ToLower(email)]; ok {
		return u, nil
	}
	return nil, user.ErrUserNotFound
}

func (f *fakeUserRepo) Add(_ context.Context, u *user.User) error {
	key := strings.ToLower(u.Email)
	if _, ok := f.users[key]; ok {
		return user.ErrEmailAlreadyExists
	}
	f.users[key] = u
	return nil
}

func (f *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := f.users[strings.ToLower(email)]
	return ok, nil
}

func newTestUserService() (user.ServiceInterface, *fakeUserRepo) {
	repo := newFakeUserRepo()
	return NewUserService(repo, jwt.NewManager("test-secret", 15, 72)), repo
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newTestUserService()
	ctx := context.Background()

	dto, err := svc.Register(ctx, user.RegisterRequest{
		Email:    "Reader@Example.com",
		Password: "secret123",
		FullName: "Avid Reader",
	})
	require.NoError(t, err)
	assert.Equal(t, "reader@example.com", dto.Email)
	assert.Equal(t, shared.RoleUser, dto.Role)

	result, err := svc.Login(ctx, user.LoginRequest{Email: "reader@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, dto.ID, result.User.ID)
	assert.NotEmpty(t, result.Tokens.AccessToken)
	assert.NotEmpty(t, result.Tokens.RefreshToken)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newTestUserService()
	ctx := context.Background()

	_, err := svc.Register(ctx, user.RegisterRequest{Email: "a@b.com", Password: "secret123", FullName: "A B"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, user.RegisterRequest{Email: "A@B.com", Password: "secret123", FullName: "A B"})
	assert.ErrorIs(t, err, user.ErrEmailAlreadyExists)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, _ := newTestUserService()
	ctx := context.Background()

	_, err := svc.Register(ctx, user.RegisterRequest{Email: "a@b.com", Password: "secret123", FullName: "A B"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, user.LoginRequest{Email: "a@b.com", Password: "wrong-password"})
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)

	// Unknown email cũng trả về invalid credentials, không lộ user tồn tại
	_, err = svc.Login(ctx, user.LoginRequest{Email: "nobody@b.com", Password: "secret123"})
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}

func TestRefreshIssuesNewTokens(t *testing.T) {
	svc, _ := newTestUserService()
	ctx := context.Background()

	_, err := svc.Register(ctx, user.RegisterRequest{Email: "a@b.com", Password: "secret123", FullName: "A B"})
	require.NoError(t, err)

	result, err := svc.Login(ctx, user.LoginRequest{Email: "a@b.com", Password: "secret123"})
	require.NoError(t, err)

	tokens, err := svc.Refresh(ctx, result.Tokens.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)

	_, err = svc.Refresh(ctx, result.Tokens.AccessToken)
	assert.ErrorIs(t, err, user.ErrInvalidToken)
}
