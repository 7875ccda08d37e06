package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	manager := NewManager("test-secret", 15, 72)

	token, err := manager.GenerateAccessToken("user-1", "user@example.com", "User")
	require.NoError(t, err)

	claims, err := manager.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, "User", claims.Role)
	assert.Equal(t, "access", claims.Type)
}

func TestRefreshTokenIsNotAnAccessToken(t *testing.T) {
	manager := NewManager("test-secret", 15, 72)

	refresh, err := manager.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	_, err = manager.ValidateAccessToken(refresh)
	assert.Error(t, err)

	claims, err := manager.ValidateRefreshToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	manager := NewManager("secret-a", 15, 72)
	other := NewManager("secret-b", 15, 72)

	token, err := manager.GenerateAccessToken("user-1", "user@example.com", "User")
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateRejectsGarbage(t *testing.T) {
	manager := NewManager("test-secret", 15, 72)

	_, err := manager.ValidateToken("not.a.token")
	assert.Error(t, err)
}
