package jwt

import (
	"context"
	"testing"
	"time"

	"github.com/guardia-security/guardia-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAccessToken(t *testing.T) {
	svc := NewJWTService("test-secret-key", "15m", "168h")

	tokenString, expiresAt, err := svc.GenerateAccessToken("user-1", "ops@guardia.ht", user.RoleOperator)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)
	assert.Greater(t, expiresAt, time.Now().Unix())

	token, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	claims, err := token.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims["user_id"])
	assert.Equal(t, "ops@guardia.ht", claims["email"])
	assert.Equal(t, "operator", claims["role"])
	assert.Equal(t, "access", claims["type"])
	assert.NotEmpty(t, claims["jti"])
}

func TestGenerateRefreshToken(t *testing.T) {
	svc := NewJWTService("test-secret-key", "15m", "168h")

	tokenString, _, err := svc.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	token, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	claims, err := token.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "refresh", claims["type"])
	assert.Equal(t, "user-1", claims["user_id"])
}

func TestGenerateTokenBadExpiration(t *testing.T) {
	svc := NewJWTService("test-secret-key", "not-a-duration", "also-bad")

	_, _, err := svc.GenerateAccessToken("user-1", "ops@guardia.ht", user.RoleAdmin)
	assert.Error(t, err)

	_, _, err = svc.GenerateRefreshToken("user-1")
	assert.Error(t, err)
}

func TestRevokeToken(t *testing.T) {
	svc := NewJWTService("test-secret-key", "15m", "168h")

	tokenString, _, err := svc.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	assert.False(t, svc.IsTokenRevoked(tokenString))
	svc.RevokeToken(tokenString)
	assert.True(t, svc.IsTokenRevoked(tokenString))
}

func TestRefreshTokenCookie(t *testing.T) {
	svc := NewJWTService("test-secret-key", "15m", "168h")

	expiresAt := time.Now().Add(168 * time.Hour).Unix()
	cookie := svc.RefreshTokenCookie("sometoken", expiresAt)

	assert.Equal(t, "refresh_token", cookie.Name)
	assert.Equal(t, "sometoken", cookie.Value)
	assert.Equal(t, "/api/v1/auth", cookie.Path)
	assert.True(t, cookie.HttpOnly)
}
