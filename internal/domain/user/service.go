package user

import (
	"context"
	"net/http"
)

// AuthService defines authentication business logic.
type AuthService interface {
	// Login verifies credentials and issues an access token plus a
	// refresh-token cookie.
	Login(ctx context.Context, req LoginRequest) (LoginResponse, *http.Cookie, error)

	// Refresh exchanges a valid refresh token for a new access token.
	Refresh(ctx context.Context, refreshToken string) (RefreshResponse, error)

	// Logout revokes the presented refresh token.
	Logout(ctx context.Context, refreshToken string) error

	// Me returns the profile of the authenticated user.
	Me(ctx context.Context, userID string) (UserResponse, error)

	// Register creates a user account. Admin only.
	Register(ctx context.Context, req CreateUserRequest) (UserResponse, error)
}
