package auth

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/guardia-security/guardia-backend-go/internal/domain/user"
	"github.com/guardia-security/guardia-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	user.UserRepository
	jwtService jwt.Service
}

func NewAuthService(userRepo user.UserRepository, jwtService jwt.Service) user.AuthService {
	return &AuthServiceImpl{
		UserRepository: userRepo,
		jwtService:     jwtService,
	}
}

func newUserResponse(u user.User) user.UserResponse {
	resp := user.UserResponse{
		ID:         u.ID,
		Email:      u.Email,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		FullName:   u.FullName(),
		Phone:      u.Phone,
		Role:       string(u.Role),
		Department: u.Department,
		IsActive:   u.IsActive,
	}
	if u.LastLogin != nil {
		t := u.LastLogin.Format(time.RFC3339)
		resp.LastLogin = &t
	}
	return resp
}

// Login implements user.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req user.LoginRequest) (user.LoginResponse, *http.Cookie, error) {
	if err := req.Validate(); err != nil {
		return user.LoginResponse{}, nil, err
	}

	u, err := a.UserRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		return user.LoginResponse{}, nil, user.ErrInvalidCredentials
	}

	if !u.IsActive {
		return user.LoginResponse{}, nil, user.ErrUserInactive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return user.LoginResponse{}, nil, user.ErrInvalidCredentials
	}

	accessToken, expiresAt, err := a.jwtService.GenerateAccessToken(u.ID, u.Email, u.Role)
	if err != nil {
		return user.LoginResponse{}, nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshExpiresAt, err := a.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return user.LoginResponse{}, nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	if err := a.UserRepository.UpdateLastLogin(ctx, u.ID); err != nil {
		return user.LoginResponse{}, nil, fmt.Errorf("failed to record login: %w", err)
	}

	resp := user.LoginResponse{
		User:        newUserResponse(u),
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
	}

	return resp, a.jwtService.RefreshTokenCookie(refreshToken, refreshExpiresAt), nil
}

// Refresh implements user.AuthService.
func (a *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (user.RefreshResponse, error) {
	if a.jwtService.IsTokenRevoked(refreshToken) {
		return user.RefreshResponse{}, user.ErrInvalidCredentials
	}

	token, err := a.jwtService.JWTAuth().Decode(refreshToken)
	if err != nil {
		return user.RefreshResponse{}, user.ErrInvalidCredentials
	}

	claims, err := token.AsMap(ctx)
	if err != nil {
		return user.RefreshResponse{}, user.ErrInvalidCredentials
	}

	if tokenType, _ := claims["type"].(string); tokenType != "refresh" {
		return user.RefreshResponse{}, user.ErrInvalidCredentials
	}

	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return user.RefreshResponse{}, user.ErrInvalidCredentials
	}

	u, err := a.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return user.RefreshResponse{}, user.ErrInvalidCredentials
	}
	if !u.IsActive {
		return user.RefreshResponse{}, user.ErrUserInactive
	}

	accessToken, expiresAt, err := a.jwtService.GenerateAccessToken(u.ID, u.Email, u.Role)
	if err != nil {
		return user.RefreshResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return user.RefreshResponse{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
	}, nil
}

// Logout implements user.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken != "" {
		a.jwtService.RevokeToken(refreshToken)
	}
	return nil
}

// Me implements user.AuthService.
func (a *AuthServiceImpl) Me(ctx context.Context, userID string) (user.UserResponse, error) {
	u, err := a.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return user.UserResponse{}, err
	}
	return newUserResponse(u), nil
}

// Register implements user.AuthService.
func (a *AuthServiceImpl) Register(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := a.UserRepository.Create(ctx, user.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
		Role:         user.Role(req.Role),
		Department:   req.Department,
		IsActive:     true,
	})
	if err != nil {
		return user.UserResponse{}, err
	}

	return newUserResponse(created), nil
}
