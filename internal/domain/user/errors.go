package user

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrEmailExists         = errors.New("email already registered")
	ErrUserInactive        = errors.New("user account is deactivated")
	ErrAdminAccessRequired = errors.New("admin access required")
	ErrInvalidCredentials  = errors.New("invalid email or password")
)
