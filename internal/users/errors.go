package users

import "errors"

var (
	ErrMissingName        = errors.New("name is required")
	ErrMissingEmail       = errors.New("email is required")
	ErrMissingPassword    = errors.New("password is required")
	ErrInvalidRole        = errors.New("invalid role")
	ErrEmailTaken         = errors.New("user already exists with this email")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountDeactivated = errors.New("your account has been deactivated")
	ErrUserNotFound       = errors.New("user not found")
)
