package users

import "context"

// ServiceInterface defines the contract for user business logic operations
type ServiceInterface interface {
	Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error)
	Login(ctx context.Context, req LoginRequest) (*AuthResponse, error)
	GetMe(ctx context.Context, userID string) (*PublicUser, error)
}

// Ensure Service implements ServiceInterface
var _ ServiceInterface = (*Service)(nil)
