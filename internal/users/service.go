package users

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/campus-clinic/health-records-service/internal/auth"
	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	repo     RepositoryInterface
	verifier *auth.Verifier
}

func NewService(repo RepositoryInterface, verifier *auth.Verifier) *Service {
	return &Service{
		repo:     repo,
		verifier: verifier,
	}
}

// Register creates a new user with an irreversibly hashed password and
// returns the public view plus a freshly issued token.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = DefaultRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, ErrEmailTaken) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	token, err := s.verifier.IssueToken(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	log.Printf("Registered user %s (%s)", user.ID, user.Role)

	return &AuthResponse{Token: token, User: user.Public()}, nil
}

// Login authenticates a user by email and password. Unknown email and wrong
// password both return ErrInvalidCredentials so the caller cannot tell which
// check failed.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to authenticate user: %w", err)
	}

	if !user.IsActive {
		return nil, ErrAccountDeactivated
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.verifier.IssueToken(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &AuthResponse{Token: token, User: user.Public()}, nil
}

// GetMe returns the public view of the authenticated user.
func (s *Service) GetMe(ctx context.Context, userID string) (*PublicUser, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	pub := user.Public()
	return &pub, nil
}
