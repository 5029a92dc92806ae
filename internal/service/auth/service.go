// Package auth implements registration, credential validation, and token
// issuing on top of the user repository and the JWT manager.
package auth

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/xampe11/notes-app/internal/domain"
)

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
}

type jwtManager interface {
	GenerateToken(userID uuid.UUID, username string) (string, error)
	ValidateToken(token string) (uuid.UUID, string, error)
}

// Config holds the auth service parameters.
type Config struct {
	// BcryptCost is the adaptive hashing cost factor (typically 10).
	BcryptCost int
}

// Service provides authentication operations.
type Service struct {
	users userRepo
	jwt   jwtManager
	cfg   Config
	log   *slog.Logger
}

// NewService creates a new Auth service.
func NewService(log *slog.Logger, users userRepo, jwt jwtManager, cfg Config) *Service {
	return &Service{
		users: users,
		jwt:   jwt,
		cfg:   cfg,
		log:   log.With("service", "auth"),
	}
}

// ValidateToken validates a bearer token and returns the user ID and
// username encoded in it. Used by the access control middleware.
func (s *Service) ValidateToken(token string) (uuid.UUID, string, error) {
	return s.jwt.ValidateToken(token)
}
