package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/xampe11/notes-app/internal/domain"
)

// Hand-written func-field mocks for the service dependencies.

type userRepoMock struct {
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsernameFunc func(ctx context.Context, username string) (*domain.User, error)
	CreateFunc        func(ctx context.Context, u *domain.User) (*domain.User, error)

	createCalls int
}

func (m *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *userRepoMock) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return m.GetByUsernameFunc(ctx, username)
}

func (m *userRepoMock) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	m.createCalls++
	return m.CreateFunc(ctx, u)
}

type jwtManagerMock struct {
	GenerateTokenFunc func(userID uuid.UUID, username string) (string, error)
	ValidateTokenFunc func(token string) (uuid.UUID, string, error)
}

func (m *jwtManagerMock) GenerateToken(userID uuid.UUID, username string) (string, error) {
	return m.GenerateTokenFunc(userID, username)
}

func (m *jwtManagerMock) ValidateToken(token string) (uuid.UUID, string, error) {
	return m.ValidateTokenFunc(token)
}
