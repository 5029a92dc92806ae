package category

import (
	"context"

	"github.com/google/uuid"

	"github.com/xampe11/notes-app/internal/domain"
)

// Hand-written func-field mocks for the service dependencies.

type categoryRepoMock struct {
	ListFunc           func(ctx context.Context) ([]domain.Category, error)
	GetByIDFunc        func(ctx context.Context, id uuid.UUID) (*domain.Category, error)
	CreateFunc         func(ctx context.Context, name string) (*domain.Category, error)
	DeleteFunc         func(ctx context.Context, id uuid.UUID) error
	ListByNoteIDFunc   func(ctx context.Context, noteID uuid.UUID) ([]domain.Category, error)
	AddToNoteFunc      func(ctx context.Context, noteID, categoryID uuid.UUID) error
	RemoveFromNoteFunc func(ctx context.Context, noteID, categoryID uuid.UUID) error

	addToNoteCalls int
}

func (m *categoryRepoMock) List(ctx context.Context) ([]domain.Category, error) {
	return m.ListFunc(ctx)
}

func (m *categoryRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *categoryRepoMock) Create(ctx context.Context, name string) (*domain.Category, error) {
	return m.CreateFunc(ctx, name)
}

func (m *categoryRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	return m.DeleteFunc(ctx, id)
}

func (m *categoryRepoMock) ListByNoteID(ctx context.Context, noteID uuid.UUID) ([]domain.Category, error) {
	return m.ListByNoteIDFunc(ctx, noteID)
}

func (m *categoryRepoMock) AddToNote(ctx context.Context, noteID, categoryID uuid.UUID) error {
	m.addToNoteCalls++
	return m.AddToNoteFunc(ctx, noteID, categoryID)
}

func (m *categoryRepoMock) RemoveFromNote(ctx context.Context, noteID, categoryID uuid.UUID) error {
	return m.RemoveFromNoteFunc(ctx, noteID, categoryID)
}

type noteGetterMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Note, error)
}

func (m *noteGetterMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Note, error) {
	return m.GetByIDFunc(ctx, id)
}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTxFunc != nil {
		return m.RunInTxFunc(ctx, fn)
	}
	return fn(ctx)
}
