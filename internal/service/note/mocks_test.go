package note

import (
	"context"
	"time"

	"github.com/google/uuid"

	noterepo "github.com/xampe11/notes-app/internal/adapter/postgres/note"
	"github.com/xampe11/notes-app/internal/domain"
)

// Hand-written func-field mocks for the service dependencies.

type noteRepoMock struct {
	GetByIDFunc            func(ctx context.Context, id uuid.UUID) (*domain.Note, error)
	ListFunc               func(ctx context.Context, f noterepo.Filter) ([]domain.Note, error)
	ListWithCategoriesFunc func(ctx context.Context, archived bool) ([]domain.NoteWithCategories, error)
	CreateFunc             func(ctx context.Context, n *domain.Note, createdAt time.Time) (*domain.Note, error)
	UpdateFunc             func(ctx context.Context, id uuid.UUID, params domain.NoteUpdateParams) (*domain.Note, error)
	ToggleArchiveFunc      func(ctx context.Context, id uuid.UUID) (*domain.Note, error)
	DeleteFunc             func(ctx context.Context, id uuid.UUID) error

	deleteCalls int
}

func (m *noteRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Note, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *noteRepoMock) List(ctx context.Context, f noterepo.Filter) ([]domain.Note, error) {
	return m.ListFunc(ctx, f)
}

func (m *noteRepoMock) ListWithCategories(ctx context.Context, archived bool) ([]domain.NoteWithCategories, error) {
	return m.ListWithCategoriesFunc(ctx, archived)
}

func (m *noteRepoMock) Create(ctx context.Context, n *domain.Note, createdAt time.Time) (*domain.Note, error) {
	return m.CreateFunc(ctx, n, createdAt)
}

func (m *noteRepoMock) Update(ctx context.Context, id uuid.UUID, params domain.NoteUpdateParams) (*domain.Note, error) {
	return m.UpdateFunc(ctx, id, params)
}

func (m *noteRepoMock) ToggleArchive(ctx context.Context, id uuid.UUID) (*domain.Note, error) {
	return m.ToggleArchiveFunc(ctx, id)
}

func (m *noteRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	m.deleteCalls++
	return m.DeleteFunc(ctx, id)
}

type categoryLinksMock struct {
	RemoveAllFromNoteFunc func(ctx context.Context, noteID uuid.UUID) error

	removeAllCalls int
}

func (m *categoryLinksMock) RemoveAllFromNote(ctx context.Context, noteID uuid.UUID) error {
	m.removeAllCalls++
	return m.RemoveAllFromNoteFunc(ctx, noteID)
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
