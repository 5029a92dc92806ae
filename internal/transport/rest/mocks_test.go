package rest

import (
	"context"

	"github.com/google/uuid"

	"github.com/xampe11/notes-app/internal/domain"
	"github.com/xampe11/notes-app/internal/service/auth"
	"github.com/xampe11/notes-app/internal/service/category"
	"github.com/xampe11/notes-app/internal/service/note"
)

// Hand-written func-field mocks for the handler service interfaces.

type authServiceMock struct {
	RegisterFunc func(ctx context.Context, input auth.RegisterInput) (*domain.User, error)
	LoginFunc    func(ctx context.Context, input auth.LoginInput) (*auth.LoginResult, error)
	MeFunc       func(ctx context.Context) (*domain.User, error)
}

func (m *authServiceMock) Register(ctx context.Context, input auth.RegisterInput) (*domain.User, error) {
	return m.RegisterFunc(ctx, input)
}

func (m *authServiceMock) Login(ctx context.Context, input auth.LoginInput) (*auth.LoginResult, error) {
	return m.LoginFunc(ctx, input)
}

func (m *authServiceMock) Me(ctx context.Context) (*domain.User, error) {
	return m.MeFunc(ctx)
}

type noteServiceMock struct {
	ListNotesFunc               func(ctx context.Context, archived bool) ([]domain.Note, error)
	ListNotesWithCategoriesFunc func(ctx context.Context, archived bool) ([]domain.NoteWithCategories, error)
	SearchNotesFunc             func(ctx context.Context, query string, archived bool) ([]domain.Note, error)
	ListNotesByCategoryFunc     func(ctx context.Context, categoryID uuid.UUID, archived bool) ([]domain.Note, error)
	GetNoteFunc                 func(ctx context.Context, id uuid.UUID) (*domain.Note, error)
	CreateNoteFunc              func(ctx context.Context, input note.CreateNoteInput) (*domain.Note, error)
	UpdateNoteFunc              func(ctx context.Context, input note.UpdateNoteInput) (*domain.Note, error)
	ToggleArchiveFunc           func(ctx context.Context, id uuid.UUID) (*domain.Note, error)
	DeleteNoteFunc              func(ctx context.Context, id uuid.UUID) error
}

func (m *noteServiceMock) ListNotes(ctx context.Context, archived bool) ([]domain.Note, error) {
	return m.ListNotesFunc(ctx, archived)
}

func (m *noteServiceMock) ListNotesWithCategories(ctx context.Context, archived bool) ([]domain.NoteWithCategories, error) {
	return m.ListNotesWithCategoriesFunc(ctx, archived)
}

func (m *noteServiceMock) SearchNotes(ctx context.Context, query string, archived bool) ([]domain.Note, error) {
	return m.SearchNotesFunc(ctx, query, archived)
}

func (m *noteServiceMock) ListNotesByCategory(ctx context.Context, categoryID uuid.UUID, archived bool) ([]domain.Note, error) {
	return m.ListNotesByCategoryFunc(ctx, categoryID, archived)
}

func (m *noteServiceMock) GetNote(ctx context.Context, id uuid.UUID) (*domain.Note, error) {
	return m.GetNoteFunc(ctx, id)
}

func (m *noteServiceMock) CreateNote(ctx context.Context, input note.CreateNoteInput) (*domain.Note, error) {
	return m.CreateNoteFunc(ctx, input)
}

func (m *noteServiceMock) UpdateNote(ctx context.Context, input note.UpdateNoteInput) (*domain.Note, error) {
	return m.UpdateNoteFunc(ctx, input)
}

func (m *noteServiceMock) ToggleArchive(ctx context.Context, id uuid.UUID) (*domain.Note, error) {
	return m.ToggleArchiveFunc(ctx, id)
}

func (m *noteServiceMock) DeleteNote(ctx context.Context, id uuid.UUID) error {
	return m.DeleteNoteFunc(ctx, id)
}

type categoryServiceMock struct {
	ListCategoriesFunc         func(ctx context.Context) ([]domain.Category, error)
	CreateCategoryFunc         func(ctx context.Context, input category.CreateCategoryInput) (*domain.Category, error)
	DeleteCategoryFunc         func(ctx context.Context, id uuid.UUID) error
	ListNoteCategoriesFunc     func(ctx context.Context, noteID uuid.UUID) ([]domain.Category, error)
	AddCategoryToNoteFunc      func(ctx context.Context, input category.TagInput) error
	RemoveCategoryFromNoteFunc func(ctx context.Context, input category.TagInput) error
}

func (m *categoryServiceMock) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return m.ListCategoriesFunc(ctx)
}

func (m *categoryServiceMock) CreateCategory(ctx context.Context, input category.CreateCategoryInput) (*domain.Category, error) {
	return m.CreateCategoryFunc(ctx, input)
}

func (m *categoryServiceMock) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return m.DeleteCategoryFunc(ctx, id)
}

func (m *categoryServiceMock) ListNoteCategories(ctx context.Context, noteID uuid.UUID) ([]domain.Category, error) {
	return m.ListNoteCategoriesFunc(ctx, noteID)
}

func (m *categoryServiceMock) AddCategoryToNote(ctx context.Context, input category.TagInput) error {
	return m.AddCategoryToNoteFunc(ctx, input)
}

func (m *categoryServiceMock) RemoveCategoryFromNote(ctx context.Context, input category.TagInput) error {
	return m.RemoveCategoryFromNoteFunc(ctx, input)
}
