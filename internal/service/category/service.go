// Package category implements category management and note tagging.
package category

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/xampe11/notes-app/internal/domain"
)

type categoryRepo interface {
	List(ctx context.Context) ([]domain.Category, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error)
	Create(ctx context.Context, name string) (*domain.Category, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// M2M: note <-> category
	ListByNoteID(ctx context.Context, noteID uuid.UUID) ([]domain.Category, error)
	AddToNote(ctx context.Context, noteID, categoryID uuid.UUID) error
	RemoveFromNote(ctx context.Context, noteID, categoryID uuid.UUID) error
}

type noteGetter interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Note, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides category management operations.
type Service struct {
	categories categoryRepo
	notes      noteGetter
	tx         txManager
	log        *slog.Logger
}

// NewService creates a new Category service.
func NewService(log *slog.Logger, categories categoryRepo, notes noteGetter, tx txManager) *Service {
	return &Service{
		categories: categories,
		notes:      notes,
		tx:         tx,
		log:        log.With("service", "category"),
	}
}
