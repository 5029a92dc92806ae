// Package note implements the note management operations: CRUD, filtered
// and searched listing, and archive toggling.
package note

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	noterepo "github.com/xampe11/notes-app/internal/adapter/postgres/note"
	"github.com/xampe11/notes-app/internal/domain"
)

type noteRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Note, error)
	List(ctx context.Context, f noterepo.Filter) ([]domain.Note, error)
	ListWithCategories(ctx context.Context, archived bool) ([]domain.NoteWithCategories, error)
	Create(ctx context.Context, n *domain.Note, createdAt time.Time) (*domain.Note, error)
	Update(ctx context.Context, id uuid.UUID, params domain.NoteUpdateParams) (*domain.Note, error)
	ToggleArchive(ctx context.Context, id uuid.UUID) (*domain.Note, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// categoryLinks is the slice of the category repository the note service
// needs for cleanup on delete.
type categoryLinks interface {
	RemoveAllFromNote(ctx context.Context, noteID uuid.UUID) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides note management operations. Authorization policy: any
// authenticated user may read and mutate any note (see DESIGN.md); the
// creator is recorded but not enforced.
type Service struct {
	notes noteRepo
	links categoryLinks
	tx    txManager
	log   *slog.Logger
}

// NewService creates a new Note service.
func NewService(log *slog.Logger, notes noteRepo, links categoryLinks, tx txManager) *Service {
	return &Service{
		notes: notes,
		links: links,
		tx:    tx,
		log:   log.With("service", "note"),
	}
}
