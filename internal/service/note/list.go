package note

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	noterepo "github.com/xampe11/notes-app/internal/adapter/postgres/note"
	"github.com/xampe11/notes-app/internal/domain"
)

// ListNotes returns all notes matching the archived flag, most recently
// updated first.
func (s *Service) ListNotes(ctx context.Context, archived bool) ([]domain.Note, error) {
	notes, err := s.notes.List(ctx, noterepo.Filter{Archived: archived})
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return notes, nil
}

// ListNotesWithCategories returns notes matching the archived flag with
// their categories nested per note.
func (s *Service) ListNotesWithCategories(ctx context.Context, archived bool) ([]domain.NoteWithCategories, error) {
	notes, err := s.notes.ListWithCategories(ctx, archived)
	if err != nil {
		return nil, fmt.Errorf("list notes with categories: %w", err)
	}
	return notes, nil
}

// SearchNotes returns notes whose title or content contains the query,
// case-insensitively. A blank query matches all notes — identical to
// ListNotes.
func (s *Service) SearchNotes(ctx context.Context, query string, archived bool) ([]domain.Note, error) {
	notes, err := s.notes.List(ctx, noterepo.Filter{Archived: archived, Search: &query})
	if err != nil {
		return nil, fmt.Errorf("search notes: %w", err)
	}
	return notes, nil
}

// ListNotesByCategory returns notes linked to the given category, filtered
// by the archived flag.
func (s *Service) ListNotesByCategory(ctx context.Context, categoryID uuid.UUID, archived bool) ([]domain.Note, error) {
	if categoryID == uuid.Nil {
		return nil, domain.NewValidationError("category_id", "required")
	}

	notes, err := s.notes.List(ctx, noterepo.Filter{Archived: archived, CategoryID: &categoryID})
	if err != nil {
		return nil, fmt.Errorf("list notes by category: %w", err)
	}
	return notes, nil
}

// GetNote returns a single note by ID.
func (s *Service) GetNote(ctx context.Context, id uuid.UUID) (*domain.Note, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("note_id", "required")
	}

	note, err := s.notes.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get note: %w", err)
	}
	return note, nil
}
