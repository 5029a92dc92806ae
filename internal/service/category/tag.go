package category

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/xampe11/notes-app/internal/domain"
	"github.com/xampe11/notes-app/pkg/ctxutil"
)

// ListNoteCategories returns the categories linked to a note.
// Returns ErrNotFound if the note does not exist.
func (s *Service) ListNoteCategories(ctx context.Context, noteID uuid.UUID) ([]domain.Category, error) {
	if noteID == uuid.Nil {
		return nil, domain.NewValidationError("note_id", "required")
	}

	if _, err := s.notes.GetByID(ctx, noteID); err != nil {
		return nil, fmt.Errorf("get note: %w", err)
	}

	categories, err := s.categories.ListByNoteID(ctx, noteID)
	if err != nil {
		return nil, fmt.Errorf("list note categories: %w", err)
	}

	return categories, nil
}

// AddCategoryToNote links a category to a note. Idempotent — re-linking an
// existing pair is a silent success.
// Returns ErrNotFound if the note or the category does not exist.
func (s *Service) AddCategoryToNote(ctx context.Context, input TagInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.notes.GetByID(txCtx, input.NoteID); err != nil {
			return fmt.Errorf("get note: %w", err)
		}
		if _, err := s.categories.GetByID(txCtx, input.CategoryID); err != nil {
			return fmt.Errorf("get category: %w", err)
		}

		// ON CONFLICT DO NOTHING — idempotent
		if err := s.categories.AddToNote(txCtx, input.NoteID, input.CategoryID); err != nil {
			return fmt.Errorf("add category to note: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "category added to note",
		slog.String("user_id", userID.String()),
		slog.String("note_id", input.NoteID.String()),
		slog.String("category_id", input.CategoryID.String()),
	)

	return nil
}

// RemoveCategoryFromNote removes the link between a note and a category.
// Returns ErrNotFound if the link did not exist.
func (s *Service) RemoveCategoryFromNote(ctx context.Context, input TagInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	if err := s.categories.RemoveFromNote(ctx, input.NoteID, input.CategoryID); err != nil {
		return fmt.Errorf("remove category from note: %w", err)
	}

	s.log.InfoContext(ctx, "category removed from note",
		slog.String("user_id", userID.String()),
		slog.String("note_id", input.NoteID.String()),
		slog.String("category_id", input.CategoryID.String()),
	)

	return nil
}
