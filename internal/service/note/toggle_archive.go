package note

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/xampe11/notes-app/internal/domain"
	"github.com/xampe11/notes-app/pkg/ctxutil"
)

// ToggleArchive flips a note's archived flag. The flip is a single atomic
// statement in the repository, so two concurrent toggles cannot lose an
// update.
// Returns ErrNotFound if the note does not exist.
func (s *Service) ToggleArchive(ctx context.Context, id uuid.UUID) (*domain.Note, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if id == uuid.Nil {
		return nil, domain.NewValidationError("note_id", "required")
	}

	note, err := s.notes.ToggleArchive(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("toggle archive: %w", err)
	}

	s.log.InfoContext(ctx, "note archive toggled",
		slog.String("user_id", userID.String()),
		slog.String("note_id", note.ID.String()),
		slog.Bool("archived", note.Archived),
	)

	return note, nil
}
