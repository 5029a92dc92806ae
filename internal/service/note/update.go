package note

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/xampe11/notes-app/internal/domain"
	"github.com/xampe11/notes-app/pkg/ctxutil"
)

// UpdateNote applies a partial update: omitted fields keep their prior
// value, updated_at is always refreshed.
// Returns ErrNotFound if the note does not exist.
func (s *Service) UpdateNote(ctx context.Context, input UpdateNoteInput) (*domain.Note, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.NoteUpdateParams{
		Content:  input.Content,
		Archived: input.Archived,
	}
	if input.Title != nil {
		trimmed := strings.TrimSpace(*input.Title)
		params.Title = &trimmed
	}

	note, err := s.notes.Update(ctx, input.NoteID, params)
	if err != nil {
		return nil, fmt.Errorf("update note: %w", err)
	}

	s.log.InfoContext(ctx, "note updated",
		slog.String("user_id", userID.String()),
		slog.String("note_id", note.ID.String()),
	)

	return note, nil
}
