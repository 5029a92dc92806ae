package note

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/xampe11/notes-app/internal/domain"
	"github.com/xampe11/notes-app/pkg/ctxutil"
)

// CreateNote creates a note for the authenticated caller. The creator is
// recorded on the note; created_at and updated_at are set to the same
// instant.
func (s *Service) CreateNote(ctx context.Context, input CreateNoteInput) (*domain.Note, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	note, err := s.notes.Create(ctx, &domain.Note{
		Title:     strings.TrimSpace(input.Title),
		Content:   input.Content,
		Archived:  input.Archived,
		CreatedBy: &userID,
	}, time.Now())
	if err != nil {
		return nil, fmt.Errorf("create note: %w", err)
	}

	s.log.InfoContext(ctx, "note created",
		slog.String("user_id", userID.String()),
		slog.String("note_id", note.ID.String()),
	)

	return note, nil
}
