package note

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/xampe11/notes-app/internal/domain"
	"github.com/xampe11/notes-app/pkg/ctxutil"
)

// DeleteNote removes a note and its category links in one transaction, so
// a crash between the two steps cannot leave orphaned join rows (the
// schema-level CASCADE is the backstop).
// Returns ErrNotFound if the note does not exist.
func (s *Service) DeleteNote(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if id == uuid.Nil {
		return domain.NewValidationError("note_id", "required")
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.links.RemoveAllFromNote(txCtx, id); err != nil {
			return fmt.Errorf("remove note categories: %w", err)
		}
		if err := s.notes.Delete(txCtx, id); err != nil {
			return fmt.Errorf("delete note: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "note deleted",
		slog.String("user_id", userID.String()),
		slog.String("note_id", id.String()),
	)

	return nil
}
