package auth

import (
	"context"
	"fmt"

	"github.com/xampe11/notes-app/internal/domain"
	"github.com/xampe11/notes-app/pkg/ctxutil"
)

// Me returns the authenticated caller's user record.
func (s *Service) Me(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("auth.Me get user: %w", err)
	}

	return user, nil
}
