package category

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/xampe11/notes-app/internal/domain"
	"github.com/xampe11/notes-app/pkg/ctxutil"
)

// ListCategories returns all categories ordered by name.
func (s *Service) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// CreateCategory creates a category with a globally unique name.
// Returns ErrAlreadyExists if the name is taken.
func (s *Service) CreateCategory(ctx context.Context, input CreateCategoryInput) (*domain.Category, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	category, err := s.categories.Create(ctx, strings.TrimSpace(input.Name))
	if err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}

	s.log.InfoContext(ctx, "category created",
		slog.String("user_id", userID.String()),
		slog.String("category_id", category.ID.String()),
		slog.String("name", category.Name),
	)

	return category, nil
}

// DeleteCategory removes a category. The schema-level CASCADE removes all
// note_categories rows referencing it; notes are not affected.
// Returns ErrNotFound if the category does not exist.
func (s *Service) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if id == uuid.Nil {
		return domain.NewValidationError("category_id", "required")
	}

	if err := s.categories.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}

	s.log.InfoContext(ctx, "category deleted",
		slog.String("user_id", userID.String()),
		slog.String("category_id", id.String()),
	)

	return nil
}
