// Package category implements the Category repository using PostgreSQL.
// It provides CRUD operations for categories and M2M note tagging via the
// note_categories join table.
package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/xampe11/notes-app/internal/adapter/postgres"
	"github.com/xampe11/notes-app/internal/domain"
)

// Repo provides category persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new category repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

const listSQL = `SELECT id, name FROM categories ORDER BY name`

const getByIDSQL = `SELECT id, name FROM categories WHERE id = $1`

const createSQL = `INSERT INTO categories (name) VALUES ($1) RETURNING id, name`

const deleteSQL = `DELETE FROM categories WHERE id = $1`

const listByNoteIDSQL = `
SELECT c.id, c.name
FROM note_categories nc
JOIN categories c ON nc.category_id = c.id
WHERE nc.note_id = $1
ORDER BY c.name`

const addToNoteSQL = `
INSERT INTO note_categories (note_id, category_id)
VALUES ($1, $2)
ON CONFLICT (note_id, category_id) DO NOTHING`

const removeFromNoteSQL = `
DELETE FROM note_categories
WHERE note_id = $1 AND category_id = $2`

const removeAllFromNoteSQL = `DELETE FROM note_categories WHERE note_id = $1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// List returns all categories ordered by name.
// Returns an empty slice (not nil) when there are none.
func (r *Repo) List(ctx context.Context) ([]domain.Category, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listSQL)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	categories, err := scanCategories(rows)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	return categories, nil
}

// GetByID returns a category by primary key.
// Returns domain.ErrNotFound if the category does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var c domain.Category
	if err := querier.QueryRow(ctx, getByIDSQL, id).Scan(&c.ID, &c.Name); err != nil {
		return nil, postgres.MapError(err, "category", id)
	}

	return &c, nil
}

// ListByNoteID returns all categories linked to a note via the M2M table,
// ordered by name. Returns an empty slice (not nil) when none are linked.
func (r *Repo) ListByNoteID(ctx context.Context, noteID uuid.UUID) ([]domain.Category, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listByNoteIDSQL, noteID)
	if err != nil {
		return nil, fmt.Errorf("list categories by note_id: %w", err)
	}
	defer rows.Close()

	categories, err := scanCategories(rows)
	if err != nil {
		return nil, fmt.Errorf("list categories by note_id: %w", err)
	}

	return categories, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new category and returns the persisted domain.Category.
// Returns domain.ErrAlreadyExists if a category with the same name exists.
func (r *Repo) Create(ctx context.Context, name string) (*domain.Category, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var c domain.Category
	if err := querier.QueryRow(ctx, createSQL, name).Scan(&c.ID, &c.Name); err != nil {
		return nil, postgres.MapError(err, "category", uuid.Nil)
	}

	return &c, nil
}

// Delete removes a category. CASCADE deletes its note_categories rows;
// notes are NOT affected.
// Returns domain.ErrNotFound if the category does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "category", id)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("category %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// AddToNote links a category to a note.
// Idempotent: linking the same pair twice is NOT an error (ON CONFLICT DO NOTHING).
func (r *Repo) AddToNote(ctx context.Context, noteID, categoryID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, addToNoteSQL, noteID, categoryID); err != nil {
		return postgres.MapError(err, "note_category", noteID)
	}

	return nil
}

// RemoveFromNote removes the link between a note and a category.
// Returns domain.ErrNotFound if the link did not exist.
func (r *Repo) RemoveFromNote(ctx context.Context, noteID, categoryID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, removeFromNoteSQL, noteID, categoryID)
	if err != nil {
		return postgres.MapError(err, "note_category", noteID)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("note_category %s/%s: %w", noteID, categoryID, domain.ErrNotFound)
	}

	return nil
}

// RemoveAllFromNote removes every category link for a note. Removing zero
// links is not an error.
func (r *Repo) RemoveAllFromNote(ctx context.Context, noteID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, removeAllFromNoteSQL, noteID); err != nil {
		return postgres.MapError(err, "note_category", noteID)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanCategories(rows pgx.Rows) ([]domain.Category, error) {
	var result []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if result == nil {
		result = []domain.Category{}
	}

	return result, nil
}
