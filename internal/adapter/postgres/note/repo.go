// Package note implements the Note repository using PostgreSQL.
package note

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/xampe11/notes-app/internal/adapter/postgres"
	"github.com/xampe11/notes-app/internal/domain"
)

// Repo provides note persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new note repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

const getByIDSQL = `
SELECT n.id, n.title, n.content, n.archived, n.created_by, n.created_at, n.updated_at
FROM notes n
WHERE n.id = $1`

const createSQL = `
INSERT INTO notes (title, content, archived, created_by, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $5)
RETURNING id, title, content, archived, created_by, created_at, updated_at`

// Single-statement flip: no read-modify-write window between requests.
const toggleArchiveSQL = `
UPDATE notes
SET archived = NOT archived, updated_at = now()
WHERE id = $1
RETURNING id, title, content, archived, created_by, created_at, updated_at`

const deleteSQL = `DELETE FROM notes WHERE id = $1`

const categoriesByNoteIDsSQL = `
SELECT nc.note_id, c.id, c.name
FROM note_categories nc
JOIN categories c ON nc.category_id = c.id
WHERE nc.note_id = ANY($1::uuid[])
ORDER BY nc.note_id, c.name`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a note by primary key.
// Returns domain.ErrNotFound if the note does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Note, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	n, err := scanNote(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "note", id)
	}

	return &n, nil
}

// List returns notes matching the filter, ordered by updated_at descending.
// A blank Search matches all notes; a CategoryID joins through the
// note_categories relation. Returns an empty slice (not nil) when nothing
// matches.
func (r *Repo) List(ctx context.Context, f Filter) ([]domain.Note, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	qb := psql.Select("n.id", "n.title", "n.content", "n.archived", "n.created_by", "n.created_at", "n.updated_at").
		From("notes n").
		Where(sq.Eq{"n.archived": f.Archived}).
		OrderBy("n.updated_at DESC")

	if f.Search != nil {
		if pattern := strings.TrimSpace(*f.Search); pattern != "" {
			like := "%" + pattern + "%"
			qb = qb.Where(sq.Or{
				sq.ILike{"n.title": like},
				sq.ILike{"n.content": like},
			})
		}
	}

	if f.CategoryID != nil {
		qb = qb.Join("note_categories nc ON nc.note_id = n.id").
			Where(sq.Eq{"nc.category_id": *f.CategoryID})
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer rows.Close()

	notes, err := scanNotes(rows)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}

	return notes, nil
}

// ListWithCategories returns notes matching the archived flag with their
// linked categories nested per note, ordered by updated_at descending.
func (r *Repo) ListWithCategories(ctx context.Context, archived bool) ([]domain.NoteWithCategories, error) {
	notes, err := r.List(ctx, Filter{Archived: archived})
	if err != nil {
		return nil, err
	}

	result := make([]domain.NoteWithCategories, len(notes))
	ids := make([]uuid.UUID, len(notes))
	byID := make(map[uuid.UUID]*domain.NoteWithCategories, len(notes))
	for i, n := range notes {
		result[i] = domain.NoteWithCategories{Note: n, Categories: []domain.Category{}}
		ids[i] = n.ID
		byID[n.ID] = &result[i]
	}

	if len(ids) == 0 {
		return result, nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, categoriesByNoteIDsSQL, ids)
	if err != nil {
		return nil, fmt.Errorf("list note categories: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			noteID uuid.UUID
			c      domain.Category
		)
		if err := rows.Scan(&noteID, &c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("list note categories: %w", err)
		}
		if n, ok := byID[noteID]; ok {
			n.Categories = append(n.Categories, c)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list note categories: %w", err)
	}

	return result, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new note and returns the persisted domain.Note.
// createdAt is used for both created_at and updated_at so the two are equal
// on a fresh note.
func (r *Repo) Create(ctx context.Context, n *domain.Note, createdAt time.Time) (*domain.Note, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanNote(querier.QueryRow(ctx, createSQL,
		n.Title, n.Content, n.Archived, ptrUUIDToPg(n.CreatedBy), createdAt))
	if err != nil {
		return nil, postgres.MapError(err, "note", uuid.Nil)
	}

	return &created, nil
}

// Update applies a partial update in a single statement: only provided
// fields change, updated_at is always refreshed.
// Returns domain.ErrNotFound if the note does not exist.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.NoteUpdateParams) (*domain.Note, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	qb := psql.Update("notes").
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, title, content, archived, created_by, created_at, updated_at")

	if params.Title != nil {
		qb = qb.Set("title", *params.Title)
	}
	if params.Content != nil {
		qb = qb.Set("content", *params.Content)
	}
	if params.Archived != nil {
		qb = qb.Set("archived", *params.Archived)
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update query: %w", err)
	}

	n, err := scanNote(querier.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "note", id)
	}

	return &n, nil
}

// ToggleArchive flips the archived flag atomically and refreshes updated_at.
// Returns domain.ErrNotFound if the note does not exist.
func (r *Repo) ToggleArchive(ctx context.Context, id uuid.UUID) (*domain.Note, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	n, err := scanNote(querier.QueryRow(ctx, toggleArchiveSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "note", id)
	}

	return &n, nil
}

// Delete removes a note. CASCADE deletes its note_categories rows.
// Returns domain.ErrNotFound if the note does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "note", id)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("note %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanNote(row pgx.Row) (domain.Note, error) {
	var (
		n         domain.Note
		createdBy pgtype.UUID
	)

	err := row.Scan(&n.ID, &n.Title, &n.Content, &n.Archived, &createdBy, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		return domain.Note{}, err
	}

	if createdBy.Valid {
		id := uuid.UUID(createdBy.Bytes)
		n.CreatedBy = &id
	}

	return n, nil
}

func scanNotes(rows pgx.Rows) ([]domain.Note, error) {
	var result []domain.Note
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if result == nil {
		result = []domain.Note{}
	}

	return result, nil
}

// ptrUUIDToPg converts a *uuid.UUID to pgtype.UUID (nil -> NULL).
func ptrUUIDToPg(id *uuid.UUID) pgtype.UUID {
	if id == nil {
		return pgtype.UUID{}
	}
	return pgtype.UUID{Bytes: *id, Valid: true}
}
