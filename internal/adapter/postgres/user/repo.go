// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/xampe11/notes-app/internal/adapter/postgres"
	"github.com/xampe11/notes-app/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const getByIDSQL = `
SELECT id, username, password_hash, email, name, created_at, updated_at
FROM users
WHERE id = $1`

const getByUsernameSQL = `
SELECT id, username, password_hash, email, name, created_at, updated_at
FROM users
WHERE username = $1`

const createSQL = `
INSERT INTO users (id, username, password_hash, email, name, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $6)
RETURNING id, username, password_hash, email, name, created_at, updated_at`

// GetByID returns a user by primary key.
// Returns domain.ErrNotFound if the user does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	return &u, nil
}

// GetByUsername returns a user by username (exact match, case-sensitive).
// Returns domain.ErrNotFound if the user does not exist.
func (r *Repo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(querier.QueryRow(ctx, getByUsernameSQL, username))
	if err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}

	return &u, nil
}

// Create inserts a new user and returns the persisted domain.User.
// Returns domain.ErrAlreadyExists if the username or email is taken
// (unique constraints).
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanUser(querier.QueryRow(ctx, createSQL,
		u.ID, u.Username, u.PasswordHash,
		ptrStringToPgText(u.Email), ptrStringToPgText(u.Name), u.CreatedAt))
	if err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}

	return &created, nil
}

func scanUser(row pgx.Row) (domain.User, error) {
	var (
		u     domain.User
		email pgtype.Text
		name  pgtype.Text
	)

	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &email, &name, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return domain.User{}, err
	}

	if email.Valid {
		u.Email = &email.String
	}
	if name.Valid {
		u.Name = &name.String
	}

	return u, nil
}

// ptrStringToPgText converts a *string to pgtype.Text (nil -> NULL).
func ptrStringToPgText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}
