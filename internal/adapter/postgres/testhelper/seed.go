package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/xampe11/notes-app/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with a bcrypt hash of "password123".
// Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("testhelper: SeedUser hash password: %v", err)
	}

	email := "testuser-" + suffix + "@example.com"
	name := "Test User " + suffix
	user := domain.User{
		ID:           uuid.New(),
		Username:     "testuser-" + suffix,
		PasswordHash: string(hash),
		Email:        &email,
		Name:         &name,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO users (id, username, password_hash, email, name, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Username, user.PasswordHash, user.Email, user.Name, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedNote creates a note owned by the given user. Returns a filled domain.Note.
func SeedNote(t *testing.T, pool *pgxpool.Pool, createdBy uuid.UUID, title string, archived bool) domain.Note {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)

	note := domain.Note{
		ID:        uuid.New(),
		Title:     title,
		Content:   "Content " + suffix,
		Archived:  archived,
		CreatedBy: &createdBy,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO notes (id, title, content, archived, created_by, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		note.ID, note.Title, note.Content, note.Archived, note.CreatedBy, note.CreatedAt, note.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedNote insert note: %v", err)
	}

	return note
}

// SeedCategory creates a category with a unique name derived from prefix.
// Returns a filled domain.Category.
func SeedCategory(t *testing.T, pool *pgxpool.Pool, prefix string) domain.Category {
	t.Helper()
	ctx := context.Background()

	category := domain.Category{
		ID:   uuid.New(),
		Name: prefix + "-" + uniqueSuffix(),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO categories (id, name) VALUES ($1, $2)`,
		category.ID, category.Name,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCategory insert category: %v", err)
	}

	return category
}

// LinkNoteCategory tags a note with a category.
func LinkNoteCategory(t *testing.T, pool *pgxpool.Pool, noteID, categoryID uuid.UUID) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO note_categories (note_id, category_id) VALUES ($1, $2)`,
		noteID, categoryID,
	)
	if err != nil {
		t.Fatalf("testhelper: LinkNoteCategory insert: %v", err)
	}
}
