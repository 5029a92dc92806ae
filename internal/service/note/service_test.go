package note

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	noterepo "github.com/xampe11/notes-app/internal/adapter/postgres/note"
	"github.com/xampe11/notes-app/internal/domain"
	"github.com/xampe11/notes-app/pkg/ctxutil"
)

func authedCtx(userID uuid.UUID) context.Context {
	return ctxutil.WithUserID(context.Background(), userID)
}

func newTestService(notes *noteRepoMock, links *categoryLinksMock, tx *txManagerMock) *Service {
	if links == nil {
		links = &categoryLinksMock{}
	}
	if tx == nil {
		tx = &txManagerMock{}
	}
	return NewService(slog.Default(), notes, links, tx)
}

func TestService_CreateNote_Success(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	noteID := uuid.New()

	notesMock := &noteRepoMock{
		CreateFunc: func(ctx context.Context, n *domain.Note, createdAt time.Time) (*domain.Note, error) {
			if n.Title != "Plan" {
				t.Errorf("title should be trimmed: got %q", n.Title)
			}
			if n.CreatedBy == nil || *n.CreatedBy != userID {
				t.Error("creator must be recorded from the request context")
			}
			created := *n
			created.ID = noteID
			created.CreatedAt = createdAt
			created.UpdatedAt = createdAt
			return &created, nil
		},
	}

	svc := newTestService(notesMock, nil, nil)

	note, err := svc.CreateNote(authedCtx(userID), CreateNoteInput{
		Title:   "  Plan  ",
		Content: "Q3 goals",
	})
	if err != nil {
		t.Fatalf("CreateNote returned error: %v", err)
	}
	if note.ID != noteID {
		t.Errorf("ID: got %s, want %s", note.ID, noteID)
	}
	if !note.CreatedAt.Equal(note.UpdatedAt) {
		t.Error("created_at and updated_at must match on create")
	}
}

func TestService_CreateNote_Anonymous(t *testing.T) {
	t.Parallel()

	svc := newTestService(&noteRepoMock{}, nil, nil)

	_, err := svc.CreateNote(context.Background(), CreateNoteInput{Title: "t", Content: "c"})
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got: %v", err)
	}
}

func TestService_CreateNote_Validation(t *testing.T) {
	t.Parallel()

	svc := newTestService(&noteRepoMock{
		CreateFunc: func(ctx context.Context, n *domain.Note, createdAt time.Time) (*domain.Note, error) {
			t.Error("Create must not be called for invalid input")
			return nil, nil
		},
	}, nil, nil)

	tests := []struct {
		name  string
		input CreateNoteInput
	}{
		{"empty title", CreateNoteInput{Title: "   ", Content: "c"}},
		{"empty content", CreateNoteInput{Title: "t", Content: ""}},
		{"title too long", CreateNoteInput{Title: strings.Repeat("a", 101), Content: "c"}},
		{"multi-byte title too long", CreateNoteInput{Title: strings.Repeat("ё", 101), Content: "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateNote(authedCtx(uuid.New()), tt.input)
			if !errors.Is(err, domain.ErrValidation) {
				t.Errorf("expected ErrValidation, got: %v", err)
			}
		})
	}
}

func TestService_CreateNote_MultiByteTitleWithinLimit(t *testing.T) {
	t.Parallel()

	// 100 Cyrillic characters are 200 bytes; the limit counts characters.
	title := strings.Repeat("я", 100)

	svc := newTestService(&noteRepoMock{
		CreateFunc: func(ctx context.Context, n *domain.Note, createdAt time.Time) (*domain.Note, error) {
			return n, nil
		},
	}, nil, nil)

	got, err := svc.CreateNote(authedCtx(uuid.New()), CreateNoteInput{Title: title, Content: "c"})
	if err != nil {
		t.Fatalf("expected success, got: %v", err)
	}
	if got.Title != title {
		t.Errorf("Title mismatch: got %q", got.Title)
	}
}

func TestService_UpdateNote_PartialFields(t *testing.T) {
	t.Parallel()

	noteID := uuid.New()
	newContent := "updated content"

	notesMock := &noteRepoMock{
		UpdateFunc: func(ctx context.Context, id uuid.UUID, params domain.NoteUpdateParams) (*domain.Note, error) {
			if id != noteID {
				t.Errorf("Update called with id %s, want %s", id, noteID)
			}
			if params.Title != nil {
				t.Error("omitted title must stay nil")
			}
			if params.Content == nil || *params.Content != newContent {
				t.Errorf("Content param: got %v", params.Content)
			}
			return &domain.Note{ID: id, Title: "old title", Content: newContent}, nil
		},
	}

	svc := newTestService(notesMock, nil, nil)

	note, err := svc.UpdateNote(authedCtx(uuid.New()), UpdateNoteInput{
		NoteID:  noteID,
		Content: &newContent,
	})
	if err != nil {
		t.Fatalf("UpdateNote returned error: %v", err)
	}
	if note.Content != newContent {
		t.Errorf("Content: got %q, want %q", note.Content, newContent)
	}
}

func TestService_UpdateNote_NoFields(t *testing.T) {
	t.Parallel()

	svc := newTestService(&noteRepoMock{}, nil, nil)

	_, err := svc.UpdateNote(authedCtx(uuid.New()), UpdateNoteInput{NoteID: uuid.New()})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for empty update, got: %v", err)
	}
}

func TestService_UpdateNote_NotFound(t *testing.T) {
	t.Parallel()

	title := "new title"
	svc := newTestService(&noteRepoMock{
		UpdateFunc: func(ctx context.Context, id uuid.UUID, params domain.NoteUpdateParams) (*domain.Note, error) {
			return nil, domain.ErrNotFound
		},
	}, nil, nil)

	_, err := svc.UpdateNote(authedCtx(uuid.New()), UpdateNoteInput{NoteID: uuid.New(), Title: &title})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestService_ToggleArchive(t *testing.T) {
	t.Parallel()

	noteID := uuid.New()
	svc := newTestService(&noteRepoMock{
		ToggleArchiveFunc: func(ctx context.Context, id uuid.UUID) (*domain.Note, error) {
			return &domain.Note{ID: id, Archived: true}, nil
		},
	}, nil, nil)

	note, err := svc.ToggleArchive(authedCtx(uuid.New()), noteID)
	if err != nil {
		t.Fatalf("ToggleArchive returned error: %v", err)
	}
	if !note.Archived {
		t.Error("expected archived flag flipped to true")
	}
}

func TestService_DeleteNote_RemovesLinksInTx(t *testing.T) {
	t.Parallel()

	noteID := uuid.New()
	txCalls := 0

	linksMock := &categoryLinksMock{
		RemoveAllFromNoteFunc: func(ctx context.Context, id uuid.UUID) error {
			if id != noteID {
				t.Errorf("RemoveAllFromNote called with %s, want %s", id, noteID)
			}
			return nil
		},
	}
	notesMock := &noteRepoMock{
		DeleteFunc: func(ctx context.Context, id uuid.UUID) error {
			if linksMock.removeAllCalls != 1 {
				t.Error("category links must be removed before the note row")
			}
			return nil
		},
	}
	txMock := &txManagerMock{
		RunInTxFunc: func(ctx context.Context, fn func(ctx context.Context) error) error {
			txCalls++
			return fn(ctx)
		},
	}

	svc := newTestService(notesMock, linksMock, txMock)

	if err := svc.DeleteNote(authedCtx(uuid.New()), noteID); err != nil {
		t.Fatalf("DeleteNote returned error: %v", err)
	}
	if txCalls != 1 {
		t.Errorf("RunInTx called %d times, want 1", txCalls)
	}
	if notesMock.deleteCalls != 1 {
		t.Errorf("Delete called %d times, want 1", notesMock.deleteCalls)
	}
}

func TestService_DeleteNote_NotFound(t *testing.T) {
	t.Parallel()

	svc := newTestService(&noteRepoMock{
		DeleteFunc: func(ctx context.Context, id uuid.UUID) error {
			return domain.ErrNotFound
		},
	}, &categoryLinksMock{
		RemoveAllFromNoteFunc: func(ctx context.Context, id uuid.UUID) error { return nil },
	}, nil)

	err := svc.DeleteNote(authedCtx(uuid.New()), uuid.New())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestService_SearchNotes_BlankQueryListsAll(t *testing.T) {
	t.Parallel()

	svc := newTestService(&noteRepoMock{
		ListFunc: func(ctx context.Context, f noterepo.Filter) ([]domain.Note, error) {
			if f.Search == nil {
				t.Fatal("search filter must be set")
			}
			return []domain.Note{{ID: uuid.New()}, {ID: uuid.New()}}, nil
		},
	}, nil, nil)

	notes, err := svc.SearchNotes(context.Background(), "   ", false)
	if err != nil {
		t.Fatalf("SearchNotes returned error: %v", err)
	}
	if len(notes) != 2 {
		t.Errorf("expected 2 notes, got %d", len(notes))
	}
}

func TestService_ListNotesByCategory_NilID(t *testing.T) {
	t.Parallel()

	svc := newTestService(&noteRepoMock{}, nil, nil)

	_, err := svc.ListNotesByCategory(context.Background(), uuid.Nil, false)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got: %v", err)
	}
}

func TestService_GetNote_NotFound(t *testing.T) {
	t.Parallel()

	svc := newTestService(&noteRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Note, error) {
			return nil, domain.ErrNotFound
		},
	}, nil, nil)

	_, err := svc.GetNote(context.Background(), uuid.New())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}
