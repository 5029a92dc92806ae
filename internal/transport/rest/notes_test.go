package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/xampe11/notes-app/internal/domain"
	"github.com/xampe11/notes-app/internal/service/note"
)

func TestNoteHandler_Get_InvalidID(t *testing.T) {
	h := NewNoteHandler(&noteServiceMock{}, slog.Default())

	req := httptest.NewRequest(http.MethodGet, "/api/notes/not-a-uuid", nil)
	req.SetPathValue("id", "not-a-uuid")
	rec := httptest.NewRecorder()

	h.Get(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestNoteHandler_Get_NotFound(t *testing.T) {
	svc := &noteServiceMock{
		GetNoteFunc: func(ctx context.Context, id uuid.UUID) (*domain.Note, error) {
			return nil, domain.ErrNotFound
		},
	}
	h := NewNoteHandler(svc, slog.Default())

	id := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/api/notes/"+id.String(), nil)
	req.SetPathValue("id", id.String())
	rec := httptest.NewRecorder()

	h.Get(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}

func TestNoteHandler_Create_Created(t *testing.T) {
	noteID := uuid.New()
	svc := &noteServiceMock{
		CreateNoteFunc: func(ctx context.Context, input note.CreateNoteInput) (*domain.Note, error) {
			if input.Title != "Plan" || input.Content != "Q3 goals" {
				t.Errorf("unexpected input: %+v", input)
			}
			return &domain.Note{ID: noteID, Title: input.Title, Content: input.Content}, nil
		},
	}
	h := NewNoteHandler(svc, slog.Default())

	req := httptest.NewRequest(http.MethodPost, "/api/notes",
		strings.NewReader(`{"title":"Plan","content":"Q3 goals"}`))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp noteResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if resp.ID != noteID.String() {
		t.Errorf("id: got %s, want %s", resp.ID, noteID)
	}
	if resp.Categories != nil {
		t.Error("categories must be omitted when not requested")
	}
}

func TestNoteHandler_Create_Validation(t *testing.T) {
	svc := &noteServiceMock{
		CreateNoteFunc: func(ctx context.Context, input note.CreateNoteInput) (*domain.Note, error) {
			return nil, domain.NewValidationError("title", "required")
		},
	}
	h := NewNoteHandler(svc, slog.Default())

	req := httptest.NewRequest(http.MethodPost, "/api/notes",
		strings.NewReader(`{"title":"","content":"c"}`))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if msg, _ := body["message"].(string); !strings.Contains(msg, "title") {
		t.Errorf("expected field name in message, got: %v", body)
	}
}

func TestNoteHandler_List_ParamPrecedence(t *testing.T) {
	categoryID := uuid.New()

	svc := &noteServiceMock{
		ListNotesByCategoryFunc: func(ctx context.Context, cID uuid.UUID, archived bool) ([]domain.Note, error) {
			if cID != categoryID {
				t.Errorf("categoryID: got %s, want %s", cID, categoryID)
			}
			if !archived {
				t.Error("archived flag must pass through")
			}
			return []domain.Note{}, nil
		},
		SearchNotesFunc: func(ctx context.Context, query string, archived bool) ([]domain.Note, error) {
			t.Error("search must not run when categoryId is present")
			return nil, nil
		},
	}
	h := NewNoteHandler(svc, slog.Default())

	// categoryId wins over search when both are present.
	req := httptest.NewRequest(http.MethodGet,
		"/api/notes?archived=true&search=plan&categoryId="+categoryID.String(), nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Errorf("empty result must encode as [], got %q", rec.Body.String())
	}
}

func TestNoteHandler_List_IncludeCategories(t *testing.T) {
	svc := &noteServiceMock{
		ListNotesWithCategoriesFunc: func(ctx context.Context, archived bool) ([]domain.NoteWithCategories, error) {
			return []domain.NoteWithCategories{
				{
					Note:       domain.Note{ID: uuid.New(), Title: "Plan"},
					Categories: []domain.Category{{ID: uuid.New(), Name: "Work"}},
				},
			}, nil
		},
	}
	h := NewNoteHandler(svc, slog.Default())

	req := httptest.NewRequest(http.MethodGet, "/api/notes?includeCategories=true", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp []noteResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if len(resp) != 1 || len(resp[0].Categories) != 1 || resp[0].Categories[0].Name != "Work" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestNoteHandler_ToggleArchive(t *testing.T) {
	noteID := uuid.New()
	svc := &noteServiceMock{
		ToggleArchiveFunc: func(ctx context.Context, id uuid.UUID) (*domain.Note, error) {
			return &domain.Note{ID: id, Archived: true}, nil
		},
	}
	h := NewNoteHandler(svc, slog.Default())

	req := httptest.NewRequest(http.MethodPatch, "/api/notes/"+noteID.String()+"/archive", nil)
	req.SetPathValue("id", noteID.String())
	rec := httptest.NewRecorder()

	h.ToggleArchive(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	var resp noteResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if !resp.Archived {
		t.Error("expected archived=true in response")
	}
}

func TestNoteHandler_Delete_Success(t *testing.T) {
	noteID := uuid.New()
	svc := &noteServiceMock{
		DeleteNoteFunc: func(ctx context.Context, id uuid.UUID) error {
			if id != noteID {
				t.Errorf("DeleteNote called with %s, want %s", id, noteID)
			}
			return nil
		},
	}
	h := NewNoteHandler(svc, slog.Default())

	req := httptest.NewRequest(http.MethodDelete, "/api/notes/"+noteID.String(), nil)
	req.SetPathValue("id", noteID.String())
	rec := httptest.NewRecorder()

	h.Delete(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["success"] != true {
		t.Errorf("expected success=true, got: %v", body)
	}
}
