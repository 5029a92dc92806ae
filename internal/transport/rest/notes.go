package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/xampe11/notes-app/internal/domain"
	"github.com/xampe11/notes-app/internal/service/note"
)

// noteService defines the minimal interface needed by NoteHandler.
type noteService interface {
	ListNotes(ctx context.Context, archived bool) ([]domain.Note, error)
	ListNotesWithCategories(ctx context.Context, archived bool) ([]domain.NoteWithCategories, error)
	SearchNotes(ctx context.Context, query string, archived bool) ([]domain.Note, error)
	ListNotesByCategory(ctx context.Context, categoryID uuid.UUID, archived bool) ([]domain.Note, error)
	GetNote(ctx context.Context, id uuid.UUID) (*domain.Note, error)
	CreateNote(ctx context.Context, input note.CreateNoteInput) (*domain.Note, error)
	UpdateNote(ctx context.Context, input note.UpdateNoteInput) (*domain.Note, error)
	ToggleArchive(ctx context.Context, id uuid.UUID) (*domain.Note, error)
	DeleteNote(ctx context.Context, id uuid.UUID) error
}

// NoteHandler serves note REST endpoints.
type NoteHandler struct {
	svc noteService
	log *slog.Logger
}

// NewNoteHandler creates a NoteHandler.
func NewNoteHandler(svc noteService, logger *slog.Logger) *NoteHandler {
	return &NoteHandler{svc: svc, log: logger.With("handler", "notes")}
}

type createNoteRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Archived bool   `json:"archived"`
}

type updateNoteRequest struct {
	Title    *string `json:"title,omitempty"`
	Content  *string `json:"content,omitempty"`
	Archived *bool   `json:"archived,omitempty"`
}

type noteResponse struct {
	ID         string             `json:"id"`
	Title      string             `json:"title"`
	Content    string             `json:"content"`
	Archived   bool               `json:"archived"`
	CreatedBy  *string            `json:"createdBy,omitempty"`
	CreatedAt  time.Time          `json:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt"`
	Categories []categoryResponse `json:"categories,omitempty"`
}

// List handles GET /api/notes.
// Query parameters: archived, search, categoryId, includeCategories.
// categoryId takes precedence over search; search over includeCategories.
func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	archived := q.Get("archived") == "true"

	if raw := q.Get("categoryId"); raw != "" {
		categoryID, err := uuid.Parse(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid category id")
			return
		}
		notes, err := h.svc.ListNotesByCategory(r.Context(), categoryID, archived)
		if err != nil {
			h.handleError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toNoteResponses(notes))
		return
	}

	if search := q.Get("search"); search != "" {
		notes, err := h.svc.SearchNotes(r.Context(), search, archived)
		if err != nil {
			h.handleError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toNoteResponses(notes))
		return
	}

	if q.Get("includeCategories") == "true" {
		notes, err := h.svc.ListNotesWithCategories(r.Context(), archived)
		if err != nil {
			h.handleError(w, r, err)
			return
		}
		out := make([]noteResponse, 0, len(notes))
		for _, n := range notes {
			resp := toNoteResponse(&n.Note)
			resp.Categories = toCategoryResponses(n.Categories)
			out = append(out, resp)
		}
		writeJSON(w, http.StatusOK, out)
		return
	}

	notes, err := h.svc.ListNotes(r.Context(), archived)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toNoteResponses(notes))
}

// Get handles GET /api/notes/{id}.
func (h *NoteHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid note id")
		return
	}

	n, err := h.svc.GetNote(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toNoteResponse(n))
}

// Create handles POST /api/notes.
func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	n, err := h.svc.CreateNote(r.Context(), note.CreateNoteInput{
		Title:    req.Title,
		Content:  req.Content,
		Archived: req.Archived,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toNoteResponse(n))
}

// Update handles PUT /api/notes/{id}. All body fields are optional but
// at least one must be present.
func (h *NoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid note id")
		return
	}

	var req updateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	n, err := h.svc.UpdateNote(r.Context(), note.UpdateNoteInput{
		NoteID:   id,
		Title:    req.Title,
		Content:  req.Content,
		Archived: req.Archived,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toNoteResponse(n))
}

// ToggleArchive handles PATCH /api/notes/{id}/archive.
func (h *NoteHandler) ToggleArchive(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid note id")
		return
	}

	n, err := h.svc.ToggleArchive(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toNoteResponse(n))
}

// Delete handles DELETE /api/notes/{id}.
func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid note id")
		return
	}

	if err := h.svc.DeleteNote(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *NoteHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	handleError(h.log, w, r, err)
}

func toNoteResponse(n *domain.Note) noteResponse {
	resp := noteResponse{
		ID:        n.ID.String(),
		Title:     n.Title,
		Content:   n.Content,
		Archived:  n.Archived,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
	if n.CreatedBy != nil {
		s := n.CreatedBy.String()
		resp.CreatedBy = &s
	}
	return resp
}

func toNoteResponses(notes []domain.Note) []noteResponse {
	out := make([]noteResponse, 0, len(notes))
	for i := range notes {
		out = append(out, toNoteResponse(&notes[i]))
	}
	return out
}
