package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/xampe11/notes-app/internal/domain"
	"github.com/xampe11/notes-app/internal/service/category"
)

// categoryService defines the minimal interface needed by CategoryHandler.
type categoryService interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	CreateCategory(ctx context.Context, input category.CreateCategoryInput) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
	ListNoteCategories(ctx context.Context, noteID uuid.UUID) ([]domain.Category, error)
	AddCategoryToNote(ctx context.Context, input category.TagInput) error
	RemoveCategoryFromNote(ctx context.Context, input category.TagInput) error
}

// CategoryHandler serves category REST endpoints.
type CategoryHandler struct {
	svc categoryService
	log *slog.Logger
}

// NewCategoryHandler creates a CategoryHandler.
func NewCategoryHandler(svc categoryService, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{svc: svc, log: logger.With("handler", "categories")}
}

type createCategoryRequest struct {
	Name string `json:"name"`
}

type categoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// List handles GET /api/categories.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.ListCategories(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCategoryResponses(categories))
}

// Create handles POST /api/categories.
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c, err := h.svc.CreateCategory(r.Context(), category.CreateCategoryInput{Name: req.Name})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			writeError(w, http.StatusBadRequest,
				fmt.Sprintf("category %q already exists", strings.TrimSpace(req.Name)))
			return
		}
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCategoryResponse(c))
}

// Delete handles DELETE /api/categories/{id}. Notes tagged with the
// category keep existing; only the links go away.
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid category id")
		return
	}

	if err := h.svc.DeleteCategory(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// ListForNote handles GET /api/notes/{id}/categories.
func (h *CategoryHandler) ListForNote(w http.ResponseWriter, r *http.Request) {
	noteID, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid note id")
		return
	}

	categories, err := h.svc.ListNoteCategories(r.Context(), noteID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCategoryResponses(categories))
}

// AddToNote handles POST /api/notes/{id}/categories/{categoryId}.
// Adding an already-linked category succeeds silently.
func (h *CategoryHandler) AddToNote(w http.ResponseWriter, r *http.Request) {
	input, ok := h.tagInput(w, r)
	if !ok {
		return
	}

	if err := h.svc.AddCategoryToNote(r.Context(), input); err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]bool{"success": true})
}

// RemoveFromNote handles DELETE /api/notes/{id}/categories/{categoryId}.
func (h *CategoryHandler) RemoveFromNote(w http.ResponseWriter, r *http.Request) {
	input, ok := h.tagInput(w, r)
	if !ok {
		return
	}

	if err := h.svc.RemoveCategoryFromNote(r.Context(), input); err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *CategoryHandler) tagInput(w http.ResponseWriter, r *http.Request) (category.TagInput, bool) {
	noteID, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid note id")
		return category.TagInput{}, false
	}

	categoryID, err := parseIDParam(r, "categoryId")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid category id")
		return category.TagInput{}, false
	}

	return category.TagInput{NoteID: noteID, CategoryID: categoryID}, true
}

func (h *CategoryHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	handleError(h.log, w, r, err)
}

func toCategoryResponse(c *domain.Category) categoryResponse {
	return categoryResponse{ID: c.ID.String(), Name: c.Name}
}

func toCategoryResponses(categories []domain.Category) []categoryResponse {
	out := make([]categoryResponse, 0, len(categories))
	for i := range categories {
		out = append(out, toCategoryResponse(&categories[i]))
	}
	return out
}
