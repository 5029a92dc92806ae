package category

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/xampe11/notes-app/internal/domain"
)

// CreateCategoryInput holds the parameters for creating a category.
type CreateCategoryInput struct {
	Name string
}

// Validate checks all fields and collects all errors.
func (i CreateCategoryInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	// Limits count characters, not bytes, matching the char_length CHECK.
	if utf8.RuneCountInString(name) > domain.MaxCategoryNameLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 50 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// TagInput holds the parameters for linking or unlinking a note and a
// category.
type TagInput struct {
	NoteID     uuid.UUID
	CategoryID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i TagInput) Validate() error {
	var errs []domain.FieldError
	if i.NoteID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "note_id", Message: "required"})
	}
	if i.CategoryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "category_id", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
