package note

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/xampe11/notes-app/internal/domain"
)

// CreateNoteInput holds the parameters for creating a note.
type CreateNoteInput struct {
	Title    string
	Content  string
	Archived bool
}

// Validate checks all fields and collects all errors.
func (i CreateNoteInput) Validate() error {
	var errs []domain.FieldError

	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	// Limits count characters, not bytes, matching the char_length CHECK.
	if utf8.RuneCountInString(title) > domain.MaxNoteTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 100 characters"})
	}

	if strings.TrimSpace(i.Content) == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateNoteInput holds the parameters for a partial note update.
// A nil field keeps the current value.
type UpdateNoteInput struct {
	NoteID   uuid.UUID
	Title    *string
	Content  *string
	Archived *bool
}

// Validate checks all fields and collects all errors.
func (i UpdateNoteInput) Validate() error {
	var errs []domain.FieldError

	if i.NoteID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "note_id", Message: "required"})
	}
	if i.Title == nil && i.Content == nil && i.Archived == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Title != nil {
		title := strings.TrimSpace(*i.Title)
		if title == "" {
			errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
		}
		if utf8.RuneCountInString(title) > domain.MaxNoteTitleLen {
			errs = append(errs, domain.FieldError{Field: "title", Message: "max 100 characters"})
		}
	}
	if i.Content != nil && strings.TrimSpace(*i.Content) == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
