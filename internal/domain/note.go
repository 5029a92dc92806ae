package domain

import (
	"time"

	"github.com/google/uuid"
)

// Limits for note fields, enforced at the service layer and by
// CHECK constraints in the schema.
const (
	MaxNoteTitleLen = 100
)

// Note is a user-authored text record. Archived notes are excluded from
// default listings. CreatedBy records the authenticated creator but is
// never used for authorization (any authenticated user may mutate any
// note — see DESIGN.md).
type Note struct {
	ID        uuid.UUID
	Title     string
	Content   string
	Archived  bool
	CreatedBy *uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NoteWithCategories is a note joined with its linked categories.
type NoteWithCategories struct {
	Note
	Categories []Category
}

// NoteUpdateParams carries partial-update fields for a note.
// A nil field means "keep the current value".
type NoteUpdateParams struct {
	Title    *string
	Content  *string
	Archived *bool
}
