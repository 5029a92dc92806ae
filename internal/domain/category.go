package domain

import "github.com/google/uuid"

// MaxCategoryNameLen limits category names, mirrored by a CHECK constraint.
const MaxCategoryNameLen = 50

// Category is a named tag applicable to multiple notes. Names are globally
// unique, exactly as stored (no case normalization).
type Category struct {
	ID   uuid.UUID
	Name string
}
