package note

import "github.com/google/uuid"

// Filter defines parameters for listing notes.
type Filter struct {
	// Archived selects notes with the given archived flag.
	Archived bool

	// Search performs a case-insensitive substring match against title OR
	// content. nil or blank means no text filter (match all).
	Search *string

	// CategoryID restricts results to notes linked to the given category.
	CategoryID *uuid.UUID
}
