package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered account. PasswordHash is the bcrypt hash of the
// user's password and must never leave the server.
type User struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
	Email        *string
	Name         *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
