package auth

import "github.com/xampe11/notes-app/internal/domain"

// LoginResult is a successful login: the user record plus a signed,
// time-limited bearer token.
type LoginResult struct {
	Token string
	User  *domain.User
}
