package auth

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/xampe11/notes-app/internal/domain"
)

// RegisterInput holds the parameters for creating a user.
type RegisterInput struct {
	Username string
	Password string
	Email    *string
	Name     *string
}

// Validate checks all fields and collects all errors.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	username := strings.TrimSpace(i.Username)
	switch {
	case username == "":
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	case strings.IndexFunc(username, unicode.IsSpace) >= 0:
		errs = append(errs, domain.FieldError{Field: "username", Message: "must not contain whitespace"})
	case utf8.RuneCountInString(username) > 50:
		errs = append(errs, domain.FieldError{Field: "username", Message: "max 50 characters"})
	}

	if utf8.RuneCountInString(i.Password) < 8 {
		errs = append(errs, domain.FieldError{Field: "password", Message: "min 8 characters"})
	}

	if i.Email != nil && !strings.Contains(*i.Email, "@") {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid format"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginInput holds the parameters for credential validation.
type LoginInput struct {
	Username string
	Password string
}

// Validate checks all fields and collects all errors.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Username) == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
