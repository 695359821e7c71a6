package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrUserNotFound = fmt.Errorf("user %w", ErrNotFound)
	ErrBlogNotFound = fmt.Errorf("blog %w", ErrNotFound)

	ErrConflict      = errors.New("conflict")
	ErrUsernameTaken = fmt.Errorf("%w: username already registered", ErrConflict)
	ErrEmailTaken    = fmt.Errorf("%w: email already registered", ErrConflict)

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInactiveUser       = errors.New("inactive user")
	ErrInvalidToken       = errors.New("invalid token")

	ErrValidation = errors.New("validation error")
	ErrInternal   = errors.New("internal server error")
)

// NewValidationError wraps err so that errors.Is(result, ErrValidation) holds
// while keeping the field level message.
func NewValidationError(err error) error {
	return fmt.Errorf("%w: %s", ErrValidation, err.Error())
}
