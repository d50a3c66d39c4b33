package domain

import (
	"errors"
	"fmt"
)

// Error kinds surfaced by the services. Callers classify with errors.Is.
var (
	ErrValidation         = errors.New("validation failed")
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrQuotaExceeded      = errors.New("quota exceeded")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrUpstream           = errors.New("upstream failure")
)

// NewValidationError returns an error that matches ErrValidation.
func NewValidationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// NewNotFoundError returns an error that matches ErrNotFound.
func NewNotFoundError(what string) error {
	return fmt.Errorf("%s %w", what, ErrNotFound)
}
