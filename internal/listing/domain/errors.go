package domain

import (
	"errors"
	"fmt"
)

var (
	ErrListingNotFound  = errors.New("listing not found")
	ErrFavoriteNotFound = errors.New("favorite not found")
	ErrFavoriteExists   = errors.New("listing already in favorites")
	ErrForbidden        = errors.New("not authorized to perform this action")
	ErrUnauthorized     = errors.New("authentication required")
)

// ValidationError reports a single invalid or missing input field.
type ValidationError struct {
	Field   string
	Message string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
