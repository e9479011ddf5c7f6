package storage

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when an id has no matching record. HTTP handlers
// map it to 404.
var ErrNotFound = errors.New("record not found")

// ValidationError reports a missing or malformed field at the store or
// service boundary. HTTP handlers map it to 400.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// NewValidationError builds a ValidationError for the given field.
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
