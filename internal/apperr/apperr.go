// Package apperr holds error types shared across features.
package apperr

import (
	"errors"
	"fmt"
)

// ErrStoreUnavailable marks any underlying persistence failure. The boundary
// maps it to a server-error response; nothing retries it internally.
var ErrStoreUnavailable = errors.New("store unavailable")

// Store wraps a driver error so callers can match it with
// errors.Is(err, ErrStoreUnavailable).
func Store(err error) error {
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}

// ValidationError reports malformed or missing input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Reason
}

func Validation(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
