// Package tablegen holds the runtime types shared by code that tablegen generates.
package tablegen

import (
	"errors"
	"fmt"
)

// Standard sentinel errors for common operations.
var (
	// ErrNotFound is returned when a requested row does not exist.
	ErrNotFound = errors.New("tablegen: row not found")
)

// NotFoundError represents an error when a row is not found.
type NotFoundError struct {
	label string
	key   []any // Optional: the key values that were searched for
}

// Error returns the error string.
func (e *NotFoundError) Error() string {
	if len(e.key) > 0 {
		return fmt.Sprintf("tablegen: %s not found (key=%v)", e.label, e.key)
	}
	return fmt.Sprintf("tablegen: %s not found", e.label)
}

// Is reports whether the target error matches NotFoundError.
// This allows errors.Is(notFoundErr, ErrNotFound) to return true.
func (e *NotFoundError) Is(err error) bool {
	return err == ErrNotFound
}

// Label returns the entity label.
func (e *NotFoundError) Label() string {
	return e.label
}

// Key returns the key values that were searched for, if available.
func (e *NotFoundError) Key() []any {
	return e.key
}

// NewNotFoundError returns a new NotFoundError for the given entity type.
func NewNotFoundError(label string) *NotFoundError {
	return &NotFoundError{label: label}
}

// NewNotFoundErrorWithKey returns a new NotFoundError with the key values that were searched for.
func NewNotFoundErrorWithKey(label string, key ...any) *NotFoundError {
	return &NotFoundError{label: label, key: key}
}

// IsNotFound returns true if the error is a NotFoundError.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	var e *NotFoundError
	return errors.As(err, &e) || errors.Is(err, ErrNotFound)
}
