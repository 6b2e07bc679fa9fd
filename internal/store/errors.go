package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrInvalidImportFormat is returned when an import snapshot does not
	// decode to a sequence of mistake records. The snapshot is rejected
	// wholesale and the existing collection is left untouched.
	ErrInvalidImportFormat = errors.New("import snapshot is not a mistake collection")

	// ErrCorruptData is returned when a persisted value cannot be decoded.
	ErrCorruptData = errors.New("persisted data is corrupt")
)

// StoreError wraps store failures with the entity and operation for context.
type StoreError struct {
	Entity    string // the entity type (e.g. "mistakes", "settings")
	Operation string // the operation that failed (e.g. "add", "load")
	Err       error  // original error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	return fmt.Sprintf("%s operation on %s failed: %v", e.Operation, e.Entity, e.Err)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError.
func NewStoreError(entity, operation string, err error) *StoreError {
	return &StoreError{
		Entity:    entity,
		Operation: operation,
		Err:       err,
	}
}
