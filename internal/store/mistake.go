package store

import (
	"context"

	"github.com/mnchnn43/cpp-helper/internal/domain"
)

// MistakeStore maintains the persisted, newest-first collection of
// mistake records across sessions.
type MistakeStore interface {
	// Add prepends a record to the collection and persists it.
	Add(ctx context.Context, record *domain.MistakeRecord) error

	// Remove deletes the record with the given ID and persists the result.
	// It is a no-op when the ID is absent.
	Remove(ctx context.Context, id string) error

	// List returns the collection, newest first. An absent collection is
	// an empty slice, not an error.
	List(ctx context.Context) ([]domain.MistakeRecord, error)

	// Export serializes the full collection to a pretty-printed JSON array.
	Export(ctx context.Context) ([]byte, error)

	// Import replaces the entire collection with the decoded snapshot.
	// A snapshot that is not a JSON array fails with ErrInvalidImportFormat
	// and leaves the existing collection untouched.
	Import(ctx context.Context, snapshot []byte) error
}
