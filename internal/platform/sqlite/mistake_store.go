package sqlite

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"

	"github.com/mnchnn43/cpp-helper/internal/domain"
	"github.com/mnchnn43/cpp-helper/internal/store"
)

// MistakeStore implements store.MistakeStore on the shared SQLite DB.
type MistakeStore struct {
	db     *DB
	logger *slog.Logger
}

// compile-time interface check
var _ store.MistakeStore = (*MistakeStore)(nil)

// NewMistakeStore creates a MistakeStore backed by db.
func NewMistakeStore(db *DB, logger *slog.Logger) *MistakeStore {
	if logger == nil {
		logger = slog.Default()
	}

	return &MistakeStore{
		db:     db,
		logger: logger.With(slog.String("component", "mistake_store")),
	}
}

// load reads and decodes the collection. Absence yields an empty slice.
func (s *MistakeStore) load(ctx context.Context) ([]domain.MistakeRecord, error) {
	value, ok, err := s.db.get(ctx, mistakesKey)
	if err != nil {
		return nil, store.NewStoreError("mistakes", "load", err)
	}
	if !ok {
		return []domain.MistakeRecord{}, nil
	}

	var records []domain.MistakeRecord
	if err := json.Unmarshal([]byte(value), &records); err != nil {
		return nil, store.NewStoreError("mistakes", "load", store.ErrCorruptData)
	}
	if records == nil {
		records = []domain.MistakeRecord{}
	}

	return records, nil
}

// persist writes the full collection back to storage.
func (s *MistakeStore) persist(ctx context.Context, records []domain.MistakeRecord) error {
	encoded, err := json.Marshal(records)
	if err != nil {
		return store.NewStoreError("mistakes", "persist", err)
	}

	if err := s.db.put(ctx, mistakesKey, string(encoded)); err != nil {
		return store.NewStoreError("mistakes", "persist", err)
	}

	return nil
}

// Add prepends the record so the collection stays newest-first, then
// persists the full collection.
func (s *MistakeStore) Add(ctx context.Context, record *domain.MistakeRecord) error {
	if err := record.Validate(); err != nil {
		return store.NewStoreError("mistakes", "add", err)
	}

	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	records, err := s.load(ctx)
	if err != nil {
		return err
	}

	records = append([]domain.MistakeRecord{*record}, records...)
	if err := s.persist(ctx, records); err != nil {
		return err
	}

	s.logger.Debug("mistake recorded", "id", record.ID, "total", len(records))
	return nil
}

// Remove filters the ID out of the collection and persists the result.
// A missing ID is not an error.
func (s *MistakeStore) Remove(ctx context.Context, id string) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	records, err := s.load(ctx)
	if err != nil {
		return err
	}

	kept := records[:0]
	for _, rec := range records {
		if rec.ID != id {
			kept = append(kept, rec)
		}
	}

	if err := s.persist(ctx, kept); err != nil {
		return err
	}

	s.logger.Debug("mistake removed", "id", id, "total", len(kept))
	return nil
}

// List returns the collection, newest first.
func (s *MistakeStore) List(ctx context.Context) ([]domain.MistakeRecord, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	return s.load(ctx)
}

// Export serializes the full collection to a pretty-printed JSON array.
func (s *MistakeStore) Export(ctx context.Context) ([]byte, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	records, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	encoded, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, store.NewStoreError("mistakes", "export", err)
	}

	return encoded, nil
}

// Import replaces the entire collection with the snapshot. Any snapshot
// whose top-level shape is not a JSON array is rejected wholesale; there
// is no per-record validation.
func (s *MistakeStore) Import(ctx context.Context, snapshot []byte) error {
	dec := json.NewDecoder(bytes.NewReader(snapshot))
	tok, err := dec.Token()
	if err != nil || tok != json.Delim('[') {
		return store.ErrInvalidImportFormat
	}

	var records []domain.MistakeRecord
	if err := json.Unmarshal(snapshot, &records); err != nil {
		return store.ErrInvalidImportFormat
	}
	if records == nil {
		records = []domain.MistakeRecord{}
	}

	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if err := s.persist(ctx, records); err != nil {
		return err
	}

	s.logger.Info("mistake collection imported", "total", len(records))
	return nil
}
