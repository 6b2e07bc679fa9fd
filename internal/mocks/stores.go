package mocks

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/mnchnn43/cpp-helper/internal/domain"
	"github.com/mnchnn43/cpp-helper/internal/store"
)

// MemoryMistakeStore is an in-memory store.MistakeStore. It mirrors the
// SQLite implementation's semantics (newest-first, wholesale import) so
// service tests don't need a database file.
type MemoryMistakeStore struct {
	mu      sync.Mutex
	Records []domain.MistakeRecord

	// AddErr, when set, is returned by Add to simulate persistence failure.
	AddErr error
}

var _ store.MistakeStore = (*MemoryMistakeStore)(nil)

func (s *MemoryMistakeStore) Add(ctx context.Context, record *domain.MistakeRecord) error {
	if s.AddErr != nil {
		return s.AddErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.Records = append([]domain.MistakeRecord{*record}, s.Records...)
	return nil
}

func (s *MemoryMistakeStore) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.Records[:0]
	for _, rec := range s.Records {
		if rec.ID != id {
			kept = append(kept, rec)
		}
	}
	s.Records = kept
	return nil
}

func (s *MemoryMistakeStore) List(ctx context.Context) ([]domain.MistakeRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.MistakeRecord, len(s.Records))
	copy(out, s.Records)
	return out, nil
}

func (s *MemoryMistakeStore) Export(ctx context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := s.Records
	if records == nil {
		records = []domain.MistakeRecord{}
	}
	return json.MarshalIndent(records, "", "  ")
}

func (s *MemoryMistakeStore) Import(ctx context.Context, snapshot []byte) error {
	var records []domain.MistakeRecord
	if err := json.Unmarshal(snapshot, &records); err != nil || records == nil {
		// nil records means the snapshot was JSON null, not an array
		return store.ErrInvalidImportFormat
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.Records = records
	return nil
}

// MemorySettingsStore is an in-memory store.SettingsStore.
type MemorySettingsStore struct {
	mu       sync.Mutex
	Settings domain.Settings

	// GetErr and SaveErr, when set, simulate storage failures.
	GetErr  error
	SaveErr error
}

var _ store.SettingsStore = (*MemorySettingsStore)(nil)

func (s *MemorySettingsStore) Get(ctx context.Context) (*domain.Settings, error) {
	if s.GetErr != nil {
		return nil, s.GetErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	settings := s.Settings
	return &settings, nil
}

func (s *MemorySettingsStore) Save(ctx context.Context, settings *domain.Settings) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.Settings = *settings
	return nil
}
