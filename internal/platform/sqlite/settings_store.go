package sqlite

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/mnchnn43/cpp-helper/internal/domain"
	"github.com/mnchnn43/cpp-helper/internal/store"
)

// SettingsStore implements store.SettingsStore on the shared SQLite DB.
type SettingsStore struct {
	db     *DB
	logger *slog.Logger
}

// compile-time interface check
var _ store.SettingsStore = (*SettingsStore)(nil)

// NewSettingsStore creates a SettingsStore backed by db.
func NewSettingsStore(db *DB, logger *slog.Logger) *SettingsStore {
	if logger == nil {
		logger = slog.Default()
	}

	return &SettingsStore{
		db:     db,
		logger: logger.With(slog.String("component", "settings_store")),
	}
}

// Get returns the persisted settings, or zero-value settings when none
// have been saved yet.
func (s *SettingsStore) Get(ctx context.Context) (*domain.Settings, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	value, ok, err := s.db.get(ctx, settingsKey)
	if err != nil {
		return nil, store.NewStoreError("settings", "get", err)
	}
	if !ok {
		return &domain.Settings{}, nil
	}

	var settings domain.Settings
	if err := json.Unmarshal([]byte(value), &settings); err != nil {
		return nil, store.NewStoreError("settings", "get", store.ErrCorruptData)
	}

	return &settings, nil
}

// Save persists the settings, replacing any previous value.
func (s *SettingsStore) Save(ctx context.Context, settings *domain.Settings) error {
	encoded, err := json.Marshal(settings)
	if err != nil {
		return store.NewStoreError("settings", "save", err)
	}

	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if err := s.db.put(ctx, settingsKey, string(encoded)); err != nil {
		return store.NewStoreError("settings", "save", err)
	}

	s.logger.Debug("settings saved", "display_name", settings.DisplayName)
	return nil
}
