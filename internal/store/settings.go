package store

import (
	"context"

	"github.com/mnchnn43/cpp-helper/internal/domain"
)

// SettingsStore persists the user's credential and display settings.
type SettingsStore interface {
	// Get returns the persisted settings. Absence is valid initial state
	// and yields zero-value settings, not an error.
	Get(ctx context.Context) (*domain.Settings, error)

	// Save persists the settings, replacing any previous value.
	Save(ctx context.Context, settings *domain.Settings) error
}
