package service

import (
	"context"
	"log/slog"

	"github.com/mnchnn43/cpp-helper/internal/domain"
	"github.com/mnchnn43/cpp-helper/internal/quiz"
	"github.com/mnchnn43/cpp-helper/internal/store"
)

// SettingsService manages the persisted credential and display settings.
// Saving is gated: a changed API key is persisted only after it passes
// validation against the remote service.
type SettingsService interface {
	// Get returns the current settings.
	Get(ctx context.Context) (*domain.Settings, error)

	// ValidateKey checks a key against the remote service without
	// persisting anything. Fail-fast: never retried.
	ValidateKey(ctx context.Context, apiKey string) error

	// Save persists the settings. When the API key differs from the
	// stored one it is validated first; validation failure blocks the
	// save entirely.
	Save(ctx context.Context, settings *domain.Settings) error
}

// settingsServiceImpl implements the SettingsService interface.
type settingsServiceImpl struct {
	generator quiz.Generator
	settings  store.SettingsStore
	logger    *slog.Logger
}

// NewSettingsService creates a SettingsService.
func NewSettingsService(
	generator quiz.Generator,
	settings store.SettingsStore,
	logger *slog.Logger,
) (SettingsService, error) {
	if generator == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "generator cannot be nil"}
	}
	if settings == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "settings store cannot be nil"}
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &settingsServiceImpl{
		generator: generator,
		settings:  settings,
		logger:    logger.With(slog.String("component", "settings_service")),
	}, nil
}

func (s *settingsServiceImpl) Get(ctx context.Context) (*domain.Settings, error) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, &ServiceError{Operation: "get_settings", Message: "failed to load settings", Err: err}
	}
	return settings, nil
}

func (s *settingsServiceImpl) ValidateKey(ctx context.Context, apiKey string) error {
	return s.generator.ValidateKey(ctx, apiKey)
}

func (s *settingsServiceImpl) Save(ctx context.Context, settings *domain.Settings) error {
	if settings.APIKey == "" {
		return quiz.ErrMissingAPIKey
	}

	current, err := s.settings.Get(ctx)
	if err != nil {
		return &ServiceError{Operation: "save_settings", Message: "failed to load current settings", Err: err}
	}

	// An unchanged key was already validated when it was first saved;
	// only a new key needs the round trip.
	if settings.APIKey != current.APIKey {
		if err := s.generator.ValidateKey(ctx, settings.APIKey); err != nil {
			s.logger.Warn("refusing to save settings with unvalidated key", "error", err)
			return err
		}
	}

	if err := s.settings.Save(ctx, settings); err != nil {
		return &ServiceError{Operation: "save_settings", Message: "failed to persist settings", Err: err}
	}

	s.logger.Info("settings saved", "display_name", settings.DisplayName)
	return nil
}
