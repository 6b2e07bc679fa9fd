package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mnchnn43/cpp-helper/internal/config"
	"github.com/mnchnn43/cpp-helper/internal/domain"
	"github.com/mnchnn43/cpp-helper/internal/platform/gemini"
	"github.com/mnchnn43/cpp-helper/internal/platform/sqlite"
	"github.com/mnchnn43/cpp-helper/internal/service"
	"github.com/mnchnn43/cpp-helper/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sqlite.DB

	// Stores (using interfaces for proper abstraction)
	mistakeStore  store.MistakeStore
	settingsStore store.SettingsStore

	// Service interfaces
	quizService     service.QuizService
	mistakeService  service.MistakeService
	settingsService service.SettingsService
}

// newApplication creates a new application instance with all dependencies
// initialized.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	db, err := sqlite.Open(cfg.Storage.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}
	app.db = db
	logger.Info("Storage opened", "path", cfg.Storage.Path)

	app.mistakeStore = sqlite.NewMistakeStore(db, logger)
	app.settingsStore = sqlite.NewSettingsStore(db, logger)

	generator, err := gemini.NewGenerator(
		logger.With("component", "llm_generator"),
		gemini.Config{
			ModelName:           cfg.LLM.ModelName,
			MaxRetries:          cfg.LLM.MaxRetries,
			InitialBackoff:      time.Duration(cfg.LLM.RetryInitialDelayMs) * time.Millisecond,
			GenerateTemperature: float32(cfg.LLM.GenerateTemperature),
			EvaluateTemperature: float32(cfg.LLM.EvaluateTemperature),
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini generator: %w", err)
	}

	if err := app.seedDefaultKey(context.Background()); err != nil {
		return nil, err
	}

	app.quizService, err = service.NewQuizService(
		generator, app.settingsStore, app.mistakeStore, nil, nil, logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create quiz service: %w", err)
	}

	app.mistakeService, err = service.NewMistakeService(app.mistakeStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create mistake service: %w", err)
	}

	app.settingsService, err = service.NewSettingsService(generator, app.settingsStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create settings service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// seedDefaultKey copies a server-wide Gemini key from configuration into the
// settings store when no key is stored yet. Stored settings always win.
func (app *application) seedDefaultKey(ctx context.Context) error {
	if app.config.LLM.GeminiAPIKey == "" {
		return nil
	}

	settings, err := app.settingsStore.Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to read stored settings: %w", err)
	}
	if settings.APIKey != "" {
		return nil
	}

	settings = &domain.Settings{
		APIKey:      app.config.LLM.GeminiAPIKey,
		DisplayName: settings.DisplayName,
	}
	if err := app.settingsStore.Save(ctx, settings); err != nil {
		return fmt.Errorf("failed to seed default key: %w", err)
	}

	app.logger.Info("Seeded Gemini key from configuration")
	return nil
}

// Run starts the application server, handling lifecycle and cleanup.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing storage", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
