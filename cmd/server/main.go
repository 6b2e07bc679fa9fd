// Package main implements the entry point for the C++ quiz helper server,
// which generates C++ practice questions through the Gemini API, grades
// free-text answers, and keeps a reviewable collection of past mistakes.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/mnchnn43/cpp-helper/internal/config"
	"github.com/mnchnn43/cpp-helper/internal/platform/logger"
)

func main() {
	ctx := context.Background()

	cfg, appLogger, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	app, err := newApplication(cfg, appLogger)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration and sets up logging.
func initializeApp() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"storage_path", cfg.Storage.Path,
		"model", cfg.LLM.ModelName)

	if cfg.LLM.GeminiAPIKey != "" {
		appLogger.Debug("Server-wide Gemini key configured", "key_present", true)
	}

	return cfg, appLogger, nil
}
