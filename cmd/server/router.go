package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/mnchnn43/cpp-helper/internal/api"
	apiMiddleware "github.com/mnchnn43/cpp-helper/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	// Create API handlers using the application's services
	questionHandler := api.NewQuestionHandler(app.quizService)
	mistakeHandler := api.NewMistakeHandler(app.mistakeService)
	settingsHandler := api.NewSettingsHandler(app.settingsService)

	// Register routes
	r.Route("/api", func(r chi.Router) {
		r.Post("/questions", questionHandler.GenerateQuestion)
		r.Post("/answers", questionHandler.SubmitAnswer)

		r.Get("/mistakes", mistakeHandler.ListMistakes)
		r.Get("/mistakes/export", mistakeHandler.ExportMistakes)
		r.Post("/mistakes/import", mistakeHandler.ImportMistakes)
		r.Delete("/mistakes/{id}", mistakeHandler.RemoveMistake)

		r.Get("/settings", settingsHandler.GetSettings)
		r.Put("/settings", settingsHandler.UpdateSettings)
		r.Post("/settings/validate", settingsHandler.ValidateKey)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
