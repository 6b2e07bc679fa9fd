package api

import (
	"strings"

	"github.com/mnchnn43/cpp-helper/internal/domain"
)

// Common request/response structures

// GenerateQuestionRequest defines the payload for the question generation
// endpoint. Topics restricts the random topic choice; empty means the full
// catalog.
type GenerateQuestionRequest struct {
	Topics []string `json:"topics" validate:"omitempty,dive,min=1"`
}

// AnswerRequest defines the payload for grading an answer. The client echoes
// back the full question it was asked, since the server keeps no per-session
// question state.
type AnswerRequest struct {
	Question *domain.Question `json:"question" validate:"required"`
	Answer   string           `json:"answer"   validate:"required,min=1"`
}

// SettingsResponse defines the settings returned to clients. The API key is
// masked so it never travels back in full.
type SettingsResponse struct {
	APIKey      string `json:"api_key"`
	DisplayName string `json:"display_name"`
}

// UpdateSettingsRequest defines the payload for replacing settings.
type UpdateSettingsRequest struct {
	APIKey      string `json:"api_key"      validate:"required,min=1"`
	DisplayName string `json:"display_name" validate:"omitempty,max=100"`
}

// ValidateKeyRequest defines the payload for a standalone key check.
type ValidateKeyRequest struct {
	APIKey string `json:"api_key" validate:"required,min=1"`
}

// ValidateKeyResponse reports whether a key was accepted by the upstream API.
type ValidateKeyResponse struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

// maskAPIKey hides all but the last four characters of a key.
func maskAPIKey(key string) string {
	if key == "" {
		return ""
	}
	if len(key) <= 4 {
		return strings.Repeat("*", len(key))
	}
	return strings.Repeat("*", len(key)-4) + key[len(key)-4:]
}

func settingsToResponse(settings *domain.Settings) SettingsResponse {
	return SettingsResponse{
		APIKey:      maskAPIKey(settings.APIKey),
		DisplayName: settings.DisplayName,
	}
}
