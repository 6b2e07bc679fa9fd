package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/mnchnn43/cpp-helper/internal/quiz"
	"github.com/mnchnn43/cpp-helper/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Client-side problems: missing or malformed input
	case errors.Is(err, quiz.ErrMissingAPIKey),
		errors.Is(err, quiz.ErrInvalidAPIKeyFormat),
		errors.Is(err, quiz.ErrKeyRejected),
		errors.Is(err, store.ErrInvalidImportFormat):
		return http.StatusBadRequest

	// Upstream returned something unusable
	case errors.Is(err, quiz.ErrEmptyResponse),
		errors.Is(err, quiz.ErrMalformedResponse),
		errors.Is(err, quiz.ErrContentBlocked):
		return http.StatusBadGateway

	// Retries exhausted against an overloaded upstream
	case errors.Is(err, quiz.ErrTransientFailure):
		return http.StatusServiceUnavailable

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, quiz.ErrMissingAPIKey):
		return "Gemini API key is not configured"

	case errors.Is(err, quiz.ErrInvalidAPIKeyFormat):
		return "API key format is invalid"

	case errors.Is(err, quiz.ErrKeyRejected):
		return "API key was rejected by the Gemini API"

	case errors.Is(err, store.ErrInvalidImportFormat):
		return "Import data must be a JSON array of mistake records"

	case errors.Is(err, quiz.ErrContentBlocked):
		return "The model declined to answer; please try again"

	case errors.Is(err, quiz.ErrEmptyResponse),
		errors.Is(err, quiz.ErrMalformedResponse):
		return "The model returned an unusable response; please try again"

	case errors.Is(err, quiz.ErrTransientFailure):
		return "The Gemini API is overloaded; please try again later"

	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError removes sensitive details from validation errors
// and returns a user-friendly message.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	if strings.Contains(errMsg, "Field validation") {
		// Example format: "Key: 'AnswerRequest.Answer' Error:Field validation
		// for 'Answer' failed on the 'required' tag"
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				return "Invalid " + field
			}
		}
	}

	return "Validation error"
}
