package api

import (
	"net/http"

	"github.com/mnchnn43/cpp-helper/internal/api/shared"
	"github.com/mnchnn43/cpp-helper/internal/domain"
	"github.com/mnchnn43/cpp-helper/internal/service"
)

// SettingsHandler handles settings HTTP requests.
type SettingsHandler struct {
	settingsService service.SettingsService
}

// NewSettingsHandler creates a new SettingsHandler
func NewSettingsHandler(settingsService service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// GetSettings handles GET /api/settings requests. The stored key comes back
// masked.
func (h *SettingsHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settingsService.Get(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, settingsToResponse(settings))
}

// UpdateSettings handles PUT /api/settings requests. A changed key must pass
// upstream validation before anything is persisted.
func (h *SettingsHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req UpdateSettingsRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	settings := &domain.Settings{
		APIKey:      req.APIKey,
		DisplayName: req.DisplayName,
	}

	if err := h.settingsService.Save(r.Context(), settings); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, settingsToResponse(settings))
}

// ValidateKey handles POST /api/settings/validate requests. A rejected key is
// a normal outcome, reported as valid:false rather than an error status.
func (h *SettingsHandler) ValidateKey(w http.ResponseWriter, r *http.Request) {
	var req ValidateKeyRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	if err := h.settingsService.ValidateKey(r.Context(), req.APIKey); err != nil {
		shared.RespondWithJSON(w, r, http.StatusOK, ValidateKeyResponse{
			Valid:   false,
			Message: GetSafeErrorMessage(err),
		})
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ValidateKeyResponse{Valid: true})
}
