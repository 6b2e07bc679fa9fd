package api

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/mnchnn43/cpp-helper/internal/api/shared"
	"github.com/mnchnn43/cpp-helper/internal/service"
)

// maxImportBytes caps the accepted import snapshot size.
const maxImportBytes = 4 << 20

// MistakeHandler handles mistake collection HTTP requests.
type MistakeHandler struct {
	mistakeService service.MistakeService

	// now is injectable so export filename tests are deterministic
	now func() time.Time
}

// NewMistakeHandler creates a new MistakeHandler
func NewMistakeHandler(mistakeService service.MistakeService) *MistakeHandler {
	return &MistakeHandler{
		mistakeService: mistakeService,
		now:            time.Now,
	}
}

// ListMistakes handles GET /api/mistakes requests
func (h *MistakeHandler) ListMistakes(w http.ResponseWriter, r *http.Request) {
	records, err := h.mistakeService.List(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, records)
}

// RemoveMistake handles DELETE /api/mistakes/{id} requests
func (h *MistakeHandler) RemoveMistake(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Missing mistake ID")
		return
	}

	if err := h.mistakeService.Remove(r.Context(), id); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ExportMistakes handles GET /api/mistakes/export requests. The response is a
// JSON attachment whose filename embeds the export date.
func (h *MistakeHandler) ExportMistakes(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.mistakeService.Export(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	filename := service.ExportFilename(h.now())
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(snapshot); err != nil {
		// Response already committed, nothing more to send
		return
	}
}

// ImportMistakes handles POST /api/mistakes/import requests. The body is the
// raw snapshot previously produced by export; it replaces the whole collection.
func (h *MistakeHandler) ImportMistakes(w http.ResponseWriter, r *http.Request) {
	snapshot, err := io.ReadAll(io.LimitReader(r.Body, maxImportBytes))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Failed to read request body")
		return
	}

	if err := h.mistakeService.Import(r.Context(), snapshot); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
