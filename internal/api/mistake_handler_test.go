package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/mnchnn43/cpp-helper/internal/domain"
	"github.com/mnchnn43/cpp-helper/internal/mocks"
	"github.com/mnchnn43/cpp-helper/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListMistakes(t *testing.T) {
	t.Parallel()

	record, err := domain.NewMistakeRecord(*mocks.SampleQuestion(), "wrong", "feedback", time.UnixMilli(1000))
	require.NoError(t, err)

	svc := &mockMistakeService{
		ListFn: func(ctx context.Context) ([]domain.MistakeRecord, error) {
			return []domain.MistakeRecord{*record}, nil
		},
	}
	handler := NewMistakeHandler(svc)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/mistakes", nil)

	handler.ListMistakes(w, r)

	assert.Equal(t, http.StatusOK, w.Code)

	var records []domain.MistakeRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &records))
	require.Len(t, records, 1)
	assert.Equal(t, record.ID, records[0].ID)
}

func TestRemoveMistake(t *testing.T) {
	t.Parallel()

	var removedID string
	svc := &mockMistakeService{
		RemoveFn: func(ctx context.Context, id string) error {
			removedID = id
			return nil
		},
	}
	handler := NewMistakeHandler(svc)

	router := chi.NewRouter()
	router.Delete("/api/mistakes/{id}", handler.RemoveMistake)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodDelete, "/api/mistakes/1700000000000-abcd", nil)
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "1700000000000-abcd", removedID)
}

func TestExportMistakesSetsAttachmentFilename(t *testing.T) {
	t.Parallel()

	svc := &mockMistakeService{
		ExportFn: func(ctx context.Context) ([]byte, error) {
			return []byte(`[{"id":"x"}]`), nil
		},
	}
	handler := NewMistakeHandler(svc)
	handler.now = func() time.Time {
		return time.Date(2025, time.March, 7, 12, 0, 0, 0, time.UTC)
	}

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/mistakes/export", nil)

	handler.ExportMistakes(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Equal(t,
		`attachment; filename="cpp-quiz-mistakes-2025-03-07.json"`,
		w.Header().Get("Content-Disposition"))
	assert.Equal(t, `[{"id":"x"}]`, w.Body.String())
}

func TestImportMistakes(t *testing.T) {
	t.Parallel()

	var gotSnapshot []byte
	svc := &mockMistakeService{
		ImportFn: func(ctx context.Context, snapshot []byte) error {
			gotSnapshot = snapshot
			return nil
		},
	}
	handler := NewMistakeHandler(svc)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/mistakes/import", bytes.NewBufferString("[]"))

	handler.ImportMistakes(w, r)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "[]", string(gotSnapshot))
}

func TestImportMistakesRejectsInvalidFormat(t *testing.T) {
	t.Parallel()

	svc := &mockMistakeService{
		ImportFn: func(ctx context.Context, snapshot []byte) error {
			return store.ErrInvalidImportFormat
		},
	}
	handler := NewMistakeHandler(svc)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/mistakes/import", bytes.NewBufferString(`{"no":"array"}`))

	handler.ImportMistakes(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "JSON array")
}
