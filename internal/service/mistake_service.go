package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mnchnn43/cpp-helper/internal/domain"
	"github.com/mnchnn43/cpp-helper/internal/store"
)

// MistakeService manages the persisted mistake collection.
type MistakeService interface {
	// List returns all mistake records, newest first.
	List(ctx context.Context) ([]domain.MistakeRecord, error)

	// Remove deletes a record by ID; absent IDs are a no-op.
	Remove(ctx context.Context, id string) error

	// Export returns the portable JSON snapshot of the collection.
	Export(ctx context.Context) ([]byte, error)

	// Import replaces the collection with the snapshot. Snapshots that do
	// not decode to an array fail with store.ErrInvalidImportFormat.
	Import(ctx context.Context, snapshot []byte) error
}

// ExportFilename returns the download filename for a snapshot taken at
// the given time, embedding the ISO calendar date.
func ExportFilename(now time.Time) string {
	return fmt.Sprintf("cpp-quiz-mistakes-%s.json", now.Format("2006-01-02"))
}

// mistakeServiceImpl implements the MistakeService interface.
type mistakeServiceImpl struct {
	mistakes store.MistakeStore
	logger   *slog.Logger
}

// NewMistakeService creates a MistakeService.
func NewMistakeService(mistakes store.MistakeStore, logger *slog.Logger) (MistakeService, error) {
	if mistakes == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "mistake store cannot be nil"}
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &mistakeServiceImpl{
		mistakes: mistakes,
		logger:   logger.With(slog.String("component", "mistake_service")),
	}, nil
}

func (s *mistakeServiceImpl) List(ctx context.Context) ([]domain.MistakeRecord, error) {
	records, err := s.mistakes.List(ctx)
	if err != nil {
		return nil, &ServiceError{Operation: "list_mistakes", Message: "failed to load collection", Err: err}
	}
	return records, nil
}

func (s *mistakeServiceImpl) Remove(ctx context.Context, id string) error {
	if err := s.mistakes.Remove(ctx, id); err != nil {
		return &ServiceError{Operation: "remove_mistake", Message: "failed to remove record", Err: err}
	}

	s.logger.Debug("mistake removed", "id", id)
	return nil
}

func (s *mistakeServiceImpl) Export(ctx context.Context) ([]byte, error) {
	snapshot, err := s.mistakes.Export(ctx)
	if err != nil {
		return nil, &ServiceError{Operation: "export_mistakes", Message: "failed to serialize collection", Err: err}
	}
	return snapshot, nil
}

func (s *mistakeServiceImpl) Import(ctx context.Context, snapshot []byte) error {
	err := s.mistakes.Import(ctx, snapshot)
	if err == nil {
		s.logger.Info("mistake collection replaced by import")
		return nil
	}

	// Invalid-format failures pass through for the API layer to classify.
	if errors.Is(err, store.ErrInvalidImportFormat) {
		return err
	}

	return &ServiceError{Operation: "import_mistakes", Message: "failed to replace collection", Err: err}
}
