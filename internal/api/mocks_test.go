package api

import (
	"context"

	"github.com/mnchnn43/cpp-helper/internal/domain"
	"github.com/mnchnn43/cpp-helper/internal/mocks"
)

// mockQuizService implements service.QuizService with function fields.
type mockQuizService struct {
	GenerateQuestionFn func(ctx context.Context, topics []string) (*domain.Question, error)
	SubmitAnswerFn     func(ctx context.Context, question *domain.Question, answerText string) (*domain.EvaluationResult, error)
}

func (m *mockQuizService) GenerateQuestion(
	ctx context.Context,
	topics []string,
) (*domain.Question, error) {
	if m.GenerateQuestionFn != nil {
		return m.GenerateQuestionFn(ctx, topics)
	}
	return mocks.SampleQuestion(), nil
}

func (m *mockQuizService) SubmitAnswer(
	ctx context.Context,
	question *domain.Question,
	answerText string,
) (*domain.EvaluationResult, error) {
	if m.SubmitAnswerFn != nil {
		return m.SubmitAnswerFn(ctx, question, answerText)
	}
	return &domain.EvaluationResult{IsCorrect: true, Feedback: "Correct."}, nil
}

// mockMistakeService implements service.MistakeService with function fields.
type mockMistakeService struct {
	ListFn   func(ctx context.Context) ([]domain.MistakeRecord, error)
	RemoveFn func(ctx context.Context, id string) error
	ExportFn func(ctx context.Context) ([]byte, error)
	ImportFn func(ctx context.Context, snapshot []byte) error
}

func (m *mockMistakeService) List(ctx context.Context) ([]domain.MistakeRecord, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return []domain.MistakeRecord{}, nil
}

func (m *mockMistakeService) Remove(ctx context.Context, id string) error {
	if m.RemoveFn != nil {
		return m.RemoveFn(ctx, id)
	}
	return nil
}

func (m *mockMistakeService) Export(ctx context.Context) ([]byte, error) {
	if m.ExportFn != nil {
		return m.ExportFn(ctx)
	}
	return []byte("[]"), nil
}

func (m *mockMistakeService) Import(ctx context.Context, snapshot []byte) error {
	if m.ImportFn != nil {
		return m.ImportFn(ctx, snapshot)
	}
	return nil
}

// mockSettingsService implements service.SettingsService with function fields.
type mockSettingsService struct {
	GetFn         func(ctx context.Context) (*domain.Settings, error)
	ValidateKeyFn func(ctx context.Context, apiKey string) error
	SaveFn        func(ctx context.Context, settings *domain.Settings) error
}

func (m *mockSettingsService) Get(ctx context.Context) (*domain.Settings, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx)
	}
	return &domain.Settings{}, nil
}

func (m *mockSettingsService) ValidateKey(ctx context.Context, apiKey string) error {
	if m.ValidateKeyFn != nil {
		return m.ValidateKeyFn(ctx, apiKey)
	}
	return nil
}

func (m *mockSettingsService) Save(ctx context.Context, settings *domain.Settings) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, settings)
	}
	return nil
}
