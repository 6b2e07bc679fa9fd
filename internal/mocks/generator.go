package mocks

import (
	"context"
	"sync"

	"github.com/mnchnn43/cpp-helper/internal/domain"
	"github.com/mnchnn43/cpp-helper/internal/quiz"
)

// MockGenerator implements quiz.Generator for testing.
type MockGenerator struct {
	// GenerateQuestionFn allows test cases to script GenerateQuestion.
	GenerateQuestionFn func(ctx context.Context, apiKey, topic string) (*domain.Question, error)

	// EvaluateAnswerFn allows test cases to script EvaluateAnswer.
	EvaluateAnswerFn func(ctx context.Context, apiKey string, question *domain.Question, answerText string) (*domain.EvaluationResult, error)

	// ValidateKeyFn allows test cases to script ValidateKey.
	ValidateKeyFn func(ctx context.Context, apiKey string) error

	// Default responses used when no function field is set.
	Question *domain.Question
	Result   *domain.EvaluationResult
	Err      error

	mu sync.Mutex

	// Call tracking for verification
	GenerateCalls []string // topics passed to GenerateQuestion
	EvaluateCalls []string // answers passed to EvaluateAnswer
	ValidateCalls []string // keys passed to ValidateKey
}

var _ quiz.Generator = (*MockGenerator)(nil)

// GenerateQuestion implements quiz.Generator.
func (m *MockGenerator) GenerateQuestion(ctx context.Context, apiKey, topic string) (*domain.Question, error) {
	m.mu.Lock()
	m.GenerateCalls = append(m.GenerateCalls, topic)
	m.mu.Unlock()

	if m.GenerateQuestionFn != nil {
		return m.GenerateQuestionFn(ctx, apiKey, topic)
	}
	return m.Question, m.Err
}

// EvaluateAnswer implements quiz.Generator.
func (m *MockGenerator) EvaluateAnswer(
	ctx context.Context,
	apiKey string,
	question *domain.Question,
	answerText string,
) (*domain.EvaluationResult, error) {
	m.mu.Lock()
	m.EvaluateCalls = append(m.EvaluateCalls, answerText)
	m.mu.Unlock()

	if m.EvaluateAnswerFn != nil {
		return m.EvaluateAnswerFn(ctx, apiKey, question, answerText)
	}
	return m.Result, m.Err
}

// ValidateKey implements quiz.Generator.
func (m *MockGenerator) ValidateKey(ctx context.Context, apiKey string) error {
	m.mu.Lock()
	m.ValidateCalls = append(m.ValidateCalls, apiKey)
	m.mu.Unlock()

	if m.ValidateKeyFn != nil {
		return m.ValidateKeyFn(ctx, apiKey)
	}
	return m.Err
}

// SampleQuestion returns a valid question for use as mock output.
func SampleQuestion() *domain.Question {
	return &domain.Question{
		Code:         "int main(){ return 1; }",
		QuestionText: "What does this program return?",
		Type:         domain.QuestionTypeOutput,
		Topic:        "Pointers & References",
		Difficulty:   domain.DifficultyBeginner,
	}
}
