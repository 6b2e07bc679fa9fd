package quiz

import (
	"context"

	"github.com/mnchnn43/cpp-helper/internal/domain"
)

// Generator defines the interface for generating quiz questions and
// grading free-text answers. It serves as a boundary between the
// application core and the external LLM service.
type Generator interface {
	// GenerateQuestion produces a single C++ question for the given topic.
	// The returned question's code has comments stripped so the snippet
	// cannot leak hints, regardless of what the model emitted.
	GenerateQuestion(ctx context.Context, apiKey, topic string) (*domain.Question, error)

	// EvaluateAnswer grades the learner's free-text answer to a question.
	// The result is returned exactly as the model produced it.
	EvaluateAnswer(
		ctx context.Context,
		apiKey string,
		question *domain.Question,
		answerText string,
	) (*domain.EvaluationResult, error)

	// ValidateKey confirms the API key is accepted by the remote service.
	// It fails closed: an empty or malformed key is rejected without a
	// network call, and any remote failure (including transient ones)
	// counts as invalid. The call is never retried.
	ValidateKey(ctx context.Context, apiKey string) error
}
