package service

import (
	"context"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/mnchnn43/cpp-helper/internal/domain"
	"github.com/mnchnn43/cpp-helper/internal/quiz"
	"github.com/mnchnn43/cpp-helper/internal/store"
)

// QuizService provides question generation and answer grading.
type QuizService interface {
	// GenerateQuestion produces a question on a topic chosen uniformly at
	// random from topics, or from the full catalog when topics is empty.
	GenerateQuestion(ctx context.Context, topics []string) (*domain.Question, error)

	// SubmitAnswer grades the answer. When the evaluation is incorrect, a
	// mistake record is persisted before the result is returned.
	SubmitAnswer(
		ctx context.Context,
		question *domain.Question,
		answerText string,
	) (*domain.EvaluationResult, error)
}

// quizServiceImpl implements the QuizService interface.
type quizServiceImpl struct {
	generator quiz.Generator
	settings  store.SettingsStore
	mistakes  store.MistakeStore

	// rngMu guards rng; *rand.Rand is not safe for concurrent use and
	// handlers run concurrently.
	rngMu sync.Mutex
	rng   *rand.Rand

	now    func() time.Time
	logger *slog.Logger
}

// NewQuizService creates a QuizService. The rng and now arguments are
// injectable for tests; pass nil to use a time-seeded source and
// time.Now.
func NewQuizService(
	generator quiz.Generator,
	settings store.SettingsStore,
	mistakes store.MistakeStore,
	rng *rand.Rand,
	now func() time.Time,
	logger *slog.Logger,
) (QuizService, error) {
	if generator == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "generator cannot be nil"}
	}
	if settings == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "settings store cannot be nil"}
	}
	if mistakes == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "mistake store cannot be nil"}
	}

	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &quizServiceImpl{
		generator: generator,
		settings:  settings,
		mistakes:  mistakes,
		rng:       rng,
		now:       now,
		logger:    logger.With(slog.String("component", "quiz_service")),
	}, nil
}

// credential resolves the API key from the settings store.
func (s *quizServiceImpl) credential(ctx context.Context) (string, error) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return "", &ServiceError{Operation: "load_credential", Message: "failed to load settings", Err: err}
	}

	if settings.APIKey == "" {
		return "", quiz.ErrMissingAPIKey
	}

	return settings.APIKey, nil
}

// GenerateQuestion picks a topic and delegates to the generator.
func (s *quizServiceImpl) GenerateQuestion(
	ctx context.Context,
	topics []string,
) (*domain.Question, error) {
	apiKey, err := s.credential(ctx)
	if err != nil {
		return nil, err
	}

	pool := topics
	if len(pool) == 0 {
		pool = domain.TopicCatalog()
	}

	s.rngMu.Lock()
	topic := pool[s.rng.Intn(len(pool))]
	s.rngMu.Unlock()

	s.logger.Debug("generating question", "topic", topic)

	question, err := s.generator.GenerateQuestion(ctx, apiKey, topic)
	if err != nil {
		s.logger.Error("question generation failed", "topic", topic, "error", err)
		return nil, err
	}

	return question, nil
}

// SubmitAnswer grades the answer and captures a mistake record when the
// evaluation is incorrect.
func (s *quizServiceImpl) SubmitAnswer(
	ctx context.Context,
	question *domain.Question,
	answerText string,
) (*domain.EvaluationResult, error) {
	if question == nil {
		return nil, &ServiceError{Operation: "submit_answer", Message: "question cannot be nil"}
	}

	apiKey, err := s.credential(ctx)
	if err != nil {
		return nil, err
	}

	result, err := s.generator.EvaluateAnswer(ctx, apiKey, question, answerText)
	if err != nil {
		s.logger.Error("answer evaluation failed", "topic", question.Topic, "error", err)
		return nil, err
	}

	if result.IsCorrect {
		return result, nil
	}

	record, err := domain.NewMistakeRecord(*question, answerText, result.Feedback, s.now())
	if err != nil {
		return nil, &ServiceError{
			Operation: "record_mistake",
			Message:   "failed to create mistake record",
			Err:       err,
		}
	}

	if err := s.mistakes.Add(ctx, record); err != nil {
		s.logger.Error("failed to persist mistake", "id", record.ID, "error", err)
		return nil, &ServiceError{
			Operation: "record_mistake",
			Message:   "failed to persist mistake record",
			Err:       err,
		}
	}

	s.logger.Info("mistake recorded", "id", record.ID, "topic", question.Topic)
	return result, nil
}
