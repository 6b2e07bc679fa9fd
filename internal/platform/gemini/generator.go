package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"github.com/mnchnn43/cpp-helper/internal/domain"
	"github.com/mnchnn43/cpp-helper/internal/quiz"
	"google.golang.org/genai"
)

// Default retry and sampling parameters. Generation runs hotter than
// evaluation so repeated questions on the same topic stay diverse.
const (
	defaultMaxRetries          = 3
	defaultInitialBackoff      = 2 * time.Second
	defaultGenerateTemperature = 0.9
	defaultEvaluateTemperature = 0.2
)

// keyPattern is the syntactic fast-path check for Gemini API keys: the
// fixed "AIza" prefix and 39 characters total. It short-circuits obviously
// broken keys; the network round trip in ValidateKey stays authoritative.
var keyPattern = regexp.MustCompile(`^AIza[0-9A-Za-z_\-]{35}$`)

// Config contains the settings for the Gemini generator. The API key is
// deliberately absent: credentials are supplied per call because they are
// user-owned and may change between requests.
type Config struct {
	// ModelName is the Gemini model used for all calls.
	ModelName string

	// MaxRetries bounds retries of transient failures per call.
	MaxRetries int

	// InitialBackoff is the first retry delay; it doubles per retry.
	InitialBackoff time.Duration

	// GenerateTemperature is the sampling temperature for question generation.
	GenerateTemperature float32

	// EvaluateTemperature is the sampling temperature for answer grading.
	EvaluateTemperature float32
}

// Generator implements quiz.Generator against the Gemini API.
type Generator struct {
	logger *slog.Logger
	cfg    Config
}

// compile-time interface check
var _ quiz.Generator = (*Generator)(nil)

// NewGenerator creates a Generator with the provided configuration,
// filling unset retry and temperature settings with defaults.
func NewGenerator(logger *slog.Logger, cfg Config) (*Generator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", quiz.ErrInvalidConfig)
	}

	if cfg.MaxRetries < 0 {
		return nil, fmt.Errorf("%w: max retries cannot be negative", quiz.ErrInvalidConfig)
	}

	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = defaultMaxRetries
	}

	if cfg.InitialBackoff <= 0 {
		cfg.InitialBackoff = defaultInitialBackoff
	}

	if cfg.GenerateTemperature <= 0 {
		cfg.GenerateTemperature = defaultGenerateTemperature
	}

	if cfg.EvaluateTemperature <= 0 {
		cfg.EvaluateTemperature = defaultEvaluateTemperature
	}

	return &Generator{
		logger: logger.With(slog.String("component", "gemini_generator")),
		cfg:    cfg,
	}, nil
}

// newClient builds a Gemini client for the supplied key.
func (g *Generator) newClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v", quiz.ErrInvalidConfig, err)
	}
	return client, nil
}

// checkKey applies the local credential checks shared by all operations.
func checkKey(apiKey string) error {
	if apiKey == "" {
		return quiz.ErrMissingAPIKey
	}
	if !keyPattern.MatchString(apiKey) {
		return quiz.ErrInvalidAPIKeyFormat
	}
	return nil
}

// GenerateQuestion produces a single C++ question for the given topic.
func (g *Generator) GenerateQuestion(ctx context.Context, apiKey, topic string) (*domain.Question, error) {
	if err := checkKey(apiKey); err != nil {
		return nil, err
	}

	if topic == "" {
		return nil, errors.New("topic cannot be empty")
	}

	client, err := g.newClient(ctx, apiKey)
	if err != nil {
		return nil, err
	}

	prompt := generationPrompt(topic)
	schema := questionSchema()

	text, err := g.callWithRetry(ctx, func(ctx context.Context) (string, error) {
		return g.generateText(ctx, client, prompt, schema, g.cfg.GenerateTemperature)
	})
	if err != nil {
		return nil, err
	}

	question, err := parseQuestion(text)
	if err != nil {
		return nil, err
	}

	// Hint-leak guard: strip comments no matter what the model emitted.
	question.Code = quiz.StripComments(question.Code)
	if question.Code == "" {
		return nil, fmt.Errorf("%w: code contained only comments", quiz.ErrMalformedResponse)
	}

	g.logger.InfoContext(ctx, "question generated",
		"topic", question.Topic,
		"type", question.Type,
		"difficulty", question.Difficulty)

	return question, nil
}

// EvaluateAnswer grades the learner's answer to a question.
func (g *Generator) EvaluateAnswer(
	ctx context.Context,
	apiKey string,
	question *domain.Question,
	answerText string,
) (*domain.EvaluationResult, error) {
	if err := checkKey(apiKey); err != nil {
		return nil, err
	}

	if question == nil {
		return nil, errors.New("question cannot be nil")
	}

	if err := question.Validate(); err != nil {
		return nil, err
	}

	client, err := g.newClient(ctx, apiKey)
	if err != nil {
		return nil, err
	}

	prompt := evaluationPrompt(question, answerText)
	schema := evaluationSchema()

	text, err := g.callWithRetry(ctx, func(ctx context.Context) (string, error) {
		return g.generateText(ctx, client, prompt, schema, g.cfg.EvaluateTemperature)
	})
	if err != nil {
		return nil, err
	}

	result, err := parseEvaluation(text)
	if err != nil {
		return nil, err
	}

	g.logger.InfoContext(ctx, "answer evaluated", "is_correct", result.IsCorrect)

	return result, nil
}

// ValidateKey confirms the API key is accepted by the remote service using
// a minimal-cost token count. It is a fail-fast UX check: no retries, and
// any failure (transient included) counts as rejection.
func (g *Generator) ValidateKey(ctx context.Context, apiKey string) error {
	if err := checkKey(apiKey); err != nil {
		return err
	}

	client, err := g.newClient(ctx, apiKey)
	if err != nil {
		return err
	}

	_, err = client.Models.CountTokens(ctx, g.cfg.ModelName, genai.Text("ping"), nil)
	if err != nil {
		g.logger.DebugContext(ctx, "key validation call failed", "error", err)
		return fmt.Errorf("%w: %v", quiz.ErrKeyRejected, err)
	}

	return nil
}

// generateText performs one structured-output generation call and returns
// the textual JSON payload.
func (g *Generator) generateText(
	ctx context.Context,
	client *genai.Client,
	prompt string,
	schema *genai.Schema,
	temperature float32,
) (string, error) {
	resp, err := client.Models.GenerateContent(ctx, g.cfg.ModelName, genai.Text(prompt),
		&genai.GenerateContentConfig{
			Temperature:      genai.Ptr(temperature),
			ResponseMIMEType: "application/json",
			ResponseSchema:   schema,
		})
	if err != nil {
		return "", err
	}

	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%w: no candidates", quiz.ErrEmptyResponse)
	}

	if resp.Candidates[0].FinishReason == genai.FinishReasonSafety {
		return "", fmt.Errorf("%w: finish reason safety", quiz.ErrContentBlocked)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("%w: no textual payload", quiz.ErrEmptyResponse)
	}

	return text, nil
}

// questionPayload mirrors the generation response schema.
type questionPayload struct {
	Code         string `json:"code"`
	QuestionText string `json:"questionText"`
	Type         string `json:"type"`
	Topic        string `json:"topic"`
	Difficulty   string `json:"difficulty"`
}

// parseQuestion decodes and validates a generation payload.
func parseQuestion(text string) (*domain.Question, error) {
	var payload questionPayload
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", quiz.ErrMalformedResponse, err)
	}

	question := &domain.Question{
		Code:         payload.Code,
		QuestionText: payload.QuestionText,
		Type:         domain.QuestionType(payload.Type),
		Topic:        payload.Topic,
		Difficulty:   domain.Difficulty(payload.Difficulty),
	}

	if err := question.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", quiz.ErrMalformedResponse, err)
	}

	return question, nil
}

// evaluationPayload mirrors the evaluation response schema. IsCorrect is a
// pointer so a missing field is distinguishable from an explicit false.
type evaluationPayload struct {
	IsCorrect           *bool  `json:"isCorrect"`
	Feedback            string `json:"feedback"`
	CorrectAnswerDetail string `json:"correctAnswerDetail"`
}

// parseEvaluation decodes and validates an evaluation payload.
func parseEvaluation(text string) (*domain.EvaluationResult, error) {
	var payload evaluationPayload
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", quiz.ErrMalformedResponse, err)
	}

	if payload.IsCorrect == nil {
		return nil, fmt.Errorf("%w: missing isCorrect", quiz.ErrMalformedResponse)
	}

	if payload.Feedback == "" {
		return nil, fmt.Errorf("%w: missing feedback", quiz.ErrMalformedResponse)
	}

	return &domain.EvaluationResult{
		IsCorrect:           *payload.IsCorrect,
		Feedback:            payload.Feedback,
		CorrectAnswerDetail: payload.CorrectAnswerDetail,
	}, nil
}
