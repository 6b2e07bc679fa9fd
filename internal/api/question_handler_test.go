package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mnchnn43/cpp-helper/internal/domain"
	"github.com/mnchnn43/cpp-helper/internal/mocks"
	"github.com/mnchnn43/cpp-helper/internal/quiz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateQuestionSuccess(t *testing.T) {
	t.Parallel()

	var gotTopics []string
	svc := &mockQuizService{
		GenerateQuestionFn: func(ctx context.Context, topics []string) (*domain.Question, error) {
			gotTopics = topics
			return mocks.SampleQuestion(), nil
		},
	}
	handler := NewQuestionHandler(svc)

	body := bytes.NewBufferString(`{"topics": ["RAII", "Templates"]}`)
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/questions", body)

	handler.GenerateQuestion(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"RAII", "Templates"}, gotTopics)

	var question domain.Question
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &question))
	assert.NoError(t, question.Validate())
}

func TestGenerateQuestionEmptyBodyMeansAnyTopic(t *testing.T) {
	t.Parallel()

	var gotTopics []string
	svc := &mockQuizService{
		GenerateQuestionFn: func(ctx context.Context, topics []string) (*domain.Question, error) {
			gotTopics = topics
			return mocks.SampleQuestion(), nil
		},
	}
	handler := NewQuestionHandler(svc)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/questions", nil)

	handler.GenerateQuestion(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, gotTopics)
}

func TestGenerateQuestionErrorMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"missing key", quiz.ErrMissingAPIKey, http.StatusBadRequest},
		{"empty response", quiz.ErrEmptyResponse, http.StatusBadGateway},
		{"retries exhausted", quiz.ErrTransientFailure, http.StatusServiceUnavailable},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc := &mockQuizService{
				GenerateQuestionFn: func(ctx context.Context, topics []string) (*domain.Question, error) {
					return nil, tc.err
				},
			}
			handler := NewQuestionHandler(svc)

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/api/questions", nil)

			handler.GenerateQuestion(w, r)

			assert.Equal(t, tc.wantStatus, w.Code)
			assert.NotContains(t, w.Body.String(), tc.err.Error(),
				"raw error must not reach the client")
		})
	}
}

func TestSubmitAnswerSuccess(t *testing.T) {
	t.Parallel()

	svc := &mockQuizService{
		SubmitAnswerFn: func(ctx context.Context, question *domain.Question, answerText string) (*domain.EvaluationResult, error) {
			assert.Equal(t, "it prints 42", answerText)
			return &domain.EvaluationResult{
				IsCorrect: false,
				Feedback:  "Close, but the variable overflows.",
			}, nil
		},
	}
	handler := NewQuestionHandler(svc)

	payload := map[string]interface{}{
		"question": mocks.SampleQuestion(),
		"answer":   "it prints 42",
	}
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/answers", bytes.NewReader(body))

	handler.SubmitAnswer(w, r)

	assert.Equal(t, http.StatusOK, w.Code)

	var result domain.EvaluationResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.False(t, result.IsCorrect)
	assert.Equal(t, "Close, but the variable overflows.", result.Feedback)
}

func TestSubmitAnswerRejectsMissingFields(t *testing.T) {
	t.Parallel()

	handler := NewQuestionHandler(&mockQuizService{})

	tests := []struct {
		name string
		body string
	}{
		{"no question", `{"answer": "yes"}`},
		{"no answer", `{"question": {"code": "int x;", "question_text": "Valid?", "type": "validity", "topic": "RAII", "difficulty": "Beginner"}}`},
		{"malformed json", `{"answer": `},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/api/answers", bytes.NewBufferString(tc.body))

			handler.SubmitAnswer(w, r)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestSubmitAnswerRejectsInvalidQuestion(t *testing.T) {
	t.Parallel()

	handler := NewQuestionHandler(&mockQuizService{})

	body := `{"question": {"code": "", "question_text": "Valid?", "type": "validity", "topic": "RAII", "difficulty": "Beginner"}, "answer": "yes"}`
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/answers", bytes.NewBufferString(body))

	handler.SubmitAnswer(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
