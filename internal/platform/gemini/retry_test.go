package gemini

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/mnchnn43/cpp-helper/internal/quiz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

// testGenerator builds a generator with a fast backoff so retry tests
// don't sleep for real durations.
func testGenerator(t *testing.T, maxRetries int) *Generator {
	t.Helper()

	g, err := NewGenerator(slog.Default(), Config{
		ModelName:      "gemini-test",
		MaxRetries:     maxRetries,
		InitialBackoff: time.Millisecond,
	})
	require.NoError(t, err)
	return g
}

func rateLimitErr() error {
	return genai.APIError{Code: http.StatusTooManyRequests, Message: "quota exceeded"}
}

func overloadedErr() error {
	return genai.APIError{Code: http.StatusServiceUnavailable, Message: "model overloaded"}
}

func TestCallWithRetrySucceedsFirstAttempt(t *testing.T) {
	t.Parallel()

	g := testGenerator(t, 3)
	attempts := 0

	text, err := g.callWithRetry(context.Background(), func(ctx context.Context) (string, error) {
		attempts++
		return "payload", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "payload", text)
	assert.Equal(t, 1, attempts)
}

func TestCallWithRetryRecoversFromTransientFailures(t *testing.T) {
	t.Parallel()

	g := testGenerator(t, 3)
	attempts := 0

	text, err := g.callWithRetry(context.Background(), func(ctx context.Context) (string, error) {
		attempts++
		if attempts <= 2 {
			return "", rateLimitErr()
		}
		return "payload", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "payload", text)
	assert.Equal(t, 3, attempts)
}

func TestCallWithRetryExhaustsRetries(t *testing.T) {
	t.Parallel()

	g := testGenerator(t, 3)
	attempts := 0
	lastErr := overloadedErr()

	_, err := g.callWithRetry(context.Background(), func(ctx context.Context) (string, error) {
		attempts++
		return "", lastErr
	})

	require.Error(t, err)
	// Exactly maxRetries+1 attempts, then the last error surfaces marked
	// transient but still matchable.
	assert.Equal(t, 4, attempts)
	assert.ErrorIs(t, err, quiz.ErrTransientFailure)

	var apiErr genai.APIError
	assert.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.Code)
}

func TestCallWithRetryTerminalErrorNotRetried(t *testing.T) {
	t.Parallel()

	g := testGenerator(t, 3)
	attempts := 0
	terminal := genai.APIError{Code: http.StatusUnauthorized, Message: "invalid key"}

	_, err := g.callWithRetry(context.Background(), func(ctx context.Context) (string, error) {
		attempts++
		return "", terminal
	})

	require.Error(t, err)
	assert.Equal(t, 1, attempts)
	assert.NotErrorIs(t, err, quiz.ErrTransientFailure)

	var apiErr genai.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.Code)
}

func TestCallWithRetryHonorsContextCancellation(t *testing.T) {
	t.Parallel()

	g, err := NewGenerator(slog.Default(), Config{
		ModelName:      "gemini-test",
		MaxRetries:     3,
		InitialBackoff: time.Minute, // long enough that cancellation wins
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	attempts := 0

	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err = g.callWithRetry(ctx, func(ctx context.Context) (string, error) {
		attempts++
		return "", rateLimitErr()
	})

	require.Error(t, err)
	assert.Equal(t, 1, attempts)
	assert.ErrorIs(t, err, quiz.ErrTransientFailure)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestIsTransient(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"rate limited", rateLimitErr(), true},
		{"overloaded", overloadedErr(), true},
		{"unauthorized", genai.APIError{Code: http.StatusUnauthorized}, false},
		{"bad request", genai.APIError{Code: http.StatusBadRequest}, false},
		{"resource exhausted in message", errors.New("rpc error: RESOURCE_EXHAUSTED"), true},
		{"unavailable in message", errors.New("rpc error: UNAVAILABLE"), true},
		{"overloaded in message", errors.New("the model is overloaded, try again"), true},
		{"plain network error", errors.New("connection refused"), false},
		{"wrapped transient", errors.New("wrapped: " + rateLimitErr().Error()), false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, isTransient(tt.err))
		})
	}
}
