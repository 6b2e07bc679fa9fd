package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/mnchnn43/cpp-helper/internal/quiz"
	"google.golang.org/genai"
)

// callFunc issues a single model call and returns its textual payload.
type callFunc func(ctx context.Context) (string, error)

// callWithRetry invokes call, retrying transient failures (rate limit,
// overload) with exponential backoff: the delay starts at cfg.InitialBackoff
// and doubles after every retry, with no jitter. Terminal failures propagate
// immediately. At most cfg.MaxRetries+1 attempts are made; once retries are
// exhausted the last error surfaces wrapped as quiz.ErrTransientFailure.
func (g *Generator) callWithRetry(ctx context.Context, call callFunc) (string, error) {
	delay := g.cfg.InitialBackoff

	for attempt := 0; ; attempt++ {
		g.logger.DebugContext(ctx, "calling Gemini API",
			"attempt", attempt+1,
			"max_attempts", g.cfg.MaxRetries+1)

		text, err := call(ctx)
		if err == nil {
			return text, nil
		}

		if !isTransient(err) {
			return "", err
		}

		if attempt >= g.cfg.MaxRetries {
			g.logger.WarnContext(ctx, "retries exhausted",
				"attempts", attempt+1,
				"error", err)
			return "", fmt.Errorf("%w: exhausted %d retries: %w",
				quiz.ErrTransientFailure, g.cfg.MaxRetries, err)
		}

		g.logger.WarnContext(ctx, "transient Gemini API failure, retrying",
			"attempt", attempt+1,
			"delay", delay,
			"error", err)

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return "", fmt.Errorf("%w: %w", quiz.ErrTransientFailure, ctx.Err())
		}

		delay *= 2
	}
}

// isTransient reports whether err is a rate-limit (429) or overload (503)
// signal from the Gemini API. Everything else is terminal.
func isTransient(err error) bool {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code == http.StatusTooManyRequests ||
			apiErr.Code == http.StatusServiceUnavailable
	}

	// The SDK surfaces some transport-level failures as plain errors with
	// the gRPC status name in the message.
	msg := err.Error()
	return strings.Contains(msg, "RESOURCE_EXHAUSTED") ||
		strings.Contains(msg, "UNAVAILABLE") ||
		strings.Contains(strings.ToLower(msg), "overloaded")
}
