package quiz

import "errors"

// Common errors returned by the quiz package
var (
	// ErrMissingAPIKey is returned when an operation requires an API key
	// and none is configured.
	ErrMissingAPIKey = errors.New("api key is required")

	// ErrInvalidAPIKeyFormat is returned when the API key fails the
	// syntactic fast-path check before any network call is made.
	ErrInvalidAPIKeyFormat = errors.New("api key format is invalid")

	// ErrKeyRejected is returned when the remote service does not accept
	// the API key.
	ErrKeyRejected = errors.New("api key rejected by remote service")

	// ErrEmptyResponse is returned when the LLM call succeeds but carries
	// no textual payload.
	ErrEmptyResponse = errors.New("empty response from language model")

	// ErrMalformedResponse is returned when the LLM response cannot be
	// parsed into the expected shape.
	ErrMalformedResponse = errors.New("malformed response from language model")

	// ErrContentBlocked is returned when the LLM blocks the content due to
	// safety filters.
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrTransientFailure marks rate-limit or overload failures that were
	// retried internally and only surface once retries are exhausted.
	ErrTransientFailure = errors.New("transient error from language model")

	// ErrInvalidConfig is returned when the generator configuration is invalid.
	ErrInvalidConfig = errors.New("invalid generator configuration")
)
