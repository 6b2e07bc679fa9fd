package service

import "fmt"

// ServiceError wraps failures from the service layer with the operation
// that failed. Sentinel errors from the quiz and store packages pass
// through unwrapped so callers can classify them with errors.Is.
type ServiceError struct {
	// Operation is the operation that failed (e.g. "generate_question")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}
