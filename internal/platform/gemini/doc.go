// Package gemini implements the quiz.Generator interface using Google's
// Gemini API. It builds the generation and evaluation prompts, enforces
// structured JSON output via response schemas, wraps every model call in
// retry-with-backoff for rate-limit and overload failures, and performs
// the fail-closed API key validation check.
package gemini
