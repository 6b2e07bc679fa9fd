// Package quiz defines the boundary between the application core and the
// external LLM service that generates C++ questions and grades answers.
// It contains the Generator interface, the error kinds shared by all
// implementations, and the comment-stripping guard applied to generated
// code.
package quiz
