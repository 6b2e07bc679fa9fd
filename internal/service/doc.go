// Package service implements the application's business logic: question
// generation, answer grading with mistake capture, mistake collection
// management, and credential settings with gated save.
//
// Services accept interfaces for their dependencies (quiz.Generator and
// the store interfaces) and return domain objects, keeping the HTTP
// layer free of orchestration.
package service
