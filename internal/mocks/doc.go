// Package mocks provides hand-rolled test doubles for the quiz.Generator
// interface and the store interfaces. Each mock exposes function fields
// so test cases can script behavior per call, plus call counters for
// verification.
package mocks
