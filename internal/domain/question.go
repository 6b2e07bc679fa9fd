package domain

import "errors"

// QuestionType describes what the learner is asked to do with a snippet.
type QuestionType string

// Possible question types
const (
	QuestionTypeValidity QuestionType = "validity"
	QuestionTypeOutput   QuestionType = "output"
	QuestionTypeConcept  QuestionType = "concept"
)

// Difficulty is the self-assessed difficulty of a generated question.
type Difficulty string

// Possible difficulty levels
const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
)

// Common validation errors for Question
var (
	ErrQuestionCodeEmpty        = errors.New("question code cannot be empty")
	ErrQuestionTextEmpty        = errors.New("question text cannot be empty")
	ErrQuestionTypeInvalid      = errors.New("invalid question type")
	ErrQuestionTopicEmpty       = errors.New("question topic cannot be empty")
	ErrQuestionDifficultyInvalid = errors.New("invalid question difficulty")
)

// Question is a single generated C++ quiz item. It is immutable once
// generated; the code field never carries comments (they are stripped
// after generation so the snippet cannot leak hints).
type Question struct {
	Code         string       `json:"code"`
	QuestionText string       `json:"question_text"`
	Type         QuestionType `json:"type"`
	Topic        string       `json:"topic"`
	Difficulty   Difficulty   `json:"difficulty"`
}

// Validate checks if the Question has valid data.
// Returns an error if any field fails validation.
func (q *Question) Validate() error {
	if q.Code == "" {
		return ErrQuestionCodeEmpty
	}

	if q.QuestionText == "" {
		return ErrQuestionTextEmpty
	}

	if !isValidQuestionType(q.Type) {
		return ErrQuestionTypeInvalid
	}

	if q.Topic == "" {
		return ErrQuestionTopicEmpty
	}

	if !isValidDifficulty(q.Difficulty) {
		return ErrQuestionDifficultyInvalid
	}

	return nil
}

// isValidQuestionType checks if the given type is a valid QuestionType.
func isValidQuestionType(t QuestionType) bool {
	switch t {
	case QuestionTypeValidity, QuestionTypeOutput, QuestionTypeConcept:
		return true
	default:
		return false
	}
}

// isValidDifficulty checks if the given difficulty is a valid Difficulty.
func isValidDifficulty(d Difficulty) bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	default:
		return false
	}
}
