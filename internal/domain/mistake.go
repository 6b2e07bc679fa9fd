package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for MistakeRecord
var (
	ErrMistakeIDEmpty     = errors.New("mistake ID cannot be empty")
	ErrMistakeAnswerEmpty = errors.New("mistake answer cannot be empty")
)

// MistakeRecord is a persisted snapshot of a question the learner
// answered incorrectly, together with their answer and the grading
// feedback. Records are created once and deleted individually by ID,
// never updated in place.
type MistakeRecord struct {
	Question

	ID              string `json:"id"`
	UserWrongAnswer string `json:"user_wrong_answer"`
	Feedback        string `json:"feedback"`
	Timestamp       int64  `json:"timestamp"`
}

// NewMistakeRecord creates a MistakeRecord for the given question and
// wrong answer. The ID is derived from the creation time so IDs are
// monotonically non-decreasing in creation order; a short random suffix
// keeps them unique when timestamps collide.
func NewMistakeRecord(q Question, wrongAnswer, feedback string, now time.Time) (*MistakeRecord, error) {
	rec := &MistakeRecord{
		Question:        q,
		ID:              newMistakeID(now),
		UserWrongAnswer: wrongAnswer,
		Feedback:        feedback,
		Timestamp:       now.UnixMilli(),
	}

	if err := rec.Validate(); err != nil {
		return nil, err
	}

	return rec, nil
}

// Validate checks if the MistakeRecord has valid data.
func (r *MistakeRecord) Validate() error {
	if r.ID == "" {
		return ErrMistakeIDEmpty
	}

	if r.UserWrongAnswer == "" {
		return ErrMistakeAnswerEmpty
	}

	return r.Question.Validate()
}

// newMistakeID builds a time-derived identifier. The millisecond prefix
// preserves creation order; the uuid fragment disambiguates collisions.
func newMistakeID(now time.Time) string {
	suffix := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return fmt.Sprintf("%d-%s", now.UnixMilli(), suffix)
}
