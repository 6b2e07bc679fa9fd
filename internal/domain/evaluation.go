package domain

// EvaluationResult is the graded outcome of a single answer submission.
// It is produced once per submission and never mutated.
type EvaluationResult struct {
	IsCorrect           bool   `json:"is_correct"`
	Feedback            string `json:"feedback"`
	CorrectAnswerDetail string `json:"correct_answer_detail"`
}
