package gemini

import (
	"fmt"

	"github.com/mnchnn43/cpp-helper/internal/domain"
	"google.golang.org/genai"
)

// maxCodeLines is the ceiling the model is instructed to keep snippets under.
const maxCodeLines = 15

// generationPrompt builds the instruction for producing a single C++
// question on the given topic. The question text must stay neutral: it
// may never reveal whether the snippet is valid.
func generationPrompt(topic string) string {
	return fmt.Sprintf(`You are a C++ instructor creating a quiz question about "%s".

Write a short C++ code snippet and one question about it. Constraints:
- The code must be C++ only, at most %d lines, and contain no comments.
- The question must be answerable from the snippet alone.
- The question text must be neutral: it must never state or hint whether the code is valid, compiles, or is correct.
- Pick the question type that fits the snippet best:
  - "validity": ask whether the code compiles/behaves as written.
  - "output": ask what the program prints or evaluates to.
  - "concept": ask what language feature or behavior the snippet demonstrates.
- Rate the difficulty honestly as Beginner, Intermediate, or Advanced.

Respond with a single JSON object matching the response schema.`, topic, maxCodeLines)
}

// evaluationPrompt builds the grading instruction for a submitted answer.
// The original code, question, topic and the learner's answer are embedded
// verbatim.
func evaluationPrompt(q *domain.Question, answerText string) string {
	return fmt.Sprintf(`You are grading a learner's answer to a C++ quiz question.

Topic: %s
Question type: %s

Code:
%s

Question: %s

Learner's answer: %s

Decide whether the answer is correct. Accept answers that are right in
substance even if phrased informally. Give short, encouraging feedback,
and explain the correct answer in detail.

Respond with a single JSON object matching the response schema.`,
		q.Topic, q.Type, q.Code, q.QuestionText, answerText)
}

// questionSchema describes the required output shape for question
// generation: {code, questionText, type, topic, difficulty}.
func questionSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"code": {
				Type:        genai.TypeString,
				Description: "The C++ code snippet, without comments",
			},
			"questionText": {
				Type:        genai.TypeString,
				Description: "The question about the snippet, neutral about its validity",
			},
			"type": {
				Type: genai.TypeString,
				Enum: []string{
					string(domain.QuestionTypeValidity),
					string(domain.QuestionTypeOutput),
					string(domain.QuestionTypeConcept),
				},
			},
			"topic": {
				Type: genai.TypeString,
			},
			"difficulty": {
				Type: genai.TypeString,
				Enum: []string{
					string(domain.DifficultyBeginner),
					string(domain.DifficultyIntermediate),
					string(domain.DifficultyAdvanced),
				},
			},
		},
		Required: []string{"code", "questionText", "type", "topic", "difficulty"},
	}
}

// evaluationSchema describes the required output shape for answer
// grading: {isCorrect, feedback, correctAnswerDetail}.
func evaluationSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"isCorrect": {
				Type: genai.TypeBoolean,
			},
			"feedback": {
				Type:        genai.TypeString,
				Description: "Short feedback on the learner's answer",
			},
			"correctAnswerDetail": {
				Type:        genai.TypeString,
				Description: "Detailed explanation of the correct answer",
			},
		},
		Required: []string{"isCorrect", "feedback", "correctAnswerDetail"},
	}
}
