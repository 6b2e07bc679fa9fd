package api

import (
	"net/http"

	"github.com/mnchnn43/cpp-helper/internal/api/shared"
	"github.com/mnchnn43/cpp-helper/internal/service"
)

// QuestionHandler handles question generation and answer grading requests.
type QuestionHandler struct {
	quizService service.QuizService
}

// NewQuestionHandler creates a new QuestionHandler
func NewQuestionHandler(quizService service.QuizService) *QuestionHandler {
	return &QuestionHandler{quizService: quizService}
}

// GenerateQuestion handles POST /api/questions requests
func (h *QuestionHandler) GenerateQuestion(w http.ResponseWriter, r *http.Request) {
	// An empty body is allowed and means "any topic"
	var req GenerateQuestionRequest
	if r.ContentLength > 0 {
		if err := shared.DecodeJSON(r, &req); err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
			return
		}
		if err := shared.ValidateRequest(&req); err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
			return
		}
	}

	question, err := h.quizService.GenerateQuestion(r.Context(), req.Topics)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, question)
}

// SubmitAnswer handles POST /api/answers requests
func (h *QuestionHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	var req AnswerRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	if err := req.Question.Validate(); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid question data")
		return
	}

	result, err := h.quizService.SubmitAnswer(r.Context(), req.Question, req.Answer)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, result)
}
