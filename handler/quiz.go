package handler

import (
	"net/http"

	"github.com/vinaysurtani/Trivia-API/data/dto"
	"github.com/vinaysurtani/Trivia-API/internal/validator"
)

// playQuizHandler draws one random question that has not been asked yet,
// optionally limited to a category. Both body keys must be present, even
// when previous_questions is an empty list. An exhausted pool is a normal
// terminal state: success stays true and question is null.
func (h *Handler) playQuizHandler(w http.ResponseWriter, r *http.Request) {
	var requestBody dto.PlayQuizRequestBody
	err := h.decodeJSON(w, r, &requestBody)
	if err != nil {
		h.failedValidationResponse(w, r)
		return
	}
	v := validator.New()
	v.Check(requestBody.PreviousQuestions != nil, "previous_questions", "must be provided")
	v.Check(requestBody.QuizCategory != nil, "quiz_category", "must be provided")
	if !v.Valid() {
		h.failedValidationResponse(w, r)
		return
	}
	question, err := h.service.PlayQuiz(requestBody.QuizCategory.ID, *requestBody.PreviousQuestions)
	if err != nil {
		h.serverErrorResponse(w, r, err)
		return
	}
	// A nil question marshals as null, signalling the exhausted pool.
	err = h.encodeJSON(w, http.StatusOK, envelope{"success": true, "question": question}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}
