package handler

import (
	"errors"
	"net/http"

	"github.com/vinaysurtani/Trivia-API/data"
	"github.com/vinaysurtani/Trivia-API/data/dto"
	"github.com/vinaysurtani/Trivia-API/internal/validator"
	"github.com/vinaysurtani/Trivia-API/service"
)

// Listings are windowed in fixed pages of 10 questions.
const questionsPerPage = 10

// listQuestionsHandler returns one page of questions, the total question
// count and the full category mapping. A page that is not a positive
// integer falls back to page 1; a page past the end is not found.
func (h *Handler) listQuestionsHandler(w http.ResponseWriter, r *http.Request) {
	v := validator.New()
	page := h.readInt(r.URL.Query(), "page", 1, v)
	if !v.Valid() || page < 1 {
		page = 1
	}
	filters := data.Filters{Page: page, PageSize: questionsPerPage}
	questions, metadata, err := h.service.ListQuestions(filters)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	categories, err := h.categoryMap()
	if err != nil {
		h.serverErrorResponse(w, r, err)
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{
		"success":          true,
		"questions":        questions,
		"total_questions":  metadata.TotalRecords,
		"categories":       categories,
		"current_category": nil,
	}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// createQuestionHandler persists a new question. A body missing any of the
// four fields, or carrying an empty value for one, is unprocessable.
func (h *Handler) createQuestionHandler(w http.ResponseWriter, r *http.Request) {
	var requestBody dto.CreateQuestionRequestBody
	err := h.decodeJSON(w, r, &requestBody)
	if err != nil {
		h.failedValidationResponse(w, r)
		return
	}
	_, err = h.service.CreateQuestion(requestBody.Question, requestBody.Answer, requestBody.Difficulty, requestBody.Category)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFailedValidation):
			h.failedValidationResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"success": true}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// deleteQuestionHandler deletes a question by id. A path id that is not a
// positive integer names no resource and reports not found.
func (h *Handler) deleteQuestionHandler(w http.ResponseWriter, r *http.Request) {
	questionID, err := h.readIDParam(r, "questionId")
	if err != nil || questionID < 1 {
		h.notFoundResponse(w, r)
		return
	}
	err = h.service.DeleteQuestion(questionID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"success": true, "deleted": questionID}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// searchQuestionsHandler returns all questions whose text contains the
// search term. An empty term and a term with no matches both report not
// found.
func (h *Handler) searchQuestionsHandler(w http.ResponseWriter, r *http.Request) {
	var requestBody dto.SearchQuestionsRequestBody
	err := h.decodeJSON(w, r, &requestBody)
	if err != nil {
		h.failedValidationResponse(w, r)
		return
	}
	questions, err := h.service.SearchQuestions(requestBody.SearchTerm)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{
		"success":         true,
		"questions":       questions,
		"total_questions": len(questions),
	}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// listCategoryQuestionsHandler returns every question in a category along
// with the category's type. An unknown category and a category with no
// questions produce the same not-found response.
func (h *Handler) listCategoryQuestionsHandler(w http.ResponseWriter, r *http.Request) {
	categoryID, err := h.readIDParam(r, "categoryId")
	if err != nil || categoryID < 1 {
		h.notFoundResponse(w, r)
		return
	}
	questions, category, err := h.service.ListQuestionsForCategory(categoryID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{
		"success":          true,
		"questions":        questions,
		"total_questions":  len(questions),
		"current_category": category.Type,
	}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}
