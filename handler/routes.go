package handler

import (
	"expvar"
	"net/http"

	"github.com/julienschmidt/httprouter"
)

func (h *Handler) Routes() http.Handler {
	router := httprouter.New()

	router.NotFound = http.HandlerFunc(h.notFoundResponse)
	router.MethodNotAllowed = http.HandlerFunc(h.methodNotAllowed)

	router.HandlerFunc(http.MethodGet, "/categories", h.listCategoriesHandler)
	router.HandlerFunc(http.MethodGet, "/categories/:categoryId/questions", h.listCategoryQuestionsHandler)

	router.HandlerFunc(http.MethodGet, "/questions", h.listQuestionsHandler)
	router.HandlerFunc(http.MethodPost, "/questions", h.createQuestionHandler)
	router.HandlerFunc(http.MethodDelete, "/questions/:questionId", h.deleteQuestionHandler)
	router.HandlerFunc(http.MethodPost, "/questionSearch", h.searchQuestionsHandler)

	router.HandlerFunc(http.MethodPost, "/quizzes", h.playQuizHandler)

	router.HandlerFunc(http.MethodGet, "/healthcheck", h.healthcheckHandler)
	router.HandlerFunc(http.MethodGet, "/debug/vars", h.basicAuth(expvar.Handler().ServeHTTP))

	return h.recoverPanic(h.enableCORS(h.rateLimit(h.metrics(router))))
}
