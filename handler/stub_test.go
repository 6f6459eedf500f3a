package handler

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jellydator/ttlcache/v3"
	"github.com/vinaysurtani/Trivia-API/config"
	"github.com/vinaysurtani/Trivia-API/data"
	"github.com/vinaysurtani/Trivia-API/internal/jsonlog"
)

// stubService lets each test script the service layer. Calling an unset
// hook panics, which the recoverPanic middleware turns into a 500.
type stubService struct {
	listCategoriesFn           func() ([]*data.Category, error)
	getCategoryFn              func(int64) (*data.Category, error)
	listQuestionsFn            func(data.Filters) ([]*data.Question, data.Metadata, error)
	createQuestionFn           func(string, string, int32, int64) (*data.Question, error)
	deleteQuestionFn           func(int64) error
	searchQuestionsFn          func(string) ([]*data.Question, error)
	listQuestionsForCategoryFn func(int64) ([]*data.Question, *data.Category, error)
	playQuizFn                 func(int64, []int64) (*data.Question, error)
}

func (s *stubService) ListCategories() ([]*data.Category, error) {
	return s.listCategoriesFn()
}

func (s *stubService) GetCategory(categoryID int64) (*data.Category, error) {
	return s.getCategoryFn(categoryID)
}

func (s *stubService) ListQuestions(filters data.Filters) ([]*data.Question, data.Metadata, error) {
	return s.listQuestionsFn(filters)
}

func (s *stubService) CreateQuestion(question, answer string, difficulty int32, categoryID int64) (*data.Question, error) {
	return s.createQuestionFn(question, answer, difficulty, categoryID)
}

func (s *stubService) DeleteQuestion(questionID int64) error {
	return s.deleteQuestionFn(questionID)
}

func (s *stubService) SearchQuestions(term string) ([]*data.Question, error) {
	return s.searchQuestionsFn(term)
}

func (s *stubService) ListQuestionsForCategory(categoryID int64) ([]*data.Question, *data.Category, error) {
	return s.listQuestionsForCategoryFn(categoryID)
}

func (s *stubService) PlayQuiz(categoryID int64, previousQuestions []int64) (*data.Question, error) {
	return s.playQuizFn(categoryID, previousQuestions)
}

// newTestServer builds a full middleware-wrapped router around a stubbed
// service. The limiter and metrics stay disabled so tests are isolated.
func newTestServer(t *testing.T, svc *stubService) *httptest.Server {
	t.Helper()
	var cfg config.Config
	logger := jsonlog.New(io.Discard, jsonlog.LevelOff)
	cache := ttlcache.New[string, map[string]string]()
	h := New(cfg, logger, cache, svc)
	ts := httptest.NewServer(h.Routes())
	t.Cleanup(ts.Close)
	return ts
}

func mathCategories() func() ([]*data.Category, error) {
	return func() ([]*data.Category, error) {
		return []*data.Category{{ID: 1, Type: "Math"}}, nil
	}
}

func checkStatus(t *testing.T, resp *http.Response, want int) {
	t.Helper()
	if resp.StatusCode != want {
		t.Fatalf("status = %d, want %d", resp.StatusCode, want)
	}
}
