package service

import (
	"errors"

	"github.com/vinaysurtani/Trivia-API/data"
	"github.com/vinaysurtani/Trivia-API/internal/validator"
	"github.com/vinaysurtani/Trivia-API/repository"
)

type questions interface {
	ListQuestions(filters data.Filters) ([]*data.Question, data.Metadata, error)
	CreateQuestion(questionText, answer string, difficulty int32, categoryID int64) (*data.Question, error)
	DeleteQuestion(questionID int64) error
	SearchQuestions(term string) ([]*data.Question, error)
	ListQuestionsForCategory(categoryID int64) ([]*data.Question, *data.Category, error)
}

// ListQuestions service retrieves one page of questions along with the
// total question count. A page past the end of the listing is a
// not-found condition, not an empty success.
func (s *service) ListQuestions(filters data.Filters) ([]*data.Question, data.Metadata, error) {
	questions, metadata, err := s.repo.GetAllQuestions(filters)
	if err != nil {
		return nil, data.Metadata{}, err
	}
	if len(questions) == 0 {
		return nil, data.Metadata{}, ErrRecordNotFound
	}
	return questions, metadata, nil
}

// CreateQuestion service validates and persists a new question record.
func (s *service) CreateQuestion(questionText, answer string, difficulty int32, categoryID int64) (*data.Question, error) {
	question := &data.Question{
		Question:   questionText,
		Answer:     answer,
		Difficulty: difficulty,
		Category:   categoryID,
	}
	v := validator.New()
	if data.ValidateQuestion(v, question); !v.Valid() {
		return nil, ErrFailedValidation
	}
	err := s.repo.CreateQuestion(question)
	if err != nil {
		return nil, err
	}
	return question, nil
}

// DeleteQuestion service deletes a question record.
func (s *service) DeleteQuestion(questionID int64) error {
	err := s.repo.DeleteQuestion(questionID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return ErrRecordNotFound
		default:
			return err
		}
	}
	return nil
}

// SearchQuestions service retrieves all questions whose text contains the
// term. An empty term and a term with no matches both report not found:
// the API treats "no results" uniformly for this operation.
func (s *service) SearchQuestions(term string) ([]*data.Question, error) {
	if term == "" {
		return nil, ErrRecordNotFound
	}
	questions, err := s.repo.SearchQuestions(term)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, ErrRecordNotFound
	}
	return questions, nil
}

// ListQuestionsForCategory service retrieves every question in a category
// together with the category itself. An unknown category and a category
// with no questions collapse into the same not-found condition.
func (s *service) ListQuestionsForCategory(categoryID int64) ([]*data.Question, *data.Category, error) {
	category, err := s.repo.GetCategory(categoryID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, nil, ErrRecordNotFound
		default:
			return nil, nil, err
		}
	}
	questions, err := s.repo.GetAllQuestionsForCategory(categoryID)
	if err != nil {
		return nil, nil, err
	}
	if len(questions) == 0 {
		return nil, nil, ErrRecordNotFound
	}
	return questions, category, nil
}
