package service

import (
	"strings"

	"github.com/vinaysurtani/Trivia-API/data"
	"github.com/vinaysurtani/Trivia-API/repository"
)

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// mockRepository is an in-memory stand-in for the store access layer.
type mockRepository struct {
	categories []*data.Category
	questions  []*data.Question
	nextID     int64

	createCalls int
	searchCalls int
}

func newMockRepository() *mockRepository {
	return &mockRepository{nextID: 1}
}

func (m *mockRepository) addCategory(id int64, categoryType string) {
	m.categories = append(m.categories, &data.Category{ID: id, Type: categoryType})
}

func (m *mockRepository) addQuestion(text, answer string, difficulty int32, categoryID int64) *data.Question {
	question := &data.Question{
		ID:         m.nextID,
		Question:   text,
		Answer:     answer,
		Difficulty: difficulty,
		Category:   categoryID,
	}
	m.nextID++
	m.questions = append(m.questions, question)
	return question
}

func (m *mockRepository) GetCategory(categoryID int64) (*data.Category, error) {
	for _, category := range m.categories {
		if category.ID == categoryID {
			return category, nil
		}
	}
	return nil, repository.ErrRecordNotFound
}

func (m *mockRepository) GetAllCategories() ([]*data.Category, error) {
	return m.categories, nil
}

func (m *mockRepository) GetQuestion(questionID int64) (*data.Question, error) {
	for _, question := range m.questions {
		if question.ID == questionID {
			return question, nil
		}
	}
	return nil, repository.ErrRecordNotFound
}

func (m *mockRepository) GetAllQuestions(filters data.Filters) ([]*data.Question, data.Metadata, error) {
	total := len(m.questions)
	start := filters.Offset()
	if start > total {
		start = total
	}
	end := start + filters.Limit()
	if end > total {
		end = total
	}
	page := m.questions[start:end]
	return page, data.CalculateMetadata(total, filters.Page, filters.PageSize), nil
}

func (m *mockRepository) GetAllQuestionsForCategory(categoryID int64) ([]*data.Question, error) {
	matches := []*data.Question{}
	for _, question := range m.questions {
		if categoryID == 0 || question.Category == categoryID {
			matches = append(matches, question)
		}
	}
	return matches, nil
}

func (m *mockRepository) CreateQuestion(question *data.Question) error {
	m.createCalls++
	question.ID = m.nextID
	m.nextID++
	m.questions = append(m.questions, question)
	return nil
}

func (m *mockRepository) DeleteQuestion(questionID int64) error {
	for i, question := range m.questions {
		if question.ID == questionID {
			m.questions = append(m.questions[:i], m.questions[i+1:]...)
			return nil
		}
	}
	return repository.ErrRecordNotFound
}

func (m *mockRepository) SearchQuestions(term string) ([]*data.Question, error) {
	m.searchCalls++
	matches := []*data.Question{}
	for _, question := range m.questions {
		if containsFold(question.Question, term) {
			matches = append(matches, question)
		}
	}
	return matches, nil
}
