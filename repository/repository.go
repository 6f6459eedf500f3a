package repository

import (
	"github.com/vinaysurtani/Trivia-API/data"
)

// Repository defines the app's store access layer. Two implementations
// exist: postgres for production and sqlite for embedded use.
type Repository interface {
	categories
	questions
}

type categories interface {
	GetCategory(categoryID int64) (*data.Category, error)
	GetAllCategories() ([]*data.Category, error)
}

type questions interface {
	GetQuestion(questionID int64) (*data.Question, error)
	GetAllQuestions(filters data.Filters) ([]*data.Question, data.Metadata, error)
	GetAllQuestionsForCategory(categoryID int64) ([]*data.Question, error)
	CreateQuestion(question *data.Question) error
	DeleteQuestion(questionID int64) error
	SearchQuestions(term string) ([]*data.Question, error)
}
