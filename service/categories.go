package service

import (
	"errors"

	"github.com/vinaysurtani/Trivia-API/data"
	"github.com/vinaysurtani/Trivia-API/repository"
)

type categories interface {
	GetCategory(categoryID int64) (*data.Category, error)
	ListCategories() ([]*data.Category, error)
}

// ListCategories service retrieves a list of all categories.
func (s *service) ListCategories() ([]*data.Category, error) {
	categories, err := s.repo.GetAllCategories()
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// GetCategory service retrieves a category record.
func (s *service) GetCategory(categoryID int64) (*data.Category, error) {
	category, err := s.repo.GetCategory(categoryID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return category, nil
}
