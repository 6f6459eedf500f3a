package service

import (
	"github.com/vinaysurtani/Trivia-API/config"
	"github.com/vinaysurtani/Trivia-API/internal/jsonlog"
	"github.com/vinaysurtani/Trivia-API/repository"
)

type Service interface {
	categories
	questions
	quiz
}

// Service defines the app's service layer.
type service struct {
	config config.Config
	logger *jsonlog.Logger
	repo   repository.Repository
}

// New creates a new instance of Service.
func New(cfg config.Config, logger *jsonlog.Logger, repo repository.Repository) *service {
	return &service{
		config: cfg,
		logger: logger,
		repo:   repo,
	}
}
