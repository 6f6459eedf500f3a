package service

import (
	"math/rand"

	"github.com/vinaysurtani/Trivia-API/data"
)

type quiz interface {
	PlayQuiz(categoryID int64, previousQuestions []int64) (*data.Question, error)
}

// PlayQuiz service draws one question uniformly at random from the pool of
// questions in the given category (zero means any category) that have not
// been asked yet. A nil question with a nil error means the pool is
// exhausted, which is the quiz session's normal terminal state.
func (s *service) PlayQuiz(categoryID int64, previousQuestions []int64) (*data.Question, error) {
	candidates, err := s.repo.GetAllQuestionsForCategory(categoryID)
	if err != nil {
		return nil, err
	}
	seen := make(map[int64]struct{}, len(previousQuestions))
	for _, id := range previousQuestions {
		seen[id] = struct{}{}
	}
	pool := make([]*data.Question, 0, len(candidates))
	for _, question := range candidates {
		if _, ok := seen[question.ID]; !ok {
			pool = append(pool, question)
		}
	}
	if len(pool) == 0 {
		return nil, nil
	}
	return pool[rand.Intn(len(pool))], nil
}
