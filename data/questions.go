package data

import "github.com/vinaysurtani/Trivia-API/internal/validator"

// Question defines a trivia question model.
type Question struct {
	ID         int64  `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Difficulty int32  `json:"difficulty"`
	Category   int64  `json:"category"`
}

// ValidateQuestion checks that every field of a new question is present.
// Zero values count as absent, mirroring how the API treats missing and
// empty fields alike.
func ValidateQuestion(v *validator.Validator, question *Question) {
	v.Check(question.Question != "", "question", "must be provided")
	v.Check(question.Answer != "", "answer", "must be provided")
	v.Check(question.Difficulty != 0, "difficulty", "must be provided")
	v.Check(question.Category != 0, "category", "must be provided")
}
