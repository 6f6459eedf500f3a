package dto

// QuizCategory defines the category filter inside a quiz request. An ID of
// zero means any category. The Type field is accepted for compatibility with
// clients that send it, but only the ID drives selection.
type QuizCategory struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
}

// PlayQuizRequestBody defines the request body for PlayQuiz service.
// The fields are pointer types so that an absent key can be told apart
// from an empty value: both keys are required, even when the list of
// previous questions is empty.
type PlayQuizRequestBody struct {
	PreviousQuestions *[]int64      `json:"previous_questions"`
	QuizCategory      *QuizCategory `json:"quiz_category"`
}
