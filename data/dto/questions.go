package dto

// CreateQuestionRequestBody defines the request body for CreateQuestion service.
type CreateQuestionRequestBody struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Difficulty int32  `json:"difficulty"`
	Category   int64  `json:"category"`
}

// SearchQuestionsRequestBody defines the request body for SearchQuestions service.
type SearchQuestionsRequestBody struct {
	SearchTerm string `json:"searchTerm"`
}
