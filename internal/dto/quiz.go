package dto

import "trivia-api/internal/domain"

// QuestionResponse represents a question in the API response
// @Description Trivia question
type QuestionResponse struct {
	ID         int64  `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Difficulty int    `json:"difficulty"`
	Category   int64  `json:"category"`
}

// NewQuestionResponse formats a domain question for the wire.
func NewQuestionResponse(q *domain.Question) QuestionResponse {
	return QuestionResponse{
		ID:         q.ID,
		Question:   q.Question,
		Answer:     q.Answer,
		Difficulty: q.Difficulty,
		Category:   q.Category,
	}
}

// NewQuestionResponses keeps the input order and never returns nil, so an empty
// page encodes as [] rather than null.
func NewQuestionResponses(questions []*domain.Question) []QuestionResponse {
	out := make([]QuestionResponse, 0, len(questions))
	for _, q := range questions {
		out = append(out, NewQuestionResponse(q))
	}
	return out
}

// CategoryMap maps category id to its label. JSON object keys are the ids as strings.
type CategoryMap map[int64]string

// CategoriesResponse is returned by GET /categories
// @Description All categories keyed by id
type CategoriesResponse struct {
	Success    bool        `json:"success"`
	Categories CategoryMap `json:"categories"`
}

// QuestionPageResponse is returned by GET /questions
// @Description One page of questions plus the category map
type QuestionPageResponse struct {
	Success        bool               `json:"success"`
	Questions      []QuestionResponse `json:"questions"`
	TotalQuestions int                `json:"total_questions"`
	Categories     CategoryMap        `json:"categories"`
}

// QuestionDetailResponse is returned by GET /questions/{id}
type QuestionDetailResponse struct {
	Success  bool             `json:"success"`
	Question QuestionResponse `json:"question"`
}

// DeleteQuestionResponse is returned by DELETE /questions/{id}
type DeleteQuestionResponse struct {
	Success        bool               `json:"success"`
	Deleted        int64              `json:"deleted"`
	Questions      []QuestionResponse `json:"questions"`
	TotalQuestions int                `json:"total_questions"`
	Categories     CategoryMap        `json:"categories"`
}

// SearchQuestionsResponse is returned by POST /questions with a searchTerm
type SearchQuestionsResponse struct {
	Success        bool               `json:"success"`
	Questions      []QuestionResponse `json:"questions"`
	TotalQuestions int                `json:"total_questions"`
}

// CreateQuestionResponse is returned by POST /questions without a searchTerm
type CreateQuestionResponse struct {
	Success         bool   `json:"success"`
	ID              int64  `json:"id"`
	QuestionCreated string `json:"question_created"`
}

// CategoryQuestionsResponse is returned by GET /categories/{id}/questions
type CategoryQuestionsResponse struct {
	Success         bool               `json:"success"`
	Questions       []QuestionResponse `json:"questions"`
	TotalQuestions  int                `json:"total_questions"`
	CurrentCategory int64              `json:"current_category"`
}

// QuestionRequest is the POST /questions body. SearchTerm selects search mode.
// @Description Create a question, or search when searchTerm is non-blank
type QuestionRequest struct {
	SearchTerm string `json:"searchTerm,omitempty"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Difficulty int    `json:"difficulty"`
	Category   int64  `json:"category"`
}

// QuizRequest is the POST /quizzes body
// @Description Previously asked ids and the category to draw from (id 0 = all)
type QuizRequest struct {
	PreviousQuestions []int64             `json:"previous_questions"`
	QuizCategory      domain.QuizCategory `json:"quiz_category"`
}

// QuizResponse carries the next question, or no question once the deck is exhausted.
// @Description Next quiz question
type QuizResponse struct {
	Success         bool                `json:"success"`
	Question        *QuestionResponse   `json:"question,omitempty"`
	CurrentCategory domain.QuizCategory `json:"current_category"`
}

// HealthResponse is returned by GET /healthz
type HealthResponse struct {
	Success  bool              `json:"success"`
	Status   string            `json:"status"`
	Services map[string]string `json:"services"`
}

// ErrorResponse is the failure envelope shared by every endpoint
// @Description Error envelope
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}
