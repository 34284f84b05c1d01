package domain

import "strings"

const (
	MinDifficulty = 1
	MaxDifficulty = 5

	// AllCategories is the quiz category id meaning "no category restriction".
	AllCategories int64 = 0
)

// Category is a read-only question label, seeded out of band.
type Category struct {
	ID   int64
	Type string
}

// Question represents a trivia question in the domain
type Question struct {
	ID         int64
	Question   string
	Answer     string
	Difficulty int
	Category   int64
}

// NewQuestion creates a Question that has not been persisted yet.
func NewQuestion(question, answer string, difficulty int, category int64) *Question {
	return &Question{
		Question:   question,
		Answer:     answer,
		Difficulty: difficulty,
		Category:   category,
	}
}

// Validate checks the question before it is handed to storage.
func (q *Question) Validate() error {
	var problems []string
	if strings.TrimSpace(q.Question) == "" {
		problems = append(problems, "question is required")
	}
	if strings.TrimSpace(q.Answer) == "" {
		problems = append(problems, "answer is required")
	}
	if q.Difficulty < MinDifficulty || q.Difficulty > MaxDifficulty {
		problems = append(problems, "difficulty must be between 1 and 5")
	}
	if q.Category <= 0 {
		problems = append(problems, "category must be a positive id")
	}
	if len(problems) > 0 {
		return NewUnprocessableError(strings.Join(problems, "; "), nil)
	}
	return nil
}

// QuizCategory is the category selector sent by the client on every quiz turn.
type QuizCategory struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
}

// QuizSession is reconstructed from the request body on each quiz turn; nothing is
// kept server side between turns.
type QuizSession struct {
	PreviousQuestions []int64
	QuizCategory      QuizCategory
}

// Asked returns the ids already shown in the session as a set.
func (s *QuizSession) Asked() map[int64]struct{} {
	asked := make(map[int64]struct{}, len(s.PreviousQuestions))
	for _, id := range s.PreviousQuestions {
		asked[id] = struct{}{}
	}
	return asked
}
