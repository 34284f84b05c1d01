package service

import (
	"context"

	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
	"trivia-api/internal/logger"

	"go.uber.org/zap"
)

// QuizService defines the interface for quiz-related operations
type QuizService interface {
	NextQuestion(ctx context.Context, session *domain.QuizSession) (*dto.QuizResponse, error)
}

type quizService struct {
	repo domain.QuestionRepository
}

// NewQuizService creates a new instance of quizService
func NewQuizService(repo domain.QuestionRepository) QuizService {
	return &quizService{repo: repo}
}

// NextQuestion draws the pool for the session's category in random order and
// returns the first question not yet asked. When every question has been asked
// the response carries no question. An empty pool is not found.
func (s *quizService) NextQuestion(ctx context.Context, session *domain.QuizSession) (*dto.QuizResponse, error) {
	categoryID := session.QuizCategory.ID

	pool, err := s.repo.RandomByCategory(ctx, categoryID)
	if err != nil {
		return nil, domain.NewInternalError("failed to load quiz pool", err)
	}
	if len(pool) == 0 {
		return nil, domain.NewNotFoundError("no questions for quiz category").WithContext("category", categoryID)
	}

	resp := &dto.QuizResponse{
		Success:         true,
		CurrentCategory: session.QuizCategory,
	}

	asked := session.Asked()
	for _, q := range pool {
		if _, seen := asked[q.ID]; seen {
			continue
		}
		formatted := dto.NewQuestionResponse(q)
		resp.Question = &formatted
		return resp, nil
	}

	logger.Get().Debug("Quiz deck exhausted",
		zap.Int64("category", categoryID),
		zap.Int("pool_size", len(pool)),
		zap.Int("asked", len(asked)))
	return resp, nil
}
