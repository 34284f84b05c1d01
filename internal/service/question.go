package service

import (
	"context"
	"errors"

	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
	"trivia-api/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// QuestionService defines the interface for question-related operations
type QuestionService interface {
	ListQuestions(ctx context.Context, page int) (*dto.QuestionPageResponse, error)
	SearchQuestions(ctx context.Context, term string, page int) (*dto.SearchQuestionsResponse, error)
	GetQuestion(ctx context.Context, id int64) (*dto.QuestionDetailResponse, error)
	QuestionsByCategory(ctx context.Context, categoryID int64, page int) (*dto.CategoryQuestionsResponse, error)
	CreateQuestion(ctx context.Context, req *dto.QuestionRequest) (*dto.CreateQuestionResponse, error)
	DeleteQuestion(ctx context.Context, id int64, page int) (*dto.DeleteQuestionResponse, error)
}

type questionService struct {
	repo       domain.QuestionRepository
	categories CategoryService
	txManager  domain.TransactionManager
	pageSize   int
}

// NewQuestionService creates a new question service
func NewQuestionService(
	repo domain.QuestionRepository,
	categories CategoryService,
	txManager domain.TransactionManager,
	pageSize int,
) QuestionService {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &questionService{
		repo:       repo,
		categories: categories,
		txManager:  txManager,
		pageSize:   pageSize,
	}
}

// loadAll fetches the ordered question table and the category map concurrently.
func (s *questionService) loadAll(ctx context.Context) ([]*domain.Question, dto.CategoryMap, error) {
	var (
		questions  []*domain.Question
		categories dto.CategoryMap
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		questions, err = s.repo.ListAll(gctx)
		if err != nil {
			return domain.NewInternalError("failed to list questions", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		categories, err = s.categories.GetCategoryMap(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return questions, categories, nil
}

// ListQuestions returns one page of questions ordered by id. An empty page is not found.
func (s *questionService) ListQuestions(ctx context.Context, page int) (*dto.QuestionPageResponse, error) {
	if err := checkPage(page); err != nil {
		return nil, err
	}

	questions, categories, err := s.loadAll(ctx)
	if err != nil {
		return nil, err
	}

	current := Paginate(questions, page, s.pageSize)
	if len(current) == 0 {
		return nil, domain.NewNotFoundError("no questions on this page").WithContext("page", page)
	}

	return &dto.QuestionPageResponse{
		Success:        true,
		Questions:      dto.NewQuestionResponses(current),
		TotalQuestions: len(questions),
		Categories:     categories,
	}, nil
}

// SearchQuestions matches term case-insensitively against the question text.
// No match is a successful, empty result.
func (s *questionService) SearchQuestions(ctx context.Context, term string, page int) (*dto.SearchQuestionsResponse, error) {
	if err := checkPage(page); err != nil {
		return nil, err
	}

	matches, err := s.repo.Search(ctx, term)
	if err != nil {
		return nil, domain.NewInternalError("failed to search questions", err)
	}

	return &dto.SearchQuestionsResponse{
		Success:        true,
		Questions:      dto.NewQuestionResponses(Paginate(matches, page, s.pageSize)),
		TotalQuestions: len(matches),
	}, nil
}

// GetQuestion returns a single question by id.
func (s *questionService) GetQuestion(ctx context.Context, id int64) (*dto.QuestionDetailResponse, error) {
	question, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, domain.ErrQuestionNotFound) {
		return nil, domain.NewNotFoundError("question not found").WithContext("id", id)
	}
	if err != nil {
		return nil, domain.NewInternalError("failed to get question", err)
	}
	return &dto.QuestionDetailResponse{Success: true, Question: dto.NewQuestionResponse(question)}, nil
}

// QuestionsByCategory returns one page of a category's questions. An unknown or
// empty category is not found.
func (s *questionService) QuestionsByCategory(ctx context.Context, categoryID int64, page int) (*dto.CategoryQuestionsResponse, error) {
	if err := checkPage(page); err != nil {
		return nil, err
	}

	questions, err := s.repo.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, domain.NewInternalError("failed to list questions by category", err)
	}

	current := Paginate(questions, page, s.pageSize)
	if len(current) == 0 {
		return nil, domain.NewNotFoundError("no questions for category").
			WithContext("category", categoryID).
			WithContext("page", page)
	}

	return &dto.CategoryQuestionsResponse{
		Success:         true,
		Questions:       dto.NewQuestionResponses(current),
		TotalQuestions:  len(questions),
		CurrentCategory: categoryID,
	}, nil
}

// CreateQuestion validates before touching storage; any storage failure is
// reported as unprocessable and rolled back.
func (s *questionService) CreateQuestion(ctx context.Context, req *dto.QuestionRequest) (*dto.CreateQuestionResponse, error) {
	question := domain.NewQuestion(req.Question, req.Answer, req.Difficulty, req.Category)
	if err := question.Validate(); err != nil {
		return nil, err
	}

	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		return s.repo.Create(txCtx, question)
	})
	if err != nil {
		return nil, domain.NewUnprocessableError("failed to create question", err).
			WithContext("category", req.Category)
	}

	logger.Get().Info("Question created", zap.Int64("id", question.ID), zap.Int64("category", question.Category))

	return &dto.CreateQuestionResponse{
		Success:         true,
		ID:              question.ID,
		QuestionCreated: question.Question,
	}, nil
}

// DeleteQuestion removes id and returns the requested page of what remains.
func (s *questionService) DeleteQuestion(ctx context.Context, id int64, page int) (*dto.DeleteQuestionResponse, error) {
	if err := checkPage(page); err != nil {
		return nil, err
	}

	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		return s.repo.Delete(txCtx, id)
	})
	if errors.Is(err, domain.ErrQuestionNotFound) {
		return nil, domain.NewNotFoundError("question not found").WithContext("id", id)
	}
	if err != nil {
		return nil, domain.NewUnprocessableError("failed to delete question", err).WithContext("id", id)
	}

	logger.Get().Info("Question deleted", zap.Int64("id", id))

	questions, categories, err := s.loadAll(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.DeleteQuestionResponse{
		Success:        true,
		Deleted:        id,
		Questions:      dto.NewQuestionResponses(Paginate(questions, page, s.pageSize)),
		TotalQuestions: len(questions),
		Categories:     categories,
	}, nil
}
