package handler_test

import (
	"context"

	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
)

// --- Manual Mocks ---

type MockCategoryService struct {
	GetCategoryMapFunc func(ctx context.Context) (dto.CategoryMap, error)
}

func (m *MockCategoryService) GetCategoryMap(ctx context.Context) (dto.CategoryMap, error) {
	if m.GetCategoryMapFunc != nil {
		return m.GetCategoryMapFunc(ctx)
	}
	panic("MockCategoryService.GetCategoryMapFunc not implemented")
}

func (m *MockCategoryService) InvalidateCategoryMap(ctx context.Context) error {
	return nil
}

type MockQuestionService struct {
	ListQuestionsFunc       func(ctx context.Context, page int) (*dto.QuestionPageResponse, error)
	SearchQuestionsFunc     func(ctx context.Context, term string, page int) (*dto.SearchQuestionsResponse, error)
	GetQuestionFunc         func(ctx context.Context, id int64) (*dto.QuestionDetailResponse, error)
	QuestionsByCategoryFunc func(ctx context.Context, categoryID int64, page int) (*dto.CategoryQuestionsResponse, error)
	CreateQuestionFunc      func(ctx context.Context, req *dto.QuestionRequest) (*dto.CreateQuestionResponse, error)
	DeleteQuestionFunc      func(ctx context.Context, id int64, page int) (*dto.DeleteQuestionResponse, error)
}

func (m *MockQuestionService) ListQuestions(ctx context.Context, page int) (*dto.QuestionPageResponse, error) {
	if m.ListQuestionsFunc != nil {
		return m.ListQuestionsFunc(ctx, page)
	}
	panic("MockQuestionService.ListQuestionsFunc not implemented")
}

func (m *MockQuestionService) SearchQuestions(ctx context.Context, term string, page int) (*dto.SearchQuestionsResponse, error) {
	if m.SearchQuestionsFunc != nil {
		return m.SearchQuestionsFunc(ctx, term, page)
	}
	panic("MockQuestionService.SearchQuestionsFunc not implemented")
}

func (m *MockQuestionService) GetQuestion(ctx context.Context, id int64) (*dto.QuestionDetailResponse, error) {
	if m.GetQuestionFunc != nil {
		return m.GetQuestionFunc(ctx, id)
	}
	panic("MockQuestionService.GetQuestionFunc not implemented")
}

func (m *MockQuestionService) QuestionsByCategory(ctx context.Context, categoryID int64, page int) (*dto.CategoryQuestionsResponse, error) {
	if m.QuestionsByCategoryFunc != nil {
		return m.QuestionsByCategoryFunc(ctx, categoryID, page)
	}
	panic("MockQuestionService.QuestionsByCategoryFunc not implemented")
}

func (m *MockQuestionService) CreateQuestion(ctx context.Context, req *dto.QuestionRequest) (*dto.CreateQuestionResponse, error) {
	if m.CreateQuestionFunc != nil {
		return m.CreateQuestionFunc(ctx, req)
	}
	panic("MockQuestionService.CreateQuestionFunc not implemented")
}

func (m *MockQuestionService) DeleteQuestion(ctx context.Context, id int64, page int) (*dto.DeleteQuestionResponse, error) {
	if m.DeleteQuestionFunc != nil {
		return m.DeleteQuestionFunc(ctx, id, page)
	}
	panic("MockQuestionService.DeleteQuestionFunc not implemented")
}

type MockQuizService struct {
	NextQuestionFunc func(ctx context.Context, session *domain.QuizSession) (*dto.QuizResponse, error)
}

func (m *MockQuizService) NextQuestion(ctx context.Context, session *domain.QuizSession) (*dto.QuizResponse, error) {
	if m.NextQuestionFunc != nil {
		return m.NextQuestionFunc(ctx, session)
	}
	panic("MockQuizService.NextQuestionFunc not implemented")
}

type MockPinger struct {
	Err error
}

func (m *MockPinger) PingContext(ctx context.Context) error {
	return m.Err
}

// FakeQuestionRepository backs the real question service in end-to-end handler tests.
type FakeQuestionRepository struct {
	Questions []*domain.Question
	Deleted   []int64
}

func (f *FakeQuestionRepository) ListAll(ctx context.Context) ([]*domain.Question, error) {
	return f.Questions, nil
}

func (f *FakeQuestionRepository) Search(ctx context.Context, term string) ([]*domain.Question, error) {
	return f.Questions, nil
}

func (f *FakeQuestionRepository) ListByCategory(ctx context.Context, categoryID int64) ([]*domain.Question, error) {
	var out []*domain.Question
	for _, q := range f.Questions {
		if q.Category == categoryID {
			out = append(out, q)
		}
	}
	return out, nil
}

func (f *FakeQuestionRepository) RandomByCategory(ctx context.Context, categoryID int64) ([]*domain.Question, error) {
	if categoryID == domain.AllCategories {
		return f.Questions, nil
	}
	return f.ListByCategory(ctx, categoryID)
}

func (f *FakeQuestionRepository) GetByID(ctx context.Context, id int64) (*domain.Question, error) {
	for _, q := range f.Questions {
		if q.ID == id {
			return q, nil
		}
	}
	return nil, domain.ErrQuestionNotFound
}

func (f *FakeQuestionRepository) Create(ctx context.Context, question *domain.Question) error {
	question.ID = int64(len(f.Questions) + 1)
	f.Questions = append(f.Questions, question)
	return nil
}

func (f *FakeQuestionRepository) Delete(ctx context.Context, id int64) error {
	for i, q := range f.Questions {
		if q.ID == id {
			f.Questions = append(f.Questions[:i], f.Questions[i+1:]...)
			f.Deleted = append(f.Deleted, id)
			return nil
		}
	}
	return domain.ErrQuestionNotFound
}

type FakeCategoryRepository struct{}

func (FakeCategoryRepository) GetAllCategories(ctx context.Context) ([]*domain.Category, error) {
	return []*domain.Category{{ID: 1, Type: "Science"}}, nil
}

// InlineTransactionManager runs fn without a transaction.
type InlineTransactionManager struct{}

func (InlineTransactionManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
