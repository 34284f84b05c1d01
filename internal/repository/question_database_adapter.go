package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"trivia-api/internal/domain"
	"trivia-api/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

const questionColumns = `id "id",
		question "question",
		answer "answer",
		difficulty "difficulty",
		category "category"`

// QuestionDatabaseAdapter implements domain.QuestionRepository using sqlx.DB
type QuestionDatabaseAdapter struct {
	db *sqlx.DB
}

// NewQuestionDatabaseAdapter creates a new instance of QuestionDatabaseAdapter
func NewQuestionDatabaseAdapter(db *sqlx.DB) domain.QuestionRepository {
	return &QuestionDatabaseAdapter{db: db}
}

// ListAll implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) ListAll(ctx context.Context) ([]*domain.Question, error) {
	query := `SELECT ` + questionColumns + `
	FROM questions
	ORDER BY id ASC`
	return a.selectQuestions(ctx, "list questions", query)
}

// Search implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) Search(ctx context.Context, term string) ([]*domain.Question, error) {
	query := `SELECT ` + questionColumns + `
	FROM questions
	WHERE LOWER(question) LIKE :1 ESCAPE '\'
	ORDER BY id ASC`
	pattern := "%" + escapeLike(strings.ToLower(term)) + "%"
	return a.selectQuestions(ctx, "search questions", query, pattern)
}

// ListByCategory implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) ListByCategory(ctx context.Context, categoryID int64) ([]*domain.Question, error) {
	query := `SELECT ` + questionColumns + `
	FROM questions
	WHERE category = :1
	ORDER BY id ASC`
	return a.selectQuestions(ctx, "list questions by category", query, categoryID)
}

// RandomByCategory implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) RandomByCategory(ctx context.Context, categoryID int64) ([]*domain.Question, error) {
	if categoryID == domain.AllCategories {
		query := `SELECT ` + questionColumns + `
	FROM questions
	ORDER BY DBMS_RANDOM.VALUE`
		return a.selectQuestions(ctx, "draw random questions", query)
	}

	query := `SELECT ` + questionColumns + `
	FROM questions
	WHERE category = :1
	ORDER BY DBMS_RANDOM.VALUE`
	return a.selectQuestions(ctx, "draw random questions by category", query, categoryID)
}

// GetByID implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) GetByID(ctx context.Context, id int64) (*domain.Question, error) {
	var modelQuestion models.Question
	query := `SELECT ` + questionColumns + `
	FROM questions
	WHERE id = :1`

	err := GetExecutor(ctx, a.db).GetContext(ctx, &modelQuestion, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrQuestionNotFound
		}
		return nil, fmt.Errorf("failed to get question by ID %d: %w", id, err)
	}
	return toDomainQuestion(&modelQuestion), nil
}

// Create implements domain.QuestionRepository. Run it inside a transaction so the
// sequence draw and the insert commit together.
func (a *QuestionDatabaseAdapter) Create(ctx context.Context, question *domain.Question) error {
	if question == nil {
		return fmt.Errorf("cannot save nil question")
	}
	exec := GetExecutor(ctx, a.db)

	var id int64
	if err := exec.GetContext(ctx, &id, `SELECT questions_seq.NEXTVAL FROM dual`); err != nil {
		return fmt.Errorf("failed to allocate question id: %w", err)
	}

	modelQuestion := toModelQuestion(question)
	modelQuestion.ID = id

	query := `INSERT INTO questions (
		id, question, answer, difficulty, category
	) VALUES (
		:1, :2, :3, :4, :5
	)`
	_, err := exec.ExecContext(ctx, query,
		modelQuestion.ID,
		modelQuestion.Question,
		modelQuestion.Answer,
		modelQuestion.Difficulty,
		modelQuestion.Category,
	)
	if err != nil {
		return fmt.Errorf("failed to save question: %w", err)
	}

	question.ID = modelQuestion.ID
	return nil
}

// Delete implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) Delete(ctx context.Context, id int64) error {
	result, err := GetExecutor(ctx, a.db).ExecContext(ctx, `DELETE FROM questions WHERE id = :1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete question %d: %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.ErrQuestionNotFound
	}
	return nil
}

func (a *QuestionDatabaseAdapter) selectQuestions(ctx context.Context, op, query string, args ...interface{}) ([]*domain.Question, error) {
	var modelQuestions []models.Question
	if err := GetExecutor(ctx, a.db).SelectContext(ctx, &modelQuestions, query, args...); err != nil {
		return nil, fmt.Errorf("failed to %s: %w", op, err)
	}

	questions := make([]*domain.Question, len(modelQuestions))
	for i := range modelQuestions {
		questions[i] = toDomainQuestion(&modelQuestions[i])
	}
	return questions, nil
}

// escapeLike escapes LIKE wildcards so the term matches literally.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func toDomainQuestion(m *models.Question) *domain.Question {
	return &domain.Question{
		ID:         m.ID,
		Question:   m.Question,
		Answer:     m.Answer,
		Difficulty: m.Difficulty,
		Category:   m.Category,
	}
}

func toModelQuestion(d *domain.Question) *models.Question {
	return &models.Question{
		ID:         d.ID,
		Question:   d.Question,
		Answer:     d.Answer,
		Difficulty: d.Difficulty,
		Category:   d.Category,
	}
}
