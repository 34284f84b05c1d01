package domain

import "context"

// CategoryRepository defines the interface for category persistence
type CategoryRepository interface {
	// GetAllCategories returns every stored category
	GetAllCategories(ctx context.Context) ([]*Category, error)
}

// QuestionRepository defines the interface for question persistence
type QuestionRepository interface {
	// ListAll returns every question ordered by id ascending
	ListAll(ctx context.Context) ([]*Question, error)

	// Search returns questions whose text contains term, ignoring case, ordered by id
	Search(ctx context.Context, term string) ([]*Question, error)

	// ListByCategory returns the questions of one category ordered by id
	ListByCategory(ctx context.Context, categoryID int64) ([]*Question, error)

	// RandomByCategory returns the pool for a category in random order.
	// AllCategories draws from the whole table.
	RandomByCategory(ctx context.Context, categoryID int64) ([]*Question, error)

	// GetByID returns ErrQuestionNotFound when the id is absent
	GetByID(ctx context.Context, id int64) (*Question, error)

	// Create assigns a new id to question and persists it
	Create(ctx context.Context, question *Question) error

	// Delete returns ErrQuestionNotFound when the id is absent
	Delete(ctx context.Context, id int64) error
}

// TransactionManager runs fn inside a transaction carried by the context.
// The transaction commits when fn returns nil and rolls back otherwise.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
