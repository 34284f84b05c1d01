package middleware

import (
	"trivia-api/internal/domain"
	"trivia-api/internal/validation"

	"github.com/gofiber/fiber/v2"
)

const (
	pageLocal        = "validated_page"
	quizSessionLocal = "validated_quiz_session"
)

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(),
	}
}

// ValidatePage validates the page query parameter (default 1)
func (vm *ValidationMiddleware) ValidatePage() fiber.Handler {
	return func(c *fiber.Ctx) error {
		page, err := vm.validator.ParsePage(c.Query("page"))
		if err != nil {
			return err
		}
		c.Locals(pageLocal, page)
		return c.Next()
	}
}

// ValidateQuizRequest rejects malformed quiz bodies before the handler runs
func (vm *ValidationMiddleware) ValidateQuizRequest() fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, err := vm.validator.ParseQuizRequest(c.Body())
		if err != nil {
			return err
		}
		c.Locals(quizSessionLocal, session)
		return c.Next()
	}
}

// PageFromCtx returns the page stored by ValidatePage, or 1.
func PageFromCtx(c *fiber.Ctx) int {
	if page, ok := c.Locals(pageLocal).(int); ok {
		return page
	}
	return 1
}

// QuizSessionFromCtx returns the session stored by ValidateQuizRequest.
func QuizSessionFromCtx(c *fiber.Ctx) (*domain.QuizSession, bool) {
	session, ok := c.Locals(quizSessionLocal).(*domain.QuizSession)
	return session, ok
}
