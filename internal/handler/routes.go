package handler

import (
	"trivia-api/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// Handlers groups every HTTP handler mounted by RegisterRoutes.
type Handlers struct {
	Category *CategoryHandler
	Question *QuestionHandler
	Quiz     *QuizHandler
	Health   *HealthHandler
}

// RegisterRoutes mounts the trivia API on router.
func RegisterRoutes(router fiber.Router, h Handlers) {
	vm := middleware.NewValidationMiddleware()

	router.Get("/categories", h.Category.GetCategories)
	router.Get("/categories/:id/questions", vm.ValidatePage(), h.Category.GetQuestionsByCategory)

	router.Get("/questions", vm.ValidatePage(), h.Question.ListQuestions)
	router.Post("/questions", h.Question.CreateOrSearchQuestions)
	router.Get("/questions/:id", h.Question.GetQuestion)
	router.Delete("/questions/:id", vm.ValidatePage(), h.Question.DeleteQuestion)

	router.Post("/quizzes", vm.ValidateQuizRequest(), h.Quiz.NextQuestion)

	if h.Health != nil {
		router.Get("/healthz", h.Health.Health)
	}
}
