package handler

import (
	"trivia-api/internal/domain"
	"trivia-api/internal/middleware"
	"trivia-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

// QuizHandler handles quiz-related HTTP requests
type QuizHandler struct {
	service service.QuizService
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService) *QuizHandler {
	return &QuizHandler{
		service: service,
	}
}

// NextQuestion godoc
// @Summary Next quiz question
// @Description Returns a random question from the category (id 0 for all) that is not in previous_questions. The question field is omitted once every question has been asked.
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body dto.QuizRequest true "Quiz state"
// @Success 200 {object} dto.QuizResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /quizzes [post]
func (h *QuizHandler) NextQuestion(c *fiber.Ctx) error {
	session, ok := middleware.QuizSessionFromCtx(c)
	if !ok {
		return domain.NewBadRequestError("quiz request was not validated")
	}

	resp, err := h.service.NextQuestion(c.UserContext(), session)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
