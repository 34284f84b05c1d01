package handler

import (
	"trivia-api/internal/middleware"
	"trivia-api/internal/service"
	"trivia-api/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// QuestionHandler handles question-related HTTP requests
type QuestionHandler struct {
	service   service.QuestionService
	validator *validation.Validator
}

// NewQuestionHandler creates a new QuestionHandler instance
func NewQuestionHandler(service service.QuestionService) *QuestionHandler {
	return &QuestionHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

// ListQuestions godoc
// @Summary List questions
// @Description Returns one page of questions ordered by id, with the category map
// @Tags questions
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Success 200 {object} dto.QuestionPageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /questions [get]
func (h *QuestionHandler) ListQuestions(c *fiber.Ctx) error {
	resp, err := h.service.ListQuestions(c.UserContext(), middleware.PageFromCtx(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetQuestion godoc
// @Summary Get a question
// @Tags questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} dto.QuestionDetailResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /questions/{id} [get]
func (h *QuestionHandler) GetQuestion(c *fiber.Ctx) error {
	id, err := h.validator.ParseID(c.Params("id"), "id")
	if err != nil {
		return err
	}

	resp, err := h.service.GetQuestion(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// DeleteQuestion godoc
// @Summary Delete a question
// @Description Deletes the question and returns the requested page of the remaining ones
// @Tags questions
// @Produce json
// @Param id path int true "Question ID"
// @Param page query int false "Page number (default 1)"
// @Success 200 {object} dto.DeleteQuestionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /questions/{id} [delete]
func (h *QuestionHandler) DeleteQuestion(c *fiber.Ctx) error {
	id, err := h.validator.ParseID(c.Params("id"), "id")
	if err != nil {
		return err
	}

	resp, err := h.service.DeleteQuestion(c.UserContext(), id, middleware.PageFromCtx(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// CreateOrSearchQuestions godoc
// @Summary Create or search questions
// @Description A non-blank searchTerm searches question text case-insensitively; otherwise the body creates a question
// @Tags questions
// @Accept json
// @Produce json
// @Param request body dto.QuestionRequest true "Search term or new question"
// @Param page query int false "Search result page (default 1)"
// @Success 200 {object} dto.SearchQuestionsResponse "search"
// @Success 200 {object} dto.CreateQuestionResponse "create"
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /questions [post]
func (h *QuestionHandler) CreateOrSearchQuestions(c *fiber.Ctx) error {
	req, err := h.validator.ParseQuestionRequest(c.Body())
	if err != nil {
		return err
	}

	// page only applies to search; a create ignores it
	if h.validator.IsSearch(req) {
		page, err := h.validator.ParsePage(c.Query("page"))
		if err != nil {
			return err
		}
		resp, err := h.service.SearchQuestions(c.UserContext(), req.SearchTerm, page)
		if err != nil {
			return err
		}
		return c.JSON(resp)
	}

	resp, err := h.service.CreateQuestion(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
