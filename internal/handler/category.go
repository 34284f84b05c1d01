package handler

import (
	"trivia-api/internal/dto"
	"trivia-api/internal/middleware"
	"trivia-api/internal/service"
	"trivia-api/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// CategoryHandler handles category-related HTTP requests
type CategoryHandler struct {
	categories service.CategoryService
	questions  service.QuestionService
	validator  *validation.Validator
}

// NewCategoryHandler creates a new CategoryHandler instance
func NewCategoryHandler(categories service.CategoryService, questions service.QuestionService) *CategoryHandler {
	return &CategoryHandler{
		categories: categories,
		questions:  questions,
		validator:  validation.NewValidator(),
	}
}

// GetCategories godoc
// @Summary List categories
// @Description Returns every category as an id to type map
// @Tags categories
// @Produce json
// @Success 200 {object} dto.CategoriesResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /categories [get]
func (h *CategoryHandler) GetCategories(c *fiber.Ctx) error {
	categories, err := h.categories.GetCategoryMap(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.CategoriesResponse{Success: true, Categories: categories})
}

// GetQuestionsByCategory godoc
// @Summary List questions of a category
// @Description Returns one page of the category's questions ordered by id
// @Tags categories
// @Produce json
// @Param id path int true "Category ID"
// @Param page query int false "Page number (default 1)"
// @Success 200 {object} dto.CategoryQuestionsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /categories/{id}/questions [get]
func (h *CategoryHandler) GetQuestionsByCategory(c *fiber.Ctx) error {
	categoryID, err := h.validator.ParseID(c.Params("id"), "category")
	if err != nil {
		return err
	}

	resp, err := h.questions.QuestionsByCategory(c.UserContext(), categoryID, middleware.PageFromCtx(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
