package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
)

// Validator checks request shapes before any storage access.
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ParsePage reads the page query parameter. Empty means page 1.
func (v *Validator) ParsePage(raw string) (int, error) {
	if strings.TrimSpace(raw) == "" {
		return 1, nil
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 0, domain.NewBadRequestError("page must be a positive integer").WithContext("page", raw)
	}
	return page, nil
}

// ParseID reads an integer path parameter. A value that is not an id addresses
// no resource, so it is reported as not found.
func (v *Validator) ParseID(raw, name string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, domain.NewNotFoundError(name + " must be an integer id").WithContext(name, raw)
	}
	return id, nil
}

// ParseQuestionRequest decodes the POST /questions body. Malformed JSON is a bad
// request; well-formed JSON with wrongly typed fields is unprocessable.
func (v *Validator) ParseQuestionRequest(body []byte) (*dto.QuestionRequest, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, domain.NewBadRequestError("request body is required")
	}

	var req dto.QuestionRequest
	if err := json.Unmarshal(body, &req); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, domain.NewUnprocessableError("invalid field type", err).WithContext("field", typeErr.Field)
		}
		return nil, domain.NewBadRequestError("request body must be a JSON object")
	}
	return &req, nil
}

// IsSearch reports whether a POST /questions body asks for a search.
func (v *Validator) IsSearch(req *dto.QuestionRequest) bool {
	return strings.TrimSpace(req.SearchTerm) != ""
}

// ParseQuizRequest decodes the POST /quizzes body. previous_questions must be a
// list of integers and quiz_category an object carrying an integer id.
func (v *Validator) ParseQuizRequest(body []byte) (*domain.QuizSession, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil || fields == nil {
		return nil, domain.NewBadRequestError("request body must be a JSON object")
	}

	rawPrevious, ok := fields["previous_questions"]
	if !ok || isNull(rawPrevious) {
		return nil, domain.NewBadRequestError("previous_questions is required")
	}
	var previous []int64
	if err := json.Unmarshal(rawPrevious, &previous); err != nil {
		return nil, domain.NewBadRequestError("previous_questions must be a list of integers")
	}

	rawCategory, ok := fields["quiz_category"]
	if !ok || isNull(rawCategory) {
		return nil, domain.NewBadRequestError("quiz_category is required")
	}
	var categoryFields map[string]json.RawMessage
	if err := json.Unmarshal(rawCategory, &categoryFields); err != nil || categoryFields == nil {
		return nil, domain.NewBadRequestError("quiz_category must be an object")
	}
	rawID, ok := categoryFields["id"]
	if !ok || isNull(rawID) {
		return nil, domain.NewBadRequestError("quiz_category.id is required")
	}

	var category domain.QuizCategory
	if err := json.Unmarshal(rawCategory, &category); err != nil {
		return nil, domain.NewBadRequestError("quiz_category must carry an integer id and a string type")
	}
	if category.ID < 0 {
		return nil, domain.NewBadRequestError("quiz_category.id must not be negative")
	}

	return &domain.QuizSession{
		PreviousQuestions: previous,
		QuizCategory:      category,
	}, nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
