package validation

import (
	"testing"

	"trivia-api/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_ParsePage(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		raw     string
		want    int
		wantErr bool
	}{
		{"", 1, false},
		{"1", 1, false},
		{"7", 7, false},
		{"0", 0, true},
		{"-2", 0, true},
		{"two", 0, true},
		{"1.5", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := v.ParsePage(tt.raw)
			if tt.wantErr {
				assert.True(t, domain.IsCode(err, domain.CodeBadRequest))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidator_ParseID(t *testing.T) {
	v := NewValidator()

	id, err := v.ParseID("42", "id")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	_, err = v.ParseID("abc", "id")
	assert.True(t, domain.IsCode(err, domain.CodeNotFound))
}

func TestValidator_ParseQuestionRequest(t *testing.T) {
	v := NewValidator()

	t.Run("create body", func(t *testing.T) {
		req, err := v.ParseQuestionRequest([]byte(`{"question":"Q?","answer":"A","difficulty":3,"category":2}`))
		require.NoError(t, err)
		assert.Equal(t, "Q?", req.Question)
		assert.Equal(t, 3, req.Difficulty)
		assert.Equal(t, int64(2), req.Category)
		assert.False(t, v.IsSearch(req))
	})

	t.Run("search body", func(t *testing.T) {
		req, err := v.ParseQuestionRequest([]byte(`{"searchTerm":"title"}`))
		require.NoError(t, err)
		assert.True(t, v.IsSearch(req))
	})

	t.Run("blank search term is a create", func(t *testing.T) {
		req, err := v.ParseQuestionRequest([]byte(`{"searchTerm":"   "}`))
		require.NoError(t, err)
		assert.False(t, v.IsSearch(req))
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := v.ParseQuestionRequest([]byte(`{"question":`))
		assert.True(t, domain.IsCode(err, domain.CodeBadRequest))
	})

	t.Run("empty body", func(t *testing.T) {
		_, err := v.ParseQuestionRequest(nil)
		assert.True(t, domain.IsCode(err, domain.CodeBadRequest))
	})

	t.Run("wrong field type", func(t *testing.T) {
		_, err := v.ParseQuestionRequest([]byte(`{"question":"q","answer":"a","difficulty":"hard","category":1}`))
		assert.True(t, domain.IsCode(err, domain.CodeUnprocessable))
	})
}

func TestValidator_ParseQuizRequest(t *testing.T) {
	v := NewValidator()

	t.Run("valid", func(t *testing.T) {
		session, err := v.ParseQuizRequest([]byte(`{"previous_questions":[1,2],"quiz_category":{"id":1,"type":"Science"}}`))
		require.NoError(t, err)
		assert.Equal(t, []int64{1, 2}, session.PreviousQuestions)
		assert.Equal(t, domain.QuizCategory{ID: 1, Type: "Science"}, session.QuizCategory)
	})

	t.Run("all categories with empty history", func(t *testing.T) {
		session, err := v.ParseQuizRequest([]byte(`{"previous_questions":[],"quiz_category":{"id":0,"type":"click"}}`))
		require.NoError(t, err)
		assert.Empty(t, session.PreviousQuestions)
		assert.Equal(t, domain.AllCategories, session.QuizCategory.ID)
	})

	badBodies := map[string]string{
		"not json":                   `previous_questions=1`,
		"array body":                 `[1,2]`,
		"missing previous":           `{"quiz_category":{"id":1}}`,
		"null previous":              `{"previous_questions":null,"quiz_category":{"id":1}}`,
		"previous not a list":        `{"previous_questions":"1,2","quiz_category":{"id":1}}`,
		"previous with strings":      `{"previous_questions":["1"],"quiz_category":{"id":1}}`,
		"previous with fractions":    `{"previous_questions":[1.5],"quiz_category":{"id":1}}`,
		"missing category":           `{"previous_questions":[]}`,
		"category not an object":     `{"previous_questions":[],"quiz_category":1}`,
		"category without id":        `{"previous_questions":[],"quiz_category":{"type":"Art"}}`,
		"category id not an integer": `{"previous_questions":[],"quiz_category":{"id":"1"}}`,
		"negative category id":       `{"previous_questions":[],"quiz_category":{"id":-1}}`,
	}

	for name, body := range badBodies {
		t.Run(name, func(t *testing.T) {
			session, err := v.ParseQuizRequest([]byte(body))
			assert.Nil(t, session)
			assert.True(t, domain.IsCode(err, domain.CodeBadRequest), "got %v", err)
		})
	}
}
