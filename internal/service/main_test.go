package service

import (
	"fmt"
	"os"
	"testing"

	"trivia-api/internal/config"
	"trivia-api/internal/domain"
	"trivia-api/internal/logger"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(config.LoggerConfig{Level: "error", Env: "test"}); err != nil {
		panic("Failed to initialize logger for tests: " + err.Error())
	}

	exitVal := m.Run()

	_ = logger.Sync()
	os.Exit(exitVal)
}

// sampleQuestions returns questions with ids from..to in the given category.
func sampleQuestions(from, to int64, category int64) []*domain.Question {
	out := make([]*domain.Question, 0, to-from+1)
	for id := from; id <= to; id++ {
		out = append(out, &domain.Question{
			ID:         id,
			Question:   fmt.Sprintf("question %d", id),
			Answer:     fmt.Sprintf("answer %d", id),
			Difficulty: 1 + int(id%5),
			Category:   category,
		})
	}
	return out
}
