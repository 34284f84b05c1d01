package service

import "trivia-api/internal/domain"

// DefaultPageSize is used when no page size is configured.
const DefaultPageSize = 10

// Paginate returns items[(page-1)*size : page*size], clamped to the slice bounds.
// A page past the end yields an empty, non-nil slice; callers decide whether that
// is a not-found condition.
func Paginate[T any](items []T, page, size int) []T {
	if size <= 0 {
		size = DefaultPageSize
	}
	// compare page counts, not offsets, so a huge page cannot overflow start
	pages := (len(items) + size - 1) / size
	if page < 1 || page-1 >= pages {
		return []T{}
	}
	start := (page - 1) * size
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

func checkPage(page int) error {
	if page < 1 {
		return domain.NewBadRequestError("page must be a positive integer").WithContext("page", page)
	}
	return nil
}
