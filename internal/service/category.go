package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"trivia-api/internal/cache"
	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
	"trivia-api/internal/logger"

	"go.uber.org/zap"
)

// CategoryService defines the interface for category-related operations
type CategoryService interface {
	GetCategoryMap(ctx context.Context) (dto.CategoryMap, error)
	// InvalidateCategoryMap drops the cached map so the next read goes to the database.
	InvalidateCategoryMap(ctx context.Context) error
}

type categoryService struct {
	repo  domain.CategoryRepository
	cache domain.Cache
	ttl   time.Duration
}

// NewCategoryService creates a category service. categoryCache may be nil, in which case
// every call reads from the repository.
func NewCategoryService(repo domain.CategoryRepository, categoryCache domain.Cache, ttl time.Duration) CategoryService {
	if categoryCache == nil {
		logger.Get().Warn("CategoryService initialized without cache, reading categories from the database on every call")
	}
	return &categoryService{repo: repo, cache: categoryCache, ttl: ttl}
}

func categoryMapKey() string {
	return cache.GenerateCacheKey("category", "map", "all")
}

// GetCategoryMap returns id -> type for every category. Categories are seeded out
// of band, so the map is cached for the configured TTL.
func (s *categoryService) GetCategoryMap(ctx context.Context) (dto.CategoryMap, error) {
	if cached, ok := s.fromCache(ctx); ok {
		return cached, nil
	}

	categories, err := s.repo.GetAllCategories(ctx)
	if err != nil {
		return nil, domain.NewInternalError("failed to load categories", err)
	}

	result := make(dto.CategoryMap, len(categories))
	for _, c := range categories {
		result[c.ID] = c.Type
	}

	s.toCache(ctx, result)
	return result, nil
}

// InvalidateCategoryMap is a no-op without a cache.
func (s *categoryService) InvalidateCategoryMap(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	key := categoryMapKey()
	if err := s.cache.Delete(ctx, key); err != nil {
		return domain.NewInternalError("failed to invalidate category cache", err).WithContext("key", key)
	}
	logger.Get().Info("Category cache invalidated", zap.String("key", key))
	return nil
}

func (s *categoryService) fromCache(ctx context.Context) (dto.CategoryMap, bool) {
	if s.cache == nil {
		return nil, false
	}
	key := categoryMapKey()
	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrCacheMiss) {
			logger.Get().Warn("Category cache read failed, falling back to database", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}

	var result dto.CategoryMap
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		logger.Get().Warn("Discarding malformed category cache entry", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return result, true
}

func (s *categoryService) toCache(ctx context.Context, categories dto.CategoryMap) {
	if s.cache == nil {
		return
	}
	key := categoryMapKey()
	data, err := json.Marshal(categories)
	if err != nil {
		logger.Get().Error("Failed to marshal category map for caching", zap.Error(err))
		return
	}
	if err := s.cache.Set(ctx, key, string(data), s.ttl); err != nil {
		logger.Get().Warn("Category cache write failed", zap.String("key", key), zap.Error(err))
	}
}
