package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"trivia-api/internal/domain"
	"trivia-api/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const categoryKey = "trivia:category:map:all"

var seededCategories = []*domain.Category{
	{ID: 1, Type: "Science"},
	{ID: 2, Type: "Art"},
}

func TestCategoryService_GetCategoryMap(t *testing.T) {
	ctx := context.Background()
	ttl := 5 * time.Minute

	t.Run("cache hit skips repository", func(t *testing.T) {
		repo := new(MockCategoryRepository)
		cache := new(MockCache)
		cache.On("Get", ctx, categoryKey).Return(`{"1":"Science","2":"Art"}`, nil).Once()

		svc := NewCategoryService(repo, cache, ttl)
		got, err := svc.GetCategoryMap(ctx)

		require.NoError(t, err)
		assert.Equal(t, dto.CategoryMap{1: "Science", 2: "Art"}, got)
		repo.AssertNotCalled(t, "GetAllCategories", mock.Anything)
		cache.AssertExpectations(t)
	})

	t.Run("cache miss loads and stores", func(t *testing.T) {
		repo := new(MockCategoryRepository)
		cache := new(MockCache)
		cache.On("Get", ctx, categoryKey).Return("", domain.ErrCacheMiss).Once()
		repo.On("GetAllCategories", ctx).Return(seededCategories, nil).Once()
		cache.On("Set", ctx, categoryKey, `{"1":"Science","2":"Art"}`, ttl).Return(nil).Once()

		svc := NewCategoryService(repo, cache, ttl)
		got, err := svc.GetCategoryMap(ctx)

		require.NoError(t, err)
		assert.Equal(t, dto.CategoryMap{1: "Science", 2: "Art"}, got)
		repo.AssertExpectations(t)
		cache.AssertExpectations(t)
	})

	t.Run("cache failure falls back to repository", func(t *testing.T) {
		repo := new(MockCategoryRepository)
		cache := new(MockCache)
		cache.On("Get", ctx, categoryKey).Return("", errors.New("connection refused")).Once()
		repo.On("GetAllCategories", ctx).Return(seededCategories, nil).Once()
		cache.On("Set", ctx, categoryKey, mock.Anything, ttl).Return(errors.New("connection refused")).Once()

		svc := NewCategoryService(repo, cache, ttl)
		got, err := svc.GetCategoryMap(ctx)

		require.NoError(t, err)
		assert.Len(t, got, 2)
		repo.AssertExpectations(t)
	})

	t.Run("malformed cache entry is ignored", func(t *testing.T) {
		repo := new(MockCategoryRepository)
		cache := new(MockCache)
		cache.On("Get", ctx, categoryKey).Return("{not json", nil).Once()
		repo.On("GetAllCategories", ctx).Return(seededCategories, nil).Once()
		cache.On("Set", ctx, categoryKey, mock.Anything, ttl).Return(nil).Once()

		svc := NewCategoryService(repo, cache, ttl)
		_, err := svc.GetCategoryMap(ctx)

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("without cache", func(t *testing.T) {
		repo := new(MockCategoryRepository)
		repo.On("GetAllCategories", ctx).Return(seededCategories, nil).Once()

		svc := NewCategoryService(repo, nil, ttl)
		got, err := svc.GetCategoryMap(ctx)

		require.NoError(t, err)
		assert.Equal(t, "Art", got[2])
	})

	t.Run("repository failure is internal", func(t *testing.T) {
		repo := new(MockCategoryRepository)
		repo.On("GetAllCategories", ctx).Return(nil, errors.New("ORA-03113: end-of-file on communication channel")).Once()

		svc := NewCategoryService(repo, nil, ttl)
		got, err := svc.GetCategoryMap(ctx)

		assert.Nil(t, got)
		assert.True(t, domain.IsCode(err, domain.CodeInternal))
	})
}

func TestCategoryService_InvalidateCategoryMap(t *testing.T) {
	ctx := context.Background()
	ttl := 5 * time.Minute

	t.Run("deletes the cached map and the next read reloads", func(t *testing.T) {
		repo := new(MockCategoryRepository)
		cache := new(MockCache)
		cache.On("Delete", ctx, categoryKey).Return(nil).Once()
		cache.On("Get", ctx, categoryKey).Return("", domain.ErrCacheMiss).Once()
		repo.On("GetAllCategories", ctx).Return([]*domain.Category{{ID: 1, Type: "Science"}, {ID: 7, Type: "Music"}}, nil).Once()
		cache.On("Set", ctx, categoryKey, `{"1":"Science","7":"Music"}`, ttl).Return(nil).Once()

		svc := NewCategoryService(repo, cache, ttl)
		require.NoError(t, svc.InvalidateCategoryMap(ctx))
		got, err := svc.GetCategoryMap(ctx)

		require.NoError(t, err)
		assert.Equal(t, dto.CategoryMap{1: "Science", 7: "Music"}, got)
		cache.AssertExpectations(t)
		repo.AssertExpectations(t)
	})

	t.Run("delete failure is internal", func(t *testing.T) {
		cache := new(MockCache)
		cache.On("Delete", ctx, categoryKey).Return(errors.New("connection refused")).Once()

		svc := NewCategoryService(new(MockCategoryRepository), cache, ttl)
		err := svc.InvalidateCategoryMap(ctx)

		assert.True(t, domain.IsCode(err, domain.CodeInternal))
	})

	t.Run("without cache is a no-op", func(t *testing.T) {
		svc := NewCategoryService(new(MockCategoryRepository), nil, ttl)

		assert.NoError(t, svc.InvalidateCategoryMap(ctx))
	})
}
