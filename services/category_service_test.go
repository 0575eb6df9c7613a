package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/models"
)

func TestDeleteCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("leaf category deletes", func(t *testing.T) {
		repo := new(mockCategoryRepo)
		svc := NewCategoryService(repo)

		repo.On("FindByID", ctx, 3).Return(&models.Category{ID: 3, Name: "Espresso"}, nil)
		repo.On("CountChildren", ctx, 3).Return(0, nil)
		repo.On("CountProducts", ctx, 3).Return(0, nil)
		repo.On("Delete", ctx, 3).Return(nil)

		require.NoError(t, svc.DeleteCategory(ctx, 3))
		repo.AssertExpectations(t)
	})

	t.Run("blocked when children or products remain", func(t *testing.T) {
		repo := new(mockCategoryRepo)
		svc := NewCategoryService(repo)

		repo.On("FindByID", ctx, 3).Return(&models.Category{ID: 3, Name: "Coffee"}, nil)
		repo.On("CountChildren", ctx, 3).Return(2, nil)
		repo.On("CountProducts", ctx, 3).Return(7, nil)

		err := svc.DeleteCategory(ctx, 3)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "2 sub-categories")
		assert.Contains(t, err.Error(), "7 products")
		repo.AssertNotCalled(t, "Delete")
	})
}

func TestUpdateCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("category cannot parent itself", func(t *testing.T) {
		repo := new(mockCategoryRepo)
		svc := NewCategoryService(repo)

		repo.On("FindByID", ctx, 3).Return(&models.Category{ID: 3, Name: "Coffee"}, nil)

		self := 3
		_, err := svc.UpdateCategory(ctx, 3, models.UpdateCategoryRequest{ParentID: &self})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "own parent")
	})
}
