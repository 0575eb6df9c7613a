package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"storefront/models"
)

func TestCreateReview(t *testing.T) {
	ctx := context.Background()

	t.Run("first review is recorded", func(t *testing.T) {
		reviewRepo := new(mockReviewRepo)
		productRepo := new(mockProductRepo)
		svc := NewReviewService(reviewRepo, productRepo)

		productRepo.On("FindByID", ctx, 10).Return(&models.Product{ID: 10, IsActive: true}, nil)
		reviewRepo.On("Exists", ctx, 1, 10).Return(false, nil)
		reviewRepo.On("Create", ctx, mock.AnythingOfType("*models.Review")).Return(nil)

		review, err := svc.CreateReview(ctx, 1, 10, models.CreateReviewRequest{Rating: 4, Comment: "solid"})
		require.NoError(t, err)
		assert.Equal(t, 4, review.Rating)
		reviewRepo.AssertExpectations(t)
	})

	t.Run("second review for the same product is a conflict", func(t *testing.T) {
		reviewRepo := new(mockReviewRepo)
		productRepo := new(mockProductRepo)
		svc := NewReviewService(reviewRepo, productRepo)

		productRepo.On("FindByID", ctx, 10).Return(&models.Product{ID: 10, IsActive: true}, nil)
		reviewRepo.On("Exists", ctx, 1, 10).Return(true, nil)

		_, err := svc.CreateReview(ctx, 1, 10, models.CreateReviewRequest{Rating: 5})
		assert.ErrorIs(t, err, ErrAlreadyReviewed)
		reviewRepo.AssertNotCalled(t, "Create")
	})

	t.Run("unknown product rejected", func(t *testing.T) {
		productRepo := new(mockProductRepo)
		svc := NewReviewService(new(mockReviewRepo), productRepo)

		productRepo.On("FindByID", ctx, 10).Return(nil, assert.AnError)

		_, err := svc.CreateReview(ctx, 1, 10, models.CreateReviewRequest{Rating: 3})
		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}

func TestDeleteReview(t *testing.T) {
	ctx := context.Background()

	t.Run("author deletes own review", func(t *testing.T) {
		reviewRepo := new(mockReviewRepo)
		svc := NewReviewService(reviewRepo, new(mockProductRepo))

		reviewRepo.On("FindByID", ctx, 8).Return(&models.Review{ID: 8, UserID: 1}, nil)
		reviewRepo.On("Delete", ctx, 8).Return(nil)

		require.NoError(t, svc.DeleteReview(ctx, 8, 1, false))
	})

	t.Run("other customer cannot delete", func(t *testing.T) {
		reviewRepo := new(mockReviewRepo)
		svc := NewReviewService(reviewRepo, new(mockProductRepo))

		reviewRepo.On("FindByID", ctx, 8).Return(&models.Review{ID: 8, UserID: 1}, nil)

		err := svc.DeleteReview(ctx, 8, 2, false)
		assert.ErrorIs(t, err, ErrReviewNotFound)
		reviewRepo.AssertNotCalled(t, "Delete")
	})

	t.Run("admin deletes any review", func(t *testing.T) {
		reviewRepo := new(mockReviewRepo)
		svc := NewReviewService(reviewRepo, new(mockProductRepo))

		reviewRepo.On("FindByID", ctx, 8).Return(&models.Review{ID: 8, UserID: 1}, nil)
		reviewRepo.On("Delete", ctx, 8).Return(nil)

		require.NoError(t, svc.DeleteReview(ctx, 8, 2, true))
	})
}
