package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/models"
)

func TestAddToWishlist(t *testing.T) {
	ctx := context.Background()

	t.Run("adds active product", func(t *testing.T) {
		wishlistRepo := new(mockWishlistRepo)
		productRepo := new(mockProductRepo)
		svc := NewWishlistService(wishlistRepo, productRepo)

		productRepo.On("FindByID", ctx, 10).Return(&models.Product{ID: 10, IsActive: true}, nil)
		wishlistRepo.On("Add", ctx, 1, 10).Return(true, nil)

		require.NoError(t, svc.AddToWishlist(ctx, 1, 10))
	})

	t.Run("duplicate add is a conflict", func(t *testing.T) {
		wishlistRepo := new(mockWishlistRepo)
		productRepo := new(mockProductRepo)
		svc := NewWishlistService(wishlistRepo, productRepo)

		productRepo.On("FindByID", ctx, 10).Return(&models.Product{ID: 10, IsActive: true}, nil)
		wishlistRepo.On("Add", ctx, 1, 10).Return(false, nil)

		err := svc.AddToWishlist(ctx, 1, 10)
		assert.ErrorIs(t, err, ErrAlreadyInWishlist)
	})

	t.Run("inactive product rejected", func(t *testing.T) {
		wishlistRepo := new(mockWishlistRepo)
		productRepo := new(mockProductRepo)
		svc := NewWishlistService(wishlistRepo, productRepo)

		productRepo.On("FindByID", ctx, 10).Return(&models.Product{ID: 10, IsActive: false}, nil)

		err := svc.AddToWishlist(ctx, 1, 10)
		assert.ErrorIs(t, err, ErrProductNotFound)
		wishlistRepo.AssertNotCalled(t, "Add")
	})
}
