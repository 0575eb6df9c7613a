package services

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/models"
)

func TestGetCart(t *testing.T) {
	ctx := context.Background()

	cartRepo := new(mockCartRepo)
	svc := NewCartService(cartRepo, new(mockProductRepo))

	cartRepo.On("ListLines", ctx, 1).Return([]models.CartLine{
		{ProductID: 10, Price: decimal.NewFromInt(15000), Quantity: 2},
		{ProductID: 11, Price: decimal.RequireFromString("7500.50"), Quantity: 1},
	}, nil)

	cart, err := svc.GetCart(ctx, 1)
	require.NoError(t, err)

	assert.Len(t, cart.Lines, 2)
	assert.True(t, cart.Total.Equal(decimal.RequireFromString("37500.50")),
		"expected 37500.50, got %s", cart.Total)
}

func TestAddItem(t *testing.T) {
	ctx := context.Background()

	t.Run("adds when stock suffices", func(t *testing.T) {
		cartRepo := new(mockCartRepo)
		productRepo := new(mockProductRepo)
		svc := NewCartService(cartRepo, productRepo)

		productRepo.On("FindByID", ctx, 10).Return(&models.Product{ID: 10, Name: "Latte", Stock: 5, IsActive: true}, nil)
		cartRepo.On("Upsert", ctx, 1, 10, 2).Return(nil)

		require.NoError(t, svc.AddItem(ctx, 1, models.CartItemRequest{ProductID: 10, Quantity: 2}))
		cartRepo.AssertExpectations(t)
	})

	t.Run("rejects more than stock", func(t *testing.T) {
		cartRepo := new(mockCartRepo)
		productRepo := new(mockProductRepo)
		svc := NewCartService(cartRepo, productRepo)

		productRepo.On("FindByID", ctx, 10).Return(&models.Product{ID: 10, Name: "Latte", Stock: 1, IsActive: true}, nil)

		err := svc.AddItem(ctx, 1, models.CartItemRequest{ProductID: 10, Quantity: 3})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "insufficient stock")
		cartRepo.AssertNotCalled(t, "Upsert")
	})

	t.Run("rejects inactive product", func(t *testing.T) {
		productRepo := new(mockProductRepo)
		svc := NewCartService(new(mockCartRepo), productRepo)

		productRepo.On("FindByID", ctx, 10).Return(&models.Product{ID: 10, Stock: 5, IsActive: false}, nil)

		err := svc.AddItem(ctx, 1, models.CartItemRequest{ProductID: 10, Quantity: 1})
		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}

func TestUpdateQuantity(t *testing.T) {
	ctx := context.Background()

	t.Run("positive quantity is set", func(t *testing.T) {
		cartRepo := new(mockCartRepo)
		svc := NewCartService(cartRepo, new(mockProductRepo))

		cartRepo.On("SetQuantity", ctx, 1, 10, 3).Return(nil)

		require.NoError(t, svc.UpdateQuantity(ctx, 1, 10, 3))
		cartRepo.AssertExpectations(t)
	})

	t.Run("zero removes the line", func(t *testing.T) {
		cartRepo := new(mockCartRepo)
		svc := NewCartService(cartRepo, new(mockProductRepo))

		cartRepo.On("Remove", ctx, 1, 10).Return(nil)

		require.NoError(t, svc.UpdateQuantity(ctx, 1, 10, 0))
		cartRepo.AssertNotCalled(t, "SetQuantity")
	})
}
