package services

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"storefront/models"
)

func TestCheckout(t *testing.T) {
	ctx := context.Background()

	t.Run("totals price times quantity across lines", func(t *testing.T) {
		orderRepo := new(mockOrderRepo)
		cartRepo := new(mockCartRepo)
		addressRepo := new(mockAddressRepo)
		svc := NewOrderService(orderRepo, cartRepo, addressRepo)

		cartRepo.On("ListLines", ctx, 1).Return([]models.CartLine{
			{ProductID: 10, ProductName: "Americano", Price: decimal.NewFromInt(10000), Quantity: 2, Stock: 5},
			{ProductID: 11, ProductName: "Croissant", Price: decimal.NewFromInt(5000), Quantity: 1, Stock: 3},
		}, nil)
		orderRepo.On("CreateWithItems", ctx, mock.AnythingOfType("*models.Order"), mock.AnythingOfType("[]models.OrderItem")).
			Run(func(args mock.Arguments) {
				order := args.Get(1).(*models.Order)
				order.ID = 42

				items := args.Get(2).([]models.OrderItem)
				require.Len(t, items, 2)
				assert.True(t, items[0].Price.Equal(decimal.NewFromInt(10000)))
				assert.Equal(t, 2, items[0].Quantity)
				assert.True(t, items[1].Price.Equal(decimal.NewFromInt(5000)))
				assert.Equal(t, 1, items[1].Quantity)
			}).
			Return(nil)

		order, err := svc.Checkout(ctx, 1, models.CheckoutRequest{PaymentMethod: "cash"})
		require.NoError(t, err)

		assert.Equal(t, 42, order.ID)
		assert.Equal(t, models.OrderStatusPending, order.Status)
		assert.True(t, order.TotalAmount.Equal(decimal.NewFromInt(25000)),
			"expected 25000, got %s", order.TotalAmount)

		orderRepo.AssertExpectations(t)
	})

	t.Run("rejects empty cart", func(t *testing.T) {
		orderRepo := new(mockOrderRepo)
		cartRepo := new(mockCartRepo)
		svc := NewOrderService(orderRepo, cartRepo, new(mockAddressRepo))

		cartRepo.On("ListLines", ctx, 1).Return([]models.CartLine{}, nil)

		_, err := svc.Checkout(ctx, 1, models.CheckoutRequest{})
		assert.ErrorIs(t, err, ErrCartEmpty)
		orderRepo.AssertNotCalled(t, "CreateWithItems")
	})

	t.Run("rejects when a line exceeds stock", func(t *testing.T) {
		orderRepo := new(mockOrderRepo)
		cartRepo := new(mockCartRepo)
		svc := NewOrderService(orderRepo, cartRepo, new(mockAddressRepo))

		cartRepo.On("ListLines", ctx, 1).Return([]models.CartLine{
			{ProductID: 10, ProductName: "Americano", Price: decimal.NewFromInt(10000), Quantity: 4, Stock: 2},
		}, nil)

		_, err := svc.Checkout(ctx, 1, models.CheckoutRequest{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "insufficient stock")
		orderRepo.AssertNotCalled(t, "CreateWithItems")
	})

	t.Run("rejects address belonging to another user", func(t *testing.T) {
		orderRepo := new(mockOrderRepo)
		cartRepo := new(mockCartRepo)
		addressRepo := new(mockAddressRepo)
		svc := NewOrderService(orderRepo, cartRepo, addressRepo)

		cartRepo.On("ListLines", ctx, 1).Return([]models.CartLine{
			{ProductID: 10, Price: decimal.NewFromInt(10000), Quantity: 1, Stock: 5},
		}, nil)
		addressRepo.On("FindByID", ctx, 7).Return(&models.Address{ID: 7, UserID: 99}, nil)

		addressID := 7
		_, err := svc.Checkout(ctx, 1, models.CheckoutRequest{AddressID: &addressID})
		assert.ErrorIs(t, err, ErrAddressNotFound)
	})
}

func TestGetOrder(t *testing.T) {
	ctx := context.Background()

	orderRepo := new(mockOrderRepo)
	svc := NewOrderService(orderRepo, new(mockCartRepo), new(mockAddressRepo))

	orderRepo.On("FindByID", ctx, 5).Return(&models.Order{ID: 5, UserID: 1}, nil)

	t.Run("owner can read", func(t *testing.T) {
		order, err := svc.GetOrder(ctx, 5, 1, false)
		require.NoError(t, err)
		assert.Equal(t, 5, order.ID)
	})

	t.Run("other customer cannot read", func(t *testing.T) {
		_, err := svc.GetOrder(ctx, 5, 2, false)
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})

	t.Run("admin can read any order", func(t *testing.T) {
		order, err := svc.GetOrder(ctx, 5, 2, true)
		require.NoError(t, err)
		assert.Equal(t, 5, order.ID)
	})
}

func TestCancelOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("pending order cancels through restock", func(t *testing.T) {
		orderRepo := new(mockOrderRepo)
		svc := NewOrderService(orderRepo, new(mockCartRepo), new(mockAddressRepo))

		orderRepo.On("FindByID", ctx, 5).Return(&models.Order{ID: 5, UserID: 1, Status: models.OrderStatusPending}, nil)
		orderRepo.On("CancelWithRestock", ctx, 5).Return(nil)

		require.NoError(t, svc.Cancel(ctx, 5, 1, false))
		orderRepo.AssertExpectations(t)
	})

	t.Run("delivered order cannot be cancelled", func(t *testing.T) {
		orderRepo := new(mockOrderRepo)
		svc := NewOrderService(orderRepo, new(mockCartRepo), new(mockAddressRepo))

		orderRepo.On("FindByID", ctx, 5).Return(&models.Order{ID: 5, UserID: 1, Status: models.OrderStatusDelivered}, nil)

		err := svc.Cancel(ctx, 5, 1, false)
		assert.ErrorIs(t, err, ErrNotCancellable)
		orderRepo.AssertNotCalled(t, "CancelWithRestock")
	})

	t.Run("customer cannot cancel someone else's order", func(t *testing.T) {
		orderRepo := new(mockOrderRepo)
		svc := NewOrderService(orderRepo, new(mockCartRepo), new(mockAddressRepo))

		orderRepo.On("FindByID", ctx, 5).Return(&models.Order{ID: 5, UserID: 99, Status: models.OrderStatusPending}, nil)

		err := svc.Cancel(ctx, 5, 1, false)
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})
}

func TestUpdateOrderStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("pending to confirmed", func(t *testing.T) {
		orderRepo := new(mockOrderRepo)
		svc := NewOrderService(orderRepo, new(mockCartRepo), new(mockAddressRepo))

		orderRepo.On("FindByID", ctx, 5).Return(&models.Order{ID: 5, Status: models.OrderStatusPending}, nil)
		orderRepo.On("UpdateStatus", ctx, 5, models.OrderStatusConfirmed).Return(nil)

		require.NoError(t, svc.UpdateStatus(ctx, 5, models.OrderStatusConfirmed))
		orderRepo.AssertExpectations(t)
	})

	t.Run("pending cannot skip to delivered", func(t *testing.T) {
		orderRepo := new(mockOrderRepo)
		svc := NewOrderService(orderRepo, new(mockCartRepo), new(mockAddressRepo))

		orderRepo.On("FindByID", ctx, 5).Return(&models.Order{ID: 5, Status: models.OrderStatusPending}, nil)

		err := svc.UpdateStatus(ctx, 5, models.OrderStatusDelivered)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot change order status")
	})

	t.Run("cancelling a confirmed order restores stock", func(t *testing.T) {
		orderRepo := new(mockOrderRepo)
		svc := NewOrderService(orderRepo, new(mockCartRepo), new(mockAddressRepo))

		orderRepo.On("FindByID", ctx, 5).Return(&models.Order{ID: 5, Status: models.OrderStatusConfirmed}, nil)
		orderRepo.On("CancelWithRestock", ctx, 5).Return(nil)

		require.NoError(t, svc.UpdateStatus(ctx, 5, models.OrderStatusCancelled))
		orderRepo.AssertExpectations(t)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		svc := NewOrderService(new(mockOrderRepo), new(mockCartRepo), new(mockAddressRepo))

		err := svc.UpdateStatus(ctx, 5, "mislaid")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid order status")
	})
}
