package services

import (
	"context"
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"storefront/logger"
	"storefront/models"
	"storefront/repositories"
)

type OrderService struct {
	orderRepo   repositories.OrderRepository
	cartRepo    repositories.CartRepository
	addressRepo repositories.AddressRepository
}

func NewOrderService(orderRepo repositories.OrderRepository, cartRepo repositories.CartRepository, addressRepo repositories.AddressRepository) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		cartRepo:    cartRepo,
		addressRepo: addressRepo,
	}
}

// Checkout snapshots the user's cart into a pending order. The repository
// inserts the order and its items, decrements stock and clears the cart in a
// single transaction.
func (s *OrderService) Checkout(ctx context.Context, userID int, req models.CheckoutRequest) (*models.Order, error) {
	lines, err := s.cartRepo.ListLines(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrCartEmpty
	}

	for _, l := range lines {
		if l.Stock < l.Quantity {
			return nil, fmt.Errorf("insufficient stock for %s", l.ProductName)
		}
	}

	if req.AddressID != nil {
		address, err := s.addressRepo.FindByID(ctx, *req.AddressID)
		if err != nil || address.UserID != userID {
			return nil, ErrAddressNotFound
		}
	}

	total := decimal.Zero
	items := make([]models.OrderItem, 0, len(lines))
	for _, l := range lines {
		total = total.Add(l.Subtotal())
		items = append(items, models.OrderItem{
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			Price:     l.Price,
		})
	}

	order := &models.Order{
		UserID:        userID,
		AddressID:     req.AddressID,
		TotalAmount:   total,
		Status:        models.OrderStatusPending,
		PaymentMethod: req.PaymentMethod,
	}

	if err := s.orderRepo.CreateWithItems(ctx, order, items); err != nil {
		return nil, err
	}

	logger.Log.Info().
		Int("order_id", order.ID).
		Int("user_id", userID).
		Str("total", total.String()).
		Msg("order created")

	return order, nil
}

func (s *OrderService) GetOrder(ctx context.Context, orderID, userID int, isAdmin bool) (*models.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, ErrOrderNotFound
	}
	if !isAdmin && order.UserID != userID {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

func (s *OrderService) GetOrderHistory(ctx context.Context, userID, page, limit int, status string) (*models.PaginationResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	orders, total, err := s.orderRepo.FindByUser(ctx, userID, page, limit, status)
	if err != nil {
		return nil, err
	}

	return &models.PaginationResponse{
		Success: true,
		Message: "Orders retrieved successfully",
		Data:    orders,
		Meta: models.MetaData{
			Page:       page,
			Limit:      limit,
			TotalItems: total,
			TotalPages: int(math.Ceil(float64(total) / float64(limit))),
		},
	}, nil
}

func (s *OrderService) GetAllOrders(ctx context.Context, page, limit int, status string) (*models.PaginationResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	orders, total, err := s.orderRepo.FindAll(ctx, page, limit, status)
	if err != nil {
		return nil, err
	}

	return &models.PaginationResponse{
		Success: true,
		Message: "Orders retrieved successfully",
		Data:    orders,
		Meta: models.MetaData{
			Page:       page,
			Limit:      limit,
			TotalItems: total,
			TotalPages: int(math.Ceil(float64(total) / float64(limit))),
		},
	}, nil
}

// Cancel cancels an order that is still pending or confirmed and puts the
// ordered quantities back into stock.
func (s *OrderService) Cancel(ctx context.Context, orderID, userID int, isAdmin bool) error {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return ErrOrderNotFound
	}
	if !isAdmin && order.UserID != userID {
		return ErrOrderNotFound
	}
	if !models.IsCancellable(order.Status) {
		return ErrNotCancellable
	}

	return s.orderRepo.CancelWithRestock(ctx, orderID)
}

// UpdateStatus applies an admin status change, enforcing the permitted
// transitions. Moving to cancelled goes through the restocking path.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID int, status string) error {
	if !models.ValidOrderStatus(status) {
		return fmt.Errorf("invalid order status: %s", status)
	}

	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return ErrOrderNotFound
	}

	if status == models.OrderStatusCancelled {
		if !models.IsCancellable(order.Status) {
			return ErrNotCancellable
		}
		return s.orderRepo.CancelWithRestock(ctx, orderID)
	}

	if !models.CanTransition(order.Status, status) {
		return fmt.Errorf("cannot change order status from %s to %s", order.Status, status)
	}

	return s.orderRepo.UpdateStatus(ctx, orderID, status)
}
