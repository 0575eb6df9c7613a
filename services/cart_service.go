package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"storefront/models"
	"storefront/repositories"
)

type CartService struct {
	cartRepo    repositories.CartRepository
	productRepo repositories.ProductRepository
}

func NewCartService(cartRepo repositories.CartRepository, productRepo repositories.ProductRepository) *CartService {
	return &CartService{cartRepo: cartRepo, productRepo: productRepo}
}

// Cart is the cart screen payload: lines plus the running total.
type Cart struct {
	Lines []models.CartLine `json:"lines"`
	Total decimal.Decimal   `json:"total"`
}

func (s *CartService) GetCart(ctx context.Context, userID int) (*Cart, error) {
	lines, err := s.cartRepo.ListLines(ctx, userID)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Subtotal())
	}
	return &Cart{Lines: lines, Total: total}, nil
}

func (s *CartService) AddItem(ctx context.Context, userID int, req models.CartItemRequest) error {
	product, err := s.productRepo.FindByID(ctx, req.ProductID)
	if err != nil {
		return ErrProductNotFound
	}
	if !product.IsActive {
		return ErrProductNotFound
	}
	if product.Stock < req.Quantity {
		return fmt.Errorf("insufficient stock for %s", product.Name)
	}

	return s.cartRepo.Upsert(ctx, userID, req.ProductID, req.Quantity)
}

// UpdateQuantity sets a line's quantity; zero removes the line.
func (s *CartService) UpdateQuantity(ctx context.Context, userID, productID, quantity int) error {
	if quantity <= 0 {
		return s.cartRepo.Remove(ctx, userID, productID)
	}
	return s.cartRepo.SetQuantity(ctx, userID, productID, quantity)
}

func (s *CartService) RemoveItem(ctx context.Context, userID, productID int) error {
	return s.cartRepo.Remove(ctx, userID, productID)
}

func (s *CartService) ClearCart(ctx context.Context, userID int) error {
	return s.cartRepo.Clear(ctx, userID)
}
