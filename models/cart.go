package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem is keyed by (user_id, product_id); quantity never drops below 1,
// the row is deleted instead.
type CartItem struct {
	UserID    int       `json:"user_id"`
	ProductID int       `json:"product_id"`
	Quantity  int       `json:"quantity"`
	AddedAt   time.Time `json:"added_at"`
}

// CartLine is a cart item joined with its product, as read at checkout.
type CartLine struct {
	ProductID   int             `json:"product_id"`
	ProductName string          `json:"product_name"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	Stock       int             `json:"stock"`
	ImageURL    string          `json:"image_url"`
	AddedAt     time.Time       `json:"added_at"`
}

// Subtotal returns price x quantity for the line.
func (l CartLine) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}
