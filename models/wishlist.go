package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type WishlistItem struct {
	UserID    int       `json:"user_id"`
	ProductID int       `json:"product_id"`
	AddedAt   time.Time `json:"added_at"`
}

// WishlistEntry is a wishlist item joined with its product for listing.
type WishlistEntry struct {
	ProductID   int             `json:"product_id"`
	ProductName string          `json:"product_name"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"image_url"`
	IsActive    bool            `json:"is_active"`
	AddedAt     time.Time       `json:"added_at"`
}
