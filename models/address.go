package models

import "time"

type Address struct {
	ID           int       `json:"id"`
	UserID       int       `json:"user_id"`
	ReceiverName string    `json:"receiver_name"`
	Phone        string    `json:"phone"`
	Street       string    `json:"street"`
	City         string    `json:"city"`
	PostalCode   string    `json:"postal_code"`
	IsDefault    bool      `json:"is_default"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
