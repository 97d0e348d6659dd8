package dto

import "time"

// OrderCreatedEvent is published after an order transaction commits.
type OrderCreatedEvent struct {
	OrderID   string    `json:"order_id"`
	CreatedAt time.Time `json:"created_at"`
	Subtotal  string    `json:"subtotal"`
	Total     string    `json:"total"`
	ItemCount int       `json:"item_count"`
}
