package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaxListedOrders bounds the admin order listing.
const MaxListedOrders = 200

type Order struct {
	ID               uuid.UUID
	CustomerName     *string
	Phone            *string
	Address          *string
	DeliveryLocation *string
	DeliveryFee      decimal.Decimal
	Subtotal         decimal.Decimal
	Total            decimal.Decimal
	PaymentMethod    *string
	PaymentInfo      *string
	SourceURL        *string
	CreatedAt        time.Time
}

// OrderItem is one line of an order. A nil ProductID marks a cart entry that is
// not backed by catalog inventory.
type OrderItem struct {
	ID        uuid.UUID
	OrderID   uuid.UUID
	ProductID *int64
	Title     string
	Price     decimal.Decimal
	Quantity  int
	ImageURL  *string
	Position  int
}

func (i OrderItem) TracksStock() bool {
	return i.ProductID != nil
}
