package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const DefaultProductCategory = "General"

type Product struct {
	ID          int64
	Title       string
	Category    string
	Price       decimal.Decimal
	Stock       int
	ImageURL    *string
	Description *string
	CreatedAt   time.Time
}
