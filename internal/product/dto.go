package product

import (
	"time"

	"github.com/shopspring/decimal"

	"storefront/internal/domain"
)

// ProductRequest is used for both create and partial update. On update a nil or
// invalid field keeps the stored value.
type ProductRequest struct {
	Title       *string             `json:"title"`
	Category    *string             `json:"category"`
	Price       decimal.NullDecimal `json:"price"`
	Stock       decimal.NullDecimal `json:"stock"`
	ImageURL    *string             `json:"image_url"`
	Description *string             `json:"description"`
}

type ProductDTO struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	ImageURL    *string   `json:"image_url"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func toDTO(p domain.Product) ProductDTO {
	return ProductDTO{
		ID:          p.ID,
		Title:       p.Title,
		Category:    p.Category,
		Price:       p.Price.InexactFloat64(),
		Stock:       p.Stock,
		ImageURL:    p.ImageURL,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
	}
}
