package dto

import "github.com/shopspring/decimal"

// CreateOrderRequest is the public checkout payload. Numeric fields accept JSON
// numbers or numeric strings; a null or missing value leaves Valid false.
type CreateOrderRequest struct {
	CustomerName     string              `json:"customer_name"`
	Phone            string              `json:"phone"`
	Address          string              `json:"address"`
	DeliveryLocation string              `json:"delivery_location"`
	DeliveryFee      decimal.NullDecimal `json:"delivery_fee"`
	Subtotal         decimal.NullDecimal `json:"subtotal"`
	Total            decimal.NullDecimal `json:"total"`
	PaymentMethod    string              `json:"payment_method"`
	PaymentInfo      string              `json:"payment_info"`
	SourceURL        string              `json:"source_url"`
	Items            []CreateOrderItem   `json:"items"`
}

type CreateOrderItem struct {
	ProductID *int64              `json:"product_id"`
	Title     string              `json:"title"`
	Price     decimal.NullDecimal `json:"price"`
	Qty       decimal.NullDecimal `json:"qty"`
	ImageURL  string              `json:"image_url"`
}
