package dto

import "time"

type OrderDTO struct {
	ID               string    `json:"id"`
	CustomerName     *string   `json:"customer_name"`
	Phone            *string   `json:"phone"`
	Address          *string   `json:"address"`
	DeliveryLocation *string   `json:"delivery_location"`
	DeliveryFee      float64   `json:"delivery_fee"`
	Subtotal         float64   `json:"subtotal"`
	Total            float64   `json:"total"`
	PaymentMethod    *string   `json:"payment_method"`
	PaymentInfo      *string   `json:"payment_info"`
	SourceURL        *string   `json:"source_url"`
	CreatedAt        time.Time `json:"created_at"`
}

type OrderItemDTO struct {
	ID        string  `json:"id"`
	OrderID   string  `json:"order_id"`
	ProductID *int64  `json:"product_id"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Qty       int     `json:"qty"`
	ImageURL  *string `json:"image_url"`
}

type OrderDetailResponse struct {
	Order OrderDTO       `json:"order"`
	Items []OrderItemDTO `json:"items"`
}
