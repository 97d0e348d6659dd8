package dto

import (
	"time"

	apperrors "storefront/internal/errors"
)

type CreateOrderResponse struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error   string                       `json:"error"`
	Details []apperrors.ValidationDetail `json:"details,omitempty"`
}
