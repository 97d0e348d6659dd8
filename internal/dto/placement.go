package dto

import (
	"time"

	"github.com/google/uuid"
)

type PlacementResult struct {
	OrderID   uuid.UUID
	CreatedAt time.Time
	ItemCount int
}
