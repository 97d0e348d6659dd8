package usecase

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"storefront/internal/domain"
)

type OrderReader interface {
	ListRecent(ctx context.Context, limit int) ([]domain.Order, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Order, error)
}

type OrderItemReader interface {
	FindByOrderID(ctx context.Context, orderID uuid.UUID) ([]domain.OrderItem, error)
}

type QueryOrdersUseCase struct {
	orders OrderReader
	items  OrderItemReader
	logger *zap.Logger
}

func NewQueryOrdersUseCase(orders OrderReader, items OrderItemReader, logger *zap.Logger) *QueryOrdersUseCase {
	return &QueryOrdersUseCase{
		orders: orders,
		items:  items,
		logger: logger,
	}
}

// List returns the newest orders, at most domain.MaxListedOrders of them.
func (uc *QueryOrdersUseCase) List(ctx context.Context) ([]domain.Order, error) {
	return uc.orders.ListRecent(ctx, domain.MaxListedOrders)
}

// Get returns an order with its items. A missing order yields a NotFoundError.
func (uc *QueryOrdersUseCase) Get(ctx context.Context, id uuid.UUID) (*domain.Order, []domain.OrderItem, error) {
	order, err := uc.orders.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	items, err := uc.items.FindByOrderID(ctx, id)
	if err != nil {
		uc.logger.Error("failed to load order items", zap.String("orderId", id.String()), zap.Error(err))
		return nil, nil, err
	}

	return order, items, nil
}
