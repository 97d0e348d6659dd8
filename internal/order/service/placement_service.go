package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"storefront/internal/domain"
	"storefront/internal/dto"
	apperrors "storefront/internal/errors"
)

// ErrOrderSaveFailed is the only text a caller sees when placement fails.
const ErrOrderSaveFailed = "Order save failed"

type TransactionManager interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

type OrderRepository interface {
	Insert(ctx context.Context, tx *sql.Tx, order domain.Order) error
}

type OrderItemRepository interface {
	Insert(ctx context.Context, tx *sql.Tx, item domain.OrderItem) error
}

type StockRepository interface {
	DecrementStockClamped(ctx context.Context, tx *sql.Tx, productID int64, quantity int) error
}

type EventPublisher interface {
	PublishOrderCreated(ctx context.Context, event dto.OrderCreatedEvent) error
}

type PlacementService struct {
	db            TransactionManager
	orderRepo     OrderRepository
	orderItemRepo OrderItemRepository
	stockRepo     StockRepository
	publisher     EventPublisher
	logger        *zap.Logger
	txTimeout     time.Duration
	now           func() time.Time
}

func NewPlacementService(
	db TransactionManager,
	orderRepo OrderRepository,
	orderItemRepo OrderItemRepository,
	stockRepo StockRepository,
	publisher EventPublisher,
	logger *zap.Logger,
	txTimeout time.Duration,
) *PlacementService {
	return &PlacementService{
		db:            db,
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
		stockRepo:     stockRepo,
		publisher:     publisher,
		logger:        logger,
		txTimeout:     txTimeout,
		now:           time.Now,
	}
}

// Place stores the order and its items and applies the clamped stock decrement
// for every item that references a product, all in one transaction. Any failure
// rolls everything back and is reported as a PersistenceError.
func (s *PlacementService) Place(ctx context.Context, order domain.Order, items []domain.OrderItem) (*dto.PlacementResult, error) {
	order.ID = uuid.New()
	order.CreatedAt = s.now().UTC()

	txCtx, cancel := context.WithTimeout(ctx, s.txTimeout)
	defer cancel()

	tx, err := s.db.BeginTx(txCtx, nil)
	if err != nil {
		s.logger.Error("failed to begin transaction", zap.Error(err))
		return nil, apperrors.NewPersistenceError(ErrOrderSaveFailed, err)
	}
	// No-op once committed.
	defer tx.Rollback()

	if err := s.orderRepo.Insert(txCtx, tx, order); err != nil {
		s.logger.Error("failed to insert order", zap.String("orderId", order.ID.String()), zap.Error(err))
		return nil, apperrors.NewPersistenceError(ErrOrderSaveFailed, err)
	}

	for i, item := range items {
		item.ID = uuid.New()
		item.OrderID = order.ID
		item.Position = i

		if err := s.orderItemRepo.Insert(txCtx, tx, item); err != nil {
			s.logger.Error("failed to insert order item",
				zap.String("orderId", order.ID.String()), zap.Int("position", i), zap.Error(err))
			return nil, apperrors.NewPersistenceError(ErrOrderSaveFailed, err)
		}

		if !item.TracksStock() {
			continue
		}
		if err := s.stockRepo.DecrementStockClamped(txCtx, tx, *item.ProductID, item.Quantity); err != nil {
			s.logger.Error("failed to decrement stock",
				zap.String("orderId", order.ID.String()), zap.Int64("productId", *item.ProductID), zap.Error(err))
			return nil, apperrors.NewPersistenceError(ErrOrderSaveFailed, err)
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("failed to commit transaction", zap.String("orderId", order.ID.String()), zap.Error(err))
		return nil, apperrors.NewPersistenceError(ErrOrderSaveFailed, err)
	}

	s.logger.Info("order placed",
		zap.String("orderId", order.ID.String()),
		zap.Int("itemCount", len(items)),
		zap.String("total", order.Total.String()))

	s.publish(ctx, order, len(items))

	return &dto.PlacementResult{
		OrderID:   order.ID,
		CreatedAt: order.CreatedAt,
		ItemCount: len(items),
	}, nil
}

func (s *PlacementService) publish(ctx context.Context, order domain.Order, itemCount int) {
	if s.publisher == nil {
		return
	}

	event := dto.OrderCreatedEvent{
		OrderID:   order.ID.String(),
		CreatedAt: order.CreatedAt,
		Subtotal:  order.Subtotal.String(),
		Total:     order.Total.String(),
		ItemCount: itemCount,
	}
	if err := s.publisher.PublishOrderCreated(ctx, event); err != nil {
		s.logger.Warn("failed to publish order created event", zap.String("orderId", event.OrderID), zap.Error(err))
	}
}
