package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"storefront/internal/domain"
	apperrors "storefront/internal/errors"
)

type mockOrderReader struct {
	ListRecentFunc func(ctx context.Context, limit int) ([]domain.Order, error)
	FindByIDFunc   func(ctx context.Context, id uuid.UUID) (*domain.Order, error)
}

func (m *mockOrderReader) ListRecent(ctx context.Context, limit int) ([]domain.Order, error) {
	return m.ListRecentFunc(ctx, limit)
}

func (m *mockOrderReader) FindByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	return m.FindByIDFunc(ctx, id)
}

type mockOrderItemReader struct {
	FindByOrderIDFunc func(ctx context.Context, orderID uuid.UUID) ([]domain.OrderItem, error)
}

func (m *mockOrderItemReader) FindByOrderID(ctx context.Context, orderID uuid.UUID) ([]domain.OrderItem, error) {
	return m.FindByOrderIDFunc(ctx, orderID)
}

func TestList_UsesLimit(t *testing.T) {
	orders := &mockOrderReader{
		ListRecentFunc: func(ctx context.Context, limit int) ([]domain.Order, error) {
			assert.Equal(t, domain.MaxListedOrders, limit)
			return []domain.Order{{ID: uuid.New()}}, nil
		},
	}
	uc := NewQueryOrdersUseCase(orders, &mockOrderItemReader{}, zap.NewNop())

	got, err := uc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestGet_ReturnsItems(t *testing.T) {
	id := uuid.New()
	orders := &mockOrderReader{
		FindByIDFunc: func(ctx context.Context, got uuid.UUID) (*domain.Order, error) {
			return &domain.Order{ID: got}, nil
		},
	}
	items := &mockOrderItemReader{
		FindByOrderIDFunc: func(ctx context.Context, orderID uuid.UUID) ([]domain.OrderItem, error) {
			return []domain.OrderItem{{OrderID: orderID, Title: "Widget"}}, nil
		},
	}
	uc := NewQueryOrdersUseCase(orders, items, zap.NewNop())

	order, lines, err := uc.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, order.ID)
	require.Len(t, lines, 1)
	assert.Equal(t, id, lines[0].OrderID)
}

func TestGet_NotFoundSkipsItems(t *testing.T) {
	orders := &mockOrderReader{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
			return nil, apperrors.NewNotFoundError("order not found")
		},
	}
	items := &mockOrderItemReader{
		FindByOrderIDFunc: func(ctx context.Context, orderID uuid.UUID) ([]domain.OrderItem, error) {
			t.Fatal("items must not be loaded for a missing order")
			return nil, nil
		},
	}
	uc := NewQueryOrdersUseCase(orders, items, zap.NewNop())

	_, _, err := uc.Get(context.Background(), uuid.New())
	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestGet_ItemLoadFailure(t *testing.T) {
	orders := &mockOrderReader{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
			return &domain.Order{ID: id}, nil
		},
	}
	items := &mockOrderItemReader{
		FindByOrderIDFunc: func(ctx context.Context, orderID uuid.UUID) ([]domain.OrderItem, error) {
			return nil, errors.New("connection reset")
		},
	}
	uc := NewQueryOrdersUseCase(orders, items, zap.NewNop())

	order, lines, err := uc.Get(context.Background(), uuid.New())
	assert.Error(t, err)
	assert.Nil(t, order)
	assert.Nil(t, lines)
}
