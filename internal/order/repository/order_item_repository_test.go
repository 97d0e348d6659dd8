package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain"
	"storefront/internal/infrastructure/database"
	"storefront/internal/testutil"
)

func TestNewSQLOrderItemRepository(t *testing.T) {
	db := &sql.DB{}
	repo := NewSQLOrderItemRepository(db, database.MySQL)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func TestOrderItemRepository_InsertAndFindByOrderID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	orders := NewSQLOrderRepository(db, database.SQLite)
	repo := NewSQLOrderItemRepository(db, database.SQLite)
	ctx := context.Background()

	productID := testutil.InsertProduct(t, db, "Widget", 100, 3)
	orderID := uuid.New()

	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err)
	require.NoError(t, orders.Insert(ctx, tx, domain.Order{ID: orderID, CreatedAt: time.Now().UTC()}))

	// Inserted out of position order on purpose.
	second := domain.OrderItem{
		ID: uuid.New(), OrderID: orderID, Title: "Gift wrap",
		Price: decimal.RequireFromString("2.50"), Quantity: 1, Position: 1,
	}
	first := domain.OrderItem{
		ID: uuid.New(), OrderID: orderID, ProductID: &productID, Title: "Widget",
		Price: decimal.NewFromInt(100), Quantity: 2, Position: 0,
		ImageURL: strPtr("https://cdn.example.com/w.png"),
	}
	require.NoError(t, repo.Insert(ctx, tx, second))
	require.NoError(t, repo.Insert(ctx, tx, first))
	require.NoError(t, tx.Commit())

	items, err := repo.FindByOrderID(ctx, orderID)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, first.ID, items[0].ID)
	require.NotNil(t, items[0].ProductID)
	assert.Equal(t, productID, *items[0].ProductID)
	assert.Equal(t, 2, items[0].Quantity)
	require.NotNil(t, items[0].ImageURL)

	assert.Equal(t, second.ID, items[1].ID)
	assert.Nil(t, items[1].ProductID)
	assert.Nil(t, items[1].ImageURL)
	assert.True(t, decimal.RequireFromString("2.5").Equal(items[1].Price))
}

func TestOrderItemRepository_Insert_UnknownOrder(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewSQLOrderItemRepository(db, database.SQLite)
	ctx := context.Background()

	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err)
	defer tx.Rollback()

	err = repo.Insert(ctx, tx, domain.OrderItem{
		ID: uuid.New(), OrderID: uuid.New(), Title: "Orphan", Price: decimal.Zero, Quantity: 1,
	})
	assert.Error(t, err)
}

func TestOrderItemRepository_FindByOrderID_None(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewSQLOrderItemRepository(db, database.SQLite)

	items, err := repo.FindByOrderID(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Empty(t, items)
}
