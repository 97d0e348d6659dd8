package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"storefront/internal/domain"
	"storefront/internal/infrastructure/database"
)

type SQLOrderItemRepository struct {
	db      *sql.DB
	dialect database.Dialect
}

func NewSQLOrderItemRepository(db *sql.DB, dialect database.Dialect) *SQLOrderItemRepository {
	return &SQLOrderItemRepository{db: db, dialect: dialect}
}

func (r *SQLOrderItemRepository) Insert(ctx context.Context, tx *sql.Tx, item domain.OrderItem) error {
	query := r.dialect.Rebind(`INSERT INTO order_items (id, order_id, product_id, position, title, price, qty, image_url)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)

	_, err := tx.ExecContext(ctx, query,
		item.ID, item.OrderID, item.ProductID, item.Position, item.Title, item.Price, item.Quantity, item.ImageURL,
	)
	if err != nil {
		return fmt.Errorf("inserting order item: %w", err)
	}

	return nil
}

// FindByOrderID returns the items of an order in the order they were placed.
func (r *SQLOrderItemRepository) FindByOrderID(ctx context.Context, orderID uuid.UUID) ([]domain.OrderItem, error) {
	query := r.dialect.Rebind(`SELECT id, order_id, product_id, position, title, price, qty, image_url
		FROM order_items WHERE order_id = ? ORDER BY position`)

	rows, err := r.db.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("querying order items: %w", err)
	}
	defer rows.Close()

	items := []domain.OrderItem{}
	for rows.Next() {
		var it domain.OrderItem
		if err := rows.Scan(
			&it.ID, &it.OrderID, &it.ProductID, &it.Position, &it.Title, &it.Price, &it.Quantity, &it.ImageURL,
		); err != nil {
			return nil, fmt.Errorf("scanning order item row: %w", err)
		}
		items = append(items, it)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating order item rows: %w", err)
	}

	return items, nil
}
