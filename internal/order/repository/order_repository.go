package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"storefront/internal/domain"
	apperrors "storefront/internal/errors"
	"storefront/internal/infrastructure/database"
)

const orderColumns = `id, customer_name, phone, address, delivery_location, delivery_fee,
	subtotal, total, payment_method, payment_info, source_url, created_at`

type SQLOrderRepository struct {
	db      *sql.DB
	dialect database.Dialect
}

func NewSQLOrderRepository(db *sql.DB, dialect database.Dialect) *SQLOrderRepository {
	return &SQLOrderRepository{db: db, dialect: dialect}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanOrder(row rowScanner) (domain.Order, error) {
	var o domain.Order
	err := row.Scan(
		&o.ID, &o.CustomerName, &o.Phone, &o.Address, &o.DeliveryLocation, &o.DeliveryFee,
		&o.Subtotal, &o.Total, &o.PaymentMethod, &o.PaymentInfo, &o.SourceURL, &o.CreatedAt,
	)
	return o, err
}

func (r *SQLOrderRepository) Insert(ctx context.Context, tx *sql.Tx, order domain.Order) error {
	query := r.dialect.Rebind(`INSERT INTO orders (` + orderColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)

	_, err := tx.ExecContext(ctx, query,
		order.ID, order.CustomerName, order.Phone, order.Address, order.DeliveryLocation,
		order.DeliveryFee, order.Subtotal, order.Total, order.PaymentMethod, order.PaymentInfo,
		order.SourceURL, order.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting order: %w", err)
	}

	return nil
}

func (r *SQLOrderRepository) ListRecent(ctx context.Context, limit int) ([]domain.Order, error) {
	query := r.dialect.Rebind(`SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC LIMIT ?`)

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("querying orders: %w", err)
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning order row: %w", err)
		}
		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating order rows: %w", err)
	}

	return orders, nil
}

func (r *SQLOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	query := r.dialect.Rebind(`SELECT ` + orderColumns + ` FROM orders WHERE id = ?`)

	o, err := scanOrder(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("order with id %s not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying order by id: %w", err)
	}

	return &o, nil
}
