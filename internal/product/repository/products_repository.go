package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"storefront/internal/domain"
	apperrors "storefront/internal/errors"
	"storefront/internal/infrastructure/database"
)

const productColumns = `id, title, category, price, stock, image_url, description, created_at`

type SQLRepository struct {
	db      *sql.DB
	dialect database.Dialect
}

func NewSQLRepository(db *sql.DB, dialect database.Dialect) *SQLRepository {
	return &SQLRepository{db: db, dialect: dialect}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProduct(row rowScanner) (domain.Product, error) {
	var p domain.Product
	err := row.Scan(
		&p.ID, &p.Title, &p.Category, &p.Price, &p.Stock,
		&p.ImageURL, &p.Description, &p.CreatedAt,
	)
	return p, err
}

func (r *SQLRepository) List(ctx context.Context) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying products: %w", err)
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning product row: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating product rows: %w", err)
	}

	return products, nil
}

func (r *SQLRepository) FindByID(ctx context.Context, id int64) (*domain.Product, error) {
	query := r.dialect.Rebind(`SELECT ` + productColumns + ` FROM products WHERE id = ?`)

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("product with id %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying product by id: %w", err)
	}

	return &p, nil
}

func (r *SQLRepository) Insert(ctx context.Context, p domain.Product) (int64, error) {
	query := `INSERT INTO products (title, category, price, stock, image_url, description, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	args := []interface{}{p.Title, p.Category, p.Price, p.Stock, p.ImageURL, p.Description, p.CreatedAt}

	if r.dialect.SupportsReturning() {
		var id int64
		if err := r.db.QueryRowContext(ctx, r.dialect.Rebind(query+` RETURNING id`), args...).Scan(&id); err != nil {
			return 0, fmt.Errorf("inserting product: %w", err)
		}
		return id, nil
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("inserting product: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting last insert id: %w", err)
	}

	return id, nil
}

func (r *SQLRepository) Update(ctx context.Context, p domain.Product) error {
	query := r.dialect.Rebind(`UPDATE products
		SET title = ?, category = ?, price = ?, stock = ?, image_url = ?, description = ?
		WHERE id = ?`)

	result, err := r.db.ExecContext(ctx, query,
		p.Title, p.Category, p.Price, p.Stock, p.ImageURL, p.Description, p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating product: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("product with id %d not found", p.ID))
	}

	return nil
}

func (r *SQLRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, r.dialect.Rebind(`DELETE FROM products WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("deleting product: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("product with id %d not found", id))
	}

	return nil
}

// DecrementStockClamped lowers stock by quantity inside tx, flooring at zero.
// It does not check availability: overselling is clamped, never rejected.
// The read-modify-write happens in a single UPDATE so the row lock taken by the
// engine covers it.
func (r *SQLRepository) DecrementStockClamped(ctx context.Context, tx *sql.Tx, productID int64, quantity int) error {
	query := r.dialect.Rebind(`UPDATE products
		SET stock = CASE WHEN stock > ? THEN stock - ? ELSE 0 END
		WHERE id = ?`)

	if _, err := tx.ExecContext(ctx, query, quantity, quantity, productID); err != nil {
		return fmt.Errorf("decrementing stock for product %d: %w", productID, err)
	}

	return nil
}
