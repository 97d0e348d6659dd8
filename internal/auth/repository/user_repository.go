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

type SQLUserRepository struct {
	db      *sql.DB
	dialect database.Dialect
}

func NewSQLUserRepository(db *sql.DB, dialect database.Dialect) *SQLUserRepository {
	return &SQLUserRepository{db: db, dialect: dialect}
}

func (r *SQLUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := r.dialect.Rebind(`SELECT id, email, password_hash, role, created_at FROM users WHERE email = ?`)

	var u domain.User
	err := r.db.QueryRowContext(ctx, query, email).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("user %s not found", email))
	}
	if err != nil {
		return nil, fmt.Errorf("querying user by email: %w", err)
	}

	return &u, nil
}

func (r *SQLUserRepository) Insert(ctx context.Context, u domain.User) (int64, error) {
	query := `INSERT INTO users (email, password_hash, role, created_at) VALUES (?, ?, ?, ?)`
	args := []interface{}{u.Email, u.PasswordHash, u.Role, u.CreatedAt}

	if r.dialect.SupportsReturning() {
		var id int64
		if err := r.db.QueryRowContext(ctx, r.dialect.Rebind(query+` RETURNING id`), args...).Scan(&id); err != nil {
			return 0, fmt.Errorf("inserting user: %w", err)
		}
		return id, nil
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("inserting user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting last insert id: %w", err)
	}

	return id, nil
}
