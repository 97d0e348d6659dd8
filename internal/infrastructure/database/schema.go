package database

import (
	"context"
	"database/sql"
	"fmt"
)

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            BIGSERIAL PRIMARY KEY,
		email         TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role          TEXT NOT NULL DEFAULT 'staff',
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id          BIGSERIAL PRIMARY KEY,
		title       TEXT NOT NULL,
		category    TEXT NOT NULL DEFAULT 'General',
		price       NUMERIC(12,2) NOT NULL DEFAULT 0 CHECK (price >= 0),
		stock       INTEGER NOT NULL DEFAULT 0 CHECK (stock >= 0),
		image_url   TEXT,
		description TEXT,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id                UUID PRIMARY KEY,
		customer_name     TEXT,
		phone             TEXT,
		address           TEXT,
		delivery_location TEXT,
		delivery_fee      NUMERIC(12,2) NOT NULL DEFAULT 0 CHECK (delivery_fee >= 0),
		subtotal          NUMERIC(12,2) NOT NULL CHECK (subtotal >= 0),
		total             NUMERIC(12,2) NOT NULL CHECK (total >= 0),
		payment_method    TEXT,
		payment_info      TEXT,
		source_url        TEXT,
		created_at        TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders (created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS order_items (
		id         UUID PRIMARY KEY,
		order_id   UUID NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
		product_id BIGINT REFERENCES products(id) ON DELETE SET NULL,
		position   INTEGER NOT NULL,
		title      TEXT NOT NULL,
		price      NUMERIC(12,2) NOT NULL CHECK (price >= 0),
		qty        INTEGER NOT NULL CHECK (qty > 0),
		image_url  TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS idx_order_items_order_id ON order_items (order_id)`,
}

var mysqlSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		email         VARCHAR(255) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		role          VARCHAR(32) NOT NULL DEFAULT 'staff',
		created_at    DATETIME(6) NOT NULL DEFAULT CURRENT_TIMESTAMP(6)
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id          BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		title       VARCHAR(255) NOT NULL,
		category    VARCHAR(100) NOT NULL DEFAULT 'General',
		price       DECIMAL(12,2) NOT NULL DEFAULT 0 CHECK (price >= 0),
		stock       INT NOT NULL DEFAULT 0 CHECK (stock >= 0),
		image_url   TEXT,
		description TEXT,
		created_at  DATETIME(6) NOT NULL DEFAULT CURRENT_TIMESTAMP(6)
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id                CHAR(36) NOT NULL PRIMARY KEY,
		customer_name     VARCHAR(255),
		phone             VARCHAR(64),
		address           TEXT,
		delivery_location TEXT,
		delivery_fee      DECIMAL(12,2) NOT NULL DEFAULT 0 CHECK (delivery_fee >= 0),
		subtotal          DECIMAL(12,2) NOT NULL CHECK (subtotal >= 0),
		total             DECIMAL(12,2) NOT NULL CHECK (total >= 0),
		payment_method    VARCHAR(64),
		payment_info      TEXT,
		source_url        TEXT,
		created_at        DATETIME(6) NOT NULL DEFAULT CURRENT_TIMESTAMP(6),
		INDEX idx_orders_created_at (created_at)
	)`,
	`CREATE TABLE IF NOT EXISTS order_items (
		id         CHAR(36) NOT NULL PRIMARY KEY,
		order_id   CHAR(36) NOT NULL,
		product_id BIGINT NULL,
		position   INT NOT NULL,
		title      VARCHAR(255) NOT NULL,
		price      DECIMAL(12,2) NOT NULL CHECK (price >= 0),
		qty        INT NOT NULL CHECK (qty > 0),
		image_url  TEXT,
		FOREIGN KEY (order_id) REFERENCES orders(id) ON DELETE CASCADE,
		FOREIGN KEY (product_id) REFERENCES products(id) ON DELETE SET NULL,
		INDEX idx_order_items_order_id (order_id)
	)`,
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            INTEGER PRIMARY KEY AUTOINCREMENT,
		email         TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role          TEXT NOT NULL DEFAULT 'staff',
		created_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		title       TEXT NOT NULL,
		category    TEXT NOT NULL DEFAULT 'General',
		price       NUMERIC NOT NULL DEFAULT 0 CHECK (price >= 0),
		stock       INTEGER NOT NULL DEFAULT 0 CHECK (stock >= 0),
		image_url   TEXT,
		description TEXT,
		created_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id                TEXT PRIMARY KEY,
		customer_name     TEXT,
		phone             TEXT,
		address           TEXT,
		delivery_location TEXT,
		delivery_fee      NUMERIC NOT NULL DEFAULT 0 CHECK (delivery_fee >= 0),
		subtotal          NUMERIC NOT NULL CHECK (subtotal >= 0),
		total             NUMERIC NOT NULL CHECK (total >= 0),
		payment_method    TEXT,
		payment_info      TEXT,
		source_url        TEXT,
		created_at        DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders (created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS order_items (
		id         TEXT PRIMARY KEY,
		order_id   TEXT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
		product_id INTEGER REFERENCES products(id) ON DELETE SET NULL,
		position   INTEGER NOT NULL,
		title      TEXT NOT NULL,
		price      NUMERIC NOT NULL CHECK (price >= 0),
		qty        INTEGER NOT NULL CHECK (qty > 0),
		image_url  TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS idx_order_items_order_id ON order_items (order_id)`,
}

// Migrate creates the storefront tables if they do not exist yet.
func Migrate(ctx context.Context, db *sql.DB, dialect Dialect) error {
	var statements []string
	switch dialect {
	case Postgres:
		statements = postgresSchema
	case MySQL:
		statements = mysqlSchema
	case SQLite:
		statements = sqliteSchema
	default:
		return fmt.Errorf("no schema for dialect %q", dialect)
	}

	for i, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("applying schema statement %d: %w", i+1, err)
		}
	}
	return nil
}
