package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"storefront/internal/config"
	"storefront/internal/infrastructure/database"
)

// SetupTestDB opens a private in-memory SQLite database with the production
// schema applied. It is closed when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", uuid.NewString())
	db, dialect, err := database.NewConnection(config.DatabaseConfig{
		Driver: "sqlite",
		URL:    dsn,
		// One connection keeps the in-memory database alive and serialises
		// writers the way a single transaction would.
		MaxOpenConns:   1,
		MaxIdleConns:   1,
		ConnectTimeout: 5 * time.Second,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := database.Migrate(context.Background(), db, dialect); err != nil {
		db.Close()
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() { db.Close() })
	return db
}

// InsertProduct seeds a catalog row and returns its id.
func InsertProduct(t *testing.T, db *sql.DB, title string, price float64, stock int) int64 {
	t.Helper()

	res, err := db.Exec(
		`INSERT INTO products (title, category, price, stock, created_at) VALUES (?, ?, ?, ?, ?)`,
		title, "General", decimal.NewFromFloat(price), stock, time.Now().UTC(),
	)
	if err != nil {
		t.Fatalf("failed to insert product: %v", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("failed to read product id: %v", err)
	}
	return id
}

// InsertProductWithID seeds a catalog row with a fixed id.
func InsertProductWithID(t *testing.T, db *sql.DB, id int64, title string, stock int) {
	t.Helper()

	_, err := db.Exec(
		`INSERT INTO products (id, title, category, price, stock, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		id, title, "General", decimal.NewFromInt(100), stock, time.Now().UTC(),
	)
	if err != nil {
		t.Fatalf("failed to insert product %d: %v", id, err)
	}
}

func ProductStock(t *testing.T, db *sql.DB, id int64) int {
	t.Helper()

	var stock int
	if err := db.QueryRow(`SELECT stock FROM products WHERE id = ?`, id).Scan(&stock); err != nil {
		t.Fatalf("failed to read stock for product %d: %v", id, err)
	}
	return stock
}

func CountRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()

	var n int
	if err := db.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s", table)).Scan(&n); err != nil {
		t.Fatalf("failed to count %s: %v", table, err)
	}
	return n
}
