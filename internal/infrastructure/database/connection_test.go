package database

import (
	"context"
	"net/url"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/config"
)

func TestBuildDSN_Postgres(t *testing.T) {
	dsn := buildDSN(Postgres, config.DatabaseConfig{
		Host:           "db.internal",
		Port:           5432,
		User:           "shop",
		Password:       "p@ss/word",
		Name:           "storefront",
		SSLMode:        "require",
		ConnectTimeout: 10 * time.Second,
	})

	u, err := url.Parse(dsn)
	require.NoError(t, err)
	assert.Equal(t, "postgres", u.Scheme)
	assert.Equal(t, "db.internal:5432", u.Host)
	assert.Equal(t, "/storefront", u.Path)
	pw, _ := u.User.Password()
	assert.Equal(t, "p@ss/word", pw)
	assert.Equal(t, "require", u.Query().Get("sslmode"))
	assert.Equal(t, "10", u.Query().Get("connect_timeout"))
}

func TestBuildDSN_MySQL(t *testing.T) {
	dsn := buildDSN(MySQL, config.DatabaseConfig{
		Host:     "localhost",
		Port:     3306,
		User:     "root",
		Password: "secret",
		Name:     "storefront",
	})

	assert.Contains(t, dsn, "root:secret@tcp(localhost:3306)/storefront")
	assert.Contains(t, dsn, "parseTime=true")
}

func TestNewConnection_SQLiteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shop")

	db, dialect, err := NewConnection(config.DatabaseConfig{
		Driver:         "sqlite",
		Name:           path,
		MaxOpenConns:   1,
		MaxIdleConns:   1,
		ConnectTimeout: time.Second,
	})
	require.NoError(t, err)
	defer db.Close()

	assert.Equal(t, SQLite, dialect)
	require.NoError(t, Migrate(context.Background(), db, dialect))
	// Idempotent.
	require.NoError(t, Migrate(context.Background(), db, dialect))

	var fk int
	require.NoError(t, db.QueryRow(`PRAGMA foreign_keys`).Scan(&fk))
	assert.Equal(t, 1, fk)
}

func TestNewConnection_UnsupportedDriver(t *testing.T) {
	_, _, err := NewConnection(config.DatabaseConfig{Driver: "oracle"})
	assert.Error(t, err)
}
