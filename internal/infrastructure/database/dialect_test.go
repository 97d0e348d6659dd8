package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDialect(t *testing.T) {
	for _, name := range []string{"postgres", "MySQL", "sqlite"} {
		d, err := ParseDialect(name)
		require.NoError(t, err, name)
		assert.NotEmpty(t, d.DriverName())
	}

	_, err := ParseDialect("oracle")
	assert.Error(t, err)
}

func TestDialect_DriverName(t *testing.T) {
	assert.Equal(t, "pgx", Postgres.DriverName())
	assert.Equal(t, "mysql", MySQL.DriverName())
	assert.Equal(t, "sqlite", SQLite.DriverName())
}

func TestDialect_Rebind(t *testing.T) {
	query := `UPDATE products SET stock = CASE WHEN stock > ? THEN stock - ? ELSE 0 END WHERE id = ?`

	assert.Equal(t,
		`UPDATE products SET stock = CASE WHEN stock > $1 THEN stock - $2 ELSE 0 END WHERE id = $3`,
		Postgres.Rebind(query),
	)
	assert.Equal(t, query, MySQL.Rebind(query))
	assert.Equal(t, query, SQLite.Rebind(query))
}

func TestDialect_Rebind_SkipsQuotedLiterals(t *testing.T) {
	query := `SELECT id FROM products WHERE title = 'why?' AND id = ?`
	assert.Equal(t, `SELECT id FROM products WHERE title = 'why?' AND id = $1`, Postgres.Rebind(query))
}

func TestDialect_SupportsReturning(t *testing.T) {
	assert.True(t, Postgres.SupportsReturning())
	assert.True(t, SQLite.SupportsReturning())
	assert.False(t, MySQL.SupportsReturning())
}
