package database

import (
	"fmt"
	"strconv"
	"strings"
)

// Dialect captures the few SQL differences between the supported engines.
// Queries are written with '?' placeholders and rebound per dialect.
type Dialect string

const (
	Postgres Dialect = "postgres"
	MySQL    Dialect = "mysql"
	SQLite   Dialect = "sqlite"
)

func ParseDialect(driver string) (Dialect, error) {
	switch d := Dialect(strings.ToLower(driver)); d {
	case Postgres, MySQL, SQLite:
		return d, nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", driver)
	}
}

// DriverName is the database/sql driver registered for the dialect.
func (d Dialect) DriverName() string {
	switch d {
	case Postgres:
		return "pgx"
	case MySQL:
		return "mysql"
	default:
		return "sqlite"
	}
}

// SupportsReturning reports whether INSERT ... RETURNING can be used to read
// generated keys. MySQL relies on LastInsertId instead.
func (d Dialect) SupportsReturning() bool {
	return d != MySQL
}

// Rebind converts '?' placeholders to '$n' for Postgres. Placeholders inside
// single-quoted literals are left alone.
func (d Dialect) Rebind(query string) string {
	if d != Postgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	inQuote := false
	for i := 0; i < len(query); i++ {
		c := query[i]
		switch {
		case c == '\'':
			inQuote = !inQuote
			b.WriteByte(c)
		case c == '?' && !inQuote:
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
