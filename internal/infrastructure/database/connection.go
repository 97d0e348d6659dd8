package database

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	_ "github.com/glebarez/go-sqlite"
	"github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"

	"storefront/internal/config"
)

// NewConnection opens the pool for the configured driver and verifies it with a
// ping bounded by the connect timeout.
func NewConnection(cfg config.DatabaseConfig) (*sql.DB, Dialect, error) {
	dialect, err := ParseDialect(cfg.Driver)
	if err != nil {
		return nil, "", err
	}

	dsn := cfg.URL
	if dsn == "" {
		dsn = buildDSN(dialect, cfg)
	}

	db, err := sql.Open(dialect.DriverName(), dsn)
	if err != nil {
		return nil, "", fmt.Errorf("opening database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, "", fmt.Errorf("pinging database: %w", err)
	}

	return db, dialect, nil
}

func buildDSN(dialect Dialect, cfg config.DatabaseConfig) string {
	switch dialect {
	case Postgres:
		q := url.Values{}
		q.Set("sslmode", cfg.SSLMode)
		if cfg.ConnectTimeout > 0 {
			q.Set("connect_timeout", strconv.Itoa(int(cfg.ConnectTimeout.Seconds())))
		}
		u := url.URL{
			Scheme:   "postgres",
			User:     url.UserPassword(cfg.User, cfg.Password),
			Host:     net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
			Path:     "/" + cfg.Name,
			RawQuery: q.Encode(),
		}
		return u.String()
	case MySQL:
		mc := mysql.NewConfig()
		mc.User = cfg.User
		mc.Passwd = cfg.Password
		mc.Net = "tcp"
		mc.Addr = net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
		mc.DBName = cfg.Name
		mc.ParseTime = true
		// RowsAffected reports matched rows, as the other engines do.
		mc.ClientFoundRows = true
		mc.Loc = time.UTC
		mc.Timeout = cfg.ConnectTimeout
		return mc.FormatDSN()
	default:
		return fmt.Sprintf("file:%s.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", cfg.Name)
	}
}
