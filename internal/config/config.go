package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Log      LogConfig
	Auth     AuthConfig
	Kafka    KafkaConfig
	Admin    AdminConfig
}

type ServerConfig struct {
	Port        int
	CORSOrigins []string
}

type DatabaseConfig struct {
	Driver          string
	URL             string
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxIdleTime time.Duration
	ConnMaxLifetime time.Duration
	ConnectTimeout  time.Duration
}

type LogConfig struct {
	Level string
}

type AuthConfig struct {
	JWTSecret string
	JWTExpiry time.Duration
}

type KafkaConfig struct {
	Brokers    []string
	OrderTopic string
}

func (k KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0
}

type AdminConfig struct {
	Email    string
	Password string
}

// Load reads .env (if present), an optional file named by CONFIG_FILE, then the
// process environment. Environment variables win over the file.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("CORS_ORIGIN", "*")
	v.SetDefault("DB_DRIVER", "postgres")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "storefront")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_NAME", "storefront")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 10)
	v.SetDefault("DB_CONN_MAX_IDLE_TIME", "30s")
	v.SetDefault("DB_CONN_MAX_LIFETIME", "0s")
	v.SetDefault("DB_CONNECT_TIMEOUT", "10s")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_EXPIRY", "240h")
	v.SetDefault("KAFKA_BROKERS", "")
	v.SetDefault("KAFKA_ORDER_TOPIC", "orders.created")
	v.SetDefault("ADMIN_EMAIL", "")
	v.SetDefault("ADMIN_PASSWORD", "")

	if err := v.BindEnv("SERVER_PORT", "SERVER_PORT", "PORT"); err != nil {
		return nil, fmt.Errorf("binding SERVER_PORT: %w", err)
	}

	if file := v.GetString("CONFIG_FILE"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", file, err)
		}
	}

	idleTime, err := durationOf(v, "DB_CONN_MAX_IDLE_TIME")
	if err != nil {
		return nil, err
	}
	lifetime, err := durationOf(v, "DB_CONN_MAX_LIFETIME")
	if err != nil {
		return nil, err
	}
	connectTimeout, err := durationOf(v, "DB_CONNECT_TIMEOUT")
	if err != nil {
		return nil, err
	}
	jwtExpiry, err := durationOf(v, "JWT_EXPIRY")
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:        v.GetInt("SERVER_PORT"),
			CORSOrigins: splitList(v.GetString("CORS_ORIGIN")),
		},
		Database: DatabaseConfig{
			Driver:          strings.ToLower(v.GetString("DB_DRIVER")),
			URL:             v.GetString("DATABASE_URL"),
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			Name:            v.GetString("DB_NAME"),
			SSLMode:         v.GetString("DB_SSLMODE"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxIdleTime: idleTime,
			ConnMaxLifetime: lifetime,
			ConnectTimeout:  connectTimeout,
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Auth: AuthConfig{
			JWTSecret: v.GetString("JWT_SECRET"),
			JWTExpiry: jwtExpiry,
		},
		Kafka: KafkaConfig{
			Brokers:    splitList(v.GetString("KAFKA_BROKERS")),
			OrderTopic: v.GetString("KAFKA_ORDER_TOPIC"),
		},
		Admin: AdminConfig{
			Email:    v.GetString("ADMIN_EMAIL"),
			Password: v.GetString("ADMIN_PASSWORD"),
		},
	}

	return cfg, nil
}

func durationOf(v *viper.Viper, key string) (time.Duration, error) {
	d, err := time.ParseDuration(v.GetString(key))
	if err != nil {
		return 0, fmt.Errorf("parsing %s: %w", key, err)
	}
	return d, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if s := strings.TrimSpace(part); s != "" {
			out = append(out, s)
		}
	}
	return out
}
