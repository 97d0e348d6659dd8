package main

import (
	"context"
	"log"
	"time"

	"go.uber.org/zap"

	"storefront/internal/auth"
	"storefront/internal/config"
	"storefront/internal/infrastructure/database"
	"storefront/internal/infrastructure/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level, "storefront-migrate")
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	db, dialect, err := database.NewConnection(cfg.Database)
	if err != nil {
		zapLogger.Fatal("connecting to database", zap.Error(err))
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := database.Migrate(ctx, db, dialect); err != nil {
		zapLogger.Fatal("applying schema", zap.Error(err))
	}
	zapLogger.Info("schema applied", zap.String("driver", string(dialect)))

	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		zapLogger.Info("ADMIN_EMAIL or ADMIN_PASSWORD not set, skipping admin bootstrap")
		return
	}

	authModule := auth.NewModule(db, dialect, cfg.Auth, zapLogger)
	created, err := authModule.Service.EnsureAdmin(ctx, cfg.Admin.Email, cfg.Admin.Password)
	if err != nil {
		zapLogger.Fatal("creating admin user", zap.Error(err))
	}
	if !created {
		zapLogger.Info("admin user already exists", zap.String("email", cfg.Admin.Email))
	}
}
