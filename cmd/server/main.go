package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"storefront/internal/auth"
	"storefront/internal/config"
	"storefront/internal/infrastructure/database"
	"storefront/internal/infrastructure/kafka"
	"storefront/internal/infrastructure/logger"
	"storefront/internal/order"
	"storefront/internal/product"
	"storefront/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level, "storefront")
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	if cfg.Auth.JWTSecret == "" {
		zapLogger.Warn("JWT_SECRET is not set, protected endpoints will answer 500")
	}

	db, dialect, err := database.NewConnection(cfg.Database)
	if err != nil {
		zapLogger.Fatal("connecting to database", zap.Error(err))
	}
	defer db.Close()
	zapLogger.Info("database connected", zap.String("driver", string(dialect)))

	publisher := kafka.NewPublisher(cfg.Kafka, zapLogger.Named("kafka"))
	defer publisher.Close()

	router := server.NewRouter(server.Handlers{
		Auth:     auth.NewModule(db, dialect, cfg.Auth, zapLogger),
		Products: product.NewModule(db, dialect, zapLogger),
		Orders:   order.NewModule(db, dialect, publisher, zapLogger),
	}, cfg.Server.CORSOrigins, zapLogger)

	srv := server.New(cfg.Server.Port, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Error("server shutdown failed", zap.Error(err))
		return
	}

	zapLogger.Info("server stopped gracefully")
}
