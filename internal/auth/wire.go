package auth

import (
	"database/sql"

	"go.uber.org/zap"

	"storefront/internal/auth/repository"
	"storefront/internal/config"
	"storefront/internal/infrastructure/database"
)

type Module struct {
	Service    *Service
	Controller *Controller
	Middleware *Middleware
}

func NewModule(db *sql.DB, dialect database.Dialect, cfg config.AuthConfig, logger *zap.Logger) *Module {
	logger = logger.Named("auth")

	tokens := NewTokens(cfg.JWTSecret, cfg.JWTExpiry)
	svc := NewService(repository.NewSQLUserRepository(db, dialect), tokens, logger)

	return &Module{
		Service:    svc,
		Controller: NewController(svc, logger),
		Middleware: NewMiddleware(tokens, logger),
	}
}
