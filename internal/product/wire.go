package product

import (
	"database/sql"

	"go.uber.org/zap"

	"storefront/internal/infrastructure/database"
	"storefront/internal/product/repository"
)

func NewModule(db *sql.DB, dialect database.Dialect, logger *zap.Logger) *Controller {
	repo := repository.NewSQLRepository(db, dialect)
	svc := NewService(repo)
	return NewController(svc, logger.Named("product"))
}
