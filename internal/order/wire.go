package order

import (
	"database/sql"
	"time"

	"go.uber.org/zap"

	"storefront/internal/infrastructure/database"
	"storefront/internal/order/controller"
	orderrepo "storefront/internal/order/repository"
	"storefront/internal/order/service"
	"storefront/internal/order/usecase"
	productrepo "storefront/internal/product/repository"
)

const placementTxTimeout = 5 * time.Second

func NewModule(db *sql.DB, dialect database.Dialect, publisher service.EventPublisher, logger *zap.Logger) *controller.OrderController {
	logger = logger.Named("order")

	orderRepo := orderrepo.NewSQLOrderRepository(db, dialect)
	orderItemRepo := orderrepo.NewSQLOrderItemRepository(db, dialect)
	productRepo := productrepo.NewSQLRepository(db, dialect)

	placementSvc := service.NewPlacementService(
		db,
		orderRepo,
		orderItemRepo,
		productRepo,
		publisher,
		logger,
		placementTxTimeout,
	)

	return controller.NewOrderController(
		usecase.NewPlaceOrderUseCase(placementSvc, logger),
		usecase.NewQueryOrdersUseCase(orderRepo, orderItemRepo, logger),
		logger,
	)
}
