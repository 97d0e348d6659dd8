package controller

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"storefront/internal/domain"
	"storefront/internal/dto"
	apperrors "storefront/internal/errors"
	"storefront/internal/httpjson"
)

type PlaceOrderUseCase interface {
	Execute(ctx context.Context, req dto.CreateOrderRequest) (*dto.PlacementResult, error)
}

type QueryOrdersUseCase interface {
	List(ctx context.Context) ([]domain.Order, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Order, []domain.OrderItem, error)
}

type OrderController struct {
	placeOrder  PlaceOrderUseCase
	queryOrders QueryOrdersUseCase
	logger      *zap.Logger
}

func NewOrderController(placeOrder PlaceOrderUseCase, queryOrders QueryOrdersUseCase, logger *zap.Logger) *OrderController {
	return &OrderController{
		placeOrder:  placeOrder,
		queryOrders: queryOrders,
		logger:      logger,
	}
}

func (c *OrderController) Create(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.CreateOrderRequest
	if err := httpjson.Decode(r, &req); err != nil {
		logger.Warn("invalid order body", zap.Error(err))
		httpjson.WriteError(w, err, logger)
		return
	}

	result, err := c.placeOrder.Execute(r.Context(), req)
	if err != nil {
		httpjson.WriteError(w, err, logger)
		return
	}

	logger.Info("order created", zap.String("orderId", result.OrderID.String()), zap.Int("itemCount", result.ItemCount))
	httpjson.Write(w, http.StatusCreated, dto.CreateOrderResponse{
		ID:        result.OrderID.String(),
		CreatedAt: result.CreatedAt,
	}, logger)
}

func (c *OrderController) List(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	orders, err := c.queryOrders.List(r.Context())
	if err != nil {
		httpjson.WriteError(w, err, logger)
		return
	}

	out := make([]dto.OrderDTO, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderDTO(o))
	}
	httpjson.Write(w, http.StatusOK, out, logger)
}

func (c *OrderController) Get(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		logger.Warn("invalid order id in path", zap.Error(err))
		httpjson.WriteError(w, apperrors.NewValidationError("invalid order id", apperrors.ValidationDetail{
			Field:   "id",
			Message: "id must be a UUID",
		}), logger)
		return
	}

	order, items, err := c.queryOrders.Get(r.Context(), id)
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			httpjson.WriteMessage(w, http.StatusNotFound, "Not found", logger)
			return
		}
		httpjson.WriteError(w, err, logger)
		return
	}

	resp := dto.OrderDetailResponse{
		Order: toOrderDTO(*order),
		Items: make([]dto.OrderItemDTO, 0, len(items)),
	}
	for _, it := range items {
		resp.Items = append(resp.Items, toOrderItemDTO(it))
	}
	httpjson.Write(w, http.StatusOK, resp, logger)
}

func toOrderDTO(o domain.Order) dto.OrderDTO {
	return dto.OrderDTO{
		ID:               o.ID.String(),
		CustomerName:     o.CustomerName,
		Phone:            o.Phone,
		Address:          o.Address,
		DeliveryLocation: o.DeliveryLocation,
		DeliveryFee:      o.DeliveryFee.InexactFloat64(),
		Subtotal:         o.Subtotal.InexactFloat64(),
		Total:            o.Total.InexactFloat64(),
		PaymentMethod:    o.PaymentMethod,
		PaymentInfo:      o.PaymentInfo,
		SourceURL:        o.SourceURL,
		CreatedAt:        o.CreatedAt,
	}
}

func toOrderItemDTO(it domain.OrderItem) dto.OrderItemDTO {
	return dto.OrderItemDTO{
		ID:        it.ID.String(),
		OrderID:   it.OrderID.String(),
		ProductID: it.ProductID,
		Title:     it.Title,
		Price:     it.Price.InexactFloat64(),
		Qty:       it.Quantity,
		ImageURL:  it.ImageURL,
	}
}
