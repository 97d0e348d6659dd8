package usecase

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"storefront/internal/domain"
	"storefront/internal/dto"
	"storefront/internal/validation"
)

type OrderPlacer interface {
	Place(ctx context.Context, order domain.Order, items []domain.OrderItem) (*dto.PlacementResult, error)
}

type PlaceOrderUseCase struct {
	placer OrderPlacer
	logger *zap.Logger
}

func NewPlaceOrderUseCase(placer OrderPlacer, logger *zap.Logger) *PlaceOrderUseCase {
	return &PlaceOrderUseCase{
		placer: placer,
		logger: logger,
	}
}

// Execute validates the whole request before anything is written, then hands
// the mapped order to the placement transaction.
func (uc *PlaceOrderUseCase) Execute(ctx context.Context, req dto.CreateOrderRequest) (*dto.PlacementResult, error) {
	if err := validateOrder(req); err != nil {
		uc.logger.Info("order rejected", zap.Error(err))
		return nil, err
	}

	order, items := toDomain(req)
	return uc.placer.Place(ctx, order, items)
}

func validateOrder(req dto.CreateOrderRequest) error {
	var v validation.Collector

	nonNegative(&v, "delivery_fee", req.DeliveryFee, false)
	nonNegative(&v, "subtotal", req.Subtotal, true)
	nonNegative(&v, "total", req.Total, true)

	if len(req.Items) == 0 {
		v.Add("items", "at least one item is required")
	}

	for i, it := range req.Items {
		if it.ProductID != nil && *it.ProductID <= 0 {
			v.Add(validation.ItemField("items", i, "product_id"), "product_id must be a positive integer")
		}
		if it.Title == "" {
			v.Add(validation.ItemField("items", i, "title"), "title is required")
		}
		nonNegative(&v, validation.ItemField("items", i, "price"), it.Price, true)

		qtyField := validation.ItemField("items", i, "qty")
		switch {
		case !it.Qty.Valid:
			v.Add(qtyField, "qty is required")
		case !it.Qty.Decimal.IsInteger():
			v.Add(qtyField, "qty must be an integer")
		case !it.Qty.Decimal.IsPositive():
			v.Add(qtyField, "qty must be positive")
		case it.Qty.Decimal.GreaterThan(decimal.NewFromInt32(1<<31 - 1)):
			v.Add(qtyField, "qty is too large")
		}

		if !validation.OptionalURL(it.ImageURL) {
			v.Add(validation.ItemField("items", i, "image_url"), "image_url must be a valid URL")
		}
	}

	return v.Err("invalid data")
}

func nonNegative(v *validation.Collector, field string, d decimal.NullDecimal, required bool) {
	if !d.Valid {
		if required {
			v.Add(field, field+" is required")
		}
		return
	}
	validation.Money(v, field, d.Decimal)
}

func toDomain(req dto.CreateOrderRequest) (domain.Order, []domain.OrderItem) {
	order := domain.Order{
		CustomerName:     optional(req.CustomerName),
		Phone:            optional(req.Phone),
		Address:          optional(req.Address),
		DeliveryLocation: optional(req.DeliveryLocation),
		DeliveryFee:      decimal.Zero,
		Subtotal:         req.Subtotal.Decimal,
		Total:            req.Total.Decimal,
		PaymentMethod:    optional(req.PaymentMethod),
		PaymentInfo:      optional(req.PaymentInfo),
		SourceURL:        optional(req.SourceURL),
	}
	if req.DeliveryFee.Valid {
		order.DeliveryFee = req.DeliveryFee.Decimal
	}

	items := make([]domain.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, domain.OrderItem{
			ProductID: it.ProductID,
			Title:     it.Title,
			Price:     it.Price.Decimal,
			Quantity:  int(it.Qty.Decimal.IntPart()),
			ImageURL:  optional(it.ImageURL),
		})
	}

	return order, items
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
