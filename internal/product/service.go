package product

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"storefront/internal/domain"
	"storefront/internal/validation"
)

var maxStock = decimal.NewFromInt(math.MaxInt32)

type productService struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) Service {
	return &productService{repo: repo, now: time.Now}
}

func (s *productService) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx)
}

func (s *productService) Get(ctx context.Context, id int64) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *productService) Create(ctx context.Context, req ProductRequest) (*domain.Product, error) {
	var v validation.Collector
	if req.Title == nil || strings.TrimSpace(*req.Title) == "" {
		v.Add("title", "Title is required")
	}
	if !req.Price.Valid {
		v.Add("price", "price is required")
	}
	checkFields(&v, req)
	if err := v.Err("invalid data"); err != nil {
		return nil, err
	}

	p := domain.Product{
		Title:       *req.Title,
		Category:    domain.DefaultProductCategory,
		Price:       req.Price.Decimal,
		Stock:       0,
		ImageURL:    nonEmpty(req.ImageURL),
		Description: nonEmpty(req.Description),
		CreatedAt:   s.now().UTC(),
	}
	if req.Category != nil && *req.Category != "" {
		p.Category = *req.Category
	}
	if req.Stock.Valid {
		p.Stock = int(req.Stock.Decimal.IntPart())
	}

	id, err := s.repo.Insert(ctx, p)
	if err != nil {
		return nil, err
	}
	p.ID = id

	return &p, nil
}

func (s *productService) Update(ctx context.Context, id int64, req ProductRequest) (*domain.Product, error) {
	var v validation.Collector
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		v.Add("title", "Title is required")
	}
	checkFields(&v, req)
	if err := v.Err("invalid data"); err != nil {
		return nil, err
	}

	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		p.Title = *req.Title
	}
	if req.Category != nil {
		p.Category = *req.Category
	}
	if req.Price.Valid {
		p.Price = req.Price.Decimal
	}
	if req.Stock.Valid {
		p.Stock = int(req.Stock.Decimal.IntPart())
	}
	if req.ImageURL != nil {
		p.ImageURL = nonEmpty(req.ImageURL)
	}
	if req.Description != nil {
		p.Description = nonEmpty(req.Description)
	}

	if err := s.repo.Update(ctx, *p); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *productService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// checkFields validates the optional fields shared by create and update.
func checkFields(v *validation.Collector, req ProductRequest) {
	if req.Price.Valid {
		validation.Money(v, "price", req.Price.Decimal)
	}
	if req.Stock.Valid {
		switch {
		case !req.Stock.Decimal.IsInteger():
			v.Add("stock", "stock must be an integer")
		case req.Stock.Decimal.LessThan(decimal.Zero):
			v.Add("stock", "stock must be non-negative")
		case req.Stock.Decimal.GreaterThan(maxStock):
			v.Add("stock", "stock is too large")
		}
	}
	if req.ImageURL != nil && !validation.OptionalURL(*req.ImageURL) {
		v.Add("image_url", "image_url must be a valid URL")
	}
}

func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
