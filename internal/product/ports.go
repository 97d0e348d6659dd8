package product

import (
	"context"

	"storefront/internal/domain"
)

type Repository interface {
	List(ctx context.Context) ([]domain.Product, error)
	FindByID(ctx context.Context, id int64) (*domain.Product, error)
	Insert(ctx context.Context, p domain.Product) (int64, error)
	Update(ctx context.Context, p domain.Product) error
	Delete(ctx context.Context, id int64) error
}

type Service interface {
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id int64) (*domain.Product, error)
	Create(ctx context.Context, req ProductRequest) (*domain.Product, error)
	Update(ctx context.Context, id int64, req ProductRequest) (*domain.Product, error)
	Delete(ctx context.Context, id int64) error
}
