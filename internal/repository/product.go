package repository

import (
	"context"

	"storefront-api/internal/domain"
)

// ProductRepository defines persistence operations for Product entities.
type ProductRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, product *domain.Product) (int64, error)
	Get(ctx context.Context, id int64) (*domain.Product, error)
	// Search returns products whose name matches term (case-insensitive),
	// with each product's category joined in.
	Search(ctx context.Context, term string, page int64) ([]domain.Product, Page, error)
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id int64) error
}
