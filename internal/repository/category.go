package repository

import (
	"context"

	"storefront-api/internal/domain"
)

// CategoryRepository defines persistence operations for Category entities.
type CategoryRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, category *domain.Category) (int64, error)
	Get(ctx context.Context, id int64) (*domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
	Search(ctx context.Context, term string, page int64) ([]domain.Category, Page, error)
	Update(ctx context.Context, category *domain.Category) error
	Delete(ctx context.Context, id int64) error
}
