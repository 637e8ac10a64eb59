package service

import (
	"context"
	"errors"

	"storefront-api/internal/domain"
	"storefront-api/internal/repository"
)

// CatalogService coordinates category and product operations backed by repositories.
type CatalogService interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	GetCategory(ctx context.Context, id int64) (*domain.Category, error)
	SearchCategories(ctx context.Context, term string, page int64) ([]domain.Category, repository.Page, error)
	CreateCategory(ctx context.Context, name string) (*domain.Category, error)
	UpdateCategory(ctx context.Context, id int64, name string) error
	DeleteCategory(ctx context.Context, id int64) error

	CreateProduct(ctx context.Context, product domain.Product) (*domain.Product, error)
	SearchProducts(ctx context.Context, term string, page int64) ([]domain.Product, repository.Page, error)
	UpdateProduct(ctx context.Context, product domain.Product) error
	DeleteProduct(ctx context.Context, id int64) error
}

type catalogService struct {
	categories repository.CategoryRepository
	products   repository.ProductRepository
}

func NewCatalogService(categories repository.CategoryRepository, products repository.ProductRepository) CatalogService {
	return &catalogService{
		categories: categories,
		products:   products,
	}
}

func (s *catalogService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categories.List(ctx)
}

func (s *catalogService) GetCategory(ctx context.Context, id int64) (*domain.Category, error) {
	return s.categories.Get(ctx, id)
}

func (s *catalogService) SearchCategories(ctx context.Context, term string, page int64) ([]domain.Category, repository.Page, error) {
	return s.categories.Search(ctx, term, page)
}

func (s *catalogService) CreateCategory(ctx context.Context, name string) (*domain.Category, error) {
	if name == "" {
		return nil, errors.New("category name is required")
	}
	category := &domain.Category{Name: name}
	if _, err := s.categories.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *catalogService) UpdateCategory(ctx context.Context, id int64, name string) error {
	category, err := s.categories.Get(ctx, id)
	if err != nil {
		return err
	}
	if name != "" {
		category.Name = name
	}
	return s.categories.Update(ctx, category)
}

func (s *catalogService) DeleteCategory(ctx context.Context, id int64) error {
	return s.categories.Delete(ctx, id)
}

func (s *catalogService) CreateProduct(ctx context.Context, product domain.Product) (*domain.Product, error) {
	if product.Name == "" {
		return nil, errors.New("product name is required")
	}
	if _, err := s.categories.Get(ctx, product.CategoryID); err != nil {
		return nil, err
	}
	if _, err := s.products.Create(ctx, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *catalogService) SearchProducts(ctx context.Context, term string, page int64) ([]domain.Product, repository.Page, error) {
	return s.products.Search(ctx, term, page)
}

func (s *catalogService) UpdateProduct(ctx context.Context, product domain.Product) error {
	current, err := s.products.Get(ctx, product.ID)
	if err != nil {
		return err
	}
	if product.CategoryID != current.CategoryID {
		if _, err := s.categories.Get(ctx, product.CategoryID); err != nil {
			return err
		}
	}
	return s.products.Update(ctx, &product)
}

func (s *catalogService) DeleteProduct(ctx context.Context, id int64) error {
	return s.products.Delete(ctx, id)
}
