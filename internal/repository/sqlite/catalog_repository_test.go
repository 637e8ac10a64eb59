package sqlite

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-api/internal/domain"
	"storefront-api/internal/repository"
)

func openCatalogDB(t *testing.T) (repository.CategoryRepository, repository.ProductRepository) {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	categories := NewCategoryRepository(db)
	products := NewProductRepository(db)
	require.NoError(t, categories.Init(context.Background()))
	require.NoError(t, products.Init(context.Background()))
	return categories, products
}

func TestCategoryRepository_SearchPagination(t *testing.T) {
	categories, _ := openCatalogDB(t)
	ctx := context.Background()

	for i := 0; i < 13; i++ {
		_, err := categories.Create(ctx, &domain.Category{Name: fmt.Sprintf("Snack %02d", i)})
		require.NoError(t, err)
	}
	_, err := categories.Create(ctx, &domain.Category{Name: "Beverage"})
	require.NoError(t, err)

	// Case-insensitive term match.
	page1, meta, err := categories.Search(ctx, "snack", 1)
	require.NoError(t, err)
	assert.Len(t, page1, 10)
	assert.Equal(t, int64(13), meta.Count)
	assert.Equal(t, int64(2), meta.TotalPage)
	assert.Equal(t, int64(10), meta.PerPage)
	assert.Equal(t, int64(1), meta.CurrentPage)

	page2, meta, err := categories.Search(ctx, "snack", 2)
	require.NoError(t, err)
	assert.Len(t, page2, 3)
	assert.Equal(t, int64(2), meta.CurrentPage)

	none, meta, err := categories.Search(ctx, "no-such-term", 1)
	require.NoError(t, err)
	assert.Empty(t, none)
	assert.Zero(t, meta.Count)
}

func TestCategoryRepository_UpdateDelete(t *testing.T) {
	categories, _ := openCatalogDB(t)
	ctx := context.Background()

	category := &domain.Category{Name: "Drinks"}
	id, err := categories.Create(ctx, category)
	require.NoError(t, err)

	category.Name = "Beverages"
	require.NoError(t, categories.Update(ctx, category))

	stored, err := categories.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Beverages", stored.Name)

	require.NoError(t, categories.Delete(ctx, id))
	_, err = categories.Get(ctx, id)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestProductRepository_SearchJoinsCategory(t *testing.T) {
	categories, products := openCatalogDB(t)
	ctx := context.Background()

	category := &domain.Category{Name: "Beverages"}
	categoryID, err := categories.Create(ctx, category)
	require.NoError(t, err)

	product := &domain.Product{
		Name:          "Cold Brew",
		Description:   "12oz can",
		PurchasePrice: 150,
		SellingPrice:  300,
		Stock:         24,
		CategoryID:    categoryID,
	}
	productID, err := products.Create(ctx, product)
	require.NoError(t, err)

	found, meta, err := products.Search(ctx, "cold", 1)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, int64(1), meta.Count)
	assert.Equal(t, productID, found[0].ID)
	require.NotNil(t, found[0].Category)
	assert.Equal(t, "Beverages", found[0].Category.Name)

	got, err := products.Get(ctx, productID)
	require.NoError(t, err)
	assert.Equal(t, "Cold Brew", got.Name)
	require.NotNil(t, got.Category)
	assert.Equal(t, categoryID, got.Category.ID)
}

func TestProductRepository_UpdateDelete(t *testing.T) {
	categories, products := openCatalogDB(t)
	ctx := context.Background()

	categoryID, err := categories.Create(ctx, &domain.Category{Name: "Beverages"})
	require.NoError(t, err)

	product := &domain.Product{Name: "Cold Brew", CategoryID: categoryID}
	id, err := products.Create(ctx, product)
	require.NoError(t, err)

	product.ID = id
	product.Stock = 10
	product.SellingPrice = 250
	require.NoError(t, products.Update(ctx, product))

	stored, err := products.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(10), stored.Stock)
	assert.Equal(t, int64(250), stored.SellingPrice)

	require.NoError(t, products.Delete(ctx, id))
	_, err = products.Get(ctx, id)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
