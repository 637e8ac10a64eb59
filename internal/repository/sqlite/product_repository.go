package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"storefront-api/internal/domain"
	"storefront-api/internal/repository"
)

const createProductsTable = `
CREATE TABLE IF NOT EXISTS products (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	purchase_price INTEGER NOT NULL DEFAULT 0,
	selling_price INTEGER NOT NULL DEFAULT 0,
	stock INTEGER NOT NULL DEFAULT 0,
	discount INTEGER NOT NULL DEFAULT 0,
	image TEXT NOT NULL DEFAULT '',
	category_id INTEGER NOT NULL REFERENCES categories(id),
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);
`

type ProductRepository struct {
	db *sql.DB
}

func NewProductRepository(db *sql.DB) repository.ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createProductsTable); err != nil {
		return fmt.Errorf("create products table: %w", err)
	}
	return nil
}

func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) (int64, error) {
	now := time.Now().UTC()
	product.CreatedAt = now
	product.UpdatedAt = now

	res, err := r.db.ExecContext(ctx, `
INSERT INTO products (name, description, purchase_price, selling_price, stock, discount, image, category_id, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		product.Name,
		product.Description,
		product.PurchasePrice,
		product.SellingPrice,
		product.Stock,
		product.Discount,
		product.Image,
		product.CategoryID,
		product.CreatedAt,
		product.UpdatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("insert product: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("product last insert id: %w", err)
	}
	product.ID = id
	return id, nil
}

func (r *ProductRepository) Get(ctx context.Context, id int64) (*domain.Product, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT p.id, p.name, p.description, p.purchase_price, p.selling_price, p.stock, p.discount, p.image, p.category_id, p.created_at, p.updated_at,
       c.id, c.name, c.created_at, c.updated_at
FROM products p
JOIN categories c ON c.id = p.category_id
WHERE p.id = ?`,
		id,
	)
	return scanProduct(row)
}

func (r *ProductRepository) Search(ctx context.Context, term string, page int64) ([]domain.Product, repository.Page, error) {
	if page < 1 {
		page = 1
	}
	pattern := "%" + term + "%"

	var count int64
	if err := r.db.QueryRowContext(ctx, `
SELECT COUNT(*) FROM products WHERE name LIKE ? COLLATE NOCASE`,
		pattern,
	).Scan(&count); err != nil {
		return nil, repository.Page{}, fmt.Errorf("count products: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, `
SELECT p.id, p.name, p.description, p.purchase_price, p.selling_price, p.stock, p.discount, p.image, p.category_id, p.created_at, p.updated_at,
       c.id, c.name, c.created_at, c.updated_at
FROM products p
JOIN categories c ON c.id = p.category_id
WHERE p.name LIKE ? COLLATE NOCASE
ORDER BY p.name ASC
LIMIT ? OFFSET ?`,
		pattern,
		searchPageSize,
		(page-1)*searchPageSize,
	)
	if err != nil {
		return nil, repository.Page{}, fmt.Errorf("search products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, repository.Page{}, err
		}
		products = append(products, *product)
	}
	if err := rows.Err(); err != nil {
		return nil, repository.Page{}, fmt.Errorf("iterate products: %w", err)
	}
	return products, newPage(count, page), nil
}

func (r *ProductRepository) Update(ctx context.Context, product *domain.Product) error {
	product.UpdatedAt = time.Now().UTC()

	res, err := r.db.ExecContext(ctx, `
UPDATE products
SET name = ?, description = ?, purchase_price = ?, selling_price = ?, stock = ?, discount = ?, image = ?, category_id = ?, updated_at = ?
WHERE id = ?`,
		product.Name,
		product.Description,
		product.PurchasePrice,
		product.SellingPrice,
		product.Stock,
		product.Discount,
		product.Image,
		product.CategoryID,
		product.UpdatedAt,
		product.ID,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return checkAffected(res, "update product")
}

func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return checkAffected(res, "delete product")
}

func scanProduct(row interface {
	Scan(dest ...any) error
}) (*domain.Product, error) {
	var (
		product  domain.Product
		category domain.Category
	)
	if err := row.Scan(
		&product.ID,
		&product.Name,
		&product.Description,
		&product.PurchasePrice,
		&product.SellingPrice,
		&product.Stock,
		&product.Discount,
		&product.Image,
		&product.CategoryID,
		&product.CreatedAt,
		&product.UpdatedAt,
		&category.ID,
		&category.Name,
		&category.CreatedAt,
		&category.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("scan product: %w", err)
	}
	product.Category = &category
	return &product, nil
}
