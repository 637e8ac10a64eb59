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

const createCategoriesTable = `
CREATE TABLE IF NOT EXISTS categories (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);
`

// searchPageSize is the fixed page size for term searches.
const searchPageSize int64 = 10

type CategoryRepository struct {
	db *sql.DB
}

func NewCategoryRepository(db *sql.DB) repository.CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createCategoriesTable); err != nil {
		return fmt.Errorf("create categories table: %w", err)
	}
	return nil
}

func (r *CategoryRepository) Create(ctx context.Context, category *domain.Category) (int64, error) {
	now := time.Now().UTC()
	category.CreatedAt = now
	category.UpdatedAt = now

	res, err := r.db.ExecContext(ctx, `
INSERT INTO categories (name, created_at, updated_at)
VALUES (?, ?, ?)`,
		category.Name,
		category.CreatedAt,
		category.UpdatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("insert category: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("category last insert id: %w", err)
	}
	category.ID = id
	return id, nil
}

func (r *CategoryRepository) Get(ctx context.Context, id int64) (*domain.Category, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, name, created_at, updated_at
FROM categories
WHERE id = ?`,
		id,
	)
	return scanCategory(row)
}

func (r *CategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, name, created_at, updated_at
FROM categories
ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	return collectCategories(rows)
}

func (r *CategoryRepository) Search(ctx context.Context, term string, page int64) ([]domain.Category, repository.Page, error) {
	if page < 1 {
		page = 1
	}
	pattern := "%" + term + "%"

	var count int64
	if err := r.db.QueryRowContext(ctx, `
SELECT COUNT(*) FROM categories WHERE name LIKE ? COLLATE NOCASE`,
		pattern,
	).Scan(&count); err != nil {
		return nil, repository.Page{}, fmt.Errorf("count categories: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, `
SELECT id, name, created_at, updated_at
FROM categories
WHERE name LIKE ? COLLATE NOCASE
ORDER BY name ASC
LIMIT ? OFFSET ?`,
		pattern,
		searchPageSize,
		(page-1)*searchPageSize,
	)
	if err != nil {
		return nil, repository.Page{}, fmt.Errorf("search categories: %w", err)
	}
	defer rows.Close()

	categories, err := collectCategories(rows)
	if err != nil {
		return nil, repository.Page{}, err
	}
	return categories, newPage(count, page), nil
}

func (r *CategoryRepository) Update(ctx context.Context, category *domain.Category) error {
	category.UpdatedAt = time.Now().UTC()

	res, err := r.db.ExecContext(ctx, `
UPDATE categories
SET name = ?, updated_at = ?
WHERE id = ?`,
		category.Name,
		category.UpdatedAt,
		category.ID,
	)
	if err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	return checkAffected(res, "update category")
}

func (r *CategoryRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return checkAffected(res, "delete category")
}

func newPage(count, current int64) repository.Page {
	totalPage := (count + searchPageSize - 1) / searchPageSize
	return repository.Page{
		PerPage:     searchPageSize,
		TotalPage:   totalPage,
		Count:       count,
		CurrentPage: current,
	}
}

func collectCategories(rows *sql.Rows) ([]domain.Category, error) {
	var categories []domain.Category
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, *category)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}
	return categories, nil
}

func scanCategory(row interface {
	Scan(dest ...any) error
}) (*domain.Category, error) {
	var category domain.Category
	if err := row.Scan(
		&category.ID,
		&category.Name,
		&category.CreatedAt,
		&category.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("scan category: %w", err)
	}
	return &category, nil
}
