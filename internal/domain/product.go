package domain

import "time"

// Product is a stock item. Prices are stored in the smallest currency unit.
type Product struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	PurchasePrice int64     `json:"purchase_price"`
	SellingPrice  int64     `json:"selling_price"`
	Stock         int64     `json:"stock"`
	Discount      int64     `json:"discount"`
	Image         string    `json:"image"`
	CategoryID    int64     `json:"category_id"`
	Category      *Category `json:"category,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
