package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlaceholderImage is substituted when a product is saved without images,
// so Images is never empty.
const PlaceholderImage = "placeholder://no-image"

// DeletedProductName labels sales whose product has been removed.
const DeletedProductName = "Produk Dihapus"

// DefaultCategories seed the category set; user-added categories extend it.
var DefaultCategories = []string{"ATASAN", "BAWAHAN", "AKSESORIS"}

// ProductInsert is the write payload for a product.
type ProductInsert struct {
	Name        string          `db:"name" json:"name" valid:"required"`
	Category    string          `db:"category" json:"category" valid:"required"`
	Stock       int             `db:"stock" json:"stock" valid:"-"`
	BuyPrice    decimal.Decimal `db:"buy_price" json:"buyPrice" valid:"required"`
	SellPrice   decimal.Decimal `db:"sell_price" json:"sellPrice" valid:"required"`
	Images      ImageList       `db:"images" json:"images" valid:"-"`
	Description string          `db:"description" json:"description" valid:"-"`
}

// Validate enforces the write-time invariants on top of the valid tags.
func (pi *ProductInsert) Validate() error {
	if pi.Stock < 0 {
		return ErrNegativeStock
	}
	if pi.BuyPrice.IsNegative() || pi.SellPrice.IsNegative() {
		return ErrNegativePrice
	}
	if !pi.SellPrice.GreaterThan(pi.BuyPrice) {
		return ErrSellPriceBelowBuy
	}
	return nil
}

// Normalize substitutes the image placeholder so Images is never empty.
func (pi *ProductInsert) Normalize() {
	if len(pi.Images) == 0 {
		pi.Images = ImageList{PlaceholderImage}
	}
}

// Product represents the products table.
type Product struct {
	Id        int       `db:"id" json:"id"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
	ProductInsert
}

// ProductPatch is a partial update applied by bulk edit; nil fields are
// left untouched.
type ProductPatch struct {
	Category  *string          `json:"category,omitempty"`
	BuyPrice  *decimal.Decimal `json:"buyPrice,omitempty"`
	SellPrice *decimal.Decimal `json:"sellPrice,omitempty"`
	Stock     *int             `json:"stock,omitempty"`
}

// IsZero reports whether the patch changes nothing.
func (pp ProductPatch) IsZero() bool {
	return pp.Category == nil && pp.BuyPrice == nil && pp.SellPrice == nil && pp.Stock == nil
}

// StockStatus classifies a stock level the way the product list renders it.
type StockStatus string

const (
	StockHigh   StockStatus = "high"
	StockMedium StockStatus = "medium"
	StockLow    StockStatus = "low"
)

// StatusOfStock maps a stock level to its badge classification.
func StatusOfStock(stock int) StockStatus {
	switch {
	case stock >= 10:
		return StockHigh
	case stock >= 5:
		return StockMedium
	default:
		return StockLow
	}
}
