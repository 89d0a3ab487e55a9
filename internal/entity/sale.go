package entity

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// SaleSource is the sales channel a sale came through.
type SaleSource string

const (
	SourceOffline   SaleSource = "offline"
	SourceInstagram SaleSource = "instagram"
	SourceTiktok    SaleSource = "tiktok"
	SourceShopee    SaleSource = "shopee"
	SourceWebsite   SaleSource = "website"
	SourceWhatsapp  SaleSource = "whatsapp"
)

var ValidSaleSources = map[SaleSource]bool{
	SourceOffline:   true,
	SourceInstagram: true,
	SourceTiktok:    true,
	SourceShopee:    true,
	SourceWebsite:   true,
	SourceWhatsapp:  true,
}

// Label returns the display name used across the sales screens.
func (ss SaleSource) Label() string {
	switch ss {
	case SourceOffline:
		return "Toko Offline"
	case SourceInstagram:
		return "Instagram"
	case SourceTiktok:
		return "TikTok Shop"
	case SourceShopee:
		return "Shopee"
	case SourceWebsite:
		return "Website"
	case SourceWhatsapp:
		return "WhatsApp"
	default:
		return "Unknown"
	}
}

// SaleStatus is the lifecycle state of a sale. The only transition is
// completed to cancelled; there is no un-cancel.
type SaleStatus string

const (
	SaleCompleted SaleStatus = "completed"
	SaleCancelled SaleStatus = "cancelled"
)

// SaleInsert is the write payload for recording a sale. Total and profit
// are computed server side from the product's current buy price.
type SaleInsert struct {
	ProductId    int             `db:"product_id" json:"productId" valid:"required"`
	Quantity     int             `db:"quantity" json:"quantity" valid:"required"`
	SellPrice    decimal.Decimal `db:"sell_price" json:"sellPrice" valid:"required"`
	CustomerName string          `db:"customer_name" json:"customerName" valid:"required"`
	Source       SaleSource      `db:"source" json:"source" valid:"required"`
	CouponCode   string          `db:"-" json:"couponCode,omitempty" valid:"-"`
}

// Validate enforces the write-time invariants on a sale payload.
func (si *SaleInsert) Validate() error {
	if si.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	if si.SellPrice.IsNegative() {
		return ErrNegativePrice
	}
	if !ValidSaleSources[si.Source] {
		return ErrUnknownSource
	}
	return nil
}

// Sale represents the sales table. SellPrice, Total and Profit are
// snapshots taken at sale time and do not follow later price edits.
// ProductId is a weak reference: the product may have been deleted.
type Sale struct {
	Id           int             `db:"id" json:"id"`
	ProductId    int             `db:"product_id" json:"productId"`
	Quantity     int             `db:"quantity" json:"quantity"`
	SellPrice    decimal.Decimal `db:"sell_price" json:"sellPrice"`
	Total        decimal.Decimal `db:"total" json:"total"`
	Profit       decimal.Decimal `db:"profit" json:"profit"`
	CustomerName string          `db:"customer_name" json:"customerName"`
	Source       SaleSource      `db:"source" json:"source"`
	Status       SaleStatus      `db:"status" json:"status"`
	Date         time.Time       `db:"date" json:"date"`
	CancelledAt  sql.NullTime    `db:"cancelled_at" json:"cancelledAt"`
}
