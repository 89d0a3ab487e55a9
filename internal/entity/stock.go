package entity

import "time"

// StockEntryType marks the direction of a stock movement.
type StockEntryType string

const (
	StockIn  StockEntryType = "in"
	StockOut StockEntryType = "out"
)

var ValidStockEntryTypes = map[StockEntryType]bool{
	StockIn:  true,
	StockOut: true,
}

// StockHistoryInsert is the write payload for a stock movement record.
// Quantity is always positive; Type carries the direction.
type StockHistoryInsert struct {
	ProductId int            `db:"product_id" json:"productId" valid:"required"`
	Type      StockEntryType `db:"type" json:"type" valid:"required"`
	Quantity  int            `db:"quantity" json:"quantity" valid:"required"`
	Note      string         `db:"note" json:"note" valid:"-"`
}

func (si *StockHistoryInsert) Validate() error {
	if si.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	if !ValidStockEntryTypes[si.Type] {
		return ErrUnknownStockType
	}
	return nil
}

// StockHistoryEntry represents the stock_history table. FinalStock is
// the product's stock level after the movement was applied.
type StockHistoryEntry struct {
	Id int `db:"id" json:"id"`
	StockHistoryInsert
	FinalStock int       `db:"final_stock" json:"finalStock"`
	Date       time.Time `db:"date" json:"date"`
}
