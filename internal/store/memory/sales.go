package memstore

import (
	"context"
	"database/sql"

	"github.com/shopspring/decimal"

	"github.com/oredafashion/oreda-manager/internal/entity"
)

func (ms *MemStore) GetSalesList(_ context.Context) ([]entity.Sale, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	out := make([]entity.Sale, len(ms.sales))
	copy(out, ms.sales)
	return out, nil
}

func (ms *MemStore) GetSaleById(_ context.Context, id int) (*entity.Sale, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	s := ms.findSale(id)
	if s == nil {
		return nil, entity.ErrSaleNotFound
	}
	cp := *s
	return &cp, nil
}

// RecordSale decrements stock, snapshots total and profit at the
// product's current prices and logs an outbound stock movement, all
// atomically.
func (ms *MemStore) RecordSale(_ context.Context, si *entity.SaleInsert) (*entity.Sale, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	p := ms.findProduct(si.ProductId)
	if p == nil {
		return nil, entity.ErrProductNotFound
	}
	if p.Stock < si.Quantity {
		return nil, entity.ErrInsufficientStock
	}

	qty := decimal.NewFromInt(int64(si.Quantity))
	now := ms.now()
	s := entity.Sale{
		Id:           ms.nextSaleId,
		ProductId:    si.ProductId,
		Quantity:     si.Quantity,
		SellPrice:    si.SellPrice,
		Total:        si.SellPrice.Mul(qty),
		Profit:       si.SellPrice.Sub(p.BuyPrice).Mul(qty),
		CustomerName: si.CustomerName,
		Source:       si.Source,
		Status:       entity.SaleCompleted,
		Date:         now,
	}
	ms.nextSaleId++
	ms.sales = append(ms.sales, s)

	p.Stock -= si.Quantity
	p.UpdatedAt = now
	ms.appendHistory(p.Id, entity.StockOut, si.Quantity, "Penjualan ke "+si.CustomerName, p.Stock)

	cp := s
	return &cp, nil
}

// CancelSale flips a completed sale to cancelled, restores the stock
// if the product still exists and logs an inbound movement.
func (ms *MemStore) CancelSale(_ context.Context, id int) (*entity.Sale, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	s := ms.findSale(id)
	if s == nil {
		return nil, entity.ErrSaleNotFound
	}
	if s.Status == entity.SaleCancelled {
		return nil, entity.ErrAlreadyCancelled
	}

	now := ms.now()
	s.Status = entity.SaleCancelled
	s.CancelledAt = sql.NullTime{Time: now, Valid: true}

	if p := ms.findProduct(s.ProductId); p != nil {
		p.Stock += s.Quantity
		p.UpdatedAt = now
		ms.appendHistory(p.Id, entity.StockIn, s.Quantity, "Pembatalan penjualan", p.Stock)
	}

	cp := *s
	return &cp, nil
}

func (ms *MemStore) findSale(id int) *entity.Sale {
	for i := range ms.sales {
		if ms.sales[i].Id == id {
			return &ms.sales[i]
		}
	}
	return nil
}
