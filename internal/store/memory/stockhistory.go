package memstore

import (
	"context"

	"github.com/oredafashion/oreda-manager/internal/entity"
)

func (ms *MemStore) GetStockHistory(_ context.Context) ([]entity.StockHistoryEntry, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	out := make([]entity.StockHistoryEntry, len(ms.history))
	copy(out, ms.history)
	return out, nil
}

func (ms *MemStore) AddStockEntry(_ context.Context, ei *entity.StockHistoryInsert) (*entity.StockHistoryEntry, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	p := ms.findProduct(ei.ProductId)
	if p == nil {
		return nil, entity.ErrProductNotFound
	}
	e := ms.appendHistory(ei.ProductId, ei.Type, ei.Quantity, ei.Note, p.Stock)
	cp := e
	return &cp, nil
}

// appendHistory must be called with the mutex held. finalStock is the
// product's stock level after the movement.
func (ms *MemStore) appendHistory(productId int, typ entity.StockEntryType, qty int, note string, finalStock int) entity.StockHistoryEntry {
	e := entity.StockHistoryEntry{
		Id: ms.nextEntryId,
		StockHistoryInsert: entity.StockHistoryInsert{
			ProductId: productId,
			Type:      typ,
			Quantity:  qty,
			Note:      note,
		},
		FinalStock: finalStock,
		Date:       ms.now(),
	}
	ms.nextEntryId++
	ms.history = append(ms.history, e)
	return e
}
