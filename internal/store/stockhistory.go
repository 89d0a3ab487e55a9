package store

import (
	"context"
	"fmt"

	"github.com/oredafashion/oreda-manager/internal/dependency"
	"github.com/oredafashion/oreda-manager/internal/entity"
)

type stockHistoryStore struct {
	*MYSQLStore
}

// StockHistory returns an object implementing StockHistory interface
func (ms *MYSQLStore) StockHistory() dependency.StockHistory {
	return &stockHistoryStore{
		MYSQLStore: ms,
	}
}

func (ms *MYSQLStore) GetStockHistory(ctx context.Context) ([]entity.StockHistoryEntry, error) {
	entries, err := QueryListNamed[entity.StockHistoryEntry](ctx, ms.DB(), `
	SELECT * FROM stock_history ORDER BY date ASC, id ASC`, map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("failed to list stock history: %w", err)
	}
	return entries, nil
}

func (ms *MYSQLStore) AddStockEntry(ctx context.Context, ei *entity.StockHistoryInsert) (*entity.StockHistoryEntry, error) {
	p, err := ms.Products().GetProductById(ctx, ei.ProductId)
	if err != nil {
		return nil, err
	}

	id, err := ExecNamedLastId(ctx, ms.DB(), `
	INSERT INTO stock_history (product_id, type, quantity, note, final_stock, date) VALUES
		(:productId, :type, :quantity, :note, :finalStock, :now)`, map[string]any{
		"productId":  ei.ProductId,
		"type":       ei.Type,
		"quantity":   ei.Quantity,
		"note":       ei.Note,
		"finalStock": p.Stock,
		"now":        ms.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add stock entry: %w", err)
	}

	entry, err := QueryNamedOne[entity.StockHistoryEntry](ctx, ms.DB(), `
	SELECT * FROM stock_history WHERE id = :id`, map[string]any{
		"id": id,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get stock entry: %w", err)
	}
	return &entry, nil
}

// insertStockEntry writes a movement row inside a caller-held
// transaction. finalStock is the product's stock level after the
// movement.
func insertStockEntry(ctx context.Context, rep dependency.Repository, productId int, typ entity.StockEntryType, qty int, note string, finalStock int) error {
	err := ExecNamed(ctx, rep.DB(), `
	INSERT INTO stock_history (product_id, type, quantity, note, final_stock, date) VALUES
		(:productId, :type, :quantity, :note, :finalStock, :now)`, map[string]any{
		"productId":  productId,
		"type":       typ,
		"quantity":   qty,
		"note":       note,
		"finalStock": finalStock,
		"now":        rep.Now(),
	})
	if err != nil {
		return fmt.Errorf("failed to insert stock entry: %w", err)
	}
	return nil
}
