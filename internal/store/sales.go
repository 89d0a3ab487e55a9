package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/oredafashion/oreda-manager/internal/dependency"
	"github.com/oredafashion/oreda-manager/internal/entity"
)

type salesStore struct {
	*MYSQLStore
}

// Sales returns an object implementing Sales interface
func (ms *MYSQLStore) Sales() dependency.Sales {
	return &salesStore{
		MYSQLStore: ms,
	}
}

func (ms *MYSQLStore) GetSalesList(ctx context.Context) ([]entity.Sale, error) {
	sales, err := QueryListNamed[entity.Sale](ctx, ms.DB(), `
	SELECT * FROM sales ORDER BY date ASC, id ASC`, map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	return sales, nil
}

func (ms *MYSQLStore) GetSaleById(ctx context.Context, id int) (*entity.Sale, error) {
	sale, err := QueryNamedOne[entity.Sale](ctx, ms.DB(), `
	SELECT * FROM sales WHERE id = :id`, map[string]any{
		"id": id,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrSaleNotFound
		}
		return nil, fmt.Errorf("failed to get sale by id: %w", err)
	}
	return &sale, nil
}

// RecordSale checks the stock, snapshots total and profit at the
// product's current buy price, decrements the stock and logs the
// outbound movement, all in one transaction.
func (ms *MYSQLStore) RecordSale(ctx context.Context, si *entity.SaleInsert) (*entity.Sale, error) {
	var sale *entity.Sale
	err := ms.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		p, err := rep.Products().GetProductById(ctx, si.ProductId)
		if err != nil {
			return err
		}
		if p.Stock < si.Quantity {
			return entity.ErrInsufficientStock
		}

		qty := decimal.NewFromInt(int64(si.Quantity))
		id, err := ExecNamedLastId(ctx, rep.DB(), `
		INSERT INTO sales (product_id, quantity, sell_price, total, profit, customer_name, source, status, date) VALUES
			(:productId, :quantity, :sellPrice, :total, :profit, :customerName, :source, :status, :now)`, map[string]any{
			"productId":    si.ProductId,
			"quantity":     si.Quantity,
			"sellPrice":    si.SellPrice,
			"total":        si.SellPrice.Mul(qty),
			"profit":       si.SellPrice.Sub(p.BuyPrice).Mul(qty),
			"customerName": si.CustomerName,
			"source":       si.Source,
			"status":       entity.SaleCompleted,
			"now":          rep.Now(),
		})
		if err != nil {
			return fmt.Errorf("failed to record sale: %w", err)
		}

		err = ExecNamed(ctx, rep.DB(), `
		UPDATE products SET stock = stock - :quantity, updated_at = :now WHERE id = :id`, map[string]any{
			"id":       si.ProductId,
			"quantity": si.Quantity,
			"now":      rep.Now(),
		})
		if err != nil {
			return fmt.Errorf("failed to decrement stock: %w", err)
		}

		err = insertStockEntry(ctx, rep, si.ProductId, entity.StockOut, si.Quantity, "Penjualan ke "+si.CustomerName, p.Stock-si.Quantity)
		if err != nil {
			return err
		}

		sale, err = rep.Sales().GetSaleById(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return sale, nil
}

// CancelSale flips a completed sale to cancelled and restores the
// stock when the product still exists, logging the inbound movement.
func (ms *MYSQLStore) CancelSale(ctx context.Context, id int) (*entity.Sale, error) {
	var sale *entity.Sale
	err := ms.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		s, err := rep.Sales().GetSaleById(ctx, id)
		if err != nil {
			return err
		}
		if s.Status == entity.SaleCancelled {
			return entity.ErrAlreadyCancelled
		}

		err = ExecNamed(ctx, rep.DB(), `
		UPDATE sales SET status = :status, cancelled_at = :now WHERE id = :id`, map[string]any{
			"id":     id,
			"status": entity.SaleCancelled,
			"now":    rep.Now(),
		})
		if err != nil {
			return fmt.Errorf("failed to cancel sale: %w", err)
		}

		p, err := rep.Products().GetProductById(ctx, s.ProductId)
		if errors.Is(err, entity.ErrProductNotFound) {
			// Product is gone; nothing to restore.
			sale, err = rep.Sales().GetSaleById(ctx, id)
			return err
		}
		if err != nil {
			return err
		}

		err = ExecNamed(ctx, rep.DB(), `
		UPDATE products SET stock = stock + :quantity, updated_at = :now WHERE id = :id`, map[string]any{
			"id":       s.ProductId,
			"quantity": s.Quantity,
			"now":      rep.Now(),
		})
		if err != nil {
			return fmt.Errorf("failed to restore stock: %w", err)
		}

		err = insertStockEntry(ctx, rep, s.ProductId, entity.StockIn, s.Quantity, "Pembatalan penjualan", p.Stock+s.Quantity)
		if err != nil {
			return err
		}

		sale, err = rep.Sales().GetSaleById(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return sale, nil
}
