package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/oredafashion/oreda-manager/internal/dependency"
	"github.com/oredafashion/oreda-manager/internal/entity"
)

type productStore struct {
	*MYSQLStore
}

// Products returns an object implementing Products interface
func (ms *MYSQLStore) Products() dependency.Products {
	return &productStore{
		MYSQLStore: ms,
	}
}

func (ms *MYSQLStore) GetProductsList(ctx context.Context) ([]entity.Product, error) {
	products, err := QueryListNamed[entity.Product](ctx, ms.DB(), `
	SELECT * FROM products ORDER BY id ASC`, map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

func (ms *MYSQLStore) GetProductById(ctx context.Context, id int) (*entity.Product, error) {
	product, err := QueryNamedOne[entity.Product](ctx, ms.DB(), `
	SELECT * FROM products WHERE id = :id`, map[string]any{
		"id": id,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product by id: %w", err)
	}
	return &product, nil
}

// AddProduct inserts the product and, when it starts with stock, the
// opening inbound movement, in one transaction.
func (ms *MYSQLStore) AddProduct(ctx context.Context, pi *entity.ProductInsert) (*entity.Product, error) {
	var product *entity.Product
	err := ms.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		id, err := ExecNamedLastId(ctx, rep.DB(), `
		INSERT INTO products (name, category, stock, buy_price, sell_price, images, description, created_at, updated_at) VALUES
			(:name, :category, :stock, :buyPrice, :sellPrice, :images, :description, :now, :now)`, map[string]any{
			"name":        pi.Name,
			"category":    pi.Category,
			"stock":       pi.Stock,
			"buyPrice":    pi.BuyPrice,
			"sellPrice":   pi.SellPrice,
			"images":      pi.Images,
			"description": pi.Description,
			"now":         rep.Now(),
		})
		if err != nil {
			return fmt.Errorf("failed to add product: %w", err)
		}

		if pi.Stock > 0 {
			if err := insertStockEntry(ctx, rep, id, entity.StockIn, pi.Stock, "Stok awal", pi.Stock); err != nil {
				return err
			}
		}

		product, err = rep.Products().GetProductById(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return product, nil
}

func (ms *MYSQLStore) UpdateProduct(ctx context.Context, id int, pi *entity.ProductInsert) (*entity.Product, error) {
	n, err := ExecNamedRows(ctx, ms.DB(), `
	UPDATE products
	SET name = :name,
		category = :category,
		stock = :stock,
		buy_price = :buyPrice,
		sell_price = :sellPrice,
		images = :images,
		description = :description,
		updated_at = :now
	WHERE id = :id`, map[string]any{
		"id":          id,
		"name":        pi.Name,
		"category":    pi.Category,
		"stock":       pi.Stock,
		"buyPrice":    pi.BuyPrice,
		"sellPrice":   pi.SellPrice,
		"images":      pi.Images,
		"description": pi.Description,
		"now":         ms.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	if n == 0 {
		return nil, entity.ErrProductNotFound
	}
	return ms.GetProductById(ctx, id)
}

// PatchProducts applies the non-nil patch fields to every listed
// product. Returns the number of rows touched.
func (ms *MYSQLStore) PatchProducts(ctx context.Context, ids []int, patch *entity.ProductPatch) (int, error) {
	if len(ids) == 0 || patch.IsZero() {
		return 0, nil
	}

	var sets []string
	params := map[string]any{
		"ids": ids,
		"now": ms.Now(),
	}
	if patch.Category != nil {
		sets = append(sets, "category = :category")
		params["category"] = *patch.Category
	}
	if patch.BuyPrice != nil {
		sets = append(sets, "buy_price = :buyPrice")
		params["buyPrice"] = *patch.BuyPrice
	}
	if patch.SellPrice != nil {
		sets = append(sets, "sell_price = :sellPrice")
		params["sellPrice"] = *patch.SellPrice
	}
	if patch.Stock != nil {
		sets = append(sets, "stock = :stock")
		params["stock"] = *patch.Stock
	}

	query := fmt.Sprintf(`
	UPDATE products SET %s, updated_at = :now WHERE id IN (:ids)`, strings.Join(sets, ", "))

	n, err := ExecNamedRows(ctx, ms.DB(), query, params)
	if err != nil {
		return 0, fmt.Errorf("failed to patch products: %w", err)
	}
	return n, nil
}

func (ms *MYSQLStore) DeleteProduct(ctx context.Context, id int) error {
	n, err := ExecNamedRows(ctx, ms.DB(), `
	DELETE FROM products WHERE id = :id`, map[string]any{
		"id": id,
	})
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if n == 0 {
		return entity.ErrProductNotFound
	}
	return nil
}

func (ms *MYSQLStore) DeleteProducts(ctx context.Context, ids []int) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	n, err := ExecNamedRows(ctx, ms.DB(), `
	DELETE FROM products WHERE id IN (:ids)`, map[string]any{
		"ids": ids,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to delete products: %w", err)
	}
	return n, nil
}

// AdjustStock moves a product's stock by delta and logs the
// movement. Fails without touching anything if the result would be
// negative.
func (ms *MYSQLStore) AdjustStock(ctx context.Context, id int, delta int, note string) (*entity.Product, error) {
	var product *entity.Product
	err := ms.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		p, err := rep.Products().GetProductById(ctx, id)
		if err != nil {
			return err
		}
		if p.Stock+delta < 0 {
			return entity.ErrNegativeStock
		}

		err = ExecNamed(ctx, rep.DB(), `
		UPDATE products SET stock = stock + :delta, updated_at = :now WHERE id = :id`, map[string]any{
			"id":    id,
			"delta": delta,
			"now":   rep.Now(),
		})
		if err != nil {
			return fmt.Errorf("failed to adjust stock: %w", err)
		}

		if delta > 0 {
			err = insertStockEntry(ctx, rep, id, entity.StockIn, delta, note, p.Stock+delta)
		} else if delta < 0 {
			err = insertStockEntry(ctx, rep, id, entity.StockOut, -delta, note, p.Stock+delta)
		}
		if err != nil {
			return err
		}

		product, err = rep.Products().GetProductById(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return product, nil
}
