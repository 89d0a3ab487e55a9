package memstore

import (
	"context"

	"github.com/oredafashion/oreda-manager/internal/entity"
)

func (ms *MemStore) GetProductsList(_ context.Context) ([]entity.Product, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	out := make([]entity.Product, len(ms.products))
	copy(out, ms.products)
	return out, nil
}

func (ms *MemStore) GetProductById(_ context.Context, id int) (*entity.Product, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	p := ms.findProduct(id)
	if p == nil {
		return nil, entity.ErrProductNotFound
	}
	cp := *p
	return &cp, nil
}

func (ms *MemStore) AddProduct(_ context.Context, pi *entity.ProductInsert) (*entity.Product, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	now := ms.now()
	p := entity.Product{
		Id:            ms.nextProductId,
		CreatedAt:     now,
		UpdatedAt:     now,
		ProductInsert: *pi,
	}
	ms.nextProductId++
	ms.products = append(ms.products, p)

	if p.Stock > 0 {
		ms.appendHistory(p.Id, entity.StockIn, p.Stock, "Stok awal", p.Stock)
	}
	cp := p
	return &cp, nil
}

func (ms *MemStore) UpdateProduct(_ context.Context, id int, pi *entity.ProductInsert) (*entity.Product, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	p := ms.findProduct(id)
	if p == nil {
		return nil, entity.ErrProductNotFound
	}
	p.ProductInsert = *pi
	p.UpdatedAt = ms.now()
	cp := *p
	return &cp, nil
}

func (ms *MemStore) PatchProducts(_ context.Context, ids []int, patch *entity.ProductPatch) (int, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	var n int
	for _, id := range ids {
		p := ms.findProduct(id)
		if p == nil {
			continue
		}
		if patch.Category != nil {
			p.Category = *patch.Category
		}
		if patch.BuyPrice != nil {
			p.BuyPrice = *patch.BuyPrice
		}
		if patch.SellPrice != nil {
			p.SellPrice = *patch.SellPrice
		}
		if patch.Stock != nil {
			p.Stock = *patch.Stock
		}
		p.UpdatedAt = ms.now()
		n++
	}
	return n, nil
}

func (ms *MemStore) DeleteProduct(_ context.Context, id int) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	for i := range ms.products {
		if ms.products[i].Id == id {
			ms.products = append(ms.products[:i], ms.products[i+1:]...)
			return nil
		}
	}
	return entity.ErrProductNotFound
}

func (ms *MemStore) DeleteProducts(_ context.Context, ids []int) (int, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	wanted := make(map[int]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	var kept []entity.Product
	var n int
	for _, p := range ms.products {
		if wanted[p.Id] {
			n++
			continue
		}
		kept = append(kept, p)
	}
	ms.products = kept
	return n, nil
}

func (ms *MemStore) AdjustStock(_ context.Context, id int, delta int, note string) (*entity.Product, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	p := ms.findProduct(id)
	if p == nil {
		return nil, entity.ErrProductNotFound
	}
	if p.Stock+delta < 0 {
		return nil, entity.ErrNegativeStock
	}
	p.Stock += delta
	p.UpdatedAt = ms.now()

	if delta > 0 {
		ms.appendHistory(id, entity.StockIn, delta, note, p.Stock)
	} else if delta < 0 {
		ms.appendHistory(id, entity.StockOut, -delta, note, p.Stock)
	}
	cp := *p
	return &cp, nil
}

func (ms *MemStore) findProduct(id int) *entity.Product {
	for i := range ms.products {
		if ms.products[i].Id == id {
			return &ms.products[i]
		}
	}
	return nil
}
