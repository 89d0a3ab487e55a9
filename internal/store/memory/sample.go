package memstore

import (
	"context"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"github.com/oredafashion/oreda-manager/internal/entity"
)

var sampleSources = []entity.SaleSource{
	entity.SourceOffline,
	entity.SourceInstagram,
	entity.SourceTiktok,
	entity.SourceShopee,
}

// SeedSampleData backfills the sales log with demo sales over the past
// days so a fresh install renders a populated dashboard. A no-op when
// any sale already exists or no products are available. Demo sales
// snapshot current product prices but leave stock and the movement log
// untouched. Deterministic for a given clock day.
func (ms *MemStore) SeedSampleData(_ context.Context, days int) int {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	if len(ms.sales) > 0 || len(ms.products) == 0 || days <= 0 {
		return 0
	}

	now := ms.now()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	rng := rand.New(rand.NewSource(day.Unix()))

	var n int
	for i := days; i >= 0; i-- {
		date := day.AddDate(0, 0, -i)
		for j := rng.Intn(6); j > 0; j-- {
			p := &ms.products[rng.Intn(len(ms.products))]
			qty := decimal.NewFromInt(int64(rng.Intn(3) + 1))

			ms.sales = append(ms.sales, entity.Sale{
				Id:           ms.nextSaleId,
				ProductId:    p.Id,
				Quantity:     int(qty.IntPart()),
				SellPrice:    p.SellPrice,
				Total:        p.SellPrice.Mul(qty),
				Profit:       p.SellPrice.Sub(p.BuyPrice).Mul(qty),
				CustomerName: "Pelanggan Demo",
				Source:       sampleSources[rng.Intn(len(sampleSources))],
				Status:       entity.SaleCompleted,
				Date:         date.Add(time.Duration(9+rng.Intn(10)) * time.Hour),
			})
			ms.nextSaleId++
			n++
		}
	}
	return n
}
