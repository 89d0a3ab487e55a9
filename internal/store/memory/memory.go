// Package memstore is an in-process implementation of the repository,
// used when no database DSN is configured and as the backend for
// service-level tests. Semantics match the MySQL store, including
// stock movements written alongside sales and adjustments.
package memstore

import (
	"context"
	"sync"
	"time"

	"github.com/oredafashion/oreda-manager/internal/dependency"
	"github.com/oredafashion/oreda-manager/internal/entity"
)

type MemStore struct {
	mu sync.Mutex

	products []entity.Product
	sales    []entity.Sale
	history  []entity.StockHistoryEntry
	coupons  []entity.Coupon

	nextProductId int
	nextSaleId    int
	nextEntryId   int
	nextCouponId  int

	now func() time.Time
}

// New returns an empty store using the wall clock.
func New() *MemStore {
	return NewWithClock(time.Now)
}

// NewWithClock lets tests pin the instant used for generated dates.
func NewWithClock(now func() time.Time) *MemStore {
	return &MemStore{
		nextProductId: 1,
		nextSaleId:    1,
		nextEntryId:   1,
		nextCouponId:  1,
		now:           now,
	}
}

func (ms *MemStore) Products() dependency.Products         { return ms }
func (ms *MemStore) Sales() dependency.Sales               { return ms }
func (ms *MemStore) StockHistory() dependency.StockHistory { return ms }
func (ms *MemStore) Coupons() dependency.Coupons           { return ms }

// Tx runs f against the same store. Individual operations are already
// atomic under the mutex, which is all the callers rely on.
func (ms *MemStore) Tx(ctx context.Context, f func(ctx context.Context, store dependency.Repository) error) error {
	return f(ctx, ms)
}

func (ms *MemStore) Now() time.Time { return ms.now() }

// DB returns nil; memstore has no SQL handle.
func (ms *MemStore) DB() dependency.DB { return nil }

func (ms *MemStore) Close() {}

func (ms *MemStore) IsErrUniqueViolation(err error) bool {
	return err == entity.ErrDuplicateCoupon
}
