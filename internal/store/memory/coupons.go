package memstore

import (
	"context"
	"strings"

	"github.com/oredafashion/oreda-manager/internal/entity"
)

func (ms *MemStore) GetCouponsList(_ context.Context) ([]entity.Coupon, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	out := make([]entity.Coupon, len(ms.coupons))
	copy(out, ms.coupons)
	return out, nil
}

func (ms *MemStore) GetCouponByCode(_ context.Context, code string) (*entity.Coupon, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	c := ms.findCoupon(code)
	if c == nil {
		return nil, entity.ErrCouponNotFound
	}
	cp := *c
	return &cp, nil
}

// UpsertCoupon replaces the coupon with the same code or creates a
// new one. Codes are stored upper case; a replace resets the usage
// counter.
func (ms *MemStore) UpsertCoupon(_ context.Context, ci *entity.CouponInsert) (*entity.Coupon, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	insert := *ci
	insert.Code = strings.ToUpper(insert.Code)

	if c := ms.findCoupon(insert.Code); c != nil {
		c.CouponInsert = insert
		c.UsedCount = 0
		cp := *c
		return &cp, nil
	}

	c := entity.Coupon{
		Id:           ms.nextCouponId,
		CouponInsert: insert,
		CreatedAt:    ms.now(),
	}
	ms.nextCouponId++
	ms.coupons = append(ms.coupons, c)
	cp := c
	return &cp, nil
}

func (ms *MemStore) DeleteCoupon(_ context.Context, code string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	code = strings.ToUpper(code)
	for i := range ms.coupons {
		if ms.coupons[i].Code == code {
			ms.coupons = append(ms.coupons[:i], ms.coupons[i+1:]...)
			return nil
		}
	}
	return entity.ErrCouponNotFound
}

func (ms *MemStore) IncrementCouponUsage(_ context.Context, code string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	c := ms.findCoupon(code)
	if c == nil {
		return entity.ErrCouponNotFound
	}
	c.UsedCount++
	return nil
}

func (ms *MemStore) findCoupon(code string) *entity.Coupon {
	code = strings.ToUpper(code)
	for i := range ms.coupons {
		if ms.coupons[i].Code == code {
			return &ms.coupons[i]
		}
	}
	return nil
}
