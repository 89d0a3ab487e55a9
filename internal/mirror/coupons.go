package mirror

import (
	"strings"
	"sync"

	"github.com/oredafashion/oreda-manager/internal/entity"
)

type CouponMirror struct {
	list      []entity.Coupon
	codeCache map[string]entity.Coupon
	mutex     sync.RWMutex
}

func newCouponMirror() *CouponMirror {
	return &CouponMirror{codeCache: make(map[string]entity.Coupon)}
}

func (m *CouponMirror) replace(coupons []entity.Coupon) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.list = coupons
	m.codeCache = make(map[string]entity.Coupon, len(coupons))
	for _, c := range coupons {
		m.codeCache[strings.ToUpper(c.Code)] = c
	}
}

// All returns a copy of the coupon list in load order.
func (m *CouponMirror) All() []entity.Coupon {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	out := make([]entity.Coupon, len(m.list))
	copy(out, m.list)
	return out
}

// GetByCode matches case insensitively.
func (m *CouponMirror) GetByCode(code string) (*entity.Coupon, bool) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	c, found := m.codeCache[strings.ToUpper(code)]
	return &c, found
}
