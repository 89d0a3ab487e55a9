package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CouponType selects how the coupon value is applied to a sale total.
type CouponType string

const (
	CouponPercentage CouponType = "percentage"
	CouponFixed      CouponType = "fixed"
)

var ValidCouponTypes = map[CouponType]bool{
	CouponPercentage: true,
	CouponFixed:      true,
}

// CouponInsert is the write payload for creating or replacing a coupon.
// Code is matched case insensitively and stored upper case. Minimum is
// the purchase total a sale must reach before the coupon applies,
// zero by default.
type CouponInsert struct {
	Code        string          `db:"code" json:"code" valid:"required"`
	Type        CouponType      `db:"type" json:"type" valid:"required"`
	Value       decimal.Decimal `db:"value" json:"value" valid:"required"`
	Minimum     decimal.Decimal `db:"minimum" json:"minimum" valid:"-"`
	MaxUses     int             `db:"max_uses" json:"maxUses" valid:"required"`
	StartDate   *time.Time      `db:"start_date" json:"startDate,omitempty" valid:"-"`
	EndDate     *time.Time      `db:"end_date" json:"endDate" valid:"-"`
	Description string          `db:"description" json:"description" valid:"-"`
}

func (ci *CouponInsert) Validate() error {
	if ci.Code == "" {
		return ErrEmptyCouponCode
	}
	if !ValidCouponTypes[ci.Type] {
		return ErrUnknownCouponType
	}
	if ci.Value.IsNegative() || ci.Minimum.IsNegative() {
		return ErrNegativePrice
	}
	if ci.Type == CouponPercentage && ci.Value.GreaterThan(decimal.NewFromInt(100)) {
		return ErrCouponValueTooHigh
	}
	if ci.EndDate == nil {
		return ErrCouponMissingEndDate
	}
	return nil
}

// Coupon represents the coupons table.
type Coupon struct {
	Id int `db:"id" json:"id"`
	CouponInsert
	UsedCount int       `db:"used_count" json:"usedCount"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// Active reports whether the coupon can still be applied at the given
// moment: the end date has not passed and uses remain.
func (c *Coupon) Active(now time.Time) bool {
	if c.EndDate == nil || !now.Before(*c.EndDate) {
		return false
	}
	return c.UsedCount < c.MaxUses
}

// Discount returns the amount deducted from the given total.
func (c *Coupon) Discount(total decimal.Decimal) decimal.Decimal {
	if c.Type == CouponPercentage {
		return total.Mul(c.Value).Div(decimal.NewFromInt(100))
	}
	if c.Value.GreaterThan(total) {
		return total
	}
	return c.Value
}
