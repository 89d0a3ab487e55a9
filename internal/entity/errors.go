package entity

import "errors"

var (
	ErrProductNotFound      = errors.New("product not found")
	ErrSaleNotFound         = errors.New("sale not found")
	ErrCouponNotFound       = errors.New("coupon not found")
	ErrInsufficientStock    = errors.New("insufficient stock")
	ErrAlreadyCancelled     = errors.New("sale already cancelled")
	ErrNegativeStock        = errors.New("stock must not be negative")
	ErrNegativePrice        = errors.New("prices must not be negative")
	ErrSellPriceBelowBuy    = errors.New("sell price must be greater than buy price")
	ErrDuplicateCoupon      = errors.New("coupon code already exists")
	ErrInvalidQuantity      = errors.New("quantity must be positive")
	ErrUnknownSource        = errors.New("unknown sale source")
	ErrUnknownStockType     = errors.New("unknown stock entry type")
	ErrCouponInactive       = errors.New("coupon is not active")
	ErrDuplicateCategory    = errors.New("category already exists")
	ErrEmptyCouponCode      = errors.New("coupon code must not be empty")
	ErrUnknownCouponType    = errors.New("unknown coupon type")
	ErrCouponValueTooHigh   = errors.New("percentage coupon value must not exceed 100")
	ErrCouponMissingEndDate = errors.New("coupon end date is required")
	ErrCouponMinimumNotMet  = errors.New("sale total is below the coupon minimum")
)
