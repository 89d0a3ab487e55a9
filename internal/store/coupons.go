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

type couponStore struct {
	*MYSQLStore
}

// Coupons returns an object implementing Coupons interface
func (ms *MYSQLStore) Coupons() dependency.Coupons {
	return &couponStore{
		MYSQLStore: ms,
	}
}

func (ms *MYSQLStore) GetCouponsList(ctx context.Context) ([]entity.Coupon, error) {
	coupons, err := QueryListNamed[entity.Coupon](ctx, ms.DB(), `
	SELECT * FROM coupons ORDER BY id ASC`, map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("failed to list coupons: %w", err)
	}
	return coupons, nil
}

func (ms *MYSQLStore) GetCouponByCode(ctx context.Context, code string) (*entity.Coupon, error) {
	coupon, err := QueryNamedOne[entity.Coupon](ctx, ms.DB(), `
	SELECT * FROM coupons WHERE code = :code`, map[string]any{
		"code": strings.ToUpper(code),
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrCouponNotFound
		}
		return nil, fmt.Errorf("failed to get coupon by code: %w", err)
	}
	return &coupon, nil
}

// UpsertCoupon inserts the coupon or replaces the one sharing its
// code. A replace resets the usage counter.
func (ms *MYSQLStore) UpsertCoupon(ctx context.Context, ci *entity.CouponInsert) (*entity.Coupon, error) {
	code := strings.ToUpper(ci.Code)
	err := ExecNamed(ctx, ms.DB(), `
	INSERT INTO coupons (code, type, value, minimum, max_uses, start_date, end_date, description, used_count, created_at) VALUES
		(:code, :type, :value, :minimum, :maxUses, :startDate, :endDate, :description, 0, :now)
	ON DUPLICATE KEY UPDATE
		type = :type,
		value = :value,
		minimum = :minimum,
		max_uses = :maxUses,
		start_date = :startDate,
		end_date = :endDate,
		description = :description,
		used_count = 0`, map[string]any{
		"code":        code,
		"type":        ci.Type,
		"value":       ci.Value,
		"minimum":     ci.Minimum,
		"maxUses":     ci.MaxUses,
		"startDate":   ci.StartDate,
		"endDate":     ci.EndDate,
		"description": ci.Description,
		"now":         ms.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upsert coupon: %w", err)
	}
	return ms.GetCouponByCode(ctx, code)
}

func (ms *MYSQLStore) DeleteCoupon(ctx context.Context, code string) error {
	n, err := ExecNamedRows(ctx, ms.DB(), `
	DELETE FROM coupons WHERE code = :code`, map[string]any{
		"code": strings.ToUpper(code),
	})
	if err != nil {
		return fmt.Errorf("failed to delete coupon: %w", err)
	}
	if n == 0 {
		return entity.ErrCouponNotFound
	}
	return nil
}

func (ms *MYSQLStore) IncrementCouponUsage(ctx context.Context, code string) error {
	n, err := ExecNamedRows(ctx, ms.DB(), `
	UPDATE coupons SET used_count = used_count + 1 WHERE code = :code`, map[string]any{
		"code": strings.ToUpper(code),
	})
	if err != nil {
		return fmt.Errorf("failed to increment coupon usage: %w", err)
	}
	if n == 0 {
		return entity.ErrCouponNotFound
	}
	return nil
}
