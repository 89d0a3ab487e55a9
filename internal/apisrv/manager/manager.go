// Package manager implements the write-side service: product,
// sale, stock and coupon mutations. Every mutation validates its
// payload, writes through the repository and then reloads the
// affected mirror sections, so reads never trust a mutation's return
// value for server-generated fields.
package manager

import (
	"context"
	"fmt"
	"strings"

	"log/slog"

	v "github.com/asaskevich/govalidator"
	"github.com/shopspring/decimal"

	"github.com/oredafashion/oreda-manager/internal/dependency"
	"github.com/oredafashion/oreda-manager/internal/entity"
	"github.com/oredafashion/oreda-manager/internal/mirror"
)

// Server implements handlers for manager.
type Server struct {
	repo   dependency.Repository
	mirror *mirror.Mirror
}

// New creates a new server with manager handlers.
func New(r dependency.Repository, m *mirror.Mirror) *Server {
	return &Server{
		repo:   r,
		mirror: m,
	}
}

// SaveProduct creates the product when id is zero, otherwise replaces
// the product with that id.
func (s *Server) SaveProduct(ctx context.Context, id int, pi *entity.ProductInsert) (*entity.Product, error) {
	if _, err := v.ValidateStruct(pi); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	if err := pi.Validate(); err != nil {
		return nil, err
	}
	pi.Normalize()

	var (
		product *entity.Product
		err     error
	)
	if id == 0 {
		product, err = s.repo.Products().AddProduct(ctx, pi)
	} else {
		product, err = s.repo.Products().UpdateProduct(ctx, id, pi)
	}
	if err != nil {
		slog.Default().ErrorContext(ctx, "cant save product",
			slog.String("err", err.Error()),
			slog.Int("id", id),
		)
		return nil, err
	}

	if err := s.reloadProducts(ctx); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *Server) DeleteProduct(ctx context.Context, id int) error {
	if err := s.repo.Products().DeleteProduct(ctx, id); err != nil {
		slog.Default().ErrorContext(ctx, "cant delete product",
			slog.String("err", err.Error()),
			slog.Int("id", id),
		)
		return err
	}
	return s.reloadProducts(ctx)
}

// AdjustStock moves the product's stock by delta and records the
// movement under the given note.
func (s *Server) AdjustStock(ctx context.Context, id int, delta int, note string) (*entity.Product, error) {
	if delta == 0 {
		return s.repo.Products().GetProductById(ctx, id)
	}
	product, err := s.repo.Products().AdjustStock(ctx, id, delta, note)
	if err != nil {
		slog.Default().ErrorContext(ctx, "cant adjust stock",
			slog.String("err", err.Error()),
			slog.Int("id", id),
			slog.Int("delta", delta),
		)
		return nil, err
	}

	if err := s.reloadProducts(ctx); err != nil {
		return nil, err
	}
	if err := s.mirror.ReloadStockHistory(ctx); err != nil {
		return nil, err
	}
	return product, nil
}

// BulkUpdateProducts applies the patch to all listed products.
func (s *Server) BulkUpdateProducts(ctx context.Context, ids []int, patch *entity.ProductPatch) (int, error) {
	if patch.IsZero() || len(ids) == 0 {
		return 0, nil
	}
	if patch.Stock != nil && *patch.Stock < 0 {
		return 0, entity.ErrNegativeStock
	}
	if patch.BuyPrice != nil && patch.BuyPrice.IsNegative() ||
		patch.SellPrice != nil && patch.SellPrice.IsNegative() {
		return 0, entity.ErrNegativePrice
	}

	n, err := s.repo.Products().PatchProducts(ctx, ids, patch)
	if err != nil {
		slog.Default().ErrorContext(ctx, "cant bulk update products",
			slog.String("err", err.Error()),
		)
		return 0, err
	}
	return n, s.reloadProducts(ctx)
}

func (s *Server) BulkDeleteProducts(ctx context.Context, ids []int) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	n, err := s.repo.Products().DeleteProducts(ctx, ids)
	if err != nil {
		slog.Default().ErrorContext(ctx, "cant bulk delete products",
			slog.String("err", err.Error()),
		)
		return 0, err
	}
	return n, s.reloadProducts(ctx)
}

// RecordSale validates and records a sale. When a coupon code rides
// along, the coupon must be active and the gross total must reach its
// minimum; the discount lowers the effective unit price before the
// sale is written, and the usage counter is bumped afterwards.
func (s *Server) RecordSale(ctx context.Context, si *entity.SaleInsert) (*entity.Sale, error) {
	if _, err := v.ValidateStruct(si); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	if err := si.Validate(); err != nil {
		return nil, err
	}

	couponCode := strings.TrimSpace(si.CouponCode)
	if couponCode != "" {
		coupon, err := s.repo.Coupons().GetCouponByCode(ctx, couponCode)
		if err != nil {
			return nil, err
		}
		if !coupon.Active(s.repo.Now()) {
			return nil, entity.ErrCouponInactive
		}
		qty := decimal.NewFromInt(int64(si.Quantity))
		total := si.SellPrice.Mul(qty)
		if total.LessThan(coupon.Minimum) {
			return nil, entity.ErrCouponMinimumNotMet
		}
		discount := coupon.Discount(total)
		si.SellPrice = si.SellPrice.Sub(discount.Div(qty))
	}

	sale, err := s.repo.Sales().RecordSale(ctx, si)
	if err != nil {
		slog.Default().ErrorContext(ctx, "cant record sale",
			slog.String("err", err.Error()),
			slog.Int("product_id", si.ProductId),
		)
		return nil, err
	}

	if couponCode != "" {
		if err := s.repo.Coupons().IncrementCouponUsage(ctx, couponCode); err != nil {
			slog.Default().ErrorContext(ctx, "cant increment coupon usage",
				slog.String("err", err.Error()),
				slog.String("code", couponCode),
			)
		}
		if err := s.mirror.ReloadCoupons(ctx); err != nil {
			return nil, err
		}
	}

	if err := s.reloadAfterSale(ctx); err != nil {
		return nil, err
	}
	return sale, nil
}

func (s *Server) CancelSale(ctx context.Context, id int) (*entity.Sale, error) {
	sale, err := s.repo.Sales().CancelSale(ctx, id)
	if err != nil {
		slog.Default().ErrorContext(ctx, "cant cancel sale",
			slog.String("err", err.Error()),
			slog.Int("id", id),
		)
		return nil, err
	}
	if err := s.reloadAfterSale(ctx); err != nil {
		return nil, err
	}
	return sale, nil
}

// AddStockEntry records a manual stock movement without touching the
// product's stock level. Used for audit corrections.
func (s *Server) AddStockEntry(ctx context.Context, ei *entity.StockHistoryInsert) (*entity.StockHistoryEntry, error) {
	if err := ei.Validate(); err != nil {
		return nil, err
	}
	entry, err := s.repo.StockHistory().AddStockEntry(ctx, ei)
	if err != nil {
		slog.Default().ErrorContext(ctx, "cant add stock entry",
			slog.String("err", err.Error()),
		)
		return nil, err
	}
	return entry, s.mirror.ReloadStockHistory(ctx)
}

func (s *Server) SaveCoupon(ctx context.Context, ci *entity.CouponInsert) (*entity.Coupon, error) {
	if _, err := v.ValidateStruct(ci); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	if err := ci.Validate(); err != nil {
		return nil, err
	}
	coupon, err := s.repo.Coupons().UpsertCoupon(ctx, ci)
	if err != nil {
		if s.repo.IsErrUniqueViolation(err) {
			return nil, entity.ErrDuplicateCoupon
		}
		slog.Default().ErrorContext(ctx, "cant save coupon",
			slog.String("err", err.Error()),
			slog.String("code", ci.Code),
		)
		return nil, err
	}
	return coupon, s.mirror.ReloadCoupons(ctx)
}

func (s *Server) DeleteCoupon(ctx context.Context, code string) error {
	if err := s.repo.Coupons().DeleteCoupon(ctx, code); err != nil {
		slog.Default().ErrorContext(ctx, "cant delete coupon",
			slog.String("err", err.Error()),
			slog.String("code", code),
		)
		return err
	}
	return s.mirror.ReloadCoupons(ctx)
}

// AddCategory registers a new category name for the product forms.
func (s *Server) AddCategory(ctx context.Context, name string) error {
	name = strings.ToUpper(strings.TrimSpace(name))
	if name == "" {
		return fmt.Errorf("category name must not be empty")
	}
	return s.mirror.Categories.Add(name)
}

func (s *Server) reloadProducts(ctx context.Context) error {
	return s.mirror.ReloadProducts(ctx)
}

func (s *Server) reloadAfterSale(ctx context.Context) error {
	if err := s.mirror.ReloadSales(ctx); err != nil {
		return err
	}
	if err := s.mirror.ReloadProducts(ctx); err != nil {
		return err
	}
	return s.mirror.ReloadStockHistory(ctx)
}
