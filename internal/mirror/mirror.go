// Package mirror holds the process-wide in-memory copy of the
// persisted entities. Every read-side computation works off this
// mirror; after any mutating store call the affected section is
// reloaded from the repository rather than patched from the
// mutation's return value, so server-side generated fields stay
// authoritative.
package mirror

import (
	"context"
	"log/slog"

	"github.com/oredafashion/oreda-manager/internal/dependency"
)

type Mirror struct {
	Products     *ProductMirror
	Sales        *SaleMirror
	StockHistory *StockHistoryMirror
	Coupons      *CouponMirror
	Categories   *CategoryMirror

	repo dependency.Repository
}

func New(repo dependency.Repository) *Mirror {
	return &Mirror{
		Products:     newProductMirror(),
		Sales:        newSaleMirror(),
		StockHistory: newStockHistoryMirror(),
		Coupons:      newCouponMirror(),
		Categories:   newCategoryMirror(),
		repo:         repo,
	}
}

// ReloadAll refreshes every section from the repository. Categories
// are rebuilt from the product list after products load.
func (m *Mirror) ReloadAll(ctx context.Context) error {
	if err := m.ReloadProducts(ctx); err != nil {
		return err
	}
	if err := m.ReloadSales(ctx); err != nil {
		return err
	}
	if err := m.ReloadStockHistory(ctx); err != nil {
		return err
	}
	return m.ReloadCoupons(ctx)
}

func (m *Mirror) ReloadProducts(ctx context.Context) error {
	products, err := m.repo.Products().GetProductsList(ctx)
	if err != nil {
		slog.Default().Error("cant reload products",
			slog.String("err", err.Error()),
		)
		return err
	}
	m.Products.replace(products)
	m.Categories.absorb(products)
	return nil
}

func (m *Mirror) ReloadSales(ctx context.Context) error {
	sales, err := m.repo.Sales().GetSalesList(ctx)
	if err != nil {
		slog.Default().Error("cant reload sales",
			slog.String("err", err.Error()),
		)
		return err
	}
	m.Sales.replace(sales)
	return nil
}

func (m *Mirror) ReloadStockHistory(ctx context.Context) error {
	entries, err := m.repo.StockHistory().GetStockHistory(ctx)
	if err != nil {
		slog.Default().Error("cant reload stock history",
			slog.String("err", err.Error()),
		)
		return err
	}
	m.StockHistory.replace(entries)
	return nil
}

func (m *Mirror) ReloadCoupons(ctx context.Context) error {
	coupons, err := m.repo.Coupons().GetCouponsList(ctx)
	if err != nil {
		slog.Default().Error("cant reload coupons",
			slog.String("err", err.Error()),
		)
		return err
	}
	m.Coupons.replace(coupons)
	return nil
}
