// Package export renders report data into downloadable xlsx workbooks.
package export

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/oredafashion/oreda-manager/internal/apisrv/dashboard"
	"github.com/oredafashion/oreda-manager/internal/currency"
	"github.com/oredafashion/oreda-manager/internal/entity"
)

// Exporter builds workbooks from dashboard report data.
type Exporter struct {
	dash *dashboard.Server
}

// New creates a new exporter.
func New(dash *dashboard.Server) *Exporter {
	return &Exporter{dash: dash}
}

const (
	sheetSummary     = "Laporan Keuangan"
	sheetCategories  = "Kategori"
	sheetBestSellers = "Produk Terlaris"
)

// FinancialReportWorkbook builds the financial report workbook for the
// given period: a summary sheet, a per-category sheet and a best
// sellers sheet. The caller owns the returned file and must Close it.
func (e *Exporter) FinancialReportWorkbook(ctx context.Context, token entity.PeriodToken) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := e.writeSummary(ctx, f, token); err != nil {
		f.Close()
		return nil, fmt.Errorf("summary sheet: %w", err)
	}
	if err := e.writeCategories(ctx, f, token); err != nil {
		f.Close()
		return nil, fmt.Errorf("categories sheet: %w", err)
	}
	if err := e.writeBestSellers(ctx, f, token); err != nil {
		f.Close()
		return nil, fmt.Errorf("best sellers sheet: %w", err)
	}

	if err := f.DeleteSheet("Sheet1"); err != nil {
		f.Close()
		return nil, fmt.Errorf("delete default sheet: %w", err)
	}
	return f, nil
}

func (e *Exporter) writeSummary(ctx context.Context, f *excelize.File, token entity.PeriodToken) error {
	if _, err := f.NewSheet(sheetSummary); err != nil {
		return err
	}

	fr := e.dash.FinancialReport(ctx, token)

	rows := [][]interface{}{
		{"Periode", fmt.Sprintf("%s s/d %s",
			fr.Range.Start.Format("02/01/2006"),
			fr.Range.End.AddDate(0, 0, -1).Format("02/01/2006"))},
		{},
		{"Total Penjualan", currency.Format(fr.TotalSales)},
		{"Laba Bersih", currency.Format(fr.NetProfit)},
		{"Total Modal", currency.Format(fr.TotalModal)},
		{"Barang Terjual", fr.ItemsSold},
		{"Transaksi Selesai", fr.CompletedCount},
		{"Transaksi Batal", fr.CancelledCount},
		{"Margin Laba", currency.FormatPercent(fr.ProfitMargin)},
		{"ROI", currency.FormatPercent(fr.ROI)},
		{"Tingkat Keberhasilan", currency.FormatPercent(fr.SuccessRate)},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetSummary, cell, &row); err != nil {
			return err
		}
	}

	return f.SetColWidth(sheetSummary, "A", "B", 28)
}

func (e *Exporter) writeCategories(ctx context.Context, f *excelize.File, token entity.PeriodToken) error {
	if _, err := f.NewSheet(sheetCategories); err != nil {
		return err
	}

	header := []interface{}{
		"Kategori", "Jumlah Produk", "Total Stok", "Nilai Stok",
		"Total Penjualan", "Total Laba", "Barang Terjual",
	}
	if err := f.SetSheetRow(sheetCategories, "A1", &header); err != nil {
		return err
	}

	for i, cs := range e.dash.CategoryAnalysis(ctx, token) {
		row := []interface{}{
			cs.Category,
			cs.ProductCount,
			cs.TotalStock,
			currency.Format(cs.StockValue),
			currency.Format(cs.TotalSales),
			currency.Format(cs.TotalProfit),
			cs.ItemsSold,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetCategories, cell, &row); err != nil {
			return err
		}
	}

	return f.SetColWidth(sheetCategories, "A", "G", 20)
}

func (e *Exporter) writeBestSellers(ctx context.Context, f *excelize.File, token entity.PeriodToken) error {
	if _, err := f.NewSheet(sheetBestSellers); err != nil {
		return err
	}

	header := []interface{}{
		"Produk", "Kategori", "Terjual", "Total Penjualan", "Total Laba",
	}
	if err := f.SetSheetRow(sheetBestSellers, "A1", &header); err != nil {
		return err
	}

	for i, bs := range e.dash.BestSellers(ctx, token, 0) {
		row := []interface{}{
			bs.ProductName,
			bs.Category,
			bs.TotalSold,
			currency.Format(bs.TotalSales),
			currency.Format(bs.TotalProfit),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetBestSellers, cell, &row); err != nil {
			return err
		}
	}

	return f.SetColWidth(sheetBestSellers, "A", "E", 22)
}
