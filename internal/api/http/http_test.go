package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oredafashion/oreda-manager/internal/apisrv/dashboard"
	"github.com/oredafashion/oreda-manager/internal/apisrv/manager"
	"github.com/oredafashion/oreda-manager/internal/entity"
	"github.com/oredafashion/oreda-manager/internal/export"
	"github.com/oredafashion/oreda-manager/internal/mirror"
	"github.com/oredafashion/oreda-manager/internal/report"
	"github.com/oredafashion/oreda-manager/internal/scheduler"
	memstore "github.com/oredafashion/oreda-manager/internal/store/memory"
)

var frozen = time.Date(2025, time.March, 15, 14, 0, 0, 0, time.Local)

func newTestServer(t *testing.T) (*httptest.Server, *memstore.MemStore) {
	t.Helper()
	repo := memstore.NewWithClock(func() time.Time { return frozen })

	m := mirror.New(repo)
	require.NoError(t, m.ReloadAll(context.Background()))

	cfg := report.DefaultConfig()
	cfg.SampleBackfill = false
	sched := scheduler.New(scheduler.DefaultConfig(), m.ReloadAll)
	t.Cleanup(sched.Stop)

	dash := dashboard.New(m, sched, cfg, func() time.Time { return frozen })
	s := New(
		&Config{AllowedOrigins: []string{"*"}},
		manager.New(repo, m),
		dash,
		sched,
		export.New(dash),
	)

	ts := httptest.NewServer(s.router())
	t.Cleanup(ts.Close)
	return ts, repo
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(b))
	require.NoError(t, err)
	return resp
}

func TestProductEndpoints(t *testing.T) {
	ts, _ := newTestServer(t)

	t.Run("create", func(t *testing.T) {
		resp := postJSON(t, ts.URL+"/api/manager/products", map[string]any{
			"name":      "Kemeja Batik",
			"category":  "ATASAN",
			"stock":     8,
			"buyPrice":  "40000",
			"sellPrice": "85000",
		})
		defer resp.Body.Close()
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var p entity.Product
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&p))
		assert.Equal(t, 1, p.Id)
		assert.Equal(t, entity.PlaceholderImage, p.Images[0])
	})

	t.Run("create invalid", func(t *testing.T) {
		resp := postJSON(t, ts.URL+"/api/manager/products", map[string]any{
			"name":      "Celana",
			"category":  "BAWAHAN",
			"buyPrice":  "90000",
			"sellPrice": "85000",
		})
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("delete missing", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodDelete, ts.URL+"/api/manager/products/99", nil)
		require.NoError(t, err)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestSaleEndpoints(t *testing.T) {
	ts, repo := newTestServer(t)

	p, err := repo.AddProduct(context.Background(), &entity.ProductInsert{
		Name:      "Topi",
		Category:  "AKSESORIS",
		Stock:     2,
		BuyPrice:  decimal.NewFromInt(15_000),
		SellPrice: decimal.NewFromInt(35_000),
	})
	require.NoError(t, err)

	t.Run("record", func(t *testing.T) {
		resp := postJSON(t, ts.URL+"/api/manager/sales", map[string]any{
			"productId":    p.Id,
			"quantity":     1,
			"sellPrice":    "35000",
			"customerName": "Budi",
			"source":       "offline",
		})
		defer resp.Body.Close()
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var sale entity.Sale
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&sale))
		assert.Equal(t, int64(35_000), sale.Total.IntPart())
		assert.Equal(t, int64(20_000), sale.Profit.IntPart())
	})

	t.Run("oversell", func(t *testing.T) {
		resp := postJSON(t, ts.URL+"/api/manager/sales", map[string]any{
			"productId":    p.Id,
			"quantity":     5,
			"sellPrice":    "35000",
			"customerName": "Budi",
			"source":       "offline",
		})
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("unknown product", func(t *testing.T) {
		resp := postJSON(t, ts.URL+"/api/manager/sales", map[string]any{
			"productId":    99,
			"quantity":     1,
			"sellPrice":    "35000",
			"customerName": "Budi",
			"source":       "offline",
		})
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestCouponEndpoints(t *testing.T) {
	ts, repo := newTestServer(t)

	p, err := repo.AddProduct(context.Background(), &entity.ProductInsert{
		Name:      "Kemeja",
		Category:  "ATASAN",
		Stock:     5,
		BuyPrice:  decimal.NewFromInt(40_000),
		SellPrice: decimal.NewFromInt(85_000),
	})
	require.NoError(t, err)

	t.Run("create without end date", func(t *testing.T) {
		resp := postJSON(t, ts.URL+"/api/manager/coupons", map[string]any{
			"code":    "ABADI",
			"type":    "fixed",
			"value":   "5000",
			"maxUses": 5,
		})
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("sale below minimum", func(t *testing.T) {
		resp := postJSON(t, ts.URL+"/api/manager/coupons", map[string]any{
			"code":    "BORONG",
			"type":    "percentage",
			"value":   "10",
			"minimum": "200000",
			"maxUses": 5,
			"endDate": frozen.AddDate(0, 1, 0).Format(time.RFC3339),
		})
		resp.Body.Close()
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		resp = postJSON(t, ts.URL+"/api/manager/sales", map[string]any{
			"productId":    p.Id,
			"quantity":     1,
			"sellPrice":    "85000",
			"customerName": "Siti",
			"source":       "offline",
			"couponCode":   "BORONG",
		})
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestDashboardEndpoints(t *testing.T) {
	ts, _ := newTestServer(t)

	t.Run("stats", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/api/dashboard/stats?period=today")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var stats entity.PeriodStats
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&stats))
		assert.Zero(t, stats.TotalProducts)
	})

	t.Run("overview force", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/api/dashboard/overview?period=7&force=true")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("resize signal", func(t *testing.T) {
		resp := postJSON(t, ts.URL+"/api/dashboard/signals/resize", map[string]any{
			"width":  1280,
			"height": 720,
		})
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	})
}

func TestExportEndpoint(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/export/financial-report?period=30")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		resp.Header.Get("Content-Type"),
	)
}
