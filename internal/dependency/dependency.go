package dependency

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/oredafashion/oreda-manager/internal/entity"
)

type (
	Products interface {
		GetProductsList(ctx context.Context) ([]entity.Product, error)
		GetProductById(ctx context.Context, id int) (*entity.Product, error)
		AddProduct(ctx context.Context, p *entity.ProductInsert) (*entity.Product, error)
		UpdateProduct(ctx context.Context, id int, p *entity.ProductInsert) (*entity.Product, error)
		PatchProducts(ctx context.Context, ids []int, patch *entity.ProductPatch) (int, error)
		DeleteProduct(ctx context.Context, id int) error
		DeleteProducts(ctx context.Context, ids []int) (int, error)
		AdjustStock(ctx context.Context, id int, delta int, note string) (*entity.Product, error)
	}

	Sales interface {
		GetSalesList(ctx context.Context) ([]entity.Sale, error)
		GetSaleById(ctx context.Context, id int) (*entity.Sale, error)
		RecordSale(ctx context.Context, s *entity.SaleInsert) (*entity.Sale, error)
		CancelSale(ctx context.Context, id int) (*entity.Sale, error)
	}

	StockHistory interface {
		GetStockHistory(ctx context.Context) ([]entity.StockHistoryEntry, error)
		AddStockEntry(ctx context.Context, e *entity.StockHistoryInsert) (*entity.StockHistoryEntry, error)
	}

	Coupons interface {
		GetCouponsList(ctx context.Context) ([]entity.Coupon, error)
		GetCouponByCode(ctx context.Context, code string) (*entity.Coupon, error)
		UpsertCoupon(ctx context.Context, c *entity.CouponInsert) (*entity.Coupon, error)
		DeleteCoupon(ctx context.Context, code string) error
		IncrementCouponUsage(ctx context.Context, code string) error
	}

	DB interface {
		BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error)
		ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)

		// sqlx methods
		GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
		QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
		QueryxContext(ctx context.Context, query string, args ...interface{}) (*sqlx.Rows, error)
		SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	}

	Repository interface {
		Products() Products
		Sales() Sales
		StockHistory() StockHistory
		Coupons() Coupons
		Tx(ctx context.Context, f func(ctx context.Context, store Repository) error) error
		Now() time.Time
		Close()
		IsErrUniqueViolation(err error) bool
		DB() DB
	}
)
