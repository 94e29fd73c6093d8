package ledger

import (
	"context"

	"github.com/autoparts/inventory-service/internal/model"
)

// Repository persists stock movements. Both record methods run as a single
// transaction so the ledger row and the inventory projection can never drift
// apart.
type Repository interface {
	// RecordIn inserts the stock-in row and increments the product's
	// inventory, creating the inventory row at zero first if absent.
	// Returns model.ErrNotFound when the product, or the supplier if
	// given, does not exist.
	RecordIn(ctx context.Context, rec *model.StockIn) error

	// RecordOut decrements the product's inventory and inserts the
	// stock-out row. The decrement is conditional on sufficient stock;
	// otherwise a *model.InsufficientStockError is returned and nothing
	// is written.
	RecordOut(ctx context.Context, rec *model.StockOut) error

	ListStockIn(ctx context.Context) ([]model.StockInDetail, error)
	ListStockOut(ctx context.Context) ([]model.StockOutDetail, error)
}
