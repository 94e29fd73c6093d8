package model

import "time"

// Stock status classifications for an inventory row relative to the
// product's configured thresholds.
const (
	StockStatusLow    = "low"
	StockStatusNormal = "normal"
	StockStatusHigh   = "high"
)

// Inventory is the derived current-stock projection, one row per product.
// It is maintained transactionally alongside the stock_in/stock_out ledger
// and must never go negative.
type Inventory struct {
	ProductID    int64     `db:"product_id" json:"product_id"`
	CurrentStock int       `db:"current_stock" json:"current_stock"`
	LastUpdated  time.Time `db:"last_updated" json:"last_updated"`
}

// InventoryItem is an inventory row denormalized with product fields for
// the stock overview and alert listings.
type InventoryItem struct {
	ProductID    int64     `db:"product_id" json:"product_id"`
	ProductName  string    `db:"product_name" json:"product_name"`
	PartNumber   string    `db:"part_number" json:"part_number"`
	Brand        string    `db:"brand" json:"brand"`
	Model        string    `db:"model" json:"model"`
	MinStock     int       `db:"min_stock" json:"min_stock"`
	MaxStock     int       `db:"max_stock" json:"max_stock"`
	CurrentStock int       `db:"current_stock" json:"current_stock"`
	LastUpdated  time.Time `db:"last_updated" json:"last_updated"`
	StockStatus  string    `db:"-" json:"stock_status"`
}

// ResolveStockStatus classifies the row against its thresholds. A row at or
// below min_stock is low even when it is also at or above max_stock; running
// out wins over a misconfigured threshold pair.
func (i *InventoryItem) ResolveStockStatus() string {
	switch {
	case i.CurrentStock <= i.MinStock:
		return StockStatusLow
	case i.CurrentStock >= i.MaxStock:
		return StockStatusHigh
	default:
		return StockStatusNormal
	}
}
