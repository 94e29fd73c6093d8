package inventory

import (
	"context"

	"github.com/autoparts/inventory-service/internal/model"
)

type Repository interface {
	// FindAll returns inventory rows denormalized with product fields.
	FindAll(ctx context.Context) ([]model.InventoryItem, error)
	// FindLowStock returns rows with current_stock <= min_stock, most
	// depleted first.
	FindLowStock(ctx context.Context) ([]model.InventoryItem, error)
	GetByProduct(ctx context.Context, productID int64) (*model.Inventory, error)
}
