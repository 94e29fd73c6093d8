package inventory

import (
	"context"

	"github.com/autoparts/inventory-service/internal/model"
)

type UseCase interface {
	ListInventory(ctx context.Context) ([]model.InventoryItem, error)
	ListLowStockAlerts(ctx context.Context) ([]model.InventoryItem, error)
	GetProductInventory(ctx context.Context, productID int64) (*model.Inventory, error)
}
