package usecase

import (
	"context"

	"github.com/autoparts/inventory-service/internal/inventory"
	"github.com/autoparts/inventory-service/internal/model"
	"go.uber.org/zap"
)

type inventoryUseCase struct {
	repo   inventory.Repository
	logger *zap.Logger
}

func NewInventoryUseCase(repo inventory.Repository, log *zap.Logger) inventory.UseCase {
	return &inventoryUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *inventoryUseCase) ListInventory(ctx context.Context) ([]model.InventoryItem, error) {
	items, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].StockStatus = items[i].ResolveStockStatus()
	}
	return items, nil
}

func (uc *inventoryUseCase) ListLowStockAlerts(ctx context.Context) ([]model.InventoryItem, error) {
	items, err := uc.repo.FindLowStock(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].StockStatus = model.StockStatusLow
	}
	return items, nil
}

func (uc *inventoryUseCase) GetProductInventory(ctx context.Context, productID int64) (*model.Inventory, error) {
	inv, err := uc.repo.GetByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		// Zero row for products that have never moved.
		return &model.Inventory{ProductID: productID, CurrentStock: 0}, nil
	}
	return inv, nil
}
