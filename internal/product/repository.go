package product

import (
	"context"

	"github.com/autoparts/inventory-service/internal/model"
)

type Repository interface {
	// Create inserts the product and its zero-stock inventory row in one
	// transaction.
	Create(ctx context.Context, p *model.Product) error
	FindByID(ctx context.Context, id int64) (*model.Product, error)
	// FindAll returns products enriched with category name and current stock.
	FindAll(ctx context.Context) ([]model.ProductListItem, error)
	Update(ctx context.Context, p *model.Product) (bool, error)
	// Delete cascades to stock_in, stock_out and inventory rows.
	Delete(ctx context.Context, id int64) (bool, error)

	IsPartNumberUnique(ctx context.Context, partNumber string, excludeID int64) (bool, error)
	CategoryExists(ctx context.Context, id int64) (bool, error)
}
