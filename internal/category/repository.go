package category

import (
	"context"

	"github.com/autoparts/inventory-service/internal/model"
)

type Repository interface {
	Create(ctx context.Context, c *model.Category) error
	FindByID(ctx context.Context, id int64) (*model.Category, error)
	FindAll(ctx context.Context) ([]model.Category, error)
	Update(ctx context.Context, c *model.Category) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
