package supplier

import (
	"context"

	"github.com/autoparts/inventory-service/internal/model"
)

type Repository interface {
	Create(ctx context.Context, s *model.Supplier) error
	FindByID(ctx context.Context, id int64) (*model.Supplier, error)
	FindAll(ctx context.Context) ([]model.Supplier, error)
	Update(ctx context.Context, s *model.Supplier) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
