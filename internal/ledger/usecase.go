package ledger

import (
	"context"

	"github.com/autoparts/inventory-service/internal/ledger/dto"
	"github.com/autoparts/inventory-service/internal/model"
)

type UseCase interface {
	RecordStockIn(ctx context.Context, input *dto.StockInInput) (*model.StockIn, error)
	RecordStockOut(ctx context.Context, input *dto.StockOutInput) (*model.StockOut, error)
	ListStockIn(ctx context.Context) ([]model.StockInDetail, error)
	ListStockOut(ctx context.Context) ([]model.StockOutDetail, error)
}
