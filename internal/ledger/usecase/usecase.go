package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/autoparts/inventory-service/internal/ledger"
	"github.com/autoparts/inventory-service/internal/ledger/dto"
	"github.com/autoparts/inventory-service/internal/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultOperator = "unknown"

type ledgerUseCase struct {
	repo   ledger.Repository
	logger *zap.Logger
}

func NewLedgerUseCase(repo ledger.Repository, log *zap.Logger) ledger.UseCase {
	return &ledgerUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *ledgerUseCase) RecordStockIn(ctx context.Context, input *dto.StockInInput) (*model.StockIn, error) {
	if input.Quantity <= 0 {
		return nil, model.NewValidationError("quantity", "must be positive")
	}
	if input.UnitPrice < 0 {
		return nil, model.NewValidationError("unit_price", "must not be negative")
	}

	now := time.Now()
	batch := input.BatchNumber
	if batch == "" {
		batch = generateBatchNumber(now)
	}

	rec := &model.StockIn{
		ProductID:   input.ProductID,
		SupplierID:  input.SupplierID,
		Quantity:    input.Quantity,
		UnitPrice:   input.UnitPrice,
		TotalAmount: float64(input.Quantity) * input.UnitPrice,
		BatchNumber: &batch,
		InDate:      now,
		Operator:    defaultString(input.Operator, defaultOperator),
		Notes:       optional(input.Notes),
		CreatedAt:   now,
	}

	if err := uc.repo.RecordIn(ctx, rec); err != nil {
		return nil, err
	}

	uc.logger.Info("stock in recorded",
		zap.Int64("stock_in_id", rec.ID),
		zap.Int64("product_id", rec.ProductID),
		zap.Int("quantity", rec.Quantity))
	return rec, nil
}

func (uc *ledgerUseCase) RecordStockOut(ctx context.Context, input *dto.StockOutInput) (*model.StockOut, error) {
	if input.Quantity <= 0 {
		return nil, model.NewValidationError("quantity", "must be positive")
	}
	if input.SalePrice < 0 {
		return nil, model.NewValidationError("sale_price", "must not be negative")
	}
	if strings.TrimSpace(input.CustomerName) == "" {
		return nil, model.NewValidationError("customer_name", "must not be empty")
	}

	now := time.Now()
	rec := &model.StockOut{
		ProductID:    input.ProductID,
		Quantity:     input.Quantity,
		SalePrice:    input.SalePrice,
		TotalAmount:  float64(input.Quantity) * input.SalePrice,
		OutDate:      now,
		CustomerName: input.CustomerName,
		VehicleInfo:  optional(input.VehicleInfo),
		Operator:     defaultString(input.Operator, defaultOperator),
		Notes:        optional(input.Notes),
		CreatedAt:    now,
	}

	if err := uc.repo.RecordOut(ctx, rec); err != nil {
		return nil, err
	}

	uc.logger.Info("stock out recorded",
		zap.Int64("stock_out_id", rec.ID),
		zap.Int64("product_id", rec.ProductID),
		zap.Int("quantity", rec.Quantity))
	return rec, nil
}

func (uc *ledgerUseCase) ListStockIn(ctx context.Context) ([]model.StockInDetail, error) {
	return uc.repo.ListStockIn(ctx)
}

func (uc *ledgerUseCase) ListStockOut(ctx context.Context) ([]model.StockOutDetail, error) {
	return uc.repo.ListStockOut(ctx)
}

func generateBatchNumber(t time.Time) string {
	return fmt.Sprintf("BATCH-%s-%s", t.Format("20060102"), uuid.New().String()[:8])
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func defaultString(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
