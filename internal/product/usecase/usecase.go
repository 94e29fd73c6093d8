package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/autoparts/inventory-service/internal/model"
	"github.com/autoparts/inventory-service/internal/product"
	"github.com/autoparts/inventory-service/internal/product/dto"
	"go.uber.org/zap"
)

const (
	defaultUnit     = "pcs"
	defaultMaxStock = 100
)

type productUseCase struct {
	repo   product.Repository
	logger *zap.Logger
}

func NewProductUseCase(repo product.Repository, log *zap.Logger) product.UseCase {
	return &productUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *productUseCase) CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error) {
	minStock, maxStock, err := resolveThresholds(input.MinStock, input.MaxStock)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, model.NewValidationError("name", "must not be empty")
	}

	if err := uc.checkReferences(ctx, input.CategoryID, input.PartNumber, 0); err != nil {
		return nil, err
	}

	now := time.Now()
	p := &model.Product{
		BaseModel:     model.BaseModel{CreatedAt: now, UpdatedAt: now},
		Name:          input.Name,
		CategoryID:    input.CategoryID,
		PartNumber:    optional(input.PartNumber),
		Brand:         optional(input.Brand),
		Model:         optional(input.Model),
		Specification: optional(input.Specification),
		Unit:          defaultString(input.Unit, defaultUnit),
		PurchasePrice: input.PurchasePrice,
		SalePrice:     input.SalePrice,
		MinStock:      minStock,
		MaxStock:      maxStock,
		Description:   optional(input.Description),
	}

	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	uc.logger.Info("product created",
		zap.Int64("product_id", p.ID), zap.String("name", p.Name))
	return p, nil
}

func (uc *productUseCase) GetProduct(ctx context.Context, id int64) (*model.Product, error) {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("product %d: %w", id, model.ErrNotFound)
	}
	return p, nil
}

func (uc *productUseCase) ListProducts(ctx context.Context) ([]model.ProductListItem, error) {
	return uc.repo.FindAll(ctx)
}

func (uc *productUseCase) UpdateProduct(ctx context.Context, input *dto.UpdateProductInput) (*model.Product, error) {
	minStock, maxStock, err := resolveThresholds(input.MinStock, input.MaxStock)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, model.NewValidationError("name", "must not be empty")
	}

	if err := uc.checkReferences(ctx, input.CategoryID, input.PartNumber, input.ID); err != nil {
		return nil, err
	}

	p := &model.Product{
		BaseModel:     model.BaseModel{ID: input.ID, UpdatedAt: time.Now()},
		Name:          input.Name,
		CategoryID:    input.CategoryID,
		PartNumber:    optional(input.PartNumber),
		Brand:         optional(input.Brand),
		Model:         optional(input.Model),
		Specification: optional(input.Specification),
		Unit:          defaultString(input.Unit, defaultUnit),
		PurchasePrice: input.PurchasePrice,
		SalePrice:     input.SalePrice,
		MinStock:      minStock,
		MaxStock:      maxStock,
		Description:   optional(input.Description),
	}

	updated, err := uc.repo.Update(ctx, p)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, fmt.Errorf("product %d: %w", input.ID, model.ErrNotFound)
	}
	return p, nil
}

func (uc *productUseCase) DeleteProduct(ctx context.Context, id int64) error {
	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("product %d: %w", id, model.ErrNotFound)
	}
	uc.logger.Info("product deleted", zap.Int64("product_id", id))
	return nil
}

func (uc *productUseCase) checkReferences(ctx context.Context, categoryID *int64, partNumber string, excludeID int64) error {
	if categoryID != nil {
		exists, err := uc.repo.CategoryExists(ctx, *categoryID)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("category %d: %w", *categoryID, model.ErrNotFound)
		}
	}

	if partNumber != "" {
		unique, err := uc.repo.IsPartNumberUnique(ctx, partNumber, excludeID)
		if err != nil {
			return err
		}
		if !unique {
			return model.NewValidationError("part_number", "already exists")
		}
	}
	return nil
}

// resolveThresholds applies the storage defaults and keeps max above min.
func resolveThresholds(minStock, maxStock *int) (int, int, error) {
	minVal := 0
	if minStock != nil {
		minVal = *minStock
	}
	maxVal := defaultMaxStock
	if maxStock != nil {
		maxVal = *maxStock
	}

	if minVal < 0 {
		return 0, 0, model.NewValidationError("min_stock", "must not be negative")
	}
	if maxVal <= minVal {
		return 0, 0, model.NewValidationError("max_stock", "must be greater than min_stock")
	}
	return minVal, maxVal, nil
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
