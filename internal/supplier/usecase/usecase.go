package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/autoparts/inventory-service/internal/model"
	"github.com/autoparts/inventory-service/internal/supplier"
	"github.com/autoparts/inventory-service/internal/supplier/dto"
	"go.uber.org/zap"
)

type supplierUseCase struct {
	repo   supplier.Repository
	logger *zap.Logger
}

func NewSupplierUseCase(repo supplier.Repository, log *zap.Logger) supplier.UseCase {
	return &supplierUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *supplierUseCase) CreateSupplier(ctx context.Context, input *dto.CreateSupplierInput) (*model.Supplier, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, model.NewValidationError("name", "must not be empty")
	}

	now := time.Now()
	s := &model.Supplier{
		BaseModel:     model.BaseModel{CreatedAt: now, UpdatedAt: now},
		Name:          input.Name,
		ContactPerson: optional(input.ContactPerson),
		Phone:         optional(input.Phone),
		Address:       optional(input.Address),
		Email:         optional(input.Email),
	}

	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (uc *supplierUseCase) GetSupplier(ctx context.Context, id int64) (*model.Supplier, error) {
	s, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, model.ErrNotFound
	}
	return s, nil
}

func (uc *supplierUseCase) ListSuppliers(ctx context.Context) ([]model.Supplier, error) {
	return uc.repo.FindAll(ctx)
}

func (uc *supplierUseCase) UpdateSupplier(ctx context.Context, input *dto.UpdateSupplierInput) (*model.Supplier, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, model.NewValidationError("name", "must not be empty")
	}

	s := &model.Supplier{
		BaseModel:     model.BaseModel{ID: input.ID, UpdatedAt: time.Now()},
		Name:          input.Name,
		ContactPerson: optional(input.ContactPerson),
		Phone:         optional(input.Phone),
		Address:       optional(input.Address),
		Email:         optional(input.Email),
	}

	updated, err := uc.repo.Update(ctx, s)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, model.ErrNotFound
	}
	return s, nil
}

func (uc *supplierUseCase) DeleteSupplier(ctx context.Context, id int64) error {
	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return model.ErrNotFound
	}
	return nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
