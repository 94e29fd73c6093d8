package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/autoparts/inventory-service/internal/category"
	"github.com/autoparts/inventory-service/internal/category/dto"
	"github.com/autoparts/inventory-service/internal/model"
	"go.uber.org/zap"
)

type categoryUseCase struct {
	repo   category.Repository
	logger *zap.Logger
}

func NewCategoryUseCase(repo category.Repository, log *zap.Logger) category.UseCase {
	return &categoryUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *categoryUseCase) CreateCategory(ctx context.Context, input *dto.CreateCategoryInput) (*model.Category, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, model.NewValidationError("name", "must not be empty")
	}

	now := time.Now()
	cat := &model.Category{
		BaseModel:   model.BaseModel{CreatedAt: now, UpdatedAt: now},
		Name:        input.Name,
		Description: optional(input.Description),
	}

	if err := uc.repo.Create(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (uc *categoryUseCase) GetCategory(ctx context.Context, id int64) (*model.Category, error) {
	cat, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, model.ErrNotFound
	}
	return cat, nil
}

func (uc *categoryUseCase) ListCategories(ctx context.Context) ([]model.Category, error) {
	return uc.repo.FindAll(ctx)
}

func (uc *categoryUseCase) UpdateCategory(ctx context.Context, input *dto.UpdateCategoryInput) (*model.Category, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, model.NewValidationError("name", "must not be empty")
	}

	cat := &model.Category{
		BaseModel:   model.BaseModel{ID: input.ID, UpdatedAt: time.Now()},
		Name:        input.Name,
		Description: optional(input.Description),
	}

	updated, err := uc.repo.Update(ctx, cat)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, model.ErrNotFound
	}
	return cat, nil
}

func (uc *categoryUseCase) DeleteCategory(ctx context.Context, id int64) error {
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
