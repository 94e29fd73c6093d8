package usecase

import (
	"context"
	"testing"

	"github.com/autoparts/inventory-service/internal/model"
	"github.com/autoparts/inventory-service/internal/product/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRepo struct {
	products   map[int64]*model.Product
	categories map[int64]bool
	nextID     int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		products:   make(map[int64]*model.Product),
		categories: make(map[int64]bool),
	}
}

func (f *fakeRepo) Create(_ context.Context, p *model.Product) error {
	f.nextID++
	p.ID = f.nextID
	clone := *p
	f.products[p.ID] = &clone
	return nil
}

func (f *fakeRepo) FindByID(_ context.Context, id int64) (*model.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	clone := *p
	return &clone, nil
}

func (f *fakeRepo) FindAll(_ context.Context) ([]model.ProductListItem, error) {
	items := []model.ProductListItem{}
	for _, p := range f.products {
		items = append(items, model.ProductListItem{Product: *p, CategoryName: "uncategorized"})
	}
	return items, nil
}

func (f *fakeRepo) Update(_ context.Context, p *model.Product) (bool, error) {
	if _, ok := f.products[p.ID]; !ok {
		return false, nil
	}
	clone := *p
	f.products[p.ID] = &clone
	return true, nil
}

func (f *fakeRepo) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := f.products[id]; !ok {
		return false, nil
	}
	delete(f.products, id)
	return true, nil
}

func (f *fakeRepo) IsPartNumberUnique(_ context.Context, partNumber string, excludeID int64) (bool, error) {
	for _, p := range f.products {
		if p.ID != excludeID && p.PartNumber != nil && *p.PartNumber == partNumber {
			return false, nil
		}
	}
	return true, nil
}

func (f *fakeRepo) CategoryExists(_ context.Context, id int64) (bool, error) {
	return f.categories[id], nil
}

func TestCreateProductDefaults(t *testing.T) {
	uc := NewProductUseCase(newFakeRepo(), zap.NewNop())

	p, err := uc.CreateProduct(context.Background(), &dto.CreateProductInput{
		Name: "Oil Filter",
	})
	require.NoError(t, err)

	assert.Equal(t, "pcs", p.Unit)
	assert.Equal(t, 0, p.MinStock)
	assert.Equal(t, 100, p.MaxStock)
	assert.Nil(t, p.PartNumber)
	assert.NotZero(t, p.ID)
}

func TestCreateProductValidation(t *testing.T) {
	repo := newFakeRepo()
	uc := NewProductUseCase(repo, zap.NewNop())
	ctx := context.Background()

	intPtr := func(n int) *int { return &n }

	tests := []struct {
		name  string
		input dto.CreateProductInput
	}{
		{"empty name", dto.CreateProductInput{}},
		{"negative min stock", dto.CreateProductInput{Name: "X", MinStock: intPtr(-1)}},
		{"max not above min", dto.CreateProductInput{Name: "X", MinStock: intPtr(10), MaxStock: intPtr(10)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.CreateProduct(ctx, &tt.input)
			var validationErr *model.ValidationError
			assert.ErrorAs(t, err, &validationErr)
		})
	}
}

func TestCreateProductDuplicatePartNumber(t *testing.T) {
	repo := newFakeRepo()
	uc := NewProductUseCase(repo, zap.NewNop())
	ctx := context.Background()

	_, err := uc.CreateProduct(ctx, &dto.CreateProductInput{Name: "A", PartNumber: "FILTER-001"})
	require.NoError(t, err)

	_, err = uc.CreateProduct(ctx, &dto.CreateProductInput{Name: "B", PartNumber: "FILTER-001"})
	var validationErr *model.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "part_number", validationErr.Field)
}

func TestCreateProductUnknownCategory(t *testing.T) {
	uc := NewProductUseCase(newFakeRepo(), zap.NewNop())

	categoryID := int64(7)
	_, err := uc.CreateProduct(context.Background(), &dto.CreateProductInput{
		Name:       "Oil Filter",
		CategoryID: &categoryID,
	})
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestUpdateProductKeepsOwnPartNumber(t *testing.T) {
	repo := newFakeRepo()
	uc := NewProductUseCase(repo, zap.NewNop())
	ctx := context.Background()

	created, err := uc.CreateProduct(ctx, &dto.CreateProductInput{Name: "A", PartNumber: "FILTER-001"})
	require.NoError(t, err)

	// Re-submitting the same part number for the same product is not a
	// conflict.
	_, err = uc.UpdateProduct(ctx, &dto.UpdateProductInput{
		ID:         created.ID,
		Name:       "A (updated)",
		PartNumber: "FILTER-001",
	})
	assert.NoError(t, err)
}

func TestDeleteProductNotFound(t *testing.T) {
	uc := NewProductUseCase(newFakeRepo(), zap.NewNop())

	err := uc.DeleteProduct(context.Background(), 123)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestGetProductNotFound(t *testing.T) {
	uc := NewProductUseCase(newFakeRepo(), zap.NewNop())

	_, err := uc.GetProduct(context.Background(), 5)
	assert.ErrorIs(t, err, model.ErrNotFound)
}
