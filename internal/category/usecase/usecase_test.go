package usecase

import (
	"context"
	"testing"

	"github.com/autoparts/inventory-service/internal/category/dto"
	"github.com/autoparts/inventory-service/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRepo struct {
	categories map[int64]*model.Category
	nextID     int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{categories: make(map[int64]*model.Category)}
}

func (f *fakeRepo) Create(_ context.Context, c *model.Category) error {
	f.nextID++
	c.ID = f.nextID
	clone := *c
	f.categories[c.ID] = &clone
	return nil
}

func (f *fakeRepo) FindByID(_ context.Context, id int64) (*model.Category, error) {
	c, ok := f.categories[id]
	if !ok {
		return nil, nil
	}
	clone := *c
	return &clone, nil
}

func (f *fakeRepo) FindAll(_ context.Context) ([]model.Category, error) {
	out := []model.Category{}
	for _, c := range f.categories {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeRepo) Update(_ context.Context, c *model.Category) (bool, error) {
	if _, ok := f.categories[c.ID]; !ok {
		return false, nil
	}
	clone := *c
	f.categories[c.ID] = &clone
	return true, nil
}

func (f *fakeRepo) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := f.categories[id]; !ok {
		return false, nil
	}
	delete(f.categories, id)
	return true, nil
}

func TestCreateCategory(t *testing.T) {
	uc := NewCategoryUseCase(newFakeRepo(), zap.NewNop())

	cat, err := uc.CreateCategory(context.Background(), &dto.CreateCategoryInput{
		Name:        "Filters",
		Description: "Oil and air filters",
	})
	require.NoError(t, err)
	assert.NotZero(t, cat.ID)
	require.NotNil(t, cat.Description)
	assert.Equal(t, "Oil and air filters", *cat.Description)
}

func TestCreateCategoryEmptyName(t *testing.T) {
	uc := NewCategoryUseCase(newFakeRepo(), zap.NewNop())

	_, err := uc.CreateCategory(context.Background(), &dto.CreateCategoryInput{Name: "  "})
	var validationErr *model.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestGetCategory(t *testing.T) {
	uc := NewCategoryUseCase(newFakeRepo(), zap.NewNop())
	ctx := context.Background()

	created, err := uc.CreateCategory(ctx, &dto.CreateCategoryInput{Name: "Filters"})
	require.NoError(t, err)

	got, err := uc.GetCategory(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Filters", got.Name)

	_, err = uc.GetCategory(ctx, created.ID+1)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestUpdateCategoryNotFound(t *testing.T) {
	uc := NewCategoryUseCase(newFakeRepo(), zap.NewNop())

	_, err := uc.UpdateCategory(context.Background(), &dto.UpdateCategoryInput{ID: 9, Name: "Brakes"})
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestDeleteCategoryNotFound(t *testing.T) {
	uc := NewCategoryUseCase(newFakeRepo(), zap.NewNop())

	err := uc.DeleteCategory(context.Background(), 9)
	assert.ErrorIs(t, err, model.ErrNotFound)
}
