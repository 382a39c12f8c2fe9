package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitrina-app/vitrina-backend/internal/app/model"
	"github.com/vitrina-app/vitrina-backend/internal/app/repository"
	"github.com/vitrina-app/vitrina-backend/internal/store"
)

func setupCategoryServiceTest(t *testing.T) (CategoryService, *store.Memory) {
	mem := store.NewMemory()
	categoryRepo := repository.NewCategoryRepository(mem)
	return NewCategoryService(categoryRepo), mem
}

func seedCategory(t *testing.T, mem *store.Memory, id string, record model.CategoryRecord) {
	t.Helper()
	require.NoError(t, mem.Set(context.Background(), "categories/"+id, record))
}

func TestCategoryService_ListCategories(t *testing.T) {
	categoryService, mem := setupCategoryServiceTest(t)

	seedCategory(t, mem, "c1", model.CategoryRecord{Name: "Kitchen"})
	seedCategory(t, mem, "c2", model.CategoryRecord{Name: "Wood"})

	categories := categoryService.ListCategories(context.Background())

	require.Len(t, categories, 2)
	assert.NotNil(t, categories[0].ProductIDs)
}

func TestCategoryService_ListCategories_FailSoft(t *testing.T) {
	categoryService, mem := setupCategoryServiceTest(t)
	mem.FailReads(errors.New("backend unreachable"))

	categories := categoryService.ListCategories(context.Background())

	require.NotNil(t, categories)
	assert.Len(t, categories, 0)
}

func TestCategoryService_FeaturedCategories(t *testing.T) {
	categoryService, mem := setupCategoryServiceTest(t)

	seedCategory(t, mem, "c1", model.CategoryRecord{
		Name:        "Kitchen",
		Image:       "https://img/kitchen.jpg",
		Description: "Tableware and cookware",
	})
	seedCategory(t, mem, "c2", model.CategoryRecord{
		Name:  "Wood",
		Image: "https://img/wood.jpg",
		// No description, so not featured.
	})
	seedCategory(t, mem, "c3", model.CategoryRecord{
		Name:        "Accessories",
		Description: "Bags and more",
		// No image, so not featured.
	})

	featured := categoryService.FeaturedCategories(context.Background())

	require.Len(t, featured, 1)
	assert.Equal(t, "Kitchen", featured[0].Name)
}

func TestCategoryService_AddCategory(t *testing.T) {
	categoryService, _ := setupCategoryServiceTest(t)

	id, err := categoryService.AddCategory(context.Background(), model.Category{Name: "Kitchen"})

	require.NoError(t, err)
	assert.NotEmpty(t, id)

	categories := categoryService.ListCategories(context.Background())
	require.Len(t, categories, 1)
	assert.Equal(t, id, categories[0].ID)
}

func TestCategoryService_AddCategory_PermissionDenied(t *testing.T) {
	categoryService, mem := setupCategoryServiceTest(t)
	mem.FailWrites(store.ErrPermissionDenied)

	_, err := categoryService.AddCategory(context.Background(), model.Category{Name: "Kitchen"})

	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestCategoryService_UpdateCategory(t *testing.T) {
	categoryService, mem := setupCategoryServiceTest(t)

	seedCategory(t, mem, "c1", model.CategoryRecord{Name: "Kitchen"})

	err := categoryService.UpdateCategory(context.Background(), "c1", map[string]interface{}{
		"description": "Everyday tableware",
	})
	require.NoError(t, err)

	categories := categoryService.ListCategories(context.Background())
	require.Len(t, categories, 1)
	assert.Equal(t, "Kitchen", categories[0].Name)
	assert.Equal(t, "Everyday tableware", categories[0].Description)
}

func TestCategoryService_DeleteCategory(t *testing.T) {
	categoryService, mem := setupCategoryServiceTest(t)

	seedCategory(t, mem, "c1", model.CategoryRecord{Name: "Kitchen"})

	require.NoError(t, categoryService.DeleteCategory(context.Background(), "c1"))
	assert.Len(t, categoryService.ListCategories(context.Background()), 0)
}
