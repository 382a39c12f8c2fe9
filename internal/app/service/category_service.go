package service

import (
	"context"
	"errors"

	"github.com/vitrina-app/vitrina-backend/internal/app/model"
	"github.com/vitrina-app/vitrina-backend/internal/app/repository"
	"github.com/vitrina-app/vitrina-backend/internal/store"
	"github.com/vitrina-app/vitrina-backend/pkg/logger"
)

type CategoryService interface {
	// ListCategories is fail-soft: fetch failures yield an empty list.
	ListCategories(ctx context.Context) []model.Category

	// FeaturedCategories returns the categories shown on the landing
	// view: those with both an image and a description.
	FeaturedCategories(ctx context.Context) []model.Category

	AddCategory(ctx context.Context, category model.Category) (string, error)
	UpdateCategory(ctx context.Context, id string, fields map[string]interface{}) error
	DeleteCategory(ctx context.Context, id string) error
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryService(categoryRepo repository.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

func (s *categoryService) ListCategories(ctx context.Context) []model.Category {
	categories, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to fetch categories", err, nil)
		return []model.Category{}
	}

	logger.Debug("Categories fetched", map[string]interface{}{
		"count": len(categories),
	})
	return categories
}

func (s *categoryService) FeaturedCategories(ctx context.Context) []model.Category {
	categories := s.ListCategories(ctx)
	featured := make([]model.Category, 0, len(categories))
	for _, c := range categories {
		if c.Featured() {
			featured = append(featured, c)
		}
	}
	return featured
}

func (s *categoryService) AddCategory(ctx context.Context, category model.Category) (string, error) {
	logger.Info("Creating new category", map[string]interface{}{
		"name": category.Name,
	})

	id, err := s.categoryRepo.Create(ctx, category)
	if err != nil {
		logger.Error("Failed to create category", err, map[string]interface{}{
			"name": category.Name,
		})
		if errors.Is(err, store.ErrPermissionDenied) {
			return "", ErrPermissionDenied
		}
		return "", err
	}

	logger.Info("Category created successfully", map[string]interface{}{
		"category_id": id,
		"name":        category.Name,
	})
	return id, nil
}

// UpdateCategory merges the given fields. Renaming a category does not
// cascade to products; membership is by name, so existing products keep
// the old tag.
func (s *categoryService) UpdateCategory(ctx context.Context, id string, fields map[string]interface{}) error {
	logger.Info("Updating category", map[string]interface{}{
		"category_id": id,
	})

	if err := s.categoryRepo.Update(ctx, id, fields); err != nil {
		logger.Error("Failed to update category", err, map[string]interface{}{
			"category_id": id,
		})
		return err
	}
	return nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, id string) error {
	logger.Info("Deleting category", map[string]interface{}{
		"category_id": id,
	})

	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		logger.Error("Failed to delete category", err, map[string]interface{}{
			"category_id": id,
		})
		return err
	}
	return nil
}
