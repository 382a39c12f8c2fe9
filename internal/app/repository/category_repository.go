package repository

import (
	"context"
	"errors"

	"github.com/vitrina-app/vitrina-backend/internal/app/model"
	"github.com/vitrina-app/vitrina-backend/internal/store"
)

const categoriesPath = "categories"

type CategoryRepository interface {
	FindAll(ctx context.Context) ([]model.Category, error)
	Create(ctx context.Context, category model.Category) (string, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, id string) error
}

type categoryRepository struct {
	store store.Store
}

func NewCategoryRepository(s store.Store) CategoryRepository {
	return &categoryRepository{store: s}
}

func (r *categoryRepository) FindAll(ctx context.Context) ([]model.Category, error) {
	records := make(map[string]model.CategoryRecord)
	if err := r.store.Get(ctx, categoriesPath, &records); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return []model.Category{}, nil
		}
		return nil, err
	}

	categories := make([]model.Category, 0, len(records))
	for id, record := range records {
		categories = append(categories, record.Normalize(id))
	}
	return categories, nil
}

func (r *categoryRepository) Create(ctx context.Context, category model.Category) (string, error) {
	return r.store.Push(ctx, categoriesPath, model.NewCategoryRecord(category))
}

func (r *categoryRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	return r.store.Update(ctx, categoriesPath+"/"+id, fields)
}

func (r *categoryRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, categoriesPath+"/"+id)
}
