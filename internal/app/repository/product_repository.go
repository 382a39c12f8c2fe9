package repository

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/vitrina-app/vitrina-backend/internal/app/model"
	"github.com/vitrina-app/vitrina-backend/internal/store"
)

const productsPath = "products"

// ProductRepository translates between stored product records and the
// typed entity. Errors pass through untouched; behavioral contracts
// (fail-soft, permission classification) live in the service layer.
type ProductRepository interface {
	FindAll(ctx context.Context) ([]model.Product, error)
	FindByID(ctx context.Context, id string) (*model.Product, error)
	Create(ctx context.Context, product model.Product) (string, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, id string) error
}

type productRepository struct {
	store store.Store
}

func NewProductRepository(s store.Store) ProductRepository {
	return &productRepository{store: s}
}

// FindAll reads the whole collection in one call and returns it sorted
// newest-createdAt first. An absent collection is empty, not an error.
func (r *productRepository) FindAll(ctx context.Context) ([]model.Product, error) {
	records := make(map[string]model.ProductRecord)
	if err := r.store.Get(ctx, productsPath, &records); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return []model.Product{}, nil
		}
		return nil, err
	}

	products := make([]model.Product, 0, len(records))
	for id, record := range records {
		products = append(products, record.Normalize(id))
	}
	sort.Slice(products, func(i, j int) bool {
		return products[i].CreatedAt.After(products[j].CreatedAt)
	})
	return products, nil
}

func (r *productRepository) FindByID(ctx context.Context, id string) (*model.Product, error) {
	var record model.ProductRecord
	if err := r.store.Get(ctx, productsPath+"/"+id, &record); err != nil {
		return nil, err
	}
	product := record.Normalize(id)
	return &product, nil
}

// Create writes the record under a store-minted key, stamping createdAt.
func (r *productRepository) Create(ctx context.Context, product model.Product) (string, error) {
	return r.store.Push(ctx, productsPath, model.NewProductRecord(product, time.Now()))
}

func (r *productRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	return r.store.Update(ctx, productsPath+"/"+id, fields)
}

func (r *productRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, productsPath+"/"+id)
}
