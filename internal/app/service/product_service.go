package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/vitrina-app/vitrina-backend/internal/app/model"
	"github.com/vitrina-app/vitrina-backend/internal/app/repository"
	"github.com/vitrina-app/vitrina-backend/internal/store"
	"github.com/vitrina-app/vitrina-backend/pkg/logger"
)

// ErrPermissionDenied wraps the store sentinel so callers can show the
// actionable access-rules message instead of a generic failure.
var ErrPermissionDenied = fmt.Errorf("%w: update the database access rules to allow admin writes", store.ErrPermissionDenied)

// CategoryAll is the sentinel selection that bypasses the category filter.
const CategoryAll = "All"

// BrowseOptions are the storefront listing controls. Filters compose as
// logical AND over the full (optionally shuffled) list.
type BrowseOptions struct {
	Search   string
	Category string
	Shuffle  bool
}

type ProductService interface {
	// ListProducts is fail-soft: any fetch failure is logged and yields
	// an empty list, never an error.
	ListProducts(ctx context.Context) []model.Product

	// BrowseProducts applies the storefront shuffle and filters on top
	// of ListProducts.
	BrowseProducts(ctx context.Context, opts BrowseOptions) []model.Product

	// GetProduct returns nil (not an error) when the id does not exist
	// or the fetch fails.
	GetProduct(ctx context.Context, id string) *model.Product

	AddProduct(ctx context.Context, product model.Product) (string, error)
	UpdateProduct(ctx context.Context, id string, fields map[string]interface{}) error
	DeleteProduct(ctx context.Context, id string) error
}

type productService struct {
	productRepo repository.ProductRepository
}

func NewProductService(productRepo repository.ProductRepository) ProductService {
	return &productService{productRepo: productRepo}
}

func (s *productService) ListProducts(ctx context.Context) []model.Product {
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to fetch products", err, nil)
		return []model.Product{}
	}

	logger.Debug("Products fetched", map[string]interface{}{
		"count": len(products),
	})
	return products
}

func (s *productService) BrowseProducts(ctx context.Context, opts BrowseOptions) []model.Product {
	products := s.ListProducts(ctx)
	if opts.Shuffle {
		ShuffleProducts(products)
	}
	return FilterProducts(products, opts.Search, opts.Category)
}

func (s *productService) GetProduct(ctx context.Context, id string) *model.Product {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			logger.Warn("Product not found", map[string]interface{}{
				"product_id": id,
			})
		} else {
			logger.Error("Failed to fetch product", err, map[string]interface{}{
				"product_id": id,
			})
		}
		return nil
	}
	return product
}

func (s *productService) AddProduct(ctx context.Context, product model.Product) (string, error) {
	logger.Info("Creating new product", map[string]interface{}{
		"name":     product.Name,
		"category": product.Category,
		"price":    product.Price,
	})

	id, err := s.productRepo.Create(ctx, product)
	if err != nil {
		logger.Error("Failed to create product", err, map[string]interface{}{
			"name": product.Name,
		})
		if errors.Is(err, store.ErrPermissionDenied) {
			return "", ErrPermissionDenied
		}
		return "", err
	}

	logger.Info("Product created successfully", map[string]interface{}{
		"product_id": id,
		"name":       product.Name,
	})
	return id, nil
}

func (s *productService) UpdateProduct(ctx context.Context, id string, fields map[string]interface{}) error {
	logger.Info("Updating product", map[string]interface{}{
		"product_id": id,
		"fields":     len(fields),
	})

	if err := s.productRepo.Update(ctx, id, fields); err != nil {
		logger.Error("Failed to update product", err, map[string]interface{}{
			"product_id": id,
		})
		return err
	}
	return nil
}

func (s *productService) DeleteProduct(ctx context.Context, id string) error {
	logger.Info("Deleting product", map[string]interface{}{
		"product_id": id,
	})

	if err := s.productRepo.Delete(ctx, id); err != nil {
		logger.Error("Failed to delete product", err, map[string]interface{}{
			"product_id": id,
		})
		return err
	}
	return nil
}

// ShuffleProducts randomizes the list in place. The storefront shuffles
// the full catalog once per load so repeat visitors see a fresh order.
func ShuffleProducts(products []model.Product) {
	rand.Shuffle(len(products), func(i, j int) {
		products[i], products[j] = products[j], products[i]
	})
}

// FilterProducts applies the AND-composed storefront filters: a
// case-insensitive substring match against name or description, and
// exact category-name membership. CategoryAll (or an empty selection)
// bypasses the category filter. The input list is not mutated.
func FilterProducts(products []model.Product, search, category string) []model.Product {
	filtered := make([]model.Product, 0, len(products))
	query := strings.ToLower(strings.TrimSpace(search))

	for _, p := range products {
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Name), query) &&
			!strings.Contains(strings.ToLower(p.Description), query) {
			continue
		}
		if category != "" && category != CategoryAll && !containsName(p.Category, category) {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
