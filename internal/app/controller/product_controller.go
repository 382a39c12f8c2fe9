package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vitrina-app/vitrina-backend/internal/app/model"
	"github.com/vitrina-app/vitrina-backend/internal/app/service"
	"github.com/vitrina-app/vitrina-backend/internal/errors"
	"github.com/vitrina-app/vitrina-backend/internal/realtime"
)

type ProductController struct {
	productService service.ProductService
	hub            *realtime.Hub
}

func NewProductController(productService service.ProductService, hub *realtime.Hub) *ProductController {
	return &ProductController{
		productService: productService,
		hub:            hub,
	}
}

// ListProducts handles GET /api/v1/products
// Query params: search (substring match), category (exact name, "All"
// bypasses), shuffle (randomize order before filtering).
func (ctrl *ProductController) ListProducts(c *gin.Context) {
	opts := service.BrowseOptions{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Shuffle:  c.Query("shuffle") == "true",
	}

	products := ctrl.productService.BrowseProducts(c.Request.Context(), opts)

	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"count":    len(products),
	})
}

// GetProduct handles GET /api/v1/products/:id
func (ctrl *ProductController) GetProduct(c *gin.Context) {
	id := c.Param("id")

	product := ctrl.productService.GetProduct(c.Request.Context(), id)
	if product == nil {
		errors.NotFound(c, errors.ResourceNotFound, "Product not found")
		return
	}

	c.JSON(http.StatusOK, product)
}

// CreateProduct handles POST /api/v1/products (admin)
func (ctrl *ProductController) CreateProduct(c *gin.Context) {
	var product model.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		errors.BadRequest(c, errors.ValidationInvalidInput, "Invalid product payload: "+err.Error())
		return
	}

	if product.Name == "" {
		errors.BadRequest(c, errors.ValidationRequired, "Product name is required")
		return
	}

	id, err := ctrl.productService.AddProduct(c.Request.Context(), product)
	if err != nil {
		errors.HandleStoreWriteError(c, err, "Failed to create product")
		return
	}

	ctrl.hub.Notify("products")
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// UpdateProduct handles PATCH /api/v1/products/:id (admin)
// Fields merge into the stored record; omitted fields are untouched.
func (ctrl *ProductController) UpdateProduct(c *gin.Context) {
	id := c.Param("id")

	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		errors.BadRequest(c, errors.ValidationInvalidInput, "Invalid update payload: "+err.Error())
		return
	}
	if len(fields) == 0 {
		errors.BadRequest(c, errors.ValidationRequired, "No fields to update")
		return
	}

	if err := ctrl.productService.UpdateProduct(c.Request.Context(), id, fields); err != nil {
		errors.HandleStoreWriteError(c, err, "Failed to update product")
		return
	}

	ctrl.hub.Notify("products")
	c.JSON(http.StatusOK, gin.H{"message": "Product updated successfully"})
}

// DeleteProduct handles DELETE /api/v1/products/:id (admin)
func (ctrl *ProductController) DeleteProduct(c *gin.Context) {
	id := c.Param("id")

	if err := ctrl.productService.DeleteProduct(c.Request.Context(), id); err != nil {
		errors.HandleStoreWriteError(c, err, "Failed to delete product")
		return
	}

	ctrl.hub.Notify("products")
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
