package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vitrina-app/vitrina-backend/internal/app/model"
	"github.com/vitrina-app/vitrina-backend/internal/app/service"
	"github.com/vitrina-app/vitrina-backend/internal/errors"
	"github.com/vitrina-app/vitrina-backend/internal/realtime"
)

type CategoryController struct {
	categoryService service.CategoryService
	hub             *realtime.Hub
}

func NewCategoryController(categoryService service.CategoryService, hub *realtime.Hub) *CategoryController {
	return &CategoryController{
		categoryService: categoryService,
		hub:             hub,
	}
}

// ListCategories handles GET /api/v1/categories
// With featured=true only categories carrying both an image and a
// description are returned (the landing-page subset).
func (ctrl *CategoryController) ListCategories(c *gin.Context) {
	var categories []model.Category
	if c.Query("featured") == "true" {
		categories = ctrl.categoryService.FeaturedCategories(c.Request.Context())
	} else {
		categories = ctrl.categoryService.ListCategories(c.Request.Context())
	}

	c.JSON(http.StatusOK, gin.H{
		"categories": categories,
		"count":      len(categories),
	})
}

// CreateCategory handles POST /api/v1/categories (admin)
func (ctrl *CategoryController) CreateCategory(c *gin.Context) {
	var category model.Category
	if err := c.ShouldBindJSON(&category); err != nil {
		errors.BadRequest(c, errors.ValidationInvalidInput, "Invalid category payload: "+err.Error())
		return
	}

	if category.Name == "" {
		errors.BadRequest(c, errors.ValidationRequired, "Category name is required")
		return
	}

	id, err := ctrl.categoryService.AddCategory(c.Request.Context(), category)
	if err != nil {
		errors.HandleStoreWriteError(c, err, "Failed to create category")
		return
	}

	ctrl.hub.Notify("categories")
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// UpdateCategory handles PATCH /api/v1/categories/:id (admin)
func (ctrl *CategoryController) UpdateCategory(c *gin.Context) {
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

	if err := ctrl.categoryService.UpdateCategory(c.Request.Context(), id, fields); err != nil {
		errors.HandleStoreWriteError(c, err, "Failed to update category")
		return
	}

	ctrl.hub.Notify("categories")
	c.JSON(http.StatusOK, gin.H{"message": "Category updated successfully"})
}

// DeleteCategory handles DELETE /api/v1/categories/:id (admin)
func (ctrl *CategoryController) DeleteCategory(c *gin.Context) {
	id := c.Param("id")

	if err := ctrl.categoryService.DeleteCategory(c.Request.Context(), id); err != nil {
		errors.HandleStoreWriteError(c, err, "Failed to delete category")
		return
	}

	ctrl.hub.Notify("categories")
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}
