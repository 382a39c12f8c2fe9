package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vitrina-app/vitrina-backend/internal/app/service"
	"github.com/vitrina-app/vitrina-backend/internal/errors"
	"github.com/vitrina-app/vitrina-backend/internal/export"
	"github.com/vitrina-app/vitrina-backend/internal/middleware"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ExportController struct {
	productService  service.ProductService
	reviewService   service.ReviewService
	categoryService service.CategoryService
}

func NewExportController(
	productService service.ProductService,
	reviewService service.ReviewService,
	categoryService service.CategoryService,
) *ExportController {
	return &ExportController{
		productService:  productService,
		reviewService:   reviewService,
		categoryService: categoryService,
	}
}

// ExportCatalog handles GET /api/v1/admin/export
// Streams the full catalog as an xlsx download.
func (ctrl *ExportController) ExportCatalog(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	ctx := c.Request.Context()

	products := ctrl.productService.ListProducts(ctx)
	reviews := ctrl.reviewService.ListReviews(ctx)
	categories := ctrl.categoryService.ListCategories(ctx)

	workbook, err := export.BuildWorkbook(products, reviews, categories)
	if err != nil {
		log.Error("Failed to build export workbook", err, nil)
		errors.InternalError(c, "Failed to build the catalog export")
		return
	}

	buf, err := workbook.WriteToBuffer()
	if err != nil {
		log.Error("Failed to serialize export workbook", err, nil)
		errors.InternalError(c, "Failed to build the catalog export")
		return
	}

	filename := export.Filename(time.Now())
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
