package scheduler

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/vitrina-app/vitrina-backend/internal/app/service"
	"github.com/vitrina-app/vitrina-backend/internal/export"
	"github.com/vitrina-app/vitrina-backend/internal/imagehost"
	"github.com/vitrina-app/vitrina-backend/pkg/logger"
)

const localExportDir = "exports"

// ExportScheduler periodically snapshots the catalog into an xlsx
// workbook. With an uploader configured the workbook is pushed to S3;
// otherwise it lands in a local exports directory.
type ExportScheduler struct {
	cron            *cron.Cron
	schedule        string
	productService  service.ProductService
	reviewService   service.ReviewService
	categoryService service.CategoryService
	uploader        imagehost.Uploader
}

func NewExportScheduler(
	schedule string,
	productService service.ProductService,
	reviewService service.ReviewService,
	categoryService service.CategoryService,
	uploader imagehost.Uploader,
) *ExportScheduler {
	return &ExportScheduler{
		cron:            cron.New(),
		schedule:        schedule,
		productService:  productService,
		reviewService:   reviewService,
		categoryService: categoryService,
		uploader:        uploader,
	}
}

// Start registers the cron job and starts the scheduler.
func (s *ExportScheduler) Start() error {
	_, err := s.cron.AddFunc(s.schedule, s.run)
	if err != nil {
		logger.Error("Failed to add cron job for catalog export", err)
		return err
	}

	s.cron.Start()
	logger.Info("Catalog export scheduler started", map[string]interface{}{
		"schedule": s.schedule,
	})
	return nil
}

// Stop stops the scheduler.
func (s *ExportScheduler) Stop() {
	logger.Info("Stopping catalog export scheduler...", nil)
	s.cron.Stop()
	logger.Info("Catalog export scheduler stopped", nil)
}

func (s *ExportScheduler) run() {
	logger.Info("Starting scheduled catalog export", nil)

	ctx := context.Background()
	products := s.productService.ListProducts(ctx)
	reviews := s.reviewService.ListReviews(ctx)
	categories := s.categoryService.ListCategories(ctx)

	workbook, err := export.BuildWorkbook(products, reviews, categories)
	if err != nil {
		logger.Error("Failed to build catalog export workbook", err)
		return
	}

	buf, err := workbook.WriteToBuffer()
	if err != nil {
		logger.Error("Failed to serialize catalog export workbook", err)
		return
	}

	filename := export.Filename(time.Now())

	if s.uploader != nil {
		url, err := s.uploader.Upload(ctx, imagehost.File{
			Name:    filename,
			Content: buf,
		})
		if err != nil {
			logger.Error("Failed to upload catalog export", err)
			return
		}
		logger.Info("Catalog export uploaded", map[string]interface{}{
			"url":      url,
			"products": len(products),
			"reviews":  len(reviews),
		})
		return
	}

	if err := os.MkdirAll(localExportDir, 0o755); err != nil {
		logger.Error("Failed to create export directory", err)
		return
	}
	path := filepath.Join(localExportDir, filename)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		logger.Error("Failed to write catalog export", err)
		return
	}

	logger.Info("Catalog export written", map[string]interface{}{
		"path":     path,
		"products": len(products),
		"reviews":  len(reviews),
	})
}
