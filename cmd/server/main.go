package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/vitrina-app/vitrina-backend/config"
	"github.com/vitrina-app/vitrina-backend/internal/app/controller"
	"github.com/vitrina-app/vitrina-backend/internal/app/repository"
	"github.com/vitrina-app/vitrina-backend/internal/app/service"
	"github.com/vitrina-app/vitrina-backend/internal/imagehost"
	"github.com/vitrina-app/vitrina-backend/internal/middleware"
	"github.com/vitrina-app/vitrina-backend/internal/realtime"
	"github.com/vitrina-app/vitrina-backend/internal/router"
	"github.com/vitrina-app/vitrina-backend/internal/scheduler"
	"github.com/vitrina-app/vitrina-backend/internal/store"
	"github.com/vitrina-app/vitrina-backend/pkg/logger"
	"github.com/vitrina-app/vitrina-backend/pkg/redis"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console", // Use "json" for production
		EnableColor: true,
	})

	logger.Info("Starting VITRINA Backend Server", map[string]interface{}{
		"environment":   cfg.Server.Environment,
		"port":          cfg.Server.Port,
		"log_level":     logLevel,
		"store_backend": cfg.Store.Backend,
	})

	// Redis backs session revocation (and optionally the store itself)
	if err := redis.Init(&cfg.Redis); err != nil {
		logger.Fatal("Failed to initialize Redis", err)
	}
	defer func() {
		if err := redis.Close(); err != nil {
			logger.Error("Failed to close Redis connection", err)
		}
	}()
	sessionStore := redis.NewSessionStore(redis.GetClient())

	st := newStore(cfg)

	// Initialize repositories
	productRepo := repository.NewProductRepository(st)
	reviewRepo := repository.NewReviewRepository(st)
	categoryRepo := repository.NewCategoryRepository(st)
	settingsRepo := repository.NewSettingsRepository(st)

	// Initialize services
	productService := service.NewProductService(productRepo)
	reviewService := service.NewReviewService(reviewRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	settingsService := service.NewSettingsService(settingsRepo)
	authService := service.NewAuthService(settingsService, sessionStore, cfg.Session.Secret)

	uploader, err := newUploader(&cfg.ImageHost)
	if err != nil {
		logger.Fatal("Failed to initialize image host", err)
	}

	// Realtime change-event hub
	hub := realtime.NewHub()
	go hub.Run()

	// Initialize controllers
	authController := controller.NewAuthController(authService)
	productController := controller.NewProductController(productService, hub)
	reviewController := controller.NewReviewController(reviewService, hub)
	categoryController := controller.NewCategoryController(categoryService, hub)
	settingsController := controller.NewSettingsController(settingsService, hub)
	uploadController := controller.NewUploadController(uploader)
	exportController := controller.NewExportController(productService, reviewService, categoryService)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(cfg.Session.Secret, sessionStore)

	// Setup router
	r := router.NewRouter(
		authController,
		productController,
		reviewController,
		categoryController,
		settingsController,
		uploadController,
		exportController,
		authMiddleware,
		hub,
		cfg,
	)
	engine := r.Setup()

	// Scheduled catalog exports (optional)
	if cfg.Export.Enabled {
		var exportUploader imagehost.Uploader
		if cfg.Export.Upload {
			exportUploader = imagehost.NewS3Uploader(cfg.ImageHost.S3)
		}
		exportScheduler := scheduler.NewExportScheduler(
			cfg.Export.Schedule,
			productService,
			reviewService,
			categoryService,
			exportUploader,
		)
		if err := exportScheduler.Start(); err != nil {
			logger.Warn("Catalog export scheduler not started", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			defer exportScheduler.Stop()
		}
	}

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	logger.Info("Server stopped successfully")
}

// newStore selects the catalog store backend. Firebase is the hosted
// production store; redis serves local development without a Firebase
// project.
func newStore(cfg *config.Config) store.Store {
	switch cfg.Store.Backend {
	case "redis":
		return store.NewRedis(redis.GetClient())
	default:
		return store.NewFirebase(cfg.Store.FirebaseURL, cfg.Store.FirebaseAuth)
	}
}

func newUploader(cfg *config.ImageHostConfig) (imagehost.Uploader, error) {
	switch cfg.Provider {
	case "s3":
		return imagehost.NewS3Uploader(cfg.S3), nil
	case "cloudinary":
		return imagehost.NewCloudinaryUploader(cfg.CloudinaryURL, cfg.S3.Folder)
	case "imgbb":
		return imagehost.NewImgbbClient(cfg.Imgbb.APIKey, cfg.Imgbb.UploadURL), nil
	default:
		return nil, fmt.Errorf("unknown image host provider %q", cfg.Provider)
	}
}
