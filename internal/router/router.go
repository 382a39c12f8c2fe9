package router

import (
	"github.com/gin-gonic/gin"
	"github.com/vitrina-app/vitrina-backend/config"
	"github.com/vitrina-app/vitrina-backend/internal/app/controller"
	"github.com/vitrina-app/vitrina-backend/internal/middleware"
	"github.com/vitrina-app/vitrina-backend/internal/realtime"
)

type Router struct {
	authController     *controller.AuthController
	productController  *controller.ProductController
	reviewController   *controller.ReviewController
	categoryController *controller.CategoryController
	settingsController *controller.SettingsController
	uploadController   *controller.UploadController
	exportController   *controller.ExportController
	authMiddleware     *middleware.AuthMiddleware
	hub                *realtime.Hub
	config             *config.Config
}

func NewRouter(
	authController *controller.AuthController,
	productController *controller.ProductController,
	reviewController *controller.ReviewController,
	categoryController *controller.CategoryController,
	settingsController *controller.SettingsController,
	uploadController *controller.UploadController,
	exportController *controller.ExportController,
	authMiddleware *middleware.AuthMiddleware,
	hub *realtime.Hub,
	cfg *config.Config,
) *Router {
	return &Router{
		authController:     authController,
		productController:  productController,
		reviewController:   reviewController,
		categoryController: categoryController,
		settingsController: settingsController,
		uploadController:   uploadController,
		exportController:   exportController,
		authMiddleware:     authMiddleware,
		hub:                hub,
		config:             cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "VITRINA API is running",
		})
	})

	// Change-event stream for connected storefront clients.
	router.GET("/ws", realtime.ServeWS(r.hub))

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/login", r.authController.Login)
			auth.POST("/logout", r.authController.Logout)
			auth.GET("/me", r.authMiddleware.RequireAdmin(), r.authController.Me)
		}

		products := v1.Group("/products")
		{
			products.GET("", r.productController.ListProducts)
			products.GET("/:id", r.productController.GetProduct)

			products.POST("",
				r.authMiddleware.RequireAdmin(),
				r.productController.CreateProduct,
			)
			products.PATCH("/:id",
				r.authMiddleware.RequireAdmin(),
				r.productController.UpdateProduct,
			)
			products.DELETE("/:id",
				r.authMiddleware.RequireAdmin(),
				r.productController.DeleteProduct,
			)
		}

		reviews := v1.Group("/reviews")
		{
			reviews.GET("", r.reviewController.ListReviews)

			reviews.POST("",
				r.authMiddleware.RequireAdmin(),
				r.reviewController.CreateReview,
			)
			reviews.DELETE("/:id",
				r.authMiddleware.RequireAdmin(),
				r.reviewController.DeleteReview,
			)
		}

		categories := v1.Group("/categories")
		{
			categories.GET("", r.categoryController.ListCategories)

			categories.POST("",
				r.authMiddleware.RequireAdmin(),
				r.categoryController.CreateCategory,
			)
			categories.PATCH("/:id",
				r.authMiddleware.RequireAdmin(),
				r.categoryController.UpdateCategory,
			)
			categories.DELETE("/:id",
				r.authMiddleware.RequireAdmin(),
				r.categoryController.DeleteCategory,
			)
		}

		v1.GET("/settings", r.settingsController.GetSettings)
		v1.PATCH("/settings",
			r.authMiddleware.RequireAdmin(),
			r.settingsController.UpdateSettings,
		)

		upload := v1.Group("/upload")
		upload.Use(r.authMiddleware.RequireAdmin())
		{
			upload.POST("/images", r.uploadController.UploadImages)
		}

		admin := v1.Group("/admin")
		admin.Use(r.authMiddleware.RequireAdmin())
		{
			// Full settings record (password included) for the back-office form.
			admin.GET("/settings", r.settingsController.GetAdminSettings)
			admin.GET("/export", r.exportController.ExportCatalog)
		}
	}

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin || allowedOrigin == "*" {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
