package routes

import (
	"lead-portal-backend/internal/api/handlers"
	"lead-portal-backend/internal/api/middleware"
	"lead-portal-backend/internal/config"
	"lead-portal-backend/internal/repository"
	"lead-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validate := validator.New()

	// Initialize repositories
	summaryRepo := repository.NewSummaryRepository(db)

	// Initialize services
	importService := service.NewImportService(db, validate)
	summaryService := service.NewSummaryService(summaryRepo)
	zohoService := service.NewZohoService(cfg, importService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	leadHandler := handlers.NewLeadHandler(importService)
	summaryHandler := handlers.NewSummaryHandler(summaryService)
	syncHandler := handlers.NewSyncHandler(zohoService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes - all endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(middleware.RequireAuth(cfg))
	{
		leads := v1.Group("/leads")
		{
			leads.POST("/upload", leadHandler.UploadCSV)
		}

		v1.GET("/summary", summaryHandler.GetSummary)

		sync := v1.Group("/sync")
		{
			sync.POST("/zoho", syncHandler.SyncZohoLeads)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
