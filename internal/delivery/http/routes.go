package http

import (
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/nutriscan/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// Product lookup endpoints
	router.POST("/scan-barcode", handler.ScanBarcode)
	router.POST("/search-product", handler.SearchProduct)

	// Frontend entry page and static assets
	if cfg.Server.StaticDir != "" {
		router.StaticFile("/", filepath.Join(cfg.Server.StaticDir, "index.html"))
		router.Static("/static", cfg.Server.StaticDir)
	}

	return router
}
