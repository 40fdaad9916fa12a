package main

import (
	"fmt"
	"log"
	"os"

	"github.com/nutriscan/backend/config"
	httpDelivery "github.com/nutriscan/backend/internal/delivery/http"
	"github.com/nutriscan/backend/internal/infrastructure/openfoodfacts"
	"github.com/nutriscan/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting NutriScan Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Upstream: %s", cfg.OpenFoodFacts.BaseURL)

	// Initialize infrastructure dependencies
	offClient := openfoodfacts.NewClient(
		cfg.OpenFoodFacts.APIKey,
		cfg.OpenFoodFacts.BaseURL,
		cfg.OpenFoodFacts.Timeout,
		cfg.OpenFoodFacts.RateLimit,
	)

	// Enable debug mode in development environment
	if cfg.Server.Environment == "development" {
		offClient.SetDebug(true)
		log.Printf("OpenFoodFacts client debug mode enabled")
	}

	if cfg.OpenFoodFacts.APIKey != "" {
		log.Printf("OpenFoodFacts API key configured (sent as bearer token)")
	}

	// Initialize usecase layer
	productService := usecase.NewProductService(offClient)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(productService)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
