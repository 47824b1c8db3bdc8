package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/CSCI-GA-2820-FA25-003/recommendations/internal/api"
	"github.com/CSCI-GA-2820-FA25-003/recommendations/internal/api/handlers"
	"github.com/CSCI-GA-2820-FA25-003/recommendations/internal/repository"
	"github.com/CSCI-GA-2820-FA25-003/recommendations/internal/service"
	"github.com/CSCI-GA-2820-FA25-003/recommendations/pkg/config"
	"github.com/CSCI-GA-2820-FA25-003/recommendations/pkg/logger"
	"github.com/CSCI-GA-2820-FA25-003/recommendations/pkg/postgres"

	"go.uber.org/zap"
)

// @title Product Recommendation Service API
// @version 1.0
// @description REST API for product-to-product recommendations with bulk price discounts

// @contact.name API Support

// @license.name Apache 2.0
// @license.url https://www.apache.org/licenses/LICENSE-2.0

// @host localhost:8080
// @BasePath /

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting recommendation service")

	// Initialize database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Initialize repository and services
	recRepo := repository.NewRecommendationRepository(db, appLogger)
	recService := service.NewRecommendationService(recRepo, appLogger)
	discountService := service.NewDiscountService(recRepo, appLogger)

	// Initialize handlers
	recHandler := handlers.NewRecommendationHandler(recService, appLogger)
	discountHandler := handlers.NewDiscountHandler(discountService, appLogger)

	// Setup router
	app := api.SetupRouter(recHandler, discountHandler, &cfg.Server, appLogger)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
