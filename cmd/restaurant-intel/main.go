package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"restaurant-intel/internal/analytics"
	"restaurant-intel/internal/api"
	"restaurant-intel/internal/api/handlers"
	"restaurant-intel/internal/repository"
	"restaurant-intel/internal/service"
	"restaurant-intel/pkg/auth"
	"restaurant-intel/pkg/config"
	"restaurant-intel/pkg/logger"
	"restaurant-intel/pkg/postgres"

	"go.uber.org/zap"
)

// @title Restaurant Intel API
// @version 1.0
// @description Financial intelligence for independent restaurants and franchise groups

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting restaurant intel service")

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	userRepo := repository.NewUserRepository(db, logger.Named("users"))
	restaurantRepo := repository.NewRestaurantRepository(db, logger.Named("restaurants"))
	financialRepo := repository.NewFinancialRepository(db, logger.Named("financials"))
	menuRepo := repository.NewMenuRepository(db, logger.Named("menu"))
	priceRepo := repository.NewPriceReportRepository(db, logger.Named("price_reports"))
	approvedRepo := repository.NewApprovedSupplierRepository(db, logger.Named("approved_suppliers"))
	wasteRepo := repository.NewWasteRepository(db, logger.Named("waste"))

	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration, cfg.JWT.RefreshExp)

	bench := analytics.UKBenchmarks()
	engine := analytics.NewEngine(bench)

	authService := service.NewAuthService(userRepo, jwtManager, appLogger)
	restaurantService := service.NewRestaurantService(restaurantRepo, appLogger)
	financialService := service.NewFinancialService(restaurantService, financialRepo, appLogger)
	insightService := service.NewInsightService(restaurantService, financialRepo, engine, appLogger)
	menuService := service.NewMenuService(restaurantService, menuRepo, bench, appLogger)
	supplierService := service.NewSupplierService(restaurantService, restaurantService, priceRepo, approvedRepo, financialRepo, appLogger)
	wasteService := service.NewWasteService(restaurantService, wasteRepo, financialRepo, appLogger)

	validate := handlers.NewValidator()
	app := api.SetupRouter(api.Handlers{
		Auth:       handlers.NewAuthHandler(authService, validate, appLogger),
		Restaurant: handlers.NewRestaurantHandler(restaurantService, validate, appLogger),
		Financial:  handlers.NewFinancialHandler(financialService, validate, appLogger),
		Insight:    handlers.NewInsightHandler(insightService, appLogger),
		Menu:       handlers.NewMenuHandler(menuService, validate, appLogger),
		Supplier:   handlers.NewSupplierHandler(supplierService, validate, appLogger),
		Waste:      handlers.NewWasteHandler(wasteService, validate, appLogger),
	}, jwtManager, cfg.Server.CORSAllowOrigins, appLogger)

	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
