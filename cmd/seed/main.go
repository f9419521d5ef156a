package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"restaurant-intel/internal/analytics"
	"restaurant-intel/internal/dto"
	"restaurant-intel/internal/repository"
	"restaurant-intel/internal/service"
	"restaurant-intel/pkg/auth"
	"restaurant-intel/pkg/config"
	"restaurant-intel/pkg/logger"
	"restaurant-intel/pkg/postgres"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	demoEmail    = "demo@restaurant-intel.local"
	demoPassword = "demo-password"
)

// seeder loads a demo owner with two franchise locations and a year of trading.
type seeder struct {
	auth        *service.AuthService
	restaurants *service.RestaurantService
	financial   *service.FinancialService
	menu        *service.MenuService
	suppliers   *service.SupplierService
	waste       *service.WasteService
	logger      *zap.Logger
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Named("seed")

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	restaurantRepo := repository.NewRestaurantRepository(db, appLogger)
	financialRepo := repository.NewFinancialRepository(db, appLogger)
	restaurants := service.NewRestaurantService(restaurantRepo, appLogger)

	s := &seeder{
		auth:        service.NewAuthService(repository.NewUserRepository(db, appLogger), auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration, cfg.JWT.RefreshExp), appLogger),
		restaurants: restaurants,
		financial:   service.NewFinancialService(restaurants, financialRepo, appLogger),
		menu:        service.NewMenuService(restaurants, repository.NewMenuRepository(db, appLogger), analytics.UKBenchmarks(), appLogger),
		suppliers:   service.NewSupplierService(restaurants, restaurants, repository.NewPriceReportRepository(db, appLogger), repository.NewApprovedSupplierRepository(db, appLogger), financialRepo, appLogger),
		waste:       service.NewWasteService(restaurants, repository.NewWasteRepository(db, appLogger), financialRepo, appLogger),
		logger:      appLogger,
	}

	appLogger.Info("Starting database seeding...")
	if err := s.run(ctx); err != nil {
		appLogger.Fatal("Seeding failed", zap.Error(err))
	}
	appLogger.Info("Database seeding completed successfully!")
}

func (s *seeder) run(ctx context.Context) error {
	resp, err := s.auth.Register(ctx, &dto.RegisterRequest{Username: "demo", Email: demoEmail, Password: demoPassword})
	if errors.Is(err, service.ErrUserExists) {
		s.logger.Info("Demo user already exists, skipping")
		return nil
	}
	if err != nil {
		return fmt.Errorf("register demo user: %w", err)
	}
	ownerID, err := uuid.Parse(resp.User.ID)
	if err != nil {
		return err
	}

	group := uuid.New().String()
	locations := []struct {
		name  string
		scale float64
	}{
		{name: "The Copper Pot, Leeds", scale: 1},
		{name: "The Copper Pot, York", scale: 0.7},
	}

	for i, loc := range locations {
		rest, err := s.restaurants.Create(ctx, ownerID, &dto.CreateRestaurantRequest{
			Name:             loc.name,
			CuisineType:      "British",
			Location:         "Yorkshire",
			FranchiseGroupID: group,
		})
		if err != nil {
			return fmt.Errorf("create %s: %w", loc.name, err)
		}
		restID, _ := uuid.Parse(rest.ID)

		if err := s.trading(ctx, ownerID, restID, loc.scale); err != nil {
			return err
		}
		if err := s.kitchen(ctx, ownerID, restID, float64(i)*0.3); err != nil {
			return err
		}
	}
	return s.approvedSuppliers(ctx, ownerID, uuid.MustParse(group))
}

func (s *seeder) approvedSuppliers(ctx context.Context, ownerID, groupID uuid.UUID) error {
	chicken := 4.40
	suppliers := []dto.CreateApprovedSupplierRequest{
		{Name: "Brakes", Category: "protein", IngredientName: "Chicken Breast", ContractedPrice: &chicken, Unit: "kg", IsRequired: true},
		{Name: "Bidfood", Category: "protein", IngredientName: "Beef Mince", Unit: "kg"},
		{Name: "Local Greens", Category: "produce", ContactInfo: "orders@localgreens.example", Notes: "Weekly delivery on Tuesdays"},
	}
	for i := range suppliers {
		if _, err := s.suppliers.AddApprovedSupplier(ctx, ownerID, groupID, &suppliers[i]); err != nil {
			return fmt.Errorf("approved supplier %s: %w", suppliers[i].Name, err)
		}
	}
	return nil
}

func (s *seeder) trading(ctx context.Context, ownerID, restID uuid.UUID, scale float64) error {
	year := time.Now().Year() - 1
	for m := 1; m <= 12; m++ {
		revenue := (38000 + float64(m)*900) * scale
		_, err := s.financial.AddMonthly(ctx, ownerID, restID, &dto.CreateMonthlyDataRequest{
			Month: analytics.MonthName(m - 1),
			Year:  year,
			FiguresInput: dto.FiguresInput{
				Revenue:            revenue,
				FoodCost:           revenue * 0.33,
				LabourCost:         revenue * 0.31,
				EnergyCost:         revenue * 0.07,
				RentCost:           revenue * 0.11,
				MarketingCost:      revenue * 0.02,
				SuppliesCost:       revenue * 0.015,
				TechnologyCost:     revenue * 0.01,
				WasteCost:          revenue * 0.035,
				DeliveryRevenue:    revenue * 0.22,
				DineInRevenue:      revenue * 0.68,
				TakeawayRevenue:    revenue * 0.10,
				TotalCovers:        int(revenue / 27),
				AvgTicketSize:      27,
				RepeatCustomerRate: 32,
			},
		})
		if err != nil {
			return fmt.Errorf("monthly %d: %w", m, err)
		}
	}
	return nil
}

func (s *seeder) kitchen(ctx context.Context, ownerID, restID uuid.UUID, premium float64) error {
	ingredients := []dto.CreateIngredientRequest{
		{Name: "Chicken Breast", Unit: "kg", UnitPrice: 4.50 + premium, Supplier: "Brakes"},
		{Name: "Beef Mince", Unit: "kg", UnitPrice: 6.80 + premium, Supplier: "Bidfood"},
		{Name: "Potatoes", Unit: "kg", UnitPrice: 0.60, Supplier: "Local Farm"},
	}
	ids := make(map[string]string, len(ingredients))
	for i := range ingredients {
		ing, err := s.menu.AddIngredient(ctx, ownerID, restID, &ingredients[i])
		if err != nil {
			return fmt.Errorf("ingredient %s: %w", ingredients[i].Name, err)
		}
		ids[ing.Name] = ing.ID

		_, err = s.suppliers.SubmitReport(ctx, ownerID, restID, &dto.CreatePriceReportRequest{
			IngredientName: ing.Name,
			SupplierName:   ing.Supplier,
			UnitPrice:      ing.UnitPrice,
			Unit:           ing.Unit,
			Month:          int(time.Now().Month()),
			Year:           time.Now().Year(),
		})
		if err != nil {
			return fmt.Errorf("price report %s: %w", ing.Name, err)
		}
	}

	dishes := []dto.CreateMenuItemRequest{
		{Name: "Roast Chicken", Category: "Mains", SellingPrice: 16.50, Recipe: []dto.RecipeLineRequest{
			{IngredientID: ids["Chicken Breast"], Quantity: 0.3},
			{IngredientID: ids["Potatoes"], Quantity: 0.25},
		}},
		{Name: "Cottage Pie", Category: "Mains", SellingPrice: 13.00, Recipe: []dto.RecipeLineRequest{
			{IngredientID: ids["Beef Mince"], Quantity: 0.25},
			{IngredientID: ids["Potatoes"], Quantity: 0.3},
		}},
		{Name: "Chips", Category: "Sides", SellingPrice: 4.00, Recipe: []dto.RecipeLineRequest{
			{IngredientID: ids["Potatoes"], Quantity: 0.3},
		}},
	}
	for i := range dishes {
		if _, err := s.menu.AddMenuItem(ctx, ownerID, restID, &dishes[i]); err != nil {
			return fmt.Errorf("menu item %s: %w", dishes[i].Name, err)
		}
	}

	day := time.Now().AddDate(0, 0, -3).Format("2006-01-02")
	waste := []dto.CreateWasteLogRequest{
		{ItemName: "Chicken Breast", Quantity: 1.2, Unit: "kg", CostPerUnit: 4.50, Reason: "expired", Date: day},
		{ItemName: "Potatoes", Quantity: 5, Unit: "kg", CostPerUnit: 0.60, Reason: "over-prep", Date: day},
	}
	for i := range waste {
		if _, err := s.waste.LogWaste(ctx, ownerID, restID, &waste[i]); err != nil {
			return fmt.Errorf("waste %s: %w", waste[i].ItemName, err)
		}
	}
	return nil
}
