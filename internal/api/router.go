package api

import (
	"restaurant-intel/docs"
	"restaurant-intel/internal/api/handlers"
	"restaurant-intel/pkg/auth"
	"restaurant-intel/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

type Handlers struct {
	Auth       *handlers.AuthHandler
	Restaurant *handlers.RestaurantHandler
	Financial  *handlers.FinancialHandler
	Insight    *handlers.InsightHandler
	Menu       *handlers.MenuHandler
	Supplier   *handlers.SupplierHandler
	Waste      *handlers.WasteHandler
}

func SetupRouter(h Handlers, jwtManager *auth.JWTManager, allowOrigins string, appLogger *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: allowOrigins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(logger.New())

	// docs registers itself with swag in init.
	_ = docs.SwaggerInfo
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	authGroup := app.Group("/user/auth")
	authGroup.Post("/register", h.Auth.Register)
	authGroup.Post("/login", h.Auth.Login)
	authGroup.Post("/refresh", h.Auth.RefreshToken)

	protected := app.Group("/api/v1", middleware.AuthMiddleware(jwtManager, appLogger))

	protected.Post("/restaurants", h.Restaurant.Create)
	protected.Get("/restaurants", h.Restaurant.List)

	rest := protected.Group("/restaurants/:id")

	rest.Post("/monthly-data", h.Financial.AddMonthly)
	rest.Get("/monthly-data", h.Financial.ListMonthly)
	rest.Post("/weekly-data", h.Financial.AddWeekly)
	rest.Get("/weekly-data", h.Financial.ListWeekly)
	rest.Get("/comparisons/quarterly", h.Financial.Quarterly)
	rest.Get("/comparisons/half-yearly", h.Financial.HalfYearly)
	rest.Get("/comparisons/weekly", h.Financial.Weekly)

	rest.Get("/breakeven", h.Insight.Breakeven)
	rest.Get("/recommendations", h.Insight.Recommendations)

	rest.Post("/ingredients", h.Menu.AddIngredient)
	rest.Get("/ingredients", h.Menu.ListIngredients)
	rest.Post("/menu-items", h.Menu.AddMenuItem)
	rest.Put("/menu-items/:itemId/status", h.Menu.SetMenuItemStatus)
	rest.Get("/menu-engineering", h.Menu.Engineering)
	rest.Post("/menu-engineering", h.Menu.EngineeringWithSales)

	rest.Post("/price-reports", h.Supplier.SubmitReport)
	rest.Get("/supplier-intelligence/:groupId", h.Supplier.Intelligence)

	franchise := protected.Group("/franchise-groups/:groupId")
	franchise.Get("/analytics", h.Supplier.FranchiseAnalytics)
	franchise.Post("/approved-suppliers", h.Supplier.AddApprovedSupplier)
	franchise.Get("/approved-suppliers", h.Supplier.ListApprovedSuppliers)
	franchise.Delete("/approved-suppliers/:supplierId", h.Supplier.RemoveApprovedSupplier)

	rest.Post("/waste-logs", h.Waste.LogWaste)
	rest.Get("/waste-analytics", h.Waste.Analytics)

	return app
}
