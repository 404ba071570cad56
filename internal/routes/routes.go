// Package routes defines the API routing configuration.
// It sets up all HTTP routes and their corresponding handlers,
// including middleware and authentication requirements.
package routes

import (
	"revas/internal/config"
	"revas/internal/handlers"
	"revas/internal/middleware"
	"revas/internal/models"
	"revas/internal/repositories"
	"revas/internal/services/assessment"
	"revas/internal/services/auth"
	"revas/internal/services/compliance"
	"revas/internal/services/dashboard"
	"revas/internal/services/payment"
	"revas/internal/services/permit"
	"revas/internal/services/revenuetype"
	"revas/internal/services/shop"
	"revas/internal/services/user"

	"github.com/gofiber/fiber/v2"
	"github.com/jonboulle/clockwork"
	"gorm.io/gorm"
)

// SetupRoutes configures all application routes.
// It groups routes by functionality and applies appropriate middleware.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(repositories.DB, repositories.CacheService)
	shopRepo := repositories.NewShopRepository(repositories.DB, repositories.CacheService)
	paymentRepo := repositories.NewPaymentRepository(repositories.DB)
	permitRepo := repositories.NewPermitRepository(repositories.DB)
	revenueTypeRepo := repositories.NewRevenueTypeRepository(repositories.DB)

	clock := clockwork.NewRealClock()

	// Initialize auth service and handler
	authService := auth.NewService(userRepo)
	authHandler := handlers.NewAuthHandler(authService)

	// Initialize services in correct order
	calc := assessment.NewCalculator(assessment.DefaultRateSchedule())
	assessmentService := assessment.NewService(
		shopRepo,
		paymentRepo,
		revenueTypeRepo,
		calc,
		clock,
		assessment.NewPrometheusMetrics(),
	)
	complianceService := compliance.NewService(shopRepo, paymentRepo, permitRepo, clock)
	shopService := shop.NewService(shopRepo, complianceService)
	userService := user.NewService(userRepo)
	revenueTypeService := revenuetype.NewService(revenueTypeRepo)

	gateway := payment.NewStripeGateway(config.GetEnv("STRIPE_SECRET_KEY", ""))
	paymentService := payment.NewService(paymentRepo, shopRepo, gateway, clock)

	permitService := permit.NewService(permitRepo, shopRepo, calc, clock)

	dashboardService := dashboard.NewService(db, clock)

	// Initialize handlers
	shopHandler := handlers.NewShopHandler(shopService, complianceService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	assessmentHandler := handlers.NewAssessmentHandler(assessmentService)
	permitHandler := handlers.NewPermitHandler(permitService)
	revenueTypeHandler := handlers.NewRevenueTypeHandler(revenueTypeService)
	userHandler := handlers.NewUserHandler(userService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Public routes
	api := app.Group("/api")

	// Public endpoints (no auth required)
	api.Post("/login", authHandler.LoginUser)
	api.Post("/refresh", authHandler.RefreshToken)
	api.Get("/health", handlers.HealthCheck)

	// Also add a root welcome route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to Revas API",
			"version": "1.0.0",
			"docs":    "/api",
		})
	})

	// Create middleware instance
	authMiddleware := middleware.NewAuthMiddleware(authService)

	// Protected routes with auth middleware
	protected := api.Use(authMiddleware.Handler)

	protected.Post("/change-password", authHandler.ChangePassword)
	protected.Post("/logout", authHandler.LogoutUser)

	setupShopRoutes(protected, shopHandler, assessmentHandler, paymentHandler, permitHandler)
	setupPaymentRoutes(protected, paymentHandler)
	setupPermitRoutes(protected, permitHandler)
	setupRevenueTypeRoutes(protected, revenueTypeHandler)
	setupAdminRoutes(app, authMiddleware, userHandler, permitHandler)

	addDashboardRoutes(app, dashboardHandler, authMiddleware.Handler)
}

func setupShopRoutes(
	router fiber.Router,
	shopHandler *handlers.ShopHandler,
	assessmentHandler *handlers.AssessmentHandler,
	paymentHandler *handlers.PaymentHandler,
	permitHandler *handlers.PermitHandler,
) {
	shops := router.Group("/shops")

	shops.Post("/", middleware.HasPermission(models.PermissionShopWrite), shopHandler.RegisterShop)
	shops.Get("/", middleware.HasPermission(models.PermissionShopRead), shopHandler.ListShops)
	shops.Get("/:id", middleware.HasPermission(models.PermissionShopRead), shopHandler.GetShop)
	shops.Put("/:id", middleware.HasPermission(models.PermissionShopWrite), shopHandler.UpdateShop)
	shops.Delete("/:id", middleware.HasPermission(models.PermissionShopWrite), shopHandler.DeactivateShop)

	// Assessment views over a shop
	shops.Get("/:id/fees", middleware.HasPermission(models.PermissionShopRead), assessmentHandler.GetFees)
	shops.Get("/:id/total-due", middleware.HasPermission(models.PermissionPaymentRead), assessmentHandler.GetTotalDue)
	shops.Post("/:id/penalties/apply", middleware.HasPermission(models.PermissionPaymentWrite), assessmentHandler.ApplyPenalties)

	// Compliance
	shops.Get("/:id/compliance", middleware.HasPermission(models.PermissionShopRead), shopHandler.GetComplianceStatus)
	shops.Post("/:id/compliance/refresh", middleware.HasPermission(models.PermissionShopWrite), shopHandler.RefreshComplianceStatus)

	// Shop-scoped listings
	shops.Get("/:id/payments", middleware.HasPermission(models.PermissionPaymentRead), paymentHandler.ListShopPayments)
	shops.Get("/:id/permits", middleware.HasPermission(models.PermissionPermitRead), permitHandler.ListShopPermits)
}

func setupPaymentRoutes(router fiber.Router, h *handlers.PaymentHandler) {
	payments := router.Group("/payments")

	payments.Post("/assessments", middleware.HasPermission(models.PermissionPaymentWrite), h.CreateAssessment)
	payments.Post("/record", middleware.HasPermission(models.PermissionPaymentWrite), h.RecordPayment)
	payments.Post("/online", middleware.HasPermission(models.PermissionPaymentWrite), h.PayOnline)
	payments.Get("/:id", middleware.HasPermission(models.PermissionPaymentRead), h.GetPayment)
}

func setupPermitRoutes(router fiber.Router, h *handlers.PermitHandler) {
	permits := router.Group("/permits")

	permits.Post("/", middleware.HasPermission(models.PermissionPermitWrite), h.IssuePermit)
	permits.Get("/:id", middleware.HasPermission(models.PermissionPermitRead), h.GetPermit)
	permits.Post("/:id/renew", middleware.HasPermission(models.PermissionPermitWrite), h.RenewPermit)
}

func setupRevenueTypeRoutes(router fiber.Router, h *handlers.RevenueTypeHandler) {
	types := router.Group("/revenue-types")

	types.Get("/", middleware.HasPermission(models.PermissionRevenueRead), h.ListRevenueTypes)
	types.Get("/:id", middleware.HasPermission(models.PermissionRevenueRead), h.GetRevenueType)
	types.Post("/", middleware.HasPermission(models.PermissionRevenueWrite), h.CreateRevenueType)
	types.Put("/:id", middleware.HasPermission(models.PermissionRevenueWrite), h.UpdateRevenueType)
	types.Delete("/:id", middleware.HasPermission(models.PermissionRevenueWrite), h.DeactivateRevenueType)
}

func setupAdminRoutes(
	app *fiber.App,
	authMiddleware *middleware.AuthMiddleware,
	userHandler *handlers.UserHandler,
	permitHandler *handlers.PermitHandler,
) {
	admin := app.Group("/api/admin", authMiddleware.Handler, middleware.AdminAuthMiddleware)

	admin.Post("/users", middleware.HasPermission(models.PermissionWriteAdmin), userHandler.CreateUser)
	admin.Get("/users", middleware.HasPermission(models.PermissionReadAdmin), userHandler.ListUsers)
	admin.Get("/users/:id", middleware.HasPermission(models.PermissionReadAdmin), userHandler.GetUser)
	admin.Put("/users/:id/status", middleware.HasPermission(models.PermissionWriteAdmin), userHandler.UpdateUserStatus)

	// Maintenance
	admin.Post("/permits/expire-due", permitHandler.ExpireDuePermits)
	admin.Get("/cache-stats", handlers.CacheStats)
}

func addDashboardRoutes(app *fiber.App, handler *handlers.DashboardHandler, authMiddleware fiber.Handler) {
	dashboard := app.Group("/api/dashboard", authMiddleware, middleware.HasPermission(models.PermissionReportRead))

	dashboard.Get("/revenue", handler.GetRevenueSummary)
	dashboard.Get("/compliance", handler.GetComplianceBreakdown)
	dashboard.Get("/collections", handler.GetCollectionsOverTime)
}
