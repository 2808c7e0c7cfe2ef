package http

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/rs/zerolog"

	appanalytics "github.com/jhoicas/Creditos-api/internal/application/analytics"
	"github.com/jhoicas/Creditos-api/internal/application/auth"
	"github.com/jhoicas/Creditos-api/internal/application/inventory"
	"github.com/jhoicas/Creditos-api/internal/application/ports"
	"github.com/jhoicas/Creditos-api/internal/application/reminder"
	"github.com/jhoicas/Creditos-api/internal/application/report"
	"github.com/jhoicas/Creditos-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	Customers     repository.CustomerRepository
	Inventory     repository.InventoryRepository
	CreditSales   repository.CreditSaleRepository
	Settings      repository.SettingsRepository
	Replenishment *inventory.ReplenishmentUseCase
	Statement     *report.StatementUseCase
	Export        *report.ExportUseCase
	Dispatcher    *reminder.Dispatcher
	DashboardUC   *appanalytics.DashboardUseCase
	Notifier      ports.Notifier
	Metrics       http.Handler // nil = sin /metrics
	Log           zerolog.Logger
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(deps.Metrics))
	}

	api := app.Group("/api", withLogger(deps.Log))

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Get("/me", authHandler.Me)

	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.Customers, deps.Notifier)
	customers.Get("/", customerHandler.List)
	customers.Post("/", customerHandler.Create)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.Inventory, deps.Notifier)
	replenishmentHandler := NewReplenishmentHandler(deps.Replenishment)
	invGroup.Get("/low-stock", replenishmentHandler.LowStock)
	invGroup.Get("/", inventoryHandler.List)
	invGroup.Post("/", inventoryHandler.Create)
	invGroup.Put("/:id", inventoryHandler.Update)
	invGroup.Delete("/:id", inventoryHandler.Delete)

	sales := protected.Group("/credit-sales")
	saleHandler := NewCreditSaleHandler(deps.CreditSales, deps.Notifier)
	reportHandler := NewReportHandler(deps.Statement, deps.Export)
	sales.Get("/export", reportHandler.Export)
	sales.Get("/", saleHandler.List)
	sales.Post("/", saleHandler.Create)
	sales.Put("/:id", saleHandler.Update)
	sales.Delete("/:id", saleHandler.Delete)
	sales.Get("/:id/statement", reportHandler.Statement)

	cur := protected.Group("/currency")
	currencyHandler := NewCurrencyHandler(deps.Settings)
	cur.Get("/settings", currencyHandler.Settings)
	cur.Put("/settings", currencyHandler.UpdateSettings)
	cur.Get("/format", currencyHandler.Format)
	cur.Get("/list", currencyHandler.List)

	reminders := protected.Group("/reminders")
	reminderHandler := NewReminderHandler(deps.Dispatcher, deps.Log)
	reminders.Post("/send", reminderHandler.Send)
	reminders.Post("/send-single", reminderHandler.SendSingle)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.GetSummary)
}
