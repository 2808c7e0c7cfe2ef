// Command api servidor HTTP de ventas a crédito.
//
// @title                      Creditos API
// @version                    1.0
// @description                Ventas a crédito, clientes, inventario y recordatorios de pago por SMS.
// @BasePath                   /
// @securityDefinitions.apikey BearerAuth
// @in                         header
// @name                       Authorization
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/Creditos-api/docs"
	appanalytics "github.com/jhoicas/Creditos-api/internal/application/analytics"
	"github.com/jhoicas/Creditos-api/internal/application/auth"
	"github.com/jhoicas/Creditos-api/internal/application/inventory"
	"github.com/jhoicas/Creditos-api/internal/application/reminder"
	"github.com/jhoicas/Creditos-api/internal/application/report"
	"github.com/jhoicas/Creditos-api/internal/infrastructure/metrics"
	"github.com/jhoicas/Creditos-api/internal/infrastructure/notify"
	infrapdf "github.com/jhoicas/Creditos-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Creditos-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Creditos-api/internal/infrastructure/sms"
	"github.com/jhoicas/Creditos-api/internal/infrastructure/xlsx"
	httpRouter "github.com/jhoicas/Creditos-api/internal/interfaces/http"
	"github.com/jhoicas/Creditos-api/pkg/config"
	"github.com/jhoicas/Creditos-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics.RegisterPgxPoolMetrics(reg, pool)
	senderMetrics := metrics.NewSenderMetrics(reg)

	merchantRepo := postgres.NewMerchantRepository(pool)
	settingsRepo := postgres.NewSettingsRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	creditSaleRepo := postgres.NewCreditSaleRepository(pool)
	reminderRepo := postgres.NewReminderRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(merchantRepo, txRunner, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	// SMS: Twilio con credenciales; sin ellas los mensajes solo van al log.
	sender := sms.NewSender(sms.Config{
		AccountSID:    cfg.Twilio.AccountSID,
		AuthToken:     cfg.Twilio.AuthToken,
		DefaultRegion: cfg.Twilio.DefaultRegion,
	}, cfg.Twilio.Enabled(), log.Component("sms"))
	dispatcher := reminder.NewDispatcher(
		creditSaleRepo, settingsRepo, reminderRepo,
		senderMetrics.InstrumentSender(sender), cfg.Twilio.PhoneNumber,
		reminder.WithLogger(log.Component("reminders")),
	)

	replenishmentUC := inventory.NewReplenishmentUseCase(inventoryRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(creditSaleRepo, reminderRepo, inventoryRepo, settingsRepo)
	statementUC := report.NewStatementUseCase(
		creditSaleRepo, reminderRepo, merchantRepo, settingsRepo, infrapdf.NewMarotoPDFGenerator(),
	)
	exportUC := report.NewExportUseCase(creditSaleRepo, xlsx.NewExporter())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: cfg.Docs.SwaggerFile,
		Path:     "docs",
		Title:    docs.SwaggerInfo.Title,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := pool.Ping(c.Context()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded", "service": cfg.App.Name})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		Customers:     customerRepo,
		Inventory:     inventoryRepo,
		CreditSales:   creditSaleRepo,
		Settings:      settingsRepo,
		Replenishment: replenishmentUC,
		Statement:     statementUC,
		Export:        exportUC,
		Dispatcher:    dispatcher,
		DashboardUC:   dashboardUC,
		Notifier:      notify.NewLogNotifier(log.Component("notify")),
		Metrics:       promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		Log:           log.Component("http"),
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
