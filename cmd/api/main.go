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

	appanalytics "github.com/jhoicas/bizbuddy-api/internal/application/analytics"
	"github.com/jhoicas/bizbuddy-api/internal/application/billing"
	"github.com/jhoicas/bizbuddy-api/internal/application/comms"
	"github.com/jhoicas/bizbuddy-api/internal/application/usecase"
	infraai "github.com/jhoicas/bizbuddy-api/internal/infrastructure/ai"
	"github.com/jhoicas/bizbuddy-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/bizbuddy-api/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/bizbuddy-api/internal/interfaces/http"
	"github.com/jhoicas/bizbuddy-api/pkg/config"
	"github.com/jhoicas/bizbuddy-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Estado en memoria: la sesión arranca con la organización por defecto y,
	// opcionalmente, los datos de demostración.
	store := memory.NewStore(memory.DefaultOrganization())
	if cfg.App.SeedDemo {
		memory.SeedDemo(store)
		log.Info().Msg("datos de demostración cargados")
	}

	orgRepo := memory.NewOrganizationRepository(store)
	customerRepo := memory.NewCustomerRepository(store)
	invoiceRepo := memory.NewInvoiceRepository(store)
	txRepo := memory.NewTransactionRepository(store)
	templateRepo := memory.NewTemplateRepository(store)
	reminderRepo := memory.NewReminderRepository(store)
	campaignRepo := memory.NewCampaignRepository(store)
	uow := memory.NewUnitOfWork(store)

	organizationUC := usecase.NewOrganizationUseCase(orgRepo)
	customerUC := billing.NewCustomerUseCase(customerRepo, invoiceRepo)
	invoiceUC := billing.NewInvoiceUseCase(uow, invoiceRepo, customerRepo, orgRepo)
	transactionUC := billing.NewTransactionUseCase(txRepo, invoiceRepo, orgRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(invoiceRepo, txRepo)
	commsUC := comms.NewCommsUseCase(templateRepo, reminderRepo, campaignRepo, customerRepo, orgRepo)

	// PDF: representación imprimible de la factura
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	invoicePDFUC := billing.NewInvoicePDFUseCase(invoiceRepo, customerRepo, orgRepo, pdfGenerator)

	// IA: sin API key la app funciona igual, con contenido de fallback
	geminiSvc := infraai.NewGeminiService(cfg.Gemini.APIKey, cfg.Gemini.Model)
	aiConfigured := cfg.Gemini.APIKey != ""
	if !aiConfigured {
		log.Warn().Msg("GEMINI_API_KEY no configurado; endpoints de IA responderán con fallbacks")
	}
	aiUC := usecase.NewAIUseCase(
		geminiSvc, aiConfigured,
		invoiceRepo, txRepo, customerRepo, orgRepo,
		log.Zerolog(),
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: cfg.HTTP.SwaggerPath,
		Path:     "docs",
		Title:    "BizBuddy API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		OrganizationUC: organizationUC,
		CustomerUC:     customerUC,
		InvoiceUC:      invoiceUC,
		InvoicePDFUC:   invoicePDFUC,
		TransactionUC:  transactionUC,
		DashboardUC:    dashboardUC,
		CommsUC:        commsUC,
		AIUC:           aiUC,
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
