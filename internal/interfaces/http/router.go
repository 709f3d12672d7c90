package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/bizbuddy-api/internal/application/analytics"
	"github.com/jhoicas/bizbuddy-api/internal/application/billing"
	"github.com/jhoicas/bizbuddy-api/internal/application/comms"
	"github.com/jhoicas/bizbuddy-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	OrganizationUC *usecase.OrganizationUseCase
	CustomerUC     *billing.CustomerUseCase
	InvoiceUC      *billing.InvoiceUseCase
	InvoicePDFUC   *billing.InvoicePDFUseCase
	TransactionUC  *billing.TransactionUseCase
	DashboardUC    *appanalytics.DashboardUseCase
	CommsUC        *comms.CommsUseCase
	AIUC           *usecase.AIUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Organization (singleton de configuración)
	orgHandler := NewOrganizationHandler(deps.OrganizationUC)
	api.Get("/organization", orgHandler.Get)
	api.Put("/organization", orgHandler.Update)

	// Customers
	customers := api.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)

	// Invoices
	invoices := api.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.InvoicePDFUC)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Patch("/:id/status", invoiceHandler.UpdateStatus)
	invoices.Get("/:id/pdf", invoiceHandler.DownloadPDF)

	// Transactions
	transactions := api.Group("/transactions")
	transactionHandler := NewTransactionHandler(deps.TransactionUC)
	transactions.Post("/", transactionHandler.Create)
	transactions.Get("/", transactionHandler.List)

	// Dashboard
	dashboard := api.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.GetSummary)

	// Communications
	communications := api.Group("/communications")
	commsHandler := NewCommsHandler(deps.CommsUC)
	communications.Get("/overview", commsHandler.Overview)
	communications.Post("/templates", commsHandler.CreateTemplate)
	communications.Get("/templates", commsHandler.ListTemplates)
	communications.Post("/reminders", commsHandler.CreateReminder)
	communications.Get("/reminders", commsHandler.ListReminders)
	communications.Post("/campaigns", commsHandler.CreateCampaign)
	communications.Get("/campaigns", commsHandler.ListCampaigns)

	// AI advisory
	ai := api.Group("/ai")
	aiHandler := NewAIHandler(deps.AIUC)
	ai.Get("/insights", aiHandler.BusinessInsights)
	ai.Post("/marketing-copy", aiHandler.MarketingCopy)
	ai.Post("/advice", aiHandler.MarketingAdvice)
}
