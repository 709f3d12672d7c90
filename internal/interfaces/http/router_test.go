package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appanalytics "github.com/jhoicas/bizbuddy-api/internal/application/analytics"
	"github.com/jhoicas/bizbuddy-api/internal/application/billing"
	"github.com/jhoicas/bizbuddy-api/internal/application/comms"
	"github.com/jhoicas/bizbuddy-api/internal/application/dto"
	"github.com/jhoicas/bizbuddy-api/internal/application/usecase"
	infraai "github.com/jhoicas/bizbuddy-api/internal/infrastructure/ai"
	"github.com/jhoicas/bizbuddy-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/bizbuddy-api/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/bizbuddy-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests de integración del router: API completa montada sobre el store en
// memoria con los datos de demostración, mismo cableado que main. La IA va
// con configured=false, así que sus endpoints responden fallbacks sin red.
// ──────────────────────────────────────────────────────────────────────────────

func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()

	store := memory.NewStore(memory.DefaultOrganization())
	memory.SeedDemo(store)

	orgRepo := memory.NewOrganizationRepository(store)
	customerRepo := memory.NewCustomerRepository(store)
	invoiceRepo := memory.NewInvoiceRepository(store)
	txRepo := memory.NewTransactionRepository(store)
	uow := memory.NewUnitOfWork(store)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		OrganizationUC: usecase.NewOrganizationUseCase(orgRepo),
		CustomerUC:     billing.NewCustomerUseCase(customerRepo, invoiceRepo),
		InvoiceUC:      billing.NewInvoiceUseCase(uow, invoiceRepo, customerRepo, orgRepo),
		InvoicePDFUC: billing.NewInvoicePDFUseCase(
			invoiceRepo, customerRepo, orgRepo, infrapdf.NewMarotoPDFGenerator(),
		),
		TransactionUC: billing.NewTransactionUseCase(txRepo, invoiceRepo, orgRepo),
		DashboardUC:   appanalytics.NewDashboardUseCase(invoiceRepo, txRepo),
		CommsUC: comms.NewCommsUseCase(
			memory.NewTemplateRepository(store),
			memory.NewReminderRepository(store),
			memory.NewCampaignRepository(store),
			customerRepo, orgRepo,
		),
		AIUC: usecase.NewAIUseCase(
			infraai.NewGeminiService("", "gemini-1.5-flash"), false,
			invoiceRepo, txRepo, customerRepo, orgRepo,
			zerolog.Nop(),
		),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeInto(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func TestGetOrganization(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/organization", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var org dto.OrganizationResponse
	decodeInto(t, resp, &org)
	assert.Equal(t, "Shift Performance Hub", org.Name)
	assert.Equal(t, "8.25", org.TaxRate.String())
}

func TestUpdateOrganization(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPut, "/api/organization", fiber.Map{
		"name": "Apex Garage", "tax_rate": 10,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var org dto.OrganizationResponse
	decodeInto(t, resp, &org)
	assert.Equal(t, "Apex Garage", org.Name)
	assert.Equal(t, "org_1", org.ID, "el ID del singleton nunca cambia")

	// Sin nombre → 400
	resp = doJSON(t, app, http.MethodPut, "/api/organization", fiber.Map{"tax_rate": 5})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestListCustomers_DemoConGasto(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/customers/", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var customers []dto.CustomerResponse
	decodeInto(t, resp, &customers)
	require.Len(t, customers, 2)

	// Alex Russo tiene la factura pagada de la demo (1299)
	byID := map[string]dto.CustomerResponse{}
	for _, c := range customers {
		byID[c.ID] = c
	}
	assert.Equal(t, "1299", byID["cust_1"].LifetimeSpend.String())
	assert.True(t, byID["cust_2"].LifetimeSpend.IsZero())
}

func TestInvoiceLifecycle_EndToEnd(t *testing.T) {
	app := buildTestApp(t)

	// Crear
	resp := doJSON(t, app, http.MethodPost, "/api/invoices/", fiber.Map{
		"customer_id": "cust_2",
		"due_at":      time.Now().AddDate(0, 1, 0).Format(time.RFC3339),
		"items": []fiber.Map{
			{"description": "Exhaust Install", "quantity": 1, "unit_price": 600, "category": "Labor"},
		},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var inv dto.InvoiceResponse
	decodeInto(t, resp, &inv)
	assert.Equal(t, "ISSUED", inv.Status)
	assert.Equal(t, "Sarah Chen", inv.CustomerName)

	// Pagar
	resp = doJSON(t, app, http.MethodPatch, "/api/invoices/"+inv.ID+"/status", fiber.Map{"status": "PAID"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var paid dto.InvoiceResponse
	decodeInto(t, resp, &paid)
	assert.Equal(t, "PAID", paid.Status)
	assert.NotNil(t, paid.PaidAt)

	// La transacción de pago aparece en el registro
	resp = doJSON(t, app, http.MethodGet, "/api/transactions/", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var txs []dto.TransactionResponse
	decodeInto(t, resp, &txs)
	found := false
	for _, tx := range txs {
		if tx.InvoiceID == inv.ID {
			found = true
			assert.Equal(t, "PAYMENT", tx.Type)
			assert.True(t, inv.Total.Equal(tx.Amount))
		}
	}
	assert.True(t, found, "el pago de la factura debe estar en /api/transactions")

	// Transición ilegal → 409
	resp = doJSON(t, app, http.MethodPatch, "/api/invoices/"+inv.ID+"/status", fiber.Map{"status": "ISSUED"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// ID desconocido → 404
	resp = doJSON(t, app, http.MethodPatch, "/api/invoices/inv_fantasma/status", fiber.Map{"status": "PAID"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateInvoice_Validacion(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/invoices/", fiber.Map{
		"customer_id": "cust_1",
		"items":       []fiber.Map{},
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/invoices/", fiber.Map{
		"customer_id": "cust_inexistente",
		"items":       []fiber.Map{{"description": "x", "quantity": 1, "unit_price": 10}},
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestInvoicePDF(t *testing.T) {
	app := buildTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/invoices/inv_1/pdf", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), ".pdf")

	resp = doJSON(t, app, http.MethodGet, "/api/invoices/inv_fantasma/pdf", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDashboardSummary(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/dashboard/summary", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var summary dto.DashboardSummaryDTO
	decodeInto(t, resp, &summary)
	assert.Equal(t, 2, summary.TotalInvoices)
	assert.Equal(t, 1, summary.PaidInvoices)
	assert.Equal(t, 1, summary.PendingInvoices)
	assert.Equal(t, "1299", summary.TotalRevenue.String())
	assert.Len(t, summary.RevenueSeries, 6)
}

func TestCommsEndpoints(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/communications/overview", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var overview dto.CommsOverviewDTO
	decodeInto(t, resp, &overview)
	assert.Equal(t, 3, overview.TotalCampaigns)
	assert.Equal(t, 3, overview.TotalTemplates)

	resp = doJSON(t, app, http.MethodPost, "/api/communications/campaigns", fiber.Map{
		"name": "New Campaign", "type": "EMAIL", "body": "Hello!",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/communications/campaigns", fiber.Map{
		"name": "Bad", "type": "EMAIL", "body": "x", "status": "SCHEDULED",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "SCHEDULED sin fecha → 400")
}

func TestAIEndpoints_FallbacksSinClave(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/ai/insights", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, "los endpoints de IA nunca fallan")
	var insights []dto.BusinessInsightDTO
	decodeInto(t, resp, &insights)
	require.Len(t, insights, 1)
	assert.Equal(t, "AI Insights Unavailable", insights[0].Title)

	resp = doJSON(t, app, http.MethodPost, "/api/ai/marketing-copy", fiber.Map{"purpose": "promo"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var copyOut dto.MarketingCopyDTO
	decodeInto(t, resp, &copyOut)
	assert.Equal(t, "Exclusive Performance Update", copyOut.Subject)

	resp = doJSON(t, app, http.MethodPost, "/api/ai/advice", fiber.Map{"question": "How do I grow?"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var advice dto.MarketingAdviceDTO
	decodeInto(t, resp, &advice)
	assert.NotEmpty(t, advice.Advice)

	// question vacío sí es 400: la validación es del handler, no del proveedor
	resp = doJSON(t, app, http.MethodPost, "/api/ai/advice", fiber.Map{"question": "  "})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
