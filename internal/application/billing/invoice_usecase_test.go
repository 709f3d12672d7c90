package billing_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bizbuddy-api/internal/application/billing"
	"github.com/jhoicas/bizbuddy-api/internal/application/dto"
	"github.com/jhoicas/bizbuddy-api/internal/domain"
	"github.com/jhoicas/bizbuddy-api/internal/domain/entity"
	"github.com/jhoicas/bizbuddy-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests del ciclo de vida de facturas sobre el store en memoria real: el
// mismo cableado que usa main, sin mocks. Cubren el efecto secundario clave
// del sistema (primera llegada a PAID → exactamente una transacción de pago)
// y su idempotencia.
// ──────────────────────────────────────────────────────────────────────────────

type billingEnv struct {
	store      *memory.Store
	invoiceUC  *billing.InvoiceUseCase
	txUC       *billing.TransactionUseCase
	customerID string
}

func newBillingEnv(t *testing.T) *billingEnv {
	t.Helper()

	store := memory.NewStore(memory.DefaultOrganization())
	orgRepo := memory.NewOrganizationRepository(store)
	customerRepo := memory.NewCustomerRepository(store)
	invoiceRepo := memory.NewInvoiceRepository(store)
	txRepo := memory.NewTransactionRepository(store)
	uow := memory.NewUnitOfWork(store)

	customerUC := billing.NewCustomerUseCase(customerRepo, invoiceRepo)
	customer, err := customerUC.Create(dto.CreateCustomerRequest{
		FirstName: "Alex", LastName: "Russo", Email: "alex@example.com",
	})
	require.NoError(t, err, "la preparación del cliente no debe fallar")

	return &billingEnv{
		store:      store,
		invoiceUC:  billing.NewInvoiceUseCase(uow, invoiceRepo, customerRepo, orgRepo),
		txUC:       billing.NewTransactionUseCase(txRepo, invoiceRepo, orgRepo),
		customerID: customer.ID,
	}
}

func (e *billingEnv) createInvoice(t *testing.T, status string) *dto.InvoiceResponse {
	t.Helper()
	inv, err := e.invoiceUC.Create(context.Background(), dto.CreateInvoiceRequest{
		CustomerID:    e.customerID,
		DueAt:         time.Now().AddDate(0, 1, 0),
		InitialStatus: status,
		Items: []dto.LineItemRequest{
			{Description: "ECU Remapping", Quantity: dec("1"), UnitPrice: dec("800"), Category: "Labor"},
			{Description: "Air Filter", Quantity: dec("2"), UnitPrice: dec("200"), Category: "Parts"},
		},
	})
	require.NoError(t, err, "crear factura no debe fallar")
	return inv
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestCreate_TotalesYNumeracion(t *testing.T) {
	env := newBillingEnv(t)

	inv := env.createInvoice(t, "")

	assert.Equal(t, "ISSUED", inv.Status, "sin estado inicial la factura nace ISSUED")
	assert.NotNil(t, inv.IssuedAt, "una factura ISSUED lleva fecha de emisión")
	assert.True(t, dec("1200").Equal(inv.Subtotal))
	assert.True(t, dec("99").Equal(inv.TaxAmount), "impuesto a la tarifa por defecto del 8.25%%")
	assert.True(t, dec("1299").Equal(inv.Total))

	want := fmt.Sprintf("INV-%d-1001", time.Now().Year())
	assert.Equal(t, want, inv.InvoiceNumber, "el consecutivo arranca en 1001")

	second := env.createInvoice(t, "DRAFT")
	want2 := fmt.Sprintf("INV-%d-1002", time.Now().Year())
	assert.Equal(t, want2, second.InvoiceNumber, "el consecutivo es monotónico")
	assert.Nil(t, second.IssuedAt, "una factura DRAFT no tiene fecha de emisión")
}

func TestCreate_Validaciones(t *testing.T) {
	env := newBillingEnv(t)
	ctx := context.Background()

	cases := []struct {
		name string
		in   dto.CreateInvoiceRequest
	}{
		{"sin cliente", dto.CreateInvoiceRequest{
			Items: []dto.LineItemRequest{{Description: "x", Quantity: dec("1"), UnitPrice: dec("1")}},
		}},
		{"sin líneas", dto.CreateInvoiceRequest{CustomerID: env.customerID}},
		{"cantidad cero", dto.CreateInvoiceRequest{
			CustomerID: env.customerID,
			Items:      []dto.LineItemRequest{{Description: "x", Quantity: decimal.Zero, UnitPrice: dec("10")}},
		}},
		{"precio negativo", dto.CreateInvoiceRequest{
			CustomerID: env.customerID,
			Items:      []dto.LineItemRequest{{Description: "x", Quantity: dec("1"), UnitPrice: dec("-5")}},
		}},
		{"categoría desconocida", dto.CreateInvoiceRequest{
			CustomerID: env.customerID,
			Items:      []dto.LineItemRequest{{Description: "x", Quantity: dec("1"), UnitPrice: dec("5"), Category: "Misc"}},
		}},
		{"estado inicial PAID", dto.CreateInvoiceRequest{
			CustomerID:    env.customerID,
			InitialStatus: "PAID",
			Items:         []dto.LineItemRequest{{Description: "x", Quantity: dec("1"), UnitPrice: dec("5")}},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := env.invoiceUC.Create(ctx, tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput, "debe rechazarse sin crear factura parcial")
		})
	}

	_, err := env.invoiceUC.Create(ctx, dto.CreateInvoiceRequest{
		CustomerID: "cust_fantasma",
		Items:      []dto.LineItemRequest{{Description: "x", Quantity: dec("1"), UnitPrice: dec("5")}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound, "cliente inexistente → not found")

	list, err := env.invoiceUC.List()
	require.NoError(t, err)
	assert.Empty(t, list, "ninguna validación fallida debe dejar facturas en el store")
}

func TestUpdateStatus_PagoEmiteTransaccion(t *testing.T) {
	env := newBillingEnv(t)
	inv := env.createInvoice(t, "")

	paid, err := env.invoiceUC.UpdateStatus(context.Background(), inv.ID, entity.StatusPaid)
	require.NoError(t, err)

	assert.Equal(t, "PAID", paid.Status)
	require.NotNil(t, paid.PaidAt, "al pagar debe quedar PaidAt")

	txs, err := env.txUC.List()
	require.NoError(t, err)
	require.Len(t, txs, 1, "debe emitirse exactamente una transacción de pago")
	assert.Equal(t, "PAYMENT", txs[0].Type)
	assert.Equal(t, "MANUAL", txs[0].Source)
	assert.Equal(t, inv.ID, txs[0].InvoiceID)
	assert.True(t, inv.Total.Equal(txs[0].Amount), "el pago es por el total de la factura")
	assert.Equal(t, "Payment for "+inv.InvoiceNumber, txs[0].Description)
}

func TestUpdateStatus_PagoIdempotente(t *testing.T) {
	env := newBillingEnv(t)
	inv := env.createInvoice(t, "")

	first, err := env.invoiceUC.UpdateStatus(context.Background(), inv.ID, entity.StatusPaid)
	require.NoError(t, err)

	// Segunda llegada a PAID: no-op, sin segunda transacción y sin mover PaidAt
	second, err := env.invoiceUC.UpdateStatus(context.Background(), inv.ID, entity.StatusPaid)
	require.NoError(t, err, "PAID → PAID es no-op, no error")
	assert.Equal(t, "PAID", second.Status)
	require.NotNil(t, second.PaidAt)
	assert.True(t, first.PaidAt.Equal(*second.PaidAt), "PaidAt no debe moverse en el no-op")

	txs, err := env.txUC.List()
	require.NoError(t, err)
	assert.Len(t, txs, 1, "el no-op no debe emitir una segunda transacción")
}

func TestUpdateStatus_TransicionesInvalidas(t *testing.T) {
	env := newBillingEnv(t)
	ctx := context.Background()
	inv := env.createInvoice(t, "DRAFT")

	// DRAFT no puede saltar directo a PAID
	_, err := env.invoiceUC.UpdateStatus(ctx, inv.ID, entity.StatusPaid)
	assert.ErrorIs(t, err, domain.ErrConflict, "DRAFT → PAID no está permitido")

	// Estado desconocido
	_, err = env.invoiceUC.UpdateStatus(ctx, inv.ID, entity.InvoiceStatus("ARCHIVED"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Una vez cancelada, queda terminal
	_, err = env.invoiceUC.UpdateStatus(ctx, inv.ID, entity.StatusCancelled)
	require.NoError(t, err)
	_, err = env.invoiceUC.UpdateStatus(ctx, inv.ID, entity.StatusIssued)
	assert.ErrorIs(t, err, domain.ErrConflict, "CANCELLED es terminal")

	txs, err := env.txUC.List()
	require.NoError(t, err)
	assert.Empty(t, txs, "ninguna transición fallida o de cancelación emite transacciones")
}

func TestUpdateStatus_FacturaInexistente(t *testing.T) {
	env := newBillingEnv(t)
	env.createInvoice(t, "")

	_, err := env.invoiceUC.UpdateStatus(context.Background(), "inv_fantasma", entity.StatusPaid)
	assert.ErrorIs(t, err, domain.ErrNotFound, "ID desconocido debe reportarse, no ignorarse")

	list, err := env.invoiceUC.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "ISSUED", list[0].Status, "la colección no debe cambiar ante un ID desconocido")
}

func TestUpdateStatus_RutaOverdue(t *testing.T) {
	env := newBillingEnv(t)
	ctx := context.Background()
	inv := env.createInvoice(t, "")

	_, err := env.invoiceUC.UpdateStatus(ctx, inv.ID, entity.StatusOverdue)
	require.NoError(t, err, "ISSUED → OVERDUE es legal")

	paid, err := env.invoiceUC.UpdateStatus(ctx, inv.ID, entity.StatusPaid)
	require.NoError(t, err, "OVERDUE → PAID es legal")
	assert.NotNil(t, paid.PaidAt)

	txs, err := env.txUC.List()
	require.NoError(t, err)
	assert.Len(t, txs, 1, "pagar desde OVERDUE también emite el pago")
}
