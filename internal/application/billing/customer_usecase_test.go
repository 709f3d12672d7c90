package billing_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bizbuddy-api/internal/application/billing"
	"github.com/jhoicas/bizbuddy-api/internal/application/dto"
	"github.com/jhoicas/bizbuddy-api/internal/domain"
	"github.com/jhoicas/bizbuddy-api/internal/domain/entity"
	"github.com/jhoicas/bizbuddy-api/internal/infrastructure/memory"
)

func TestCustomerCreate_Validaciones(t *testing.T) {
	store := memory.NewStore(memory.DefaultOrganization())
	uc := billing.NewCustomerUseCase(
		memory.NewCustomerRepository(store),
		memory.NewInvoiceRepository(store),
	)

	_, err := uc.Create(dto.CreateCustomerRequest{FirstName: "Alex"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "faltan last_name y email")

	created, err := uc.Create(dto.CreateCustomerRequest{
		FirstName: "Sarah", LastName: "Chen", Email: "sarah@example.com",
		City: "Los Angeles", State: "CA",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.True(t, created.LifetimeSpend.IsZero(), "un cliente nuevo no tiene gasto acumulado")
}

// El gasto acumulado de un cliente suma únicamente sus facturas PAID.
func TestCustomerList_GastoAcumulado(t *testing.T) {
	env := newBillingEnv(t)
	ctx := context.Background()

	// Dos facturas: una se paga, la otra queda ISSUED
	paidInv := env.createInvoice(t, "") // 1299
	env.createInvoice(t, "")            // 1299, queda pendiente
	_, err := env.invoiceUC.UpdateStatus(ctx, paidInv.ID, entity.StatusPaid)
	require.NoError(t, err)

	customerUC := billing.NewCustomerUseCase(
		memory.NewCustomerRepository(env.store),
		memory.NewInvoiceRepository(env.store),
	)
	list, err := customerUC.List()
	require.NoError(t, err)
	require.Len(t, list, 1)

	assert.True(t, dec("1299").Equal(list[0].LifetimeSpend),
		"solo la factura PAID cuenta para el gasto acumulado, obtuvo %s", list[0].LifetimeSpend)
}

func TestCustomerList_MasRecientesPrimero(t *testing.T) {
	store := memory.NewStore(memory.DefaultOrganization())
	uc := billing.NewCustomerUseCase(
		memory.NewCustomerRepository(store),
		memory.NewInvoiceRepository(store),
	)

	first, err := uc.Create(dto.CreateCustomerRequest{FirstName: "Alex", LastName: "Russo", Email: "a@x.com"})
	require.NoError(t, err)
	time.Sleep(time.Millisecond)
	second, err := uc.Create(dto.CreateCustomerRequest{FirstName: "Sarah", LastName: "Chen", Email: "s@x.com"})
	require.NoError(t, err)

	list, err := uc.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID, "el cliente más reciente va primero")
	assert.Equal(t, first.ID, list[1].ID)
}
