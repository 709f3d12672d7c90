package comms_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bizbuddy-api/internal/application/comms"
	"github.com/jhoicas/bizbuddy-api/internal/application/dto"
	"github.com/jhoicas/bizbuddy-api/internal/domain"
	"github.com/jhoicas/bizbuddy-api/internal/infrastructure/memory"
)

func newCommsEnv(t *testing.T, seed bool) (*memory.Store, *comms.CommsUseCase) {
	t.Helper()
	store := memory.NewStore(memory.DefaultOrganization())
	if seed {
		memory.SeedDemo(store)
	}
	uc := comms.NewCommsUseCase(
		memory.NewTemplateRepository(store),
		memory.NewReminderRepository(store),
		memory.NewCampaignRepository(store),
		memory.NewCustomerRepository(store),
		memory.NewOrganizationRepository(store),
	)
	return store, uc
}

func TestCreateTemplate(t *testing.T) {
	_, uc := newCommsEnv(t, false)

	tpl, err := uc.CreateTemplate(dto.CreateTemplateRequest{
		Name:      "Oil Change Reminder",
		Type:      "EMAIL",
		Category:  "REMINDER",
		Subject:   "Time for your oil change",
		Body:      "Hi {customerName}, your {vehicleName} is due.",
		Variables: []string{"customerName", "vehicleName"},
	})
	require.NoError(t, err)
	assert.True(t, tpl.IsActive, "las plantillas nacen activas")
	assert.Equal(t, "EMAIL", tpl.Type)

	_, err = uc.CreateTemplate(dto.CreateTemplateRequest{Name: "x", Type: "FAX", Category: "REMINDER", Body: "y"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "tipo de comunicación desconocido")

	_, err = uc.CreateTemplate(dto.CreateTemplateRequest{Name: "x", Type: "SMS", Category: "SPAM", Body: "y"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "categoría desconocida")
}

func TestCreateReminder_CalculaProximoServicio(t *testing.T) {
	_, uc := newCommsEnv(t, false)

	last := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	rem, err := uc.CreateReminder(dto.CreateReminderRequest{
		ServiceType:     "Synthetic Oil Change",
		IntervalMonths:  6,
		ReminderDays:    7,
		LastServiceDate: &last,
	})
	require.NoError(t, err)

	require.NotNil(t, rem.NextServiceDate)
	want := time.Date(2026, time.September, 10, 0, 0, 0, 0, time.UTC)
	assert.True(t, want.Equal(*rem.NextServiceDate),
		"próximo servicio = último + intervalo en meses")
	assert.Empty(t, rem.CustomerID, "sin cliente es un recordatorio por defecto")
}

func TestCreateReminder_Validaciones(t *testing.T) {
	_, uc := newCommsEnv(t, false)

	_, err := uc.CreateReminder(dto.CreateReminderRequest{ServiceType: "", IntervalMonths: 6})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.CreateReminder(dto.CreateReminderRequest{ServiceType: "Brakes", IntervalMonths: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "el intervalo debe ser positivo")

	_, err = uc.CreateReminder(dto.CreateReminderRequest{
		ServiceType: "Brakes", IntervalMonths: 6, CustomerID: "cust_fantasma",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound, "el cliente referido debe existir")
}

func TestCreateCampaign(t *testing.T) {
	_, uc := newCommsEnv(t, true) // la demo trae dos clientes

	draft, err := uc.CreateCampaign(dto.CreateCampaignRequest{
		Name: "Winter Prep", Type: "EMAIL", Body: "Get ready for winter.",
	})
	require.NoError(t, err)
	assert.Equal(t, "DRAFT", draft.Status, "sin estado la campaña nace DRAFT")
	assert.Zero(t, draft.RecipientCount, "los borradores no fijan destinatarios")

	at := time.Now().AddDate(0, 0, 7)
	scheduled, err := uc.CreateCampaign(dto.CreateCampaignRequest{
		Name: "Track Day", Type: "SMS", Body: "Spots open.", Status: "SCHEDULED", ScheduledAt: &at,
	})
	require.NoError(t, err)
	assert.Equal(t, "SCHEDULED", scheduled.Status)
	assert.Equal(t, 2, scheduled.RecipientCount, "programar toma el padrón actual de clientes")

	_, err = uc.CreateCampaign(dto.CreateCampaignRequest{
		Name: "x", Type: "EMAIL", Body: "y", Status: "SCHEDULED",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "SCHEDULED sin fecha debe rechazarse")

	_, err = uc.CreateCampaign(dto.CreateCampaignRequest{
		Name: "x", Type: "EMAIL", Body: "y", Status: "SENT",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "SENT no es un estado inicial válido")
}

func TestOverview_ConDatosDeDemo(t *testing.T) {
	_, uc := newCommsEnv(t, true)

	overview, err := uc.Overview()
	require.NoError(t, err)

	assert.Equal(t, 3, overview.TotalCampaigns)
	assert.Equal(t, 1, overview.SentCampaigns)
	assert.Equal(t, 2, overview.ActiveReminders)
	assert.Equal(t, 3, overview.TotalTemplates)
	assert.Equal(t, 144, overview.TotalDelivered, "solo la campaña enviada aporta entregas")
}

func TestOverview_Vacio(t *testing.T) {
	_, uc := newCommsEnv(t, false)

	overview, err := uc.Overview()
	require.NoError(t, err)
	assert.Zero(t, overview.TotalCampaigns)
	assert.Zero(t, overview.ActiveReminders)
}
