// Package comms contiene los casos de uso de comunicaciones y marketing:
// plantillas, recordatorios de servicio y campañas. Colecciones simples de
// alta y listado, sin lógica derivada de facturación.
package comms

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/bizbuddy-api/internal/application/dto"
	"github.com/jhoicas/bizbuddy-api/internal/domain"
	"github.com/jhoicas/bizbuddy-api/internal/domain/entity"
	"github.com/jhoicas/bizbuddy-api/internal/domain/repository"
)

// CommsUseCase casos de uso del módulo de comunicaciones.
type CommsUseCase struct {
	templateRepo repository.TemplateRepository
	reminderRepo repository.ReminderRepository
	campaignRepo repository.CampaignRepository
	customerRepo repository.CustomerRepository
	orgRepo      repository.OrganizationRepository
}

// NewCommsUseCase construye el caso de uso.
func NewCommsUseCase(
	templateRepo repository.TemplateRepository,
	reminderRepo repository.ReminderRepository,
	campaignRepo repository.CampaignRepository,
	customerRepo repository.CustomerRepository,
	orgRepo repository.OrganizationRepository,
) *CommsUseCase {
	return &CommsUseCase{
		templateRepo: templateRepo,
		reminderRepo: reminderRepo,
		campaignRepo: campaignRepo,
		customerRepo: customerRepo,
		orgRepo:      orgRepo,
	}
}

// ── Plantillas ────────────────────────────────────────────────────────────────

// CreateTemplate crea una plantilla de comunicación (activa por defecto).
func (uc *CommsUseCase) CreateTemplate(in dto.CreateTemplateRequest) (*dto.TemplateResponse, error) {
	if in.Name == "" || in.Body == "" || !validCommType(in.Type) || !validCommCategory(in.Category) {
		return nil, domain.ErrInvalidInput
	}
	org, err := uc.orgRepo.Get()
	if err != nil {
		return nil, err
	}
	tpl := &entity.CommunicationTemplate{
		ID:             uuid.New().String(),
		OrganizationID: org.ID,
		Name:           in.Name,
		Type:           entity.CommType(in.Type),
		Category:       entity.CommCategory(in.Category),
		Subject:        in.Subject,
		Body:           in.Body,
		Variables:      in.Variables,
		IsActive:       true,
		CreatedAt:      time.Now(),
	}
	if err := uc.templateRepo.Create(tpl); err != nil {
		return nil, err
	}
	return toTemplateResponse(tpl), nil
}

// ListTemplates lista las plantillas.
func (uc *CommsUseCase) ListTemplates() ([]*dto.TemplateResponse, error) {
	list, err := uc.templateRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.TemplateResponse, 0, len(list))
	for _, tpl := range list {
		out = append(out, toTemplateResponse(tpl))
	}
	return out, nil
}

// ── Recordatorios ─────────────────────────────────────────────────────────────

// CreateReminder crea un recordatorio de servicio. CustomerID vacío crea un
// recordatorio por defecto; si viene, debe resolver a un cliente existente.
func (uc *CommsUseCase) CreateReminder(in dto.CreateReminderRequest) (*dto.ReminderResponse, error) {
	if in.ServiceType == "" || in.IntervalMonths <= 0 || in.ReminderDays < 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.CustomerID != "" {
		customer, err := uc.customerRepo.GetByID(in.CustomerID)
		if err != nil || customer == nil {
			return nil, domain.ErrNotFound
		}
	}
	org, err := uc.orgRepo.Get()
	if err != nil {
		return nil, err
	}
	reminder := &entity.ServiceReminder{
		ID:              uuid.New().String(),
		OrganizationID:  org.ID,
		CustomerID:      in.CustomerID,
		ServiceType:     in.ServiceType,
		IntervalMonths:  in.IntervalMonths,
		IntervalMiles:   in.IntervalMiles,
		ReminderDays:    in.ReminderDays,
		LastServiceDate: in.LastServiceDate,
		IsActive:        true,
		Notes:           in.Notes,
	}
	if in.LastServiceDate != nil {
		next := in.LastServiceDate.AddDate(0, in.IntervalMonths, 0)
		reminder.NextServiceDate = &next
	}
	if err := uc.reminderRepo.Create(reminder); err != nil {
		return nil, err
	}
	return toReminderResponse(reminder), nil
}

// ListReminders lista los recordatorios.
func (uc *CommsUseCase) ListReminders() ([]*dto.ReminderResponse, error) {
	list, err := uc.reminderRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ReminderResponse, 0, len(list))
	for _, r := range list {
		out = append(out, toReminderResponse(r))
	}
	return out, nil
}

// ── Campañas ──────────────────────────────────────────────────────────────────

// CreateCampaign crea una campaña en DRAFT o SCHEDULED. SCHEDULED exige
// fecha de programación. El conteo de destinatarios se toma del padrón de
// clientes actual.
func (uc *CommsUseCase) CreateCampaign(in dto.CreateCampaignRequest) (*dto.CampaignResponse, error) {
	if in.Name == "" || in.Body == "" || !validCommType(in.Type) {
		return nil, domain.ErrInvalidInput
	}
	status := entity.CampaignDraft
	switch in.Status {
	case "", string(entity.CampaignDraft):
	case string(entity.CampaignScheduled):
		if in.ScheduledAt == nil {
			return nil, domain.ErrInvalidInput
		}
		status = entity.CampaignScheduled
	default:
		return nil, domain.ErrInvalidInput
	}
	org, err := uc.orgRepo.Get()
	if err != nil {
		return nil, err
	}
	recipients := 0
	if status == entity.CampaignScheduled {
		customers, err := uc.customerRepo.List()
		if err != nil {
			return nil, err
		}
		recipients = len(customers)
	}
	campaign := &entity.Campaign{
		ID:             uuid.New().String(),
		OrganizationID: org.ID,
		TemplateID:     in.TemplateID,
		Name:           in.Name,
		Type:           entity.CommType(in.Type),
		Status:         status,
		Subject:        in.Subject,
		Body:           in.Body,
		ScheduledAt:    in.ScheduledAt,
		RecipientCount: recipients,
	}
	if err := uc.campaignRepo.Create(campaign); err != nil {
		return nil, err
	}
	return toCampaignResponse(campaign), nil
}

// ListCampaigns lista las campañas.
func (uc *CommsUseCase) ListCampaigns() ([]*dto.CampaignResponse, error) {
	list, err := uc.campaignRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CampaignResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCampaignResponse(c))
	}
	return out, nil
}

// Overview resumen del módulo para la pestaña principal.
func (uc *CommsUseCase) Overview() (*dto.CommsOverviewDTO, error) {
	campaigns, err := uc.campaignRepo.List()
	if err != nil {
		return nil, err
	}
	reminders, err := uc.reminderRepo.List()
	if err != nil {
		return nil, err
	}
	templates, err := uc.templateRepo.List()
	if err != nil {
		return nil, err
	}

	overview := &dto.CommsOverviewDTO{
		TotalCampaigns: len(campaigns),
		TotalTemplates: len(templates),
	}
	for _, c := range campaigns {
		if c.Status == entity.CampaignSent {
			overview.SentCampaigns++
		}
		if c.Stats != nil {
			overview.TotalDelivered += c.Stats.Delivered
		}
	}
	for _, r := range reminders {
		if r.IsActive {
			overview.ActiveReminders++
		}
	}
	return overview, nil
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func validCommType(s string) bool {
	return s == string(entity.CommEmail) || s == string(entity.CommSMS)
}

func validCommCategory(s string) bool {
	switch entity.CommCategory(s) {
	case entity.CommReminder, entity.CommMarketing, entity.CommTransactional:
		return true
	}
	return false
}

func toTemplateResponse(tpl *entity.CommunicationTemplate) *dto.TemplateResponse {
	return &dto.TemplateResponse{
		ID:        tpl.ID,
		Name:      tpl.Name,
		Type:      string(tpl.Type),
		Category:  string(tpl.Category),
		Subject:   tpl.Subject,
		Body:      tpl.Body,
		Variables: tpl.Variables,
		IsActive:  tpl.IsActive,
		CreatedAt: tpl.CreatedAt.Format(time.RFC3339),
	}
}

func toReminderResponse(r *entity.ServiceReminder) *dto.ReminderResponse {
	return &dto.ReminderResponse{
		ID:              r.ID,
		CustomerID:      r.CustomerID,
		ServiceType:     r.ServiceType,
		IntervalMonths:  r.IntervalMonths,
		IntervalMiles:   r.IntervalMiles,
		ReminderDays:    r.ReminderDays,
		LastServiceDate: r.LastServiceDate,
		NextServiceDate: r.NextServiceDate,
		IsActive:        r.IsActive,
		Notes:           r.Notes,
	}
}

func toCampaignResponse(c *entity.Campaign) *dto.CampaignResponse {
	resp := &dto.CampaignResponse{
		ID:             c.ID,
		TemplateID:     c.TemplateID,
		Name:           c.Name,
		Type:           string(c.Type),
		Status:         string(c.Status),
		Subject:        c.Subject,
		Body:           c.Body,
		ScheduledAt:    c.ScheduledAt,
		SentAt:         c.SentAt,
		RecipientCount: c.RecipientCount,
	}
	if c.Stats != nil {
		resp.Stats = &dto.CampaignStatsDTO{
			Delivered: c.Stats.Delivered,
			Opened:    c.Stats.Opened,
			Clicked:   c.Stats.Clicked,
		}
	}
	return resp
}
