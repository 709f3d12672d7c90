package dto

import "time"

// CreateTemplateRequest body para POST /api/communications/templates.
type CreateTemplateRequest struct {
	Name      string   `json:"name"`
	Type      string   `json:"type"`     // EMAIL | SMS
	Category  string   `json:"category"` // REMINDER | MARKETING | TRANSACTIONAL
	Subject   string   `json:"subject,omitempty"`
	Body      string   `json:"body"`
	Variables []string `json:"variables,omitempty"`
}

// TemplateResponse plantilla en respuestas.
type TemplateResponse struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Type      string   `json:"type"`
	Category  string   `json:"category"`
	Subject   string   `json:"subject,omitempty"`
	Body      string   `json:"body"`
	Variables []string `json:"variables,omitempty"`
	IsActive  bool     `json:"is_active"`
	CreatedAt string   `json:"created_at"`
}

// CreateReminderRequest body para POST /api/communications/reminders.
// CustomerID vacío crea un recordatorio por defecto para todos los clientes.
type CreateReminderRequest struct {
	CustomerID      string     `json:"customer_id,omitempty"`
	ServiceType     string     `json:"service_type"`
	IntervalMonths  int        `json:"interval_months"`
	IntervalMiles   int        `json:"interval_miles,omitempty"`
	ReminderDays    int        `json:"reminder_days"`
	LastServiceDate *time.Time `json:"last_service_date,omitempty"`
	Notes           string     `json:"notes,omitempty"`
}

// ReminderResponse recordatorio en respuestas.
type ReminderResponse struct {
	ID              string     `json:"id"`
	CustomerID      string     `json:"customer_id,omitempty"`
	ServiceType     string     `json:"service_type"`
	IntervalMonths  int        `json:"interval_months"`
	IntervalMiles   int        `json:"interval_miles,omitempty"`
	ReminderDays    int        `json:"reminder_days"`
	LastServiceDate *time.Time `json:"last_service_date,omitempty"`
	NextServiceDate *time.Time `json:"next_service_date,omitempty"`
	IsActive        bool       `json:"is_active"`
	Notes           string     `json:"notes,omitempty"`
}

// CreateCampaignRequest body para POST /api/communications/campaigns.
// Status admite DRAFT o SCHEDULED (con ScheduledAt); vacío equivale a DRAFT.
type CreateCampaignRequest struct {
	TemplateID  string     `json:"template_id,omitempty"`
	Name        string     `json:"name"`
	Type        string     `json:"type"` // EMAIL | SMS
	Status      string     `json:"status,omitempty"`
	Subject     string     `json:"subject,omitempty"`
	Body        string     `json:"body"`
	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`
}

// CampaignStatsDTO métricas de entrega.
type CampaignStatsDTO struct {
	Delivered int `json:"delivered"`
	Opened    int `json:"opened"`
	Clicked   int `json:"clicked"`
}

// CampaignResponse campaña en respuestas.
type CampaignResponse struct {
	ID             string            `json:"id"`
	TemplateID     string            `json:"template_id,omitempty"`
	Name           string            `json:"name"`
	Type           string            `json:"type"`
	Status         string            `json:"status"`
	Subject        string            `json:"subject,omitempty"`
	Body           string            `json:"body"`
	ScheduledAt    *time.Time        `json:"scheduled_at,omitempty"`
	SentAt         *time.Time        `json:"sent_at,omitempty"`
	RecipientCount int               `json:"recipient_count"`
	Stats          *CampaignStatsDTO `json:"stats,omitempty"`
}

// CommsOverviewDTO respuesta de GET /api/communications/overview.
type CommsOverviewDTO struct {
	TotalCampaigns  int `json:"total_campaigns"`
	SentCampaigns   int `json:"sent_campaigns"`
	ActiveReminders int `json:"active_reminders"`
	TotalTemplates  int `json:"total_templates"`
	TotalDelivered  int `json:"total_delivered"`
}
