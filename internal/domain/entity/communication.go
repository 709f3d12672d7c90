package entity

import "time"

// Canales de comunicación.
type CommType string

const (
	CommEmail CommType = "EMAIL"
	CommSMS   CommType = "SMS"
)

// Categorías de plantilla.
type CommCategory string

const (
	CommReminder      CommCategory = "REMINDER"
	CommMarketing     CommCategory = "MARKETING"
	CommTransactional CommCategory = "TRANSACTIONAL"
)

// Estados de campaña.
type CampaignStatus string

const (
	CampaignDraft     CampaignStatus = "DRAFT"
	CampaignScheduled CampaignStatus = "SCHEDULED"
	CampaignSent      CampaignStatus = "SENT"
	CampaignCancelled CampaignStatus = "CANCELLED"
)

// CommunicationTemplate plantilla reutilizable de email/SMS.
type CommunicationTemplate struct {
	ID             string
	OrganizationID string
	Name           string
	Type           CommType
	Category       CommCategory
	Subject        string // opcional (solo email)
	Body           string
	Variables      []string // placeholders disponibles, ej. {customerName}
	IsActive       bool
	CreatedAt      time.Time
}

// ServiceReminder recordatorio de servicio periódico para un cliente.
// CustomerID vacío = recordatorio por defecto aplicable a todos.
type ServiceReminder struct {
	ID              string
	OrganizationID  string
	CustomerID      string
	ServiceType     string
	IntervalMonths  int
	IntervalMiles   int // opcional; 0 = sin umbral de millaje
	ReminderDays    int
	LastServiceDate *time.Time
	NextServiceDate *time.Time
	IsActive        bool
	Notes           string
}

// CampaignStats métricas de entrega de una campaña enviada.
type CampaignStats struct {
	Delivered int
	Opened    int
	Clicked   int
}

// Campaign campaña de marketing (email o SMS) sobre un segmento de clientes.
type Campaign struct {
	ID             string
	OrganizationID string
	TemplateID     string // opcional
	Name           string
	Type           CommType
	Status         CampaignStatus
	Subject        string
	Body           string
	ScheduledAt    *time.Time
	SentAt         *time.Time
	RecipientCount int
	Stats          *CampaignStats // nil mientras no se haya enviado
}
