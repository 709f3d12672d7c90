package repository

import "github.com/jhoicas/bizbuddy-api/internal/domain/entity"

// TemplateRepository puerto de acceso a plantillas de comunicación.
type TemplateRepository interface {
	Create(tpl *entity.CommunicationTemplate) error
	List() ([]*entity.CommunicationTemplate, error)
}

// ReminderRepository puerto de acceso a recordatorios de servicio.
type ReminderRepository interface {
	Create(reminder *entity.ServiceReminder) error
	List() ([]*entity.ServiceReminder, error)
}

// CampaignRepository puerto de acceso a campañas de marketing.
type CampaignRepository interface {
	Create(campaign *entity.Campaign) error
	List() ([]*entity.Campaign, error)
}
