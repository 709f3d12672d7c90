package memory

import (
	"github.com/jhoicas/bizbuddy-api/internal/domain/entity"
	"github.com/jhoicas/bizbuddy-api/internal/domain/repository"
)

var (
	_ repository.TemplateRepository = (*TemplateRepo)(nil)
	_ repository.ReminderRepository = (*ReminderRepo)(nil)
	_ repository.CampaignRepository = (*CampaignRepo)(nil)
)

// TemplateRepo implementación en memoria de TemplateRepository.
type TemplateRepo struct {
	s *Store
}

// NewTemplateRepository construye el adaptador sobre el store.
func NewTemplateRepository(s *Store) *TemplateRepo { return &TemplateRepo{s: s} }

func (r *TemplateRepo) Create(tpl *entity.CommunicationTemplate) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.templates = append(r.s.templates, cloneTemplate(tpl))
	return nil
}

func (r *TemplateRepo) List() ([]*entity.CommunicationTemplate, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.CommunicationTemplate, 0, len(r.s.templates))
	for i := len(r.s.templates) - 1; i >= 0; i-- {
		out = append(out, cloneTemplate(r.s.templates[i]))
	}
	return out, nil
}

// ReminderRepo implementación en memoria de ReminderRepository.
type ReminderRepo struct {
	s *Store
}

// NewReminderRepository construye el adaptador sobre el store.
func NewReminderRepository(s *Store) *ReminderRepo { return &ReminderRepo{s: s} }

func (r *ReminderRepo) Create(reminder *entity.ServiceReminder) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.reminders = append(r.s.reminders, cloneReminder(reminder))
	return nil
}

func (r *ReminderRepo) List() ([]*entity.ServiceReminder, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.ServiceReminder, 0, len(r.s.reminders))
	for i := len(r.s.reminders) - 1; i >= 0; i-- {
		out = append(out, cloneReminder(r.s.reminders[i]))
	}
	return out, nil
}

// CampaignRepo implementación en memoria de CampaignRepository.
type CampaignRepo struct {
	s *Store
}

// NewCampaignRepository construye el adaptador sobre el store.
func NewCampaignRepository(s *Store) *CampaignRepo { return &CampaignRepo{s: s} }

func (r *CampaignRepo) Create(campaign *entity.Campaign) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.campaigns = append(r.s.campaigns, cloneCampaign(campaign))
	return nil
}

func (r *CampaignRepo) List() ([]*entity.Campaign, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Campaign, 0, len(r.s.campaigns))
	for i := len(r.s.campaigns) - 1; i >= 0; i-- {
		out = append(out, cloneCampaign(r.s.campaigns[i]))
	}
	return out, nil
}
