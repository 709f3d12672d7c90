package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bizbuddy-api/internal/application/comms"
	"github.com/jhoicas/bizbuddy-api/internal/application/dto"
	"github.com/jhoicas/bizbuddy-api/internal/domain"
)

// CommsHandler maneja plantillas, recordatorios de servicio y campañas.
type CommsHandler struct {
	uc *comms.CommsUseCase
}

// NewCommsHandler construye el handler.
func NewCommsHandler(uc *comms.CommsUseCase) *CommsHandler {
	return &CommsHandler{uc: uc}
}

// CreateTemplate POST /api/communications/templates
func (h *CommsHandler) CreateTemplate(c *fiber.Ctx) error {
	var in dto.CreateTemplateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	tpl, err := h.uc.CreateTemplate(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name, type, category y body son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(tpl)
}

// ListTemplates GET /api/communications/templates
func (h *CommsHandler) ListTemplates(c *fiber.Ctx) error {
	list, err := h.uc.ListTemplates()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// CreateReminder POST /api/communications/reminders
func (h *CommsHandler) CreateReminder(c *fiber.Ctx) error {
	var in dto.CreateReminderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	rem, err := h.uc.CreateReminder(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "service_type e interval_months positivo son requeridos"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(rem)
}

// ListReminders GET /api/communications/reminders
func (h *CommsHandler) ListReminders(c *fiber.Ctx) error {
	list, err := h.uc.ListReminders()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// CreateCampaign POST /api/communications/campaigns
func (h *CommsHandler) CreateCampaign(c *fiber.Ctx) error {
	var in dto.CreateCampaignRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	camp, err := h.uc.CreateCampaign(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name, type y body son requeridos; SCHEDULED exige scheduled_at"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(camp)
}

// ListCampaigns GET /api/communications/campaigns
func (h *CommsHandler) ListCampaigns(c *fiber.Ctx) error {
	list, err := h.uc.ListCampaigns()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// Overview GET /api/communications/overview
func (h *CommsHandler) Overview(c *fiber.Ctx) error {
	overview, err := h.uc.Overview()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(overview)
}
