package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bizbuddy-api/internal/application/dto"
	"github.com/jhoicas/bizbuddy-api/internal/application/usecase"
)

// AIHandler maneja los endpoints de asesoría generativa.
// Estos endpoints NUNCA devuelven error por fallos del proveedor de IA: el
// caso de uso sustituye contenido de fallback y la respuesta siempre es 200.
type AIHandler struct {
	uc *usecase.AIUseCase
}

// NewAIHandler construye el handler.
func NewAIHandler(uc *usecase.AIUseCase) *AIHandler {
	return &AIHandler{uc: uc}
}

// BusinessInsights devuelve tarjetas de insight para el dashboard.
// GET /api/ai/insights
func (h *AIHandler) BusinessInsights(c *fiber.Ctx) error {
	return c.JSON(h.uc.BusinessInsights(c.Context()))
}

// MarketingCopy genera asunto y cuerpo para una campaña.
// POST /api/ai/marketing-copy
func (h *AIHandler) MarketingCopy(c *fiber.Ctx) error {
	var in dto.MarketingCopyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	return c.JSON(h.uc.MarketingCopy(c.Context(), in))
}

// MarketingAdvice responde una pregunta de marketing en texto plano.
// POST /api/ai/advice
func (h *AIHandler) MarketingAdvice(c *fiber.Ctx) error {
	var in dto.MarketingAdviceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if strings.TrimSpace(in.Question) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "question es requerido"})
	}
	return c.JSON(h.uc.MarketingAdvice(c.Context(), in.Question))
}
