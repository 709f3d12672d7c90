package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/bizbuddy-api/internal/application/dto"
)

// BusinessSnapshot resumen numérico del negocio que se envía al modelo.
// Nunca se envían datos de clientes individuales, solo agregados.
type BusinessSnapshot struct {
	OrgName      string
	TotalRevenue decimal.Decimal
	InvoiceCount int
	PaidRatio    float64 // facturas PAID / total (0 si no hay facturas)
	AvgInvoice   decimal.Decimal
}

// ShopStats contexto para el asesor de marketing.
type ShopStats struct {
	CustomerCount int
	AvgInvoice    decimal.Decimal
}

// LLMService define el puerto de salida hacia el servicio de texto generativo.
// Cualquier adaptador (Gemini, mock) debe implementar esta interfaz. La capa de
// aplicación solo conoce este contrato, no la implementación concreta; los
// errores del adaptador NUNCA llegan al usuario final (el caso de uso
// sustituye un fallback fijo por sitio de llamada).
type LLMService interface {
	// GenerateBusinessInsights produce tarjetas de insight para el dashboard
	// a partir del resumen agregado del negocio.
	GenerateBusinessInsights(ctx context.Context, snapshot BusinessSnapshot) ([]dto.BusinessInsightDTO, error)

	// GenerateMarketingCopy produce asunto y cuerpo para una campaña.
	GenerateMarketingCopy(ctx context.Context, purpose, context_, tone string) (*dto.MarketingCopyDTO, error)

	// GenerateMarketingAdvice responde una pregunta de marketing en texto plano.
	GenerateMarketingAdvice(ctx context.Context, question string, stats ShopStats) (string, error)
}
