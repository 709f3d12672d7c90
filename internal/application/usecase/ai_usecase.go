package usecase

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/bizbuddy-api/internal/application/dto"
	"github.com/jhoicas/bizbuddy-api/internal/application/ports"
	"github.com/jhoicas/bizbuddy-api/internal/domain/entity"
	"github.com/jhoicas/bizbuddy-api/internal/domain/repository"
)

// Fallbacks fijos por sitio de llamada. Ante cualquier fallo del proveedor
// (sin clave, red, JSON malformado) el usuario recibe estos valores, nunca un
// error, y no se reintenta. El texto visible se mantiene en inglés porque es
// copy de producto.
var (
	fallbackInsightNoKey = dto.BusinessInsightDTO{
		Title:          "AI Insights Unavailable",
		Content:        "Gemini API key is not configured. Please add GEMINI_API_KEY to your environment variables.",
		Recommendation: "The app will work normally, but AI-powered insights will be disabled until the API key is set.",
		Priority:       "Low",
	}
	fallbackInsightError = dto.BusinessInsightDTO{
		Title:          "Data Analysis Paused",
		Content:        "We couldn't generate insights at this moment.",
		Recommendation: "Check back later or ensure your business data is up to date.",
		Priority:       "Low",
	}
	fallbackCopy = dto.MarketingCopyDTO{
		Subject: "Exclusive Performance Update",
		Body:    "Hello {customerName}, check out our latest upgrades!",
	}
	fallbackAdvice = "Ensure consistent communication through reminders and high-quality photography of your builds."
	// Cuando el proveedor responde OK pero sin texto, el consejo es otro.
	fallbackAdviceEmpty = "Focus on social media and repeat customer loyalty."
)

const llmTimeout = 10 * time.Second // las llamadas al LLM pueden demorar varios segundos

// AIUseCase orquesta el contenido asesor generado por IA: insights del
// dashboard, copy de marketing y consejo conversacional. Es un pass-through
// al puerto LLM; jamás toca el modelo de datos ni bloquea mutaciones.
type AIUseCase struct {
	llm          ports.LLMService
	configured   bool // false cuando no hay API key: fallback inmediato sin llamada de red
	invoiceRepo  repository.InvoiceRepository
	txRepo       repository.TransactionRepository
	customerRepo repository.CustomerRepository
	orgRepo      repository.OrganizationRepository
	log          zerolog.Logger
}

// NewAIUseCase construye el caso de uso. configured=false fuerza los fallbacks
// de "clave no configurada" sin intentar la llamada.
func NewAIUseCase(
	llm ports.LLMService,
	configured bool,
	invoiceRepo repository.InvoiceRepository,
	txRepo repository.TransactionRepository,
	customerRepo repository.CustomerRepository,
	orgRepo repository.OrganizationRepository,
	log zerolog.Logger,
) *AIUseCase {
	return &AIUseCase{
		llm:          llm,
		configured:   configured,
		invoiceRepo:  invoiceRepo,
		txRepo:       txRepo,
		customerRepo: customerRepo,
		orgRepo:      orgRepo,
		log:          log,
	}
}

// BusinessInsights genera las tarjetas de insight del dashboard.
func (uc *AIUseCase) BusinessInsights(ctx context.Context) []dto.BusinessInsightDTO {
	if !uc.configured {
		return []dto.BusinessInsightDTO{fallbackInsightNoKey}
	}

	snapshot, err := uc.snapshot()
	if err != nil {
		uc.log.Warn().Err(err).Msg("insights: no se pudo armar el snapshot; fallback")
		return []dto.BusinessInsightDTO{fallbackInsightError}
	}

	ctx, cancel := context.WithTimeout(ctx, llmTimeout)
	defer cancel()

	insights, err := uc.llm.GenerateBusinessInsights(ctx, snapshot)
	if err != nil || len(insights) == 0 {
		uc.log.Warn().Err(err).Msg("insights: fallo del proveedor LLM; fallback")
		return []dto.BusinessInsightDTO{fallbackInsightError}
	}
	return insights
}

// MarketingCopy genera asunto y cuerpo para una campaña.
func (uc *AIUseCase) MarketingCopy(ctx context.Context, in dto.MarketingCopyRequest) dto.MarketingCopyDTO {
	if !uc.configured {
		return fallbackCopy
	}

	ctx, cancel := context.WithTimeout(ctx, llmTimeout)
	defer cancel()

	copy_, err := uc.llm.GenerateMarketingCopy(ctx, in.Purpose, in.Context, in.Tone)
	if err != nil || copy_ == nil {
		uc.log.Warn().Err(err).Msg("marketing copy: fallo del proveedor LLM; fallback")
		return fallbackCopy
	}
	return *copy_
}

// MarketingAdvice responde una pregunta de marketing en texto plano.
func (uc *AIUseCase) MarketingAdvice(ctx context.Context, question string) dto.MarketingAdviceDTO {
	if !uc.configured {
		return dto.MarketingAdviceDTO{Advice: fallbackAdvice}
	}

	stats, err := uc.shopStats()
	if err != nil {
		uc.log.Warn().Err(err).Msg("advice: no se pudieron armar las stats; fallback")
		return dto.MarketingAdviceDTO{Advice: fallbackAdvice}
	}

	ctx, cancel := context.WithTimeout(ctx, llmTimeout)
	defer cancel()

	advice, err := uc.llm.GenerateMarketingAdvice(ctx, question, stats)
	if err != nil {
		uc.log.Warn().Err(err).Msg("advice: fallo del proveedor LLM; fallback")
		return dto.MarketingAdviceDTO{Advice: fallbackAdvice}
	}
	if advice == "" {
		uc.log.Warn().Msg("advice: respuesta vacía del proveedor; fallback")
		return dto.MarketingAdviceDTO{Advice: fallbackAdviceEmpty}
	}
	return dto.MarketingAdviceDTO{Advice: advice}
}

// snapshot arma el resumen agregado que se envía al modelo para los insights.
func (uc *AIUseCase) snapshot() (ports.BusinessSnapshot, error) {
	org, err := uc.orgRepo.Get()
	if err != nil {
		return ports.BusinessSnapshot{}, err
	}
	invoices, err := uc.invoiceRepo.List()
	if err != nil {
		return ports.BusinessSnapshot{}, err
	}
	txs, err := uc.txRepo.List()
	if err != nil {
		return ports.BusinessSnapshot{}, err
	}

	var totalRevenue, invoiceTotal decimal.Decimal
	for _, tx := range txs {
		if tx.Type == entity.TxPayment {
			totalRevenue = totalRevenue.Add(tx.Amount)
		}
	}
	paid := 0
	for _, inv := range invoices {
		invoiceTotal = invoiceTotal.Add(inv.Total)
		if inv.Status == entity.StatusPaid {
			paid++
		}
	}

	snapshot := ports.BusinessSnapshot{
		OrgName:      org.Name,
		TotalRevenue: totalRevenue,
		InvoiceCount: len(invoices),
	}
	if len(invoices) > 0 {
		snapshot.PaidRatio = float64(paid) / float64(len(invoices))
		snapshot.AvgInvoice = invoiceTotal.Div(decimal.NewFromInt(int64(len(invoices)))).Round(2)
	}
	return snapshot, nil
}

func (uc *AIUseCase) shopStats() (ports.ShopStats, error) {
	customers, err := uc.customerRepo.List()
	if err != nil {
		return ports.ShopStats{}, err
	}
	invoices, err := uc.invoiceRepo.List()
	if err != nil {
		return ports.ShopStats{}, err
	}
	stats := ports.ShopStats{CustomerCount: len(customers)}
	if len(invoices) > 0 {
		var total decimal.Decimal
		for _, inv := range invoices {
			total = total.Add(inv.Total)
		}
		stats.AvgInvoice = total.Div(decimal.NewFromInt(int64(len(invoices)))).Round(2)
	}
	return stats, nil
}
