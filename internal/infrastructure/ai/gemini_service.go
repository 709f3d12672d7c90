// Package ai contiene los adaptadores hacia proveedores de texto generativo.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jhoicas/bizbuddy-api/internal/application/dto"
	"github.com/jhoicas/bizbuddy-api/internal/application/ports"
)

// Verificar en tiempo de compilación que GeminiService implementa LLMService.
var _ ports.LLMService = (*GeminiService)(nil)

const geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s"

// GeminiService adaptador que implementa LLMService llamando a la API REST de
// Google Gemini. Usa únicamente net/http de la librería estándar; no requiere
// el SDK oficial.
type GeminiService struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewGeminiService construye el adaptador. model suele ser "gemini-1.5-flash".
// Si apiKey está vacío, las llamadas devuelven error descriptivo; el caso de
// uso es quien decide el fallback, nunca este adaptador.
func NewGeminiService(apiKey, model string) *GeminiService {
	return &GeminiService{
		apiKey: apiKey,
		model:  model,
		httpClient: &http.Client{
			Timeout: 20 * time.Second, // timeout de red; el caller también pone WithTimeout
		},
	}
}

// ── Estructuras internas para la API de Gemini ────────────────────────────────

type geminiRequest struct {
	SystemInstruction *geminiContent  `json:"system_instruction,omitempty"`
	Contents          []geminiContent `json:"contents"`
	GenerationConfig  genConfig       `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
	Role  string       `json:"role,omitempty"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type genConfig struct {
	ResponseMIMEType string  `json:"responseMimeType,omitempty"` // "application/json" → JSON puro garantizado
	Temperature      float32 `json:"temperature"`
	MaxOutputTokens  int     `json:"maxOutputTokens"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// ── Prompts ───────────────────────────────────────────────────────────────────
// El copy generado es de cara al cliente final del taller, por eso los
// prompts están en inglés.

const insightsSystemPrompt = `You are an expert automotive performance shop consultant.
Return ONLY a JSON array (no extra text) where each element has this exact shape:
{"title": "<string>", "content": "<string>", "recommendation": "<string>", "priority": "<High|Medium|Low>"}
Provide exactly 3 actionable business insights or suggestions to increase shop efficiency, upsell performance parts, or improve cash flow.`

const copySystemPrompt = `You are a high-end marketing expert specifically for automotive performance and tuning shops.
Return ONLY a JSON object (no extra text) with this exact shape:
{"subject": "<string>", "body": "<string>"}
The subject line should be punchy and related to cars/performance.
The body should be professional, engaging, and include a clear call to action.
Use placeholders like {customerName} or {shopName} where appropriate.`

// ── Implementación del puerto ─────────────────────────────────────────────────

// GenerateBusinessInsights pide al modelo las tarjetas de insight del dashboard.
func (s *GeminiService) GenerateBusinessInsights(ctx context.Context, snapshot ports.BusinessSnapshot) ([]dto.BusinessInsightDTO, error) {
	userText := fmt.Sprintf(
		"Analyze the following data for %q:\n- Total Revenue: $%s\n- Total Invoices: %d\n- Paid Invoice Ratio: %.1f%%\n- Average Invoice Value: $%s",
		snapshot.OrgName,
		snapshot.TotalRevenue.StringFixed(2),
		snapshot.InvoiceCount,
		snapshot.PaidRatio*100,
		snapshot.AvgInvoice.StringFixed(2),
	)

	raw, err := s.generate(ctx, insightsSystemPrompt, userText, true, 1024)
	if err != nil {
		return nil, err
	}

	var insights []dto.BusinessInsightDTO
	if err := json.Unmarshal([]byte(raw), &insights); err != nil {
		return nil, fmt.Errorf("AI: respuesta del modelo no es JSON válido: %w", err)
	}
	return insights, nil
}

// GenerateMarketingCopy pide asunto y cuerpo para una campaña.
func (s *GeminiService) GenerateMarketingCopy(ctx context.Context, purpose, context_, tone string) (*dto.MarketingCopyDTO, error) {
	userText := fmt.Sprintf("Generate a %s message.\nTone: %s\nContext: %s", purpose, tone, context_)

	raw, err := s.generate(ctx, copySystemPrompt, userText, true, 512)
	if err != nil {
		return nil, err
	}

	var copyOut dto.MarketingCopyDTO
	if err := json.Unmarshal([]byte(raw), &copyOut); err != nil {
		return nil, fmt.Errorf("AI: respuesta del modelo no es JSON válido: %w", err)
	}
	return &copyOut, nil
}

// GenerateMarketingAdvice responde una pregunta de marketing en texto plano
// (sin esquema JSON).
func (s *GeminiService) GenerateMarketingAdvice(ctx context.Context, question string, stats ports.ShopStats) (string, error) {
	userText := fmt.Sprintf(
		"As an automotive marketing strategist, answer this: %q\nContext:\n- Shop Stats: Total Customers: %d, Avg Invoice: $%s\nKeep your advice actionable, concise, and tailored to the car enthusiast market.",
		question,
		stats.CustomerCount,
		stats.AvgInvoice.StringFixed(2),
	)

	return s.generate(ctx, "", userText, false, 512)
}

// generate arma la petición, llama a la API y devuelve el texto del primer
// candidato. jsonMode activa responseMimeType=application/json.
func (s *GeminiService) generate(ctx context.Context, system, userText string, jsonMode bool, maxTokens int) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("AI: GEMINI_API_KEY no configurado")
	}

	payload := geminiRequest{
		Contents: []geminiContent{
			{
				Role:  "user",
				Parts: []geminiPart{{Text: userText}},
			},
		},
		GenerationConfig: genConfig{
			Temperature:     0.4,
			MaxOutputTokens: maxTokens,
		},
	}
	if system != "" {
		payload.SystemInstruction = &geminiContent{Parts: []geminiPart{{Text: system}}}
	}
	if jsonMode {
		payload.GenerationConfig.ResponseMIMEType = "application/json"
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("AI: serializar request: %w", err)
	}

	url := fmt.Sprintf(geminiBaseURL, s.model, s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("AI: crear HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("AI: timeout o cancelación: %w", ctx.Err())
		}
		return "", fmt.Errorf("AI: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return "", fmt.Errorf("AI: leer respuesta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		// Intentar extraer el mensaje de error de Gemini
		var errResp geminiResponse
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Error != nil {
			return "", fmt.Errorf("AI: Gemini error %d: %s", errResp.Error.Code, errResp.Error.Message)
		}
		return "", fmt.Errorf("AI: Gemini HTTP %d", resp.StatusCode)
	}

	var gemResp geminiResponse
	if err := json.Unmarshal(rawBody, &gemResp); err != nil {
		return "", fmt.Errorf("AI: deserializar respuesta Gemini: %w", err)
	}

	if len(gemResp.Candidates) == 0 || len(gemResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("AI: Gemini devolvió respuesta vacía")
	}

	return strings.TrimSpace(gemResp.Candidates[0].Content.Parts[0].Text), nil
}
