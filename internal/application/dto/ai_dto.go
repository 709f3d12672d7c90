package dto

// BusinessInsightDTO tarjeta de insight generada por el LLM para el dashboard.
type BusinessInsightDTO struct {
	Title          string `json:"title"`
	Content        string `json:"content"`
	Recommendation string `json:"recommendation"`
	Priority       string `json:"priority"` // High | Medium | Low
}

// MarketingCopyRequest body para POST /api/ai/marketing-copy.
type MarketingCopyRequest struct {
	Purpose string `json:"purpose"`
	Context string `json:"context"`
	Tone    string `json:"tone"`
}

// MarketingCopyDTO asunto y cuerpo generados para una campaña.
type MarketingCopyDTO struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// MarketingAdviceRequest body para POST /api/ai/advice.
type MarketingAdviceRequest struct {
	Question string `json:"question"`
}

// MarketingAdviceDTO respuesta del asesor de marketing.
type MarketingAdviceDTO struct {
	Advice string `json:"advice"`
}
