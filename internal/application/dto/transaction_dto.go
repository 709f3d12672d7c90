package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateTransactionRequest body para POST /api/transactions (registro manual).
type CreateTransactionRequest struct {
	InvoiceID   string          `json:"invoice_id,omitempty"`
	Type        string          `json:"type"`   // PAYMENT | REFUND
	Source      string          `json:"source"` // STRIPE | MANUAL
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
}

// TransactionResponse transacción en respuestas.
type TransactionResponse struct {
	ID             string          `json:"id"`
	OrganizationID string          `json:"organization_id"`
	InvoiceID      string          `json:"invoice_id,omitempty"`
	Type           string          `json:"type"`
	Amount         decimal.Decimal `json:"amount"`
	Source         string          `json:"source"`
	Description    string          `json:"description"`
	TransactedAt   time.Time       `json:"transacted_at"`
}
