package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineItemRequest línea de factura en la creación.
type LineItemRequest struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Category    string          `json:"category"` // Labor | Parts | Service | Other
}

// CreateInvoiceRequest body para POST /api/invoices.
// InitialStatus admite DRAFT o ISSUED; vacío equivale a ISSUED.
type CreateInvoiceRequest struct {
	CustomerID    string            `json:"customer_id"`
	DueAt         time.Time         `json:"due_at"`
	Notes         string            `json:"notes,omitempty"`
	InitialStatus string            `json:"initial_status,omitempty"`
	Items         []LineItemRequest `json:"items"`
}

// UpdateInvoiceStatusRequest body para PATCH /api/invoices/:id/status.
type UpdateInvoiceStatusRequest struct {
	Status string `json:"status"`
}

// LineItemResponse línea en respuestas.
type LineItemResponse struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Category    string          `json:"category"`
	Total       decimal.Decimal `json:"total"`
}

// InvoiceResponse factura completa en respuestas.
type InvoiceResponse struct {
	ID             string             `json:"id"`
	OrganizationID string             `json:"organization_id"`
	CustomerID     string             `json:"customer_id"`
	CustomerName   string             `json:"customer_name,omitempty"`
	InvoiceNumber  string             `json:"invoice_number"`
	Status         string             `json:"status"`
	IssuedAt       *time.Time         `json:"issued_at"`
	DueAt          time.Time          `json:"due_at"`
	PaidAt         *time.Time         `json:"paid_at"`
	Subtotal       decimal.Decimal    `json:"subtotal"`
	TaxAmount      decimal.Decimal    `json:"tax_amount"`
	Total          decimal.Decimal    `json:"total"`
	Notes          string             `json:"notes,omitempty"`
	LineItems      []LineItemResponse `json:"line_items"`
}
