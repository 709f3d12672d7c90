package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de una factura.
type InvoiceStatus string

const (
	StatusDraft     InvoiceStatus = "DRAFT"
	StatusIssued    InvoiceStatus = "ISSUED"
	StatusPaid      InvoiceStatus = "PAID"
	StatusOverdue   InvoiceStatus = "OVERDUE"
	StatusCancelled InvoiceStatus = "CANCELLED"
)

// Categorías de línea de factura.
type LineItemCategory string

const (
	CategoryLabor   LineItemCategory = "Labor"
	CategoryParts   LineItemCategory = "Parts"
	CategoryService LineItemCategory = "Service"
	CategoryOther   LineItemCategory = "Other"
)

// ValidCategory indica si la categoría pertenece al conjunto fijo.
func ValidCategory(c LineItemCategory) bool {
	switch c {
	case CategoryLabor, CategoryParts, CategoryService, CategoryOther:
		return true
	}
	return false
}

// LineItem representa una línea facturable de la factura.
// Pertenece exclusivamente a su factura padre; nunca se comparte.
type LineItem struct {
	ID          string
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	Category    LineItemCategory
	Total       decimal.Decimal // Quantity × UnitPrice
}

// Invoice representa la cabecera de una factura con sus líneas.
//
// Invariantes:
//   - Subtotal == Σ LineItems[i].Total
//   - TaxAmount == Subtotal × Organization.TaxRate / 100
//   - Total == Subtotal + TaxAmount
//   - PaidAt != nil ⟺ Status == PAID (una vez pagada, PaidAt no se limpia)
type Invoice struct {
	ID             string
	OrganizationID string
	CustomerID     string
	InvoiceNumber  string // legible, ej. INV-2026-1001
	Status         InvoiceStatus
	IssuedAt       *time.Time // nil mientras esté en DRAFT
	DueAt          time.Time
	PaidAt         *time.Time // nil hasta la transición a PAID
	Subtotal       decimal.Decimal
	TaxAmount      decimal.Decimal
	Total          decimal.Decimal
	Notes          string // opcional
	LineItems      []LineItem
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
