package dto

import "github.com/shopspring/decimal"

// UpdateOrganizationRequest body para PUT /api/organization.
// Reemplazo completo de la configuración: los campos omitidos quedan vacíos.
type UpdateOrganizationRequest struct {
	Name            string          `json:"name"`
	LogoURL         string          `json:"logo_url,omitempty"`
	StripeAccountID string          `json:"stripe_account_id,omitempty"`
	TaxRate         decimal.Decimal `json:"tax_rate"`
}

// OrganizationResponse organización en respuestas.
type OrganizationResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	LogoURL         string          `json:"logo_url,omitempty"`
	StripeAccountID string          `json:"stripe_account_id,omitempty"`
	TaxRate         decimal.Decimal `json:"tax_rate"`
}
