package dto

import "github.com/shopspring/decimal"

// CreateCustomerRequest body para POST /api/customers.
type CreateCustomerRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Company   string `json:"company,omitempty"`
	Address   string `json:"address,omitempty"`
	City      string `json:"city,omitempty"`
	State     string `json:"state,omitempty"`
	Zip       string `json:"zip,omitempty"`
}

// CustomerResponse cliente en respuestas. LifetimeSpend es la vista agregada
// (suma de totales de sus facturas PAID), calculada bajo demanda.
type CustomerResponse struct {
	ID            string          `json:"id"`
	FirstName     string          `json:"first_name"`
	LastName      string          `json:"last_name"`
	Email         string          `json:"email"`
	Phone         string          `json:"phone,omitempty"`
	Company       string          `json:"company,omitempty"`
	Address       string          `json:"address,omitempty"`
	City          string          `json:"city,omitempty"`
	State         string          `json:"state,omitempty"`
	Zip           string          `json:"zip,omitempty"`
	CreatedAt     string          `json:"created_at"`
	LifetimeSpend decimal.Decimal `json:"lifetime_spend"`
}
