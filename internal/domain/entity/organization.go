package entity

import "github.com/shopspring/decimal"

// Organization representa el taller/negocio dueño de la sesión.
// Es un singleton: se crea una vez al arrancar y solo se reemplaza completo
// vía la operación de actualización de configuración.
type Organization struct {
	ID              string
	Name            string
	LogoURL         string // opcional
	StripeAccountID string // referencia externa de pagos; placeholder, no hay flujo Stripe real
	TaxRate         decimal.Decimal // porcentaje, ej. 8.25
}
