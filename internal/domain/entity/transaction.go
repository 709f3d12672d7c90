package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transacción.
type TransactionType string

const (
	TxPayment TransactionType = "PAYMENT"
	TxRefund  TransactionType = "REFUND"
)

// Origen de la transacción.
type TransactionSource string

const (
	SourceStripe TransactionSource = "STRIPE"
	SourceManual TransactionSource = "MANUAL"
)

// Transaction representa un movimiento de dinero registrado (pago o reembolso),
// opcionalmente ligado a una factura. Inmutable después de creada; nunca se elimina.
type Transaction struct {
	ID             string
	OrganizationID string
	InvoiceID      string // opcional; vacío para movimientos manuales sin factura
	Type           TransactionType
	Amount         decimal.Decimal
	Source         TransactionSource
	Description    string
	TransactedAt   time.Time
}
