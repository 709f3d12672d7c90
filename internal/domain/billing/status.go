package billing

import "github.com/jhoicas/bizbuddy-api/internal/domain/entity"

// Tabla de transiciones permitidas del ciclo de vida de la factura:
//
//	DRAFT   → ISSUED | CANCELLED
//	ISSUED  → PAID | OVERDUE | CANCELLED
//	OVERDUE → PAID | CANCELLED
//
// PAID y CANCELLED son terminales. La transición al estado actual (incluido
// PAID → PAID) es un no-op permitido: el caller no debe emitir efectos.
var allowedTransitions = map[entity.InvoiceStatus][]entity.InvoiceStatus{
	entity.StatusDraft:   {entity.StatusIssued, entity.StatusCancelled},
	entity.StatusIssued:  {entity.StatusPaid, entity.StatusOverdue, entity.StatusCancelled},
	entity.StatusOverdue: {entity.StatusPaid, entity.StatusCancelled},
}

// CanTransition indica si el cambio de estado from → to es legal.
// from == to siempre es legal (no-op).
func CanTransition(from, to entity.InvoiceStatus) bool {
	if from == to {
		return true
	}
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// EmitsPayment indica si la transición from → to debe producir la transacción
// de pago. Solo la primera llegada a PAID emite; PAID → PAID nunca vuelve a
// emitir (guarda de idempotencia contra pagos duplicados).
func EmitsPayment(from, to entity.InvoiceStatus) bool {
	return to == entity.StatusPaid && from != entity.StatusPaid
}
