package billing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/bizbuddy-api/internal/domain/billing"
	"github.com/jhoicas/bizbuddy-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests de la máquina de estados de factura. La tabla completa:
//
//	DRAFT   → ISSUED, CANCELLED
//	ISSUED  → PAID, OVERDUE, CANCELLED
//	OVERDUE → PAID, CANCELLED
//	PAID    → (terminal)
//	CANCELLED → (terminal)
//
// Transicionar al mismo estado siempre es legal (no-op).
// ──────────────────────────────────────────────────────────────────────────────

func TestCanTransition_TablaCompleta(t *testing.T) {
	all := []entity.InvoiceStatus{
		entity.StatusDraft, entity.StatusIssued, entity.StatusPaid,
		entity.StatusOverdue, entity.StatusCancelled,
	}
	allowed := map[entity.InvoiceStatus][]entity.InvoiceStatus{
		entity.StatusDraft:   {entity.StatusIssued, entity.StatusCancelled},
		entity.StatusIssued:  {entity.StatusPaid, entity.StatusOverdue, entity.StatusCancelled},
		entity.StatusOverdue: {entity.StatusPaid, entity.StatusCancelled},
	}

	for _, from := range all {
		for _, to := range all {
			want := from == to
			for _, a := range allowed[from] {
				if a == to {
					want = true
				}
			}
			got := billing.CanTransition(from, to)
			assert.Equal(t, want, got, "transición %s → %s: esperado %v", from, to, want)
		}
	}
}

func TestCanTransition_EstadosTerminales(t *testing.T) {
	for _, terminal := range []entity.InvoiceStatus{entity.StatusPaid, entity.StatusCancelled} {
		for _, to := range []entity.InvoiceStatus{
			entity.StatusDraft, entity.StatusIssued, entity.StatusOverdue,
		} {
			assert.False(t, billing.CanTransition(terminal, to),
				"%s es terminal; no debe admitir salida hacia %s", terminal, to)
		}
		assert.True(t, billing.CanTransition(terminal, terminal),
			"transicionar al mismo estado siempre es legal")
	}
}

func TestEmitsPayment(t *testing.T) {
	assert.True(t, billing.EmitsPayment(entity.StatusIssued, entity.StatusPaid),
		"ISSUED → PAID debe emitir pago")
	assert.True(t, billing.EmitsPayment(entity.StatusOverdue, entity.StatusPaid),
		"OVERDUE → PAID debe emitir pago")
	assert.False(t, billing.EmitsPayment(entity.StatusPaid, entity.StatusPaid),
		"PAID → PAID no debe emitir un segundo pago")
	assert.False(t, billing.EmitsPayment(entity.StatusIssued, entity.StatusCancelled),
		"cancelar no emite pago")
}
