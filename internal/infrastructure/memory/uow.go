package memory

import (
	"context"

	"github.com/jhoicas/bizbuddy-api/internal/application/billing"
	"github.com/jhoicas/bizbuddy-api/internal/domain/repository"
)

var _ billing.BillingUnitOfWork = (*UnitOfWork)(nil)

// UnitOfWork ejecuta callbacks de facturación bajo el lock de escritura del
// store: el cambio de estado de la factura y la transacción de pago se
// vuelven visibles juntos, y dos callers concurrentes sobre la misma factura
// se serializan (a lo sumo una transacción por transición a PAID).
//
// Sin rollback: si fn falla a mitad de camino las escrituras previas quedan.
// Los casos de uso están escritos para validar antes de escribir, así que el
// único fallo posible dentro de fn es un conflicto de ID (no ocurre con UUIDs).
type UnitOfWork struct {
	s *Store
}

// NewUnitOfWork construye el runner sobre el store.
func NewUnitOfWork(s *Store) *UnitOfWork {
	return &UnitOfWork{s: s}
}

// RunBilling sostiene el lock de escritura y ejecuta fn con repos sin lock.
func (u *UnitOfWork) RunBilling(ctx context.Context, fn func(
	invoiceRepo repository.InvoiceRepository,
	txRepo repository.TransactionRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	return fn(&invoiceRepoTx{s: u.s}, &transactionRepoTx{s: u.s})
}
