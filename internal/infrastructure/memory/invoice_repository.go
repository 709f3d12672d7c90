package memory

import (
	"github.com/jhoicas/bizbuddy-api/internal/domain"
	"github.com/jhoicas/bizbuddy-api/internal/domain/entity"
	"github.com/jhoicas/bizbuddy-api/internal/domain/repository"
)

var (
	_ repository.InvoiceRepository = (*InvoiceRepo)(nil)
	_ repository.InvoiceRepository = (*invoiceRepoTx)(nil)
)

// InvoiceRepo implementación en memoria de InvoiceRepository (toma el lock en
// cada operación). Dentro de la unidad de trabajo se usa invoiceRepoTx, que
// asume el lock ya sostenido por el runner.
type InvoiceRepo struct {
	s *Store
}

// NewInvoiceRepository construye el adaptador sobre el store.
func NewInvoiceRepository(s *Store) *InvoiceRepo {
	return &InvoiceRepo{s: s}
}

func (r *InvoiceRepo) Create(inv *entity.Invoice) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return createInvoiceLocked(r.s, inv)
}

func (r *InvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return getInvoiceLocked(r.s, id)
}

func (r *InvoiceRepo) List() ([]*entity.Invoice, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return listInvoicesLocked(r.s)
}

func (r *InvoiceRepo) Update(inv *entity.Invoice) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return updateInvoiceLocked(r.s, inv)
}

func (r *InvoiceRepo) NextNumber(organizationID string) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.nextInvoiceNumber(organizationID), nil
}

// invoiceRepoTx variante sin lock para la unidad de trabajo.
type invoiceRepoTx struct {
	s *Store
}

func (r *invoiceRepoTx) Create(inv *entity.Invoice) error        { return createInvoiceLocked(r.s, inv) }
func (r *invoiceRepoTx) GetByID(id string) (*entity.Invoice, error) { return getInvoiceLocked(r.s, id) }
func (r *invoiceRepoTx) List() ([]*entity.Invoice, error)        { return listInvoicesLocked(r.s) }
func (r *invoiceRepoTx) Update(inv *entity.Invoice) error        { return updateInvoiceLocked(r.s, inv) }
func (r *invoiceRepoTx) NextNumber(orgID string) (int, error) {
	return r.s.nextInvoiceNumber(orgID), nil
}

// ── Operaciones compartidas (lock ya sostenido) ───────────────────────────────

func createInvoiceLocked(s *Store, inv *entity.Invoice) error {
	if s.findInvoice(inv.ID) != nil {
		return domain.ErrConflict
	}
	s.invoices = append(s.invoices, cloneInvoice(inv))
	return nil
}

func getInvoiceLocked(s *Store, id string) (*entity.Invoice, error) {
	inv := s.findInvoice(id)
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	return cloneInvoice(inv), nil
}

func listInvoicesLocked(s *Store) ([]*entity.Invoice, error) {
	out := make([]*entity.Invoice, 0, len(s.invoices))
	for i := len(s.invoices) - 1; i >= 0; i-- {
		out = append(out, cloneInvoice(s.invoices[i]))
	}
	return out, nil
}

func updateInvoiceLocked(s *Store, inv *entity.Invoice) error {
	for i, existing := range s.invoices {
		if existing.ID == inv.ID {
			s.invoices[i] = cloneInvoice(inv)
			return nil
		}
	}
	return domain.ErrNotFound
}
