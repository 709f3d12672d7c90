// Package memory implementa los puertos de repositorio sobre colecciones en
// memoria. No hay persistencia: el estado vive lo que vive el proceso. El
// Store es el dueño explícito del estado de la sesión (sin singletons
// globales) y su RWMutex es la garantía de atomicidad de la unidad de
// trabajo de facturación.
package memory

import (
	"sync"

	"github.com/jhoicas/bizbuddy-api/internal/domain/entity"
)

// Store colecciones top-level de la sesión, protegidas por un único RWMutex.
type Store struct {
	mu sync.RWMutex

	org          *entity.Organization
	customers    []*entity.Customer
	invoices     []*entity.Invoice
	transactions []*entity.Transaction
	templates    []*entity.CommunicationTemplate
	reminders    []*entity.ServiceReminder
	campaigns    []*entity.Campaign

	// Numerador monotónico de facturas por organización; el próximo
	// consecutivo es seq+1. Arranca en 1000 para que la primera factura
	// sea INV-<año>-1001.
	invoiceSeq map[string]int
}

// NewStore crea el store con la organización inicial.
func NewStore(org *entity.Organization) *Store {
	return &Store{
		org:        cloneOrganization(org),
		invoiceSeq: map[string]int{org.ID: 1000},
	}
}

// ── Helpers sin lock (el caller debe sostener mu) ─────────────────────────────

func (s *Store) findInvoice(id string) *entity.Invoice {
	for _, inv := range s.invoices {
		if inv.ID == id {
			return inv
		}
	}
	return nil
}

func (s *Store) findCustomer(id string) *entity.Customer {
	for _, c := range s.customers {
		if c.ID == id {
			return c
		}
	}
	return nil
}

func (s *Store) nextInvoiceNumber(orgID string) int {
	s.invoiceSeq[orgID]++
	return s.invoiceSeq[orgID]
}

// ── Clones defensivos ─────────────────────────────────────────────────────────
// Los repos devuelven copias para que ningún caller mute el estado del store
// por fuera del lock.

func cloneOrganization(org *entity.Organization) *entity.Organization {
	cp := *org
	return &cp
}

func cloneCustomer(c *entity.Customer) *entity.Customer {
	cp := *c
	return &cp
}

func cloneInvoice(inv *entity.Invoice) *entity.Invoice {
	cp := *inv
	if inv.IssuedAt != nil {
		t := *inv.IssuedAt
		cp.IssuedAt = &t
	}
	if inv.PaidAt != nil {
		t := *inv.PaidAt
		cp.PaidAt = &t
	}
	cp.LineItems = append([]entity.LineItem(nil), inv.LineItems...)
	return &cp
}

func cloneTransaction(tx *entity.Transaction) *entity.Transaction {
	cp := *tx
	return &cp
}

func cloneTemplate(tpl *entity.CommunicationTemplate) *entity.CommunicationTemplate {
	cp := *tpl
	cp.Variables = append([]string(nil), tpl.Variables...)
	return &cp
}

func cloneReminder(r *entity.ServiceReminder) *entity.ServiceReminder {
	cp := *r
	if r.LastServiceDate != nil {
		t := *r.LastServiceDate
		cp.LastServiceDate = &t
	}
	if r.NextServiceDate != nil {
		t := *r.NextServiceDate
		cp.NextServiceDate = &t
	}
	return &cp
}

func cloneCampaign(c *entity.Campaign) *entity.Campaign {
	cp := *c
	if c.ScheduledAt != nil {
		t := *c.ScheduledAt
		cp.ScheduledAt = &t
	}
	if c.SentAt != nil {
		t := *c.SentAt
		cp.SentAt = &t
	}
	if c.Stats != nil {
		st := *c.Stats
		cp.Stats = &st
	}
	return &cp
}
