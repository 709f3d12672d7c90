package memory

import (
	"github.com/jhoicas/bizbuddy-api/internal/domain"
	"github.com/jhoicas/bizbuddy-api/internal/domain/entity"
	"github.com/jhoicas/bizbuddy-api/internal/domain/repository"
)

var _ repository.OrganizationRepository = (*OrganizationRepo)(nil)

// OrganizationRepo implementación en memoria de OrganizationRepository.
type OrganizationRepo struct {
	s *Store
}

// NewOrganizationRepository construye el adaptador sobre el store.
func NewOrganizationRepository(s *Store) *OrganizationRepo {
	return &OrganizationRepo{s: s}
}

// Get devuelve la organización de la sesión.
func (r *OrganizationRepo) Get() (*entity.Organization, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if r.s.org == nil {
		return nil, domain.ErrNotFound
	}
	return cloneOrganization(r.s.org), nil
}

// Replace sustituye la organización completa conservando el numerador de facturas.
func (r *OrganizationRepo) Replace(org *entity.Organization) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.org = cloneOrganization(org)
	if _, ok := r.s.invoiceSeq[org.ID]; !ok {
		r.s.invoiceSeq[org.ID] = 1000
	}
	return nil
}
