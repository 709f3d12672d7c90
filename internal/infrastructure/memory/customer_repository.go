package memory

import (
	"github.com/jhoicas/bizbuddy-api/internal/domain"
	"github.com/jhoicas/bizbuddy-api/internal/domain/entity"
	"github.com/jhoicas/bizbuddy-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación en memoria de CustomerRepository.
type CustomerRepo struct {
	s *Store
}

// NewCustomerRepository construye el adaptador sobre el store.
func NewCustomerRepository(s *Store) *CustomerRepo {
	return &CustomerRepo{s: s}
}

// Create agrega un cliente a la colección.
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.findCustomer(customer.ID) != nil {
		return domain.ErrConflict
	}
	r.s.customers = append(r.s.customers, cloneCustomer(customer))
	return nil
}

// GetByID obtiene un cliente por ID; nil si no existe.
func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c := r.s.findCustomer(id)
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return cloneCustomer(c), nil
}

// List devuelve todos los clientes, los más recientes primero.
func (r *CustomerRepo) List() ([]*entity.Customer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Customer, 0, len(r.s.customers))
	for i := len(r.s.customers) - 1; i >= 0; i-- {
		out = append(out, cloneCustomer(r.s.customers[i]))
	}
	return out, nil
}
