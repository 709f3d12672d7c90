package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/bizbuddy-api/internal/application/dto"
	"github.com/jhoicas/bizbuddy-api/internal/domain"
	"github.com/jhoicas/bizbuddy-api/internal/domain/entity"
	"github.com/jhoicas/bizbuddy-api/internal/domain/repository"
)

// CustomerUseCase casos de uso de clientes: alta y listado con gasto acumulado.
type CustomerUseCase struct {
	repo        repository.CustomerRepository
	invoiceRepo repository.InvoiceRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository, invoiceRepo repository.InvoiceRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, invoiceRepo: invoiceRepo}
}

// Create crea un nuevo cliente.
func (uc *CustomerUseCase) Create(in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.FirstName == "" || in.LastName == "" || in.Email == "" {
		return nil, domain.ErrInvalidInput
	}
	customer := &entity.Customer{
		ID:        uuid.New().String(),
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Phone:     in.Phone,
		Company:   in.Company,
		Address:   in.Address,
		City:      in.City,
		State:     in.State,
		Zip:       in.Zip,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	return uc.toResponse(customer, decimal.Zero), nil
}

// List lista los clientes con su gasto de por vida (vista agregada, calculada
// bajo demanda: suma de totales de sus facturas PAID; no se cachea).
func (uc *CustomerUseCase) List() ([]*dto.CustomerResponse, error) {
	customers, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	invoices, err := uc.invoiceRepo.List()
	if err != nil {
		return nil, err
	}

	spendByCustomer := make(map[string]decimal.Decimal, len(customers))
	for _, inv := range invoices {
		if inv.Status != entity.StatusPaid {
			continue
		}
		spendByCustomer[inv.CustomerID] = spendByCustomer[inv.CustomerID].Add(inv.Total)
	}

	out := make([]*dto.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, uc.toResponse(c, spendByCustomer[c.ID]))
	}
	return out, nil
}

func (uc *CustomerUseCase) toResponse(c *entity.Customer, lifetimeSpend decimal.Decimal) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:            c.ID,
		FirstName:     c.FirstName,
		LastName:      c.LastName,
		Email:         c.Email,
		Phone:         c.Phone,
		Company:       c.Company,
		Address:       c.Address,
		City:          c.City,
		State:         c.State,
		Zip:           c.Zip,
		CreatedAt:     c.CreatedAt.Format(time.RFC3339),
		LifetimeSpend: lifetimeSpend,
	}
}
