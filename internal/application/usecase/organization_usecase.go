package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/bizbuddy-api/internal/application/dto"
	"github.com/jhoicas/bizbuddy-api/internal/domain"
	"github.com/jhoicas/bizbuddy-api/internal/domain/entity"
	"github.com/jhoicas/bizbuddy-api/internal/domain/repository"
)

// OrganizationUseCase lectura y reemplazo completo de la configuración del negocio.
type OrganizationUseCase struct {
	repo repository.OrganizationRepository
}

// NewOrganizationUseCase construye el caso de uso.
func NewOrganizationUseCase(repo repository.OrganizationRepository) *OrganizationUseCase {
	return &OrganizationUseCase{repo: repo}
}

// Get devuelve la organización actual.
func (uc *OrganizationUseCase) Get() (*dto.OrganizationResponse, error) {
	org, err := uc.repo.Get()
	if err != nil {
		return nil, err
	}
	return toOrganizationResponse(org), nil
}

// Update reemplaza la configuración completa. El ID se conserva; la tarifa de
// impuesto debe ser no negativa y el nombre no puede quedar vacío.
func (uc *OrganizationUseCase) Update(in dto.UpdateOrganizationRequest) (*dto.OrganizationResponse, error) {
	if in.Name == "" || in.TaxRate.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	current, err := uc.repo.Get()
	if err != nil {
		return nil, err
	}
	org := &entity.Organization{
		ID:              current.ID,
		Name:            in.Name,
		LogoURL:         in.LogoURL,
		StripeAccountID: in.StripeAccountID,
		TaxRate:         in.TaxRate,
	}
	if err := uc.repo.Replace(org); err != nil {
		return nil, err
	}
	return toOrganizationResponse(org), nil
}

func toOrganizationResponse(org *entity.Organization) *dto.OrganizationResponse {
	return &dto.OrganizationResponse{
		ID:              org.ID,
		Name:            org.Name,
		LogoURL:         org.LogoURL,
		StripeAccountID: org.StripeAccountID,
		TaxRate:         org.TaxRate,
	}
}
