package repository

import "github.com/jhoicas/bizbuddy-api/internal/domain/entity"

// OrganizationRepository define el puerto de acceso a la organización (singleton de la sesión).
type OrganizationRepository interface {
	Get() (*entity.Organization, error)
	// Replace sustituye la organización completa (operación de configuración).
	Replace(org *entity.Organization) error
}
