package repository

import "github.com/jhoicas/bizbuddy-api/internal/domain/entity"

// InvoiceRepository define el puerto de acceso a facturas (cabecera + líneas).
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	GetByID(id string) (*entity.Invoice, error)
	// List devuelve todas las facturas, las más recientes primero.
	List() ([]*entity.Invoice, error)
	// Update reemplaza la cabecera (estado, PaidAt, UpdatedAt). Las líneas no cambian.
	Update(invoice *entity.Invoice) error
	// NextNumber devuelve el siguiente consecutivo del numerador por
	// organización; monotónico, nunca se reusa ni retrocede.
	NextNumber(organizationID string) (int, error)
}
