package repository

import "github.com/jhoicas/bizbuddy-api/internal/domain/entity"

// CustomerRepository define el puerto de acceso a clientes.
// Los clientes solo se crean y se leen; no hay update ni delete en el alcance actual.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	// List devuelve todos los clientes, los más recientes primero.
	List() ([]*entity.Customer, error)
}
