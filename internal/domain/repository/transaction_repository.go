package repository

import "github.com/jhoicas/bizbuddy-api/internal/domain/entity"

// TransactionRepository define el puerto de acceso a transacciones.
// Las transacciones son inmutables: solo alta y lectura.
type TransactionRepository interface {
	Create(tx *entity.Transaction) error
	// List devuelve todas las transacciones, las más recientes primero.
	List() ([]*entity.Transaction, error)
}
