package entity

import "time"

// Customer representa un cliente del taller.
// Una vez creado no se modifica ni se elimina (solo alta y lectura).
type Customer struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Company   string // opcional
	Address   string
	City      string
	State     string
	Zip       string
	CreatedAt time.Time // inmutable una vez asignado
}

// FullName devuelve el nombre completo para mostrar.
func (c *Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}
