package customers

import "time"

// Customer es el cliente de la práctica (dueño de uno o más perros).
// Todos los campos de contacto son texto libre; la práctica los usa tal cual.
type Customer struct {
	ID string

	Name    string
	Phone   string
	Email   string
	Address string
	City    string
	Notes   string

	CreatedAt time.Time
}
