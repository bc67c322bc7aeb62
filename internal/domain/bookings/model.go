package bookings

import "time"

// Booking guarda el intervalo ya resuelto en instantes absolutos.
// La conversión fecha + hora + duración en la zona de la práctica
// ocurre una sola vez, al crear.
type Booking struct {
	ID         string
	CustomerID string
	DogID      string

	Start time.Time
	End   time.Time
	Notes string

	CreatedAt time.Time
}

// ListItem es la proyección para la agenda: la cita más los nombres
// de cliente y perro resueltos por el storage.
type ListItem struct {
	Booking
	CustomerName string
	DogName      string
}
