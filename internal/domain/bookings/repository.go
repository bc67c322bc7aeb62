package bookings

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, b Booking) error
	// List devuelve próximas citas ordenadas por inicio ascendente.
	List(ctx context.Context, limit int) ([]ListItem, error)
	// ListRange devuelve citas con inicio en [from, to), ascendente.
	ListRange(ctx context.Context, from, to time.Time) ([]ListItem, error)
}
