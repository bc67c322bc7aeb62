package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"delecti-backend/internal/domain/bookings"
)

// BookingsRepo resuelve los nombres contra los repos de customers y
// dogs para imitar el JOIN del adapter de postgres.
type BookingsRepo struct {
	mu   sync.RWMutex
	byID map[string]bookings.Booking

	customers *CustomersRepo
	dogs      *DogsRepo
}

func NewBookingsRepo(customers *CustomersRepo, dogs *DogsRepo) *BookingsRepo {
	return &BookingsRepo{
		byID:      make(map[string]bookings.Booking),
		customers: customers,
		dogs:      dogs,
	}
}

func (r *BookingsRepo) Create(ctx context.Context, b bookings.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(b.ID) == "" {
		return errors.New("booking id required")
	}
	if _, exists := r.byID[b.ID]; exists {
		return errors.New("booking already exists")
	}
	r.byID[b.ID] = b
	return nil
}

func (r *BookingsRepo) List(ctx context.Context, limit int) ([]bookings.ListItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := r.collect(ctx, func(bookings.Booking) bool { return true })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *BookingsRepo) ListRange(ctx context.Context, from, to time.Time) ([]bookings.ListItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.collect(ctx, func(b bookings.Booking) bool {
		return !b.Start.Before(from) && b.Start.Before(to)
	}), nil
}

func (r *BookingsRepo) collect(ctx context.Context, keep func(bookings.Booking) bool) []bookings.ListItem {
	out := make([]bookings.ListItem, 0)
	for _, b := range r.byID {
		if !keep(b) {
			continue
		}
		it := bookings.ListItem{Booking: b}
		if c, err := r.customers.GetByID(ctx, b.CustomerID); err == nil {
			it.CustomerName = c.Name
		}
		if d, err := r.dogs.GetByID(ctx, b.DogID); err == nil {
			it.DogName = d.Name
		}
		out = append(out, it)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Start.Before(out[j].Start)
	})
	return out
}
