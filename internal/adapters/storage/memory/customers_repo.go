package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"delecti-backend/internal/domain/customers"
)

type CustomersRepo struct {
	mu   sync.RWMutex
	byID map[string]customers.Customer
}

func NewCustomersRepo() *CustomersRepo {
	return &CustomersRepo{
		byID: make(map[string]customers.Customer),
	}
}

func (r *CustomersRepo) Create(ctx context.Context, c customers.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(c.ID) == "" {
		return errors.New("customer id required")
	}
	if _, exists := r.byID[c.ID]; exists {
		return errors.New("customer already exists")
	}
	r.byID[c.ID] = c
	return nil
}

func (r *CustomersRepo) GetByID(ctx context.Context, id string) (customers.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byID[id]
	if !ok {
		return customers.Customer{}, customers.ErrNotFound
	}
	return c, nil
}

func (r *CustomersRepo) List(ctx context.Context, nameQuery string, limit int) ([]customers.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	q := strings.ToLower(strings.TrimSpace(nameQuery))
	out := make([]customers.Customer, 0)
	for _, c := range r.byID {
		if q != "" && !strings.Contains(strings.ToLower(c.Name), q) {
			continue
		}
		out = append(out, c)
	}

	// mismo orden que el query de postgres
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if len(out) > limit {
		out = out[:limit]
	}

	return out, nil
}

func (r *CustomersRepo) Update(ctx context.Context, c customers.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, exists := r.byID[c.ID]
	if !exists {
		return customers.ErrNotFound
	}
	c.CreatedAt = cur.CreatedAt
	r.byID[c.ID] = c
	return nil
}
