package dogs

import (
	"context"
	"errors"
	"strings"
	"time"

	"delecti-backend/internal/ports/auth"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("dog not found")
)

type Service struct {
	repo Repository
	gate auth.Gate
	now  func() time.Time
}

func NewService(repo Repository, gate auth.Gate) *Service {
	return &Service{
		repo: repo,
		gate: gate,
		now:  time.Now,
	}
}

type CreateInput struct {
	Name   string
	Breed  string
	Age    string
	Weight string
	Notes  string
}

// Create registra un perro bajo un cliente existente. La existencia del
// cliente la valida el caller (handler) y la integridad referencial el
// storage; acá solo se exige la referencia.
func (s *Service) Create(ctx context.Context, customerID string, in CreateInput) (Dog, error) {
	if _, err := s.gate.Ensure(ctx); err != nil {
		return Dog{}, err
	}
	customerID = strings.TrimSpace(customerID)
	if customerID == "" || strings.TrimSpace(in.Name) == "" {
		return Dog{}, ErrInvalidInput
	}

	d := Dog{
		ID:         uuid.NewString(),
		CustomerID: customerID,
		Name:       strings.TrimSpace(in.Name),
		Breed:      strings.TrimSpace(in.Breed),
		Age:        strings.TrimSpace(in.Age),
		Weight:     strings.TrimSpace(in.Weight),
		Notes:      strings.TrimSpace(in.Notes),
		CreatedAt:  s.now(),
	}

	if err := s.repo.Create(ctx, d); err != nil {
		return Dog{}, err
	}
	return d, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Dog, error) {
	if _, err := s.gate.Ensure(ctx); err != nil {
		return Dog{}, err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return Dog{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByCustomer(ctx context.Context, customerID string) ([]Dog, error) {
	if _, err := s.gate.Ensure(ctx); err != nil {
		return nil, err
	}
	return s.repo.ListByCustomer(ctx, strings.TrimSpace(customerID))
}

// OwnerOf expone el customer dueño de un perro.
// Evita ciclos de imports entre módulos (dogs <-> bookings).
func (s *Service) OwnerOf(ctx context.Context, dogID string) (string, error) {
	d, err := s.GetByID(ctx, dogID)
	if err != nil {
		return "", err
	}
	return d.CustomerID, nil
}
