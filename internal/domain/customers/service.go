package customers

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
	ErrNotFound     = errors.New("customer not found")
)

// ListLimit es el tope del listado/búsqueda de clientes.
const ListLimit = 50

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

type Input struct {
	Name    string
	Phone   string
	Email   string
	Address string
	City    string
	Notes   string
}

func (s *Service) Create(ctx context.Context, in Input) (Customer, error) {
	if _, err := s.gate.Ensure(ctx); err != nil {
		return Customer{}, err
	}
	if strings.TrimSpace(in.Name) == "" {
		return Customer{}, ErrInvalidInput
	}

	c := Customer{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(in.Name),
		Phone:     strings.TrimSpace(in.Phone),
		Email:     strings.TrimSpace(in.Email),
		Address:   strings.TrimSpace(in.Address),
		City:      strings.TrimSpace(in.City),
		Notes:     strings.TrimSpace(in.Notes),
		CreatedAt: s.now(),
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return Customer{}, err
	}
	return c, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Customer, error) {
	if _, err := s.gate.Ensure(ctx); err != nil {
		return Customer{}, err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return Customer{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

// List busca por nombre parcial; query vacío lista los últimos creados.
func (s *Service) List(ctx context.Context, nameQuery string) ([]Customer, error) {
	if _, err := s.gate.Ensure(ctx); err != nil {
		return nil, err
	}
	return s.repo.List(ctx, strings.TrimSpace(nameQuery), ListLimit)
}

// Update reescribe todos los campos editables (el formulario manda el
// registro completo, no un patch).
func (s *Service) Update(ctx context.Context, id string, in Input) (Customer, error) {
	if _, err := s.gate.Ensure(ctx); err != nil {
		return Customer{}, err
	}
	id = strings.TrimSpace(id)
	if id == "" || strings.TrimSpace(in.Name) == "" {
		return Customer{}, ErrInvalidInput
	}

	c := Customer{
		ID:      id,
		Name:    strings.TrimSpace(in.Name),
		Phone:   strings.TrimSpace(in.Phone),
		Email:   strings.TrimSpace(in.Email),
		Address: strings.TrimSpace(in.Address),
		City:    strings.TrimSpace(in.City),
		Notes:   strings.TrimSpace(in.Notes),
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return Customer{}, err
	}
	return s.repo.GetByID(ctx, id)
}
