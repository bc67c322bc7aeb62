package journals

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
	ErrNotFound     = errors.New("journal not found")

	// ErrNoJournalSelected se devuelve cuando una operación de media
	// corre sin un journal destino válido.
	ErrNoJournalSelected = errors.New("no journal selected")
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

// Input lleva los cuatro campos editables; el form reenvía siempre
// el registro completo.
type Input struct {
	BeforeStatus string
	Treatment    string
	AfterStatus  string
	NextTime     string
}

// Create permite los cuatro campos vacíos: un journal recién creado
// es un borrador que se completa con Update.
func (s *Service) Create(ctx context.Context, dogID string, in Input) (Journal, error) {
	if _, err := s.gate.Ensure(ctx); err != nil {
		return Journal{}, err
	}
	dogID = strings.TrimSpace(dogID)
	if dogID == "" {
		return Journal{}, ErrInvalidInput
	}

	j := Journal{
		ID:           uuid.NewString(),
		DogID:        dogID,
		BeforeStatus: strings.TrimSpace(in.BeforeStatus),
		Treatment:    strings.TrimSpace(in.Treatment),
		AfterStatus:  strings.TrimSpace(in.AfterStatus),
		NextTime:     strings.TrimSpace(in.NextTime),
		CreatedAt:    s.now(),
	}

	if err := s.repo.Create(ctx, j); err != nil {
		return Journal{}, err
	}
	return j, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Journal, error) {
	if _, err := s.gate.Ensure(ctx); err != nil {
		return Journal{}, err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return Journal{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

// ListByDog devuelve el historial completo sin límite: es el
// expediente del perro y se consulta entero.
func (s *Service) ListByDog(ctx context.Context, dogID string) ([]Journal, error) {
	if _, err := s.gate.Ensure(ctx); err != nil {
		return nil, err
	}
	dogID = strings.TrimSpace(dogID)
	if dogID == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByDog(ctx, dogID)
}

// Update sobreescribe los cuatro campos de contenido; dog_id y
// created_at no cambian nunca.
func (s *Service) Update(ctx context.Context, id string, in Input) (Journal, error) {
	if _, err := s.gate.Ensure(ctx); err != nil {
		return Journal{}, err
	}

	cur, err := s.GetByID(ctx, id)
	if err != nil {
		return Journal{}, err
	}

	cur.BeforeStatus = strings.TrimSpace(in.BeforeStatus)
	cur.Treatment = strings.TrimSpace(in.Treatment)
	cur.AfterStatus = strings.TrimSpace(in.AfterStatus)
	cur.NextTime = strings.TrimSpace(in.NextTime)

	if err := s.repo.Update(ctx, cur); err != nil {
		return Journal{}, err
	}
	return cur, nil
}
