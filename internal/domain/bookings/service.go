package bookings

import (
	"context"
	"errors"
	"strings"
	"time"

	"delecti-backend/internal/platform/timecalc"
	"delecti-backend/internal/ports/auth"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrDogNotOwned  = errors.New("dog does not belong to the customer")
)

// ListLimit acota la agenda de próximas citas.
const ListLimit = 100

// DogOwnership resuelve el dueño de un perro sin importar el módulo dogs.
type DogOwnership interface {
	OwnerOf(ctx context.Context, dogID string) (string, error)
}

type Service struct {
	repo Repository
	gate auth.Gate
	calc *timecalc.Calc
	dogs DogOwnership
	now  func() time.Time
}

func NewService(repo Repository, gate auth.Gate, calc *timecalc.Calc, dogs DogOwnership) *Service {
	return &Service{
		repo: repo,
		gate: gate,
		calc: calc,
		dogs: dogs,
		now:  time.Now,
	}
}

type CreateInput struct {
	CustomerID  string
	DogID       string
	Date        string // "2006-01-02"
	Clock       string // "15:04"
	DurationMin int
	Notes       string
}

// Create valida las referencias y deriva el intervalo antes de tocar
// el storage: si algo falla no queda ninguna cita parcial.
func (s *Service) Create(ctx context.Context, in CreateInput) (Booking, error) {
	if _, err := s.gate.Ensure(ctx); err != nil {
		return Booking{}, err
	}

	customerID := strings.TrimSpace(in.CustomerID)
	dogID := strings.TrimSpace(in.DogID)
	if customerID == "" || dogID == "" {
		return Booking{}, ErrInvalidInput
	}

	iv, err := s.calc.ToInterval(in.Date, in.Clock, in.DurationMin)
	if err != nil {
		return Booking{}, err
	}

	// TODO: validar solape contra ListRange si la práctica suma un segundo operador
	owner, err := s.dogs.OwnerOf(ctx, dogID)
	if err != nil {
		return Booking{}, err
	}
	if owner != customerID {
		return Booking{}, ErrDogNotOwned
	}

	b := Booking{
		ID:         uuid.NewString(),
		CustomerID: customerID,
		DogID:      dogID,
		Start:      iv.Start,
		End:        iv.End,
		Notes:      strings.TrimSpace(in.Notes),
		CreatedAt:  s.now(),
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return Booking{}, err
	}
	return b, nil
}

// ListUpcoming devuelve la agenda general, más próxima primero.
func (s *Service) ListUpcoming(ctx context.Context) ([]ListItem, error) {
	if _, err := s.gate.Ensure(ctx); err != nil {
		return nil, err
	}
	return s.repo.List(ctx, ListLimit)
}

// ListToday es la agenda del día en curso según el reloj de la práctica.
func (s *Service) ListToday(ctx context.Context) ([]ListItem, error) {
	today := s.now().In(s.calc.Location()).Format(timecalc.DateLayout)
	return s.ListDay(ctx, today)
}

// ListDay devuelve las citas de un día calendario de la práctica,
// medianoche local inclusive hasta la medianoche siguiente exclusive.
func (s *Service) ListDay(ctx context.Context, date string) ([]ListItem, error) {
	if _, err := s.gate.Ensure(ctx); err != nil {
		return nil, err
	}
	iv, err := s.calc.DayRange(date)
	if err != nil {
		return nil, err
	}
	return s.repo.ListRange(ctx, iv.Start, iv.End)
}

// FormatSlot renderiza un intervalo en hora local para la agenda.
func (s *Service) FormatSlot(b Booking) string {
	return s.calc.FormatLocal(b.Start) + " - " + b.End.In(s.calc.Location()).Format(timecalc.ClockLayout)
}
