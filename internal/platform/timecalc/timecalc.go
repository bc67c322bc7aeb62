package timecalc

import (
	"errors"
	"os"
	"strings"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"

	// DisplayLayout es el formato de la práctica (dd-mm-åååå hh:mm, estilo danés).
	DisplayLayout = "02-01-2006 15:04"

	// DefaultZone es la zona de la práctica. Se hace explícita a propósito:
	// depender de la zona ambiente del proceso rompe si el servicio corre en otra región.
	DefaultZone = "Europe/Copenhagen"
)

var ErrInvalidInput = errors.New("invalid input")

// Interval es el par de instantes absolutos derivado de una reserva.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Calc convierte (fecha, hora local, duración) en instantes absolutos,
// siempre en la zona configurada de la práctica.
type Calc struct {
	loc *time.Location
}

func New(loc *time.Location) *Calc {
	if loc == nil {
		loc = time.UTC
	}
	return &Calc{loc: loc}
}

// NewFromEnv lee PRACTICE_TZ (default Europe/Copenhagen).
func NewFromEnv() (*Calc, error) {
	name := strings.TrimSpace(os.Getenv("PRACTICE_TZ"))
	if name == "" {
		name = DefaultZone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, err
	}
	return New(loc), nil
}

func (c *Calc) Location() *time.Location { return c.loc }

// ToInterval interpreta date ("2006-01-02") + clock ("15:04") en la zona de la
// práctica y devuelve start/end con end = start + durationMin minutos exactos,
// incluso cruzando día, mes o cambio de horario.
func (c *Calc) ToInterval(date, clock string, durationMin int) (Interval, error) {
	date = strings.TrimSpace(date)
	clock = strings.TrimSpace(clock)
	if date == "" || clock == "" || durationMin <= 0 {
		return Interval{}, ErrInvalidInput
	}

	start, err := time.ParseInLocation(DateLayout+" "+ClockLayout, date+" "+clock, c.loc)
	if err != nil {
		return Interval{}, ErrInvalidInput
	}

	return Interval{
		Start: start,
		End:   start.Add(time.Duration(durationMin) * time.Minute),
	}, nil
}

// DayRange devuelve [00:00 del día, 00:00 del día siguiente) en la zona de la
// práctica. AddDate respeta el wall clock, así que los días con cambio de
// horario no duran 24h exactas y el rango sigue siendo correcto.
func (c *Calc) DayRange(date string) (Interval, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return Interval{}, ErrInvalidInput
	}

	start, err := time.ParseInLocation(DateLayout, date, c.loc)
	if err != nil {
		return Interval{}, ErrInvalidInput
	}

	return Interval{
		Start: start,
		End:   start.AddDate(0, 0, 1),
	}, nil
}

// FormatLocal renderiza un instante para mostrar. Solo display:
// nunca se usa en comparaciones ni persistencia.
func (c *Calc) FormatLocal(t time.Time) string {
	return t.In(c.loc).Format(DisplayLayout)
}
