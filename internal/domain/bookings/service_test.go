package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"delecti-backend/internal/platform/timecalc"
	"delecti-backend/internal/ports/auth"
)

type testRepo struct {
	items   []Booking
	creates int
}

func (r *testRepo) Create(ctx context.Context, b Booking) error {
	r.creates++
	r.items = append(r.items, b)
	return nil
}

func (r *testRepo) List(ctx context.Context, limit int) ([]ListItem, error) {
	out := make([]ListItem, 0, len(r.items))
	for _, b := range r.items {
		out = append(out, ListItem{Booking: b})
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *testRepo) ListRange(ctx context.Context, from, to time.Time) ([]ListItem, error) {
	out := make([]ListItem, 0)
	for _, b := range r.items {
		if !b.Start.Before(from) && b.Start.Before(to) {
			out = append(out, ListItem{Booking: b})
		}
	}
	return out, nil
}

type testOwnership map[string]string

func (o testOwnership) OwnerOf(ctx context.Context, dogID string) (string, error) {
	owner, ok := o[dogID]
	if !ok {
		return "", errors.New("dog not found")
	}
	return owner, nil
}

type allowGate struct{}

func (allowGate) Ensure(ctx context.Context) (auth.Claims, error) {
	return auth.Claims{UserID: "owner-1"}, nil
}

type denyGate struct{}

func (denyGate) Ensure(ctx context.Context) (auth.Claims, error) {
	return auth.Claims{}, auth.ErrNoSession
}

func mustZone(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	if err != nil {
		t.Fatalf("LoadLocation(%s): %v", name, err)
	}
	return loc
}

func TestService_Create_DerivesInterval(t *testing.T) {
	repo := &testRepo{}
	calc := timecalc.New(mustZone(t, "Europe/Copenhagen"))
	svc := NewService(repo, allowGate{}, calc, testOwnership{"dog-1": "cust-1"})

	b, err := svc.Create(context.Background(), CreateInput{
		CustomerID:  "cust-1",
		DogID:       "dog-1",
		Date:        "2024-06-01",
		Clock:       "09:00",
		DurationMin: 60,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	// 09:00 CEST es 07:00 UTC
	if !b.Start.Equal(time.Date(2024, 6, 1, 7, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected start instant: %v", b.Start)
	}
	if got := b.End.Sub(b.Start); got != time.Hour {
		t.Fatalf("expected 1h duration, got %v", got)
	}
}

func TestService_Create_ValidatesBeforeWriting(t *testing.T) {
	repo := &testRepo{}
	calc := timecalc.New(nil)
	svc := NewService(repo, allowGate{}, calc, testOwnership{"dog-1": "cust-1"})

	cases := []struct {
		name string
		in   CreateInput
		want error
	}{
		{"missing customer", CreateInput{DogID: "dog-1", Date: "2024-06-01", Clock: "09:00", DurationMin: 30}, ErrInvalidInput},
		{"missing dog", CreateInput{CustomerID: "cust-1", Date: "2024-06-01", Clock: "09:00", DurationMin: 30}, ErrInvalidInput},
		{"bad date", CreateInput{CustomerID: "cust-1", DogID: "dog-1", Date: "junio 1", Clock: "09:00", DurationMin: 30}, timecalc.ErrInvalidInput},
		{"bad clock", CreateInput{CustomerID: "cust-1", DogID: "dog-1", Date: "2024-06-01", Clock: "9am", DurationMin: 30}, timecalc.ErrInvalidInput},
		{"zero duration", CreateInput{CustomerID: "cust-1", DogID: "dog-1", Date: "2024-06-01", Clock: "09:00"}, timecalc.ErrInvalidInput},
	}
	for _, tc := range cases {
		if _, err := svc.Create(context.Background(), tc.in); !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
	if repo.creates != 0 {
		t.Fatalf("expected no writes on validation failures, got %d", repo.creates)
	}
}

func TestService_Create_RejectsForeignDog(t *testing.T) {
	repo := &testRepo{}
	calc := timecalc.New(nil)
	svc := NewService(repo, allowGate{}, calc, testOwnership{"dog-1": "cust-other"})

	_, err := svc.Create(context.Background(), CreateInput{
		CustomerID:  "cust-1",
		DogID:       "dog-1",
		Date:        "2024-06-01",
		Clock:       "09:00",
		DurationMin: 30,
	})
	if !errors.Is(err, ErrDogNotOwned) {
		t.Fatalf("expected ErrDogNotOwned, got %v", err)
	}
	if repo.creates != 0 {
		t.Fatalf("expected no write for foreign dog")
	}
}

func TestService_GateBlocksEverything(t *testing.T) {
	repo := &testRepo{}
	calc := timecalc.New(nil)
	svc := NewService(repo, denyGate{}, calc, testOwnership{})

	if _, err := svc.Create(context.Background(), CreateInput{}); !errors.Is(err, auth.ErrNoSession) {
		t.Fatalf("Create without session: got %v", err)
	}
	if _, err := svc.ListUpcoming(context.Background()); !errors.Is(err, auth.ErrNoSession) {
		t.Fatalf("ListUpcoming without session: got %v", err)
	}
	if _, err := svc.ListDay(context.Background(), "2024-06-01"); !errors.Is(err, auth.ErrNoSession) {
		t.Fatalf("ListDay without session: got %v", err)
	}
	if repo.creates != 0 {
		t.Fatalf("expected storage untouched without session")
	}
}

func TestService_ListDay_UsesLocalMidnights(t *testing.T) {
	repo := &testRepo{}
	calc := timecalc.New(mustZone(t, "Europe/Copenhagen"))
	svc := NewService(repo, allowGate{}, calc, testOwnership{"dog-1": "cust-1"})

	// 00:30 local del 1 de junio: 22:30 UTC del 31 de mayo
	early, err := svc.Create(context.Background(), CreateInput{
		CustomerID: "cust-1", DogID: "dog-1",
		Date: "2024-06-01", Clock: "00:30", DurationMin: 30,
	})
	if err != nil {
		t.Fatalf("Create early: %v", err)
	}
	if _, err := svc.Create(context.Background(), CreateInput{
		CustomerID: "cust-1", DogID: "dog-1",
		Date: "2024-06-02", Clock: "09:00", DurationMin: 30,
	}); err != nil {
		t.Fatalf("Create next day: %v", err)
	}

	items, err := svc.ListDay(context.Background(), "2024-06-01")
	if err != nil {
		t.Fatalf("ListDay: %v", err)
	}
	if len(items) != 1 || items[0].ID != early.ID {
		t.Fatalf("expected only the 00:30 local booking, got %d items", len(items))
	}
}

func TestService_FormatSlot(t *testing.T) {
	calc := timecalc.New(mustZone(t, "Europe/Copenhagen"))
	svc := NewService(&testRepo{}, allowGate{}, calc, testOwnership{})

	b := Booking{
		Start: time.Date(2024, 6, 1, 7, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC),
	}
	if got := svc.FormatSlot(b); got != "01-06-2024 09:00 - 10:00" {
		t.Fatalf("unexpected slot rendering: %q", got)
	}
}
