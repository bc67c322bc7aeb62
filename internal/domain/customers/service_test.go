package customers

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"
	"time"

	"delecti-backend/internal/ports/auth"
)

type testRepo struct {
	byID    map[string]Customer
	creates int
	updates int
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Customer{}}
}

func (r *testRepo) Create(ctx context.Context, c Customer) error {
	r.creates++
	r.byID[c.ID] = c
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Customer, error) {
	c, ok := r.byID[id]
	if !ok {
		return Customer{}, ErrNotFound
	}
	return c, nil
}

func (r *testRepo) List(ctx context.Context, nameQuery string, limit int) ([]Customer, error) {
	out := make([]Customer, 0)
	for _, c := range r.byID {
		if nameQuery != "" && !strings.Contains(strings.ToLower(c.Name), strings.ToLower(nameQuery)) {
			continue
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *testRepo) Update(ctx context.Context, c Customer) error {
	r.updates++
	cur, ok := r.byID[c.ID]
	if !ok {
		return ErrNotFound
	}
	c.CreatedAt = cur.CreatedAt
	r.byID[c.ID] = c
	return nil
}

type allowGate struct{}

func (allowGate) Ensure(ctx context.Context) (auth.Claims, error) {
	return auth.Claims{UserID: "owner-1"}, nil
}

type denyGate struct{}

func (denyGate) Ensure(ctx context.Context) (auth.Claims, error) {
	return auth.Claims{}, auth.ErrNoSession
}

func TestService_Create_TrimsAndStamps(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, allowGate{})

	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	c, err := svc.Create(context.Background(), Input{
		Name:  "  Anna Jensen ",
		Phone: "12 34 56 78",
		City:  "8000 Aarhus C",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if c.Name != "Anna Jensen" {
		t.Fatalf("expected trimmed name, got %q", c.Name)
	}
	if c.ID == "" || c.CreatedAt != now {
		t.Fatalf("expected id + created_at assigned, got %#v", c)
	}
}

func TestService_Create_RequiresName(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, allowGate{})

	if _, err := svc.Create(context.Background(), Input{Name: "   "}); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if repo.creates != 0 {
		t.Fatalf("expected no write on validation failure")
	}
}

func TestService_Update_MissingCustomerNotFound(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, allowGate{})

	if _, err := svc.Update(context.Background(), "no-such-customer", Input{Name: "Anna"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestService_GateBlocksEverything(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, denyGate{})

	if _, err := svc.Create(context.Background(), Input{Name: "Anna"}); !errors.Is(err, auth.ErrNoSession) {
		t.Fatalf("Create without session: got %v", err)
	}
	if _, err := svc.List(context.Background(), ""); !errors.Is(err, auth.ErrNoSession) {
		t.Fatalf("List without session: got %v", err)
	}
	if _, err := svc.GetByID(context.Background(), "x"); !errors.Is(err, auth.ErrNoSession) {
		t.Fatalf("GetByID without session: got %v", err)
	}
	if _, err := svc.Update(context.Background(), "x", Input{Name: "Anna"}); !errors.Is(err, auth.ErrNoSession) {
		t.Fatalf("Update without session: got %v", err)
	}
	if repo.creates != 0 || repo.updates != 0 {
		t.Fatalf("expected storage untouched without session")
	}
}

func TestService_List_FiltersByPartialName(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, allowGate{})

	base := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	for i, name := range []string{"Anna Jensen", "Bo Hansen", "Hanne Olsen"} {
		ts := base.Add(time.Duration(i) * time.Minute)
		svc.now = func() time.Time { return ts }
		if _, err := svc.Create(context.Background(), Input{Name: name}); err != nil {
			t.Fatalf("Create %s: %v", name, err)
		}
	}

	items, err := svc.List(context.Background(), "han")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 matches for 'han', got %d", len(items))
	}
	// más reciente primero
	if items[0].Name != "Hanne Olsen" || items[1].Name != "Bo Hansen" {
		t.Fatalf("expected newest-first ordering, got %s, %s", items[0].Name, items[1].Name)
	}
}

func TestService_Update_OverwritesAllFields(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, allowGate{})

	c, err := svc.Create(context.Background(), Input{
		Name: "Anna", Phone: "111", Email: "a@b.dk", City: "Aarhus", Notes: "x",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// el form reenvía el registro completo: campos omitidos quedan vacíos
	updated, err := svc.Update(context.Background(), c.ID, Input{Name: "Anna Jensen"})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Name != "Anna Jensen" || updated.Phone != "" || updated.Notes != "" {
		t.Fatalf("expected full overwrite semantics, got %#v", updated)
	}
}
