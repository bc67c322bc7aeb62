package journals

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	memblob "delecti-backend/internal/adapters/blob/memory"
	"delecti-backend/internal/ports/auth"
)

type testMediaRepo struct {
	rows    []Media
	failing bool
}

func (r *testMediaRepo) Create(ctx context.Context, m Media) error {
	if r.failing {
		return errors.New("media insert failed")
	}
	r.rows = append(r.rows, m)
	return nil
}

func (r *testMediaRepo) ListByJournal(ctx context.Context, journalID string) ([]Media, error) {
	out := make([]Media, 0)
	for _, m := range r.rows {
		if m.JournalID == journalID {
			out = append(out, m)
		}
	}
	return out, nil
}

func seedJournal(t *testing.T, repo *testRepo) Journal {
	t.Helper()
	svc := NewService(repo, allowGate{})
	j, err := svc.Create(context.Background(), "dog-1", Input{Treatment: "tandrens"})
	if err != nil {
		t.Fatalf("seed journal: %v", err)
	}
	return j
}

func TestMediaVault_Attach_RequiresSelectedJournal(t *testing.T) {
	journals := newTestRepo()
	media := &testMediaRepo{}
	store := memblob.NewStore()
	vault := NewMediaVault(journals, media, store, allowGate{}, "")

	_, err := vault.Attach(context.Background(), "  ", "foto.jpg", "image/jpeg", []byte("x"))
	if !errors.Is(err, ErrNoJournalSelected) {
		t.Fatalf("expected ErrNoJournalSelected for empty id, got %v", err)
	}

	_, err = vault.Attach(context.Background(), "no-such-journal", "foto.jpg", "image/jpeg", []byte("x"))
	if !errors.Is(err, ErrNoJournalSelected) {
		t.Fatalf("expected ErrNoJournalSelected for missing journal, got %v", err)
	}

	// la precondición corta antes de tocar bucket o metadata
	if store.Len() != 0 || len(media.rows) != 0 {
		t.Fatalf("expected no side effects, got %d objects, %d rows", store.Len(), len(media.rows))
	}
}

var errStorageDown = errors.New("connection refused")

// brokenJournalsRepo simula un storage caído en el lookup del journal.
type brokenJournalsRepo struct {
	*testRepo
}

func (r brokenJournalsRepo) GetByID(ctx context.Context, id string) (Journal, error) {
	return Journal{}, errStorageDown
}

func TestMediaVault_Attach_StorageErrorSurfacesVerbatim(t *testing.T) {
	journals := brokenJournalsRepo{newTestRepo()}
	media := &testMediaRepo{}
	store := memblob.NewStore()
	vault := NewMediaVault(journals, media, store, allowGate{}, "")

	_, err := vault.Attach(context.Background(), "journal-1", "foto.jpg", "image/jpeg", []byte("x"))
	if !errors.Is(err, errStorageDown) {
		t.Fatalf("expected storage error to surface, got %v", err)
	}
	if errors.Is(err, ErrNoJournalSelected) {
		t.Fatalf("storage failure must not look like a precondition")
	}
	if store.Len() != 0 || len(media.rows) != 0 {
		t.Fatalf("expected no side effects on lookup failure")
	}
}

func TestMediaVault_Attach_PathEmbedsJournalAndCleansName(t *testing.T) {
	journals := newTestRepo()
	media := &testMediaRepo{}
	store := memblob.NewStore()
	vault := NewMediaVault(journals, media, store, allowGate{}, "")

	j := seedJournal(t, journals)

	m, err := vault.Attach(context.Background(), j.ID, "min hund efter.jpg", "image/jpeg", []byte("jpegdata"))
	if err != nil {
		t.Fatalf("Attach: %v", err)
	}
	if !strings.HasPrefix(m.Path, j.ID+"/") {
		t.Fatalf("expected path under journal id, got %q", m.Path)
	}
	if !strings.HasSuffix(m.Path, "-min_hund_efter.jpg") {
		t.Fatalf("expected spaces replaced in filename, got %q", m.Path)
	}
	if !store.Exists(DefaultBucket, m.Path) {
		t.Fatalf("expected object stored at %q", m.Path)
	}
}

func TestMediaVault_Attach_SameFilenameNeverCollides(t *testing.T) {
	journals := newTestRepo()
	media := &testMediaRepo{}
	store := memblob.NewStore()
	vault := NewMediaVault(journals, media, store, allowGate{}, "")

	j := seedJournal(t, journals)

	a, err := vault.Attach(context.Background(), j.ID, "foto.jpg", "image/jpeg", []byte("first"))
	if err != nil {
		t.Fatalf("first Attach: %v", err)
	}
	b, err := vault.Attach(context.Background(), j.ID, "foto.jpg", "image/jpeg", []byte("second"))
	if err != nil {
		t.Fatalf("second Attach: %v", err)
	}
	if a.Path == b.Path {
		t.Fatalf("expected distinct paths for same filename, got %q", a.Path)
	}
	if store.Len() != 2 || len(media.rows) != 2 {
		t.Fatalf("expected two objects and two rows, got %d/%d", store.Len(), len(media.rows))
	}
}

func TestMediaVault_Attach_OrphanObjectOnRowFailure(t *testing.T) {
	journals := newTestRepo()
	media := &testMediaRepo{failing: true}
	store := memblob.NewStore()
	vault := NewMediaVault(journals, media, store, allowGate{}, "")

	j := seedJournal(t, journals)

	_, err := vault.Attach(context.Background(), j.ID, "foto.jpg", "image/jpeg", []byte("data"))
	if err == nil {
		t.Fatalf("expected row insert failure to surface")
	}
	// el objeto ya subido queda huérfano; nunca hay fila sin objeto
	if store.Len() != 1 {
		t.Fatalf("expected orphan object in bucket, got %d", store.Len())
	}
	if len(media.rows) != 0 {
		t.Fatalf("expected no metadata row, got %d", len(media.rows))
	}
}

func TestMediaVault_ListMedia_Ordering(t *testing.T) {
	journals := newTestRepo()
	media := &testMediaRepo{}
	store := memblob.NewStore()
	vault := NewMediaVault(journals, media, store, allowGate{}, "")

	j := seedJournal(t, journals)

	base := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	for i, name := range []string{"a.jpg", "b.jpg", "c.jpg"} {
		ts := base.Add(time.Duration(i) * time.Minute)
		vault.now = func() time.Time { return ts }
		if _, err := vault.Attach(context.Background(), j.ID, name, "image/jpeg", []byte(name)); err != nil {
			t.Fatalf("Attach %s: %v", name, err)
		}
	}

	asc, err := vault.ListMedia(context.Background(), j.ID, true)
	if err != nil {
		t.Fatalf("ListMedia asc: %v", err)
	}
	if len(asc) != 3 || !strings.HasSuffix(asc[0].Path, "-a.jpg") {
		t.Fatalf("expected upload order first, got %v", asc)
	}

	desc, err := vault.ListMedia(context.Background(), j.ID, false)
	if err != nil {
		t.Fatalf("ListMedia desc: %v", err)
	}
	if !strings.HasSuffix(desc[0].Path, "-c.jpg") {
		t.Fatalf("expected newest first, got %v", desc)
	}
}

func TestMediaVault_Attach_CustomBucket(t *testing.T) {
	journals := newTestRepo()
	media := &testMediaRepo{}
	store := memblob.NewStore()
	vault := NewMediaVault(journals, media, store, allowGate{}, "clinic-media")

	j := seedJournal(t, journals)

	m, err := vault.Attach(context.Background(), j.ID, "foto.jpg", "image/jpeg", []byte("data"))
	if err != nil {
		t.Fatalf("Attach: %v", err)
	}
	if !store.Exists("clinic-media", m.Path) {
		t.Fatalf("expected object in configured bucket")
	}
	if store.Exists(DefaultBucket, m.Path) {
		t.Fatalf("default bucket must stay untouched")
	}
}

func TestMediaVault_Sign_DefaultTTL(t *testing.T) {
	journals := newTestRepo()
	media := &testMediaRepo{}
	store := memblob.NewStore()
	vault := NewMediaVault(journals, media, store, allowGate{}, "")

	j := seedJournal(t, journals)
	m, err := vault.Attach(context.Background(), j.ID, "foto.jpg", "image/jpeg", []byte("data"))
	if err != nil {
		t.Fatalf("Attach: %v", err)
	}

	url, err := vault.Sign(context.Background(), m.Path, 0)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	content, mime, err := store.Fetch(url)
	if err != nil {
		t.Fatalf("Fetch signed url: %v", err)
	}
	if string(content) != "data" || mime != "image/jpeg" {
		t.Fatalf("unexpected content %q mime %q", content, mime)
	}
}

func TestMediaVault_GateBlocksEverything(t *testing.T) {
	journals := newTestRepo()
	media := &testMediaRepo{}
	store := memblob.NewStore()
	vault := NewMediaVault(journals, media, store, denyGate{}, "")

	if _, err := vault.Attach(context.Background(), "j", "f.jpg", "image/jpeg", []byte("x")); !errors.Is(err, auth.ErrNoSession) {
		t.Fatalf("Attach without session: got %v", err)
	}
	if _, err := vault.Sign(context.Background(), "p", 0); !errors.Is(err, auth.ErrNoSession) {
		t.Fatalf("Sign without session: got %v", err)
	}
	if _, err := vault.ListMedia(context.Background(), "j", true); !errors.Is(err, auth.ErrNoSession) {
		t.Fatalf("ListMedia without session: got %v", err)
	}
	if store.Len() != 0 {
		t.Fatalf("expected bucket untouched without session")
	}
}
