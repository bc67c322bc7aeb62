package journals

import (
	"context"
	"errors"
	"strings"
	"time"

	"delecti-backend/internal/ports/auth"
	"delecti-backend/internal/ports/blob"

	"github.com/google/uuid"
)

// DefaultBucket es el bucket donde viven todos los adjuntos.
const DefaultBucket = "journal-media"

// SignedURLTTL es la vigencia por defecto de un enlace firmado.
const SignedURLTTL = time.Hour

// MediaVault sube adjuntos al bucket y registra su fila de metadata.
// Las dos escrituras no son atómicas: si la fila falla después de la
// subida queda un objeto huérfano en el bucket, nunca una fila sin
// objeto.
type MediaVault struct {
	journals Repository
	media    MediaRepository
	blob     blob.Store
	gate     auth.Gate
	bucket   string
	now      func() time.Time
}

// NewMediaVault arma el vault sobre un bucket concreto; con bucket
// vacío se usa DefaultBucket.
func NewMediaVault(journals Repository, media MediaRepository, store blob.Store, gate auth.Gate, bucket string) *MediaVault {
	if strings.TrimSpace(bucket) == "" {
		bucket = DefaultBucket
	}
	return &MediaVault{
		journals: journals,
		media:    media,
		blob:     store,
		gate:     gate,
		bucket:   bucket,
		now:      time.Now,
	}
}

// Attach sube el contenido y registra la fila. El path lleva un uuid
// por subida, así dos archivos con el mismo nombre nunca chocan; los
// espacios del nombre original se reemplazan para mantener la llave
// manejable.
func (v *MediaVault) Attach(ctx context.Context, journalID, filename, mime string, content []byte) (Media, error) {
	if _, err := v.gate.Ensure(ctx); err != nil {
		return Media{}, err
	}

	journalID = strings.TrimSpace(journalID)
	if journalID == "" {
		return Media{}, ErrNoJournalSelected
	}
	if strings.TrimSpace(filename) == "" || len(content) == 0 {
		return Media{}, ErrInvalidInput
	}

	// El journal destino tiene que existir antes de tocar el bucket.
	// Un fallo real del storage se devuelve tal cual, no como precondición.
	if _, err := v.journals.GetByID(ctx, journalID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return Media{}, ErrNoJournalSelected
		}
		return Media{}, err
	}

	safe := strings.ReplaceAll(strings.TrimSpace(filename), " ", "_")
	path := journalID + "/" + uuid.NewString() + "-" + safe

	if err := v.blob.Upload(ctx, v.bucket, path, content, mime, false); err != nil {
		return Media{}, err
	}

	m := Media{
		ID:        uuid.NewString(),
		JournalID: journalID,
		Path:      path,
		MIME:      mime,
		CreatedAt: v.now(),
	}
	if err := v.media.Create(ctx, m); err != nil {
		return Media{}, err
	}
	return m, nil
}

// Sign emite un enlace de lectura temporal para un path ya registrado.
func (v *MediaVault) Sign(ctx context.Context, path string, ttl time.Duration) (string, error) {
	if _, err := v.gate.Ensure(ctx); err != nil {
		return "", err
	}
	if strings.TrimSpace(path) == "" {
		return "", ErrInvalidInput
	}
	if ttl <= 0 {
		ttl = SignedURLTTL
	}
	return v.blob.CreateSignedURL(ctx, v.bucket, path, ttl)
}

// ListMedia devuelve los adjuntos de un journal. asc=true da orden de
// subida (vista de impresión); asc=false, lo más nuevo primero (vista
// de edición).
func (v *MediaVault) ListMedia(ctx context.Context, journalID string, asc bool) ([]Media, error) {
	if _, err := v.gate.Ensure(ctx); err != nil {
		return nil, err
	}
	journalID = strings.TrimSpace(journalID)
	if journalID == "" {
		return nil, ErrNoJournalSelected
	}

	items, err := v.media.ListByJournal(ctx, journalID)
	if err != nil {
		return nil, err
	}
	if !asc {
		for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
			items[i], items[j] = items[j], items[i]
		}
	}
	return items, nil
}
