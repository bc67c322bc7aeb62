package blob

import (
	"context"
	"time"
)

// Store es el proveedor de blobs (bilag de journals).
// upsert=false siempre en este core: una ruta nunca se reescribe.
type Store interface {
	Upload(ctx context.Context, bucket, path string, content []byte, contentType string, upsert bool) error

	// CreateSignedURL emite una URL firmada de lectura con vencimiento.
	// Debe pedirse fresca en cada render; las URLs expiran.
	CreateSignedURL(ctx context.Context, bucket, path string, ttl time.Duration) (string, error)
}
