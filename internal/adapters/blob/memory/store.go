package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store es un blob store en memoria para dev y tests.
// Las URLs firmadas expiran de verdad: un fetch después del TTL falla.
type Store struct {
	mu      sync.RWMutex
	objects map[string]object
	signed  map[string]signedGrant

	now func() time.Time
}

type object struct {
	content     []byte
	contentType string
}

type signedGrant struct {
	key       string
	expiresAt time.Time
}

func NewStore() *Store {
	return &Store{
		objects: make(map[string]object),
		signed:  make(map[string]signedGrant),
		now:     time.Now,
	}
}

func (s *Store) Upload(ctx context.Context, bucket, path string, content []byte, contentType string, upsert bool) error {
	if strings.TrimSpace(bucket) == "" || strings.TrimSpace(path) == "" {
		return fmt.Errorf("memblob: bucket and path required")
	}

	key := objectKey(bucket, path)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.objects[key]; exists && !upsert {
		return fmt.Errorf("memblob: object already exists: %s", key)
	}

	cp := make([]byte, len(content))
	copy(cp, content)
	s.objects[key] = object{content: cp, contentType: contentType}
	return nil
}

func (s *Store) CreateSignedURL(ctx context.Context, bucket, path string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = time.Hour
	}

	key := objectKey(bucket, path)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.objects[key]; !exists {
		return "", fmt.Errorf("memblob: object not found: %s", key)
	}

	token := uuid.NewString()
	s.signed[token] = signedGrant{key: key, expiresAt: s.now().Add(ttl)}

	return fmt.Sprintf("memblob://%s?token=%s", key, token), nil
}

// Fetch resuelve una URL firmada. Es la contraparte del GET que haría un
// navegador contra el proveedor real.
func (s *Store) Fetch(signedURL string) ([]byte, string, error) {
	_, token, found := strings.Cut(signedURL, "?token=")
	if !found || token == "" {
		return nil, "", fmt.Errorf("memblob: not a signed url: %s", signedURL)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	grant, ok := s.signed[token]
	if !ok {
		return nil, "", fmt.Errorf("memblob: unknown token")
	}
	if s.now().After(grant.expiresAt) {
		return nil, "", fmt.Errorf("memblob: signed url expired")
	}

	obj, ok := s.objects[grant.key]
	if !ok {
		return nil, "", fmt.Errorf("memblob: object not found: %s", grant.key)
	}
	return obj.content, obj.contentType, nil
}

// Exists reporta si hay un blob en la ruta (lo usan los tests de orfandad).
func (s *Store) Exists(bucket, path string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.objects[objectKey(bucket, path)]
	return ok
}

// Len devuelve la cantidad de blobs guardados.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objects)
}

func objectKey(bucket, path string) string {
	return bucket + "/" + path
}
