package supastore

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"delecti-backend/internal/platform/httpclient"
)

var (
	ErrNotConfigured = errors.New("supastore client not configured")
	ErrUpstream      = errors.New("supastore upstream error")
)

// Config del storage HTTP estilo Supabase Storage.
type Config struct {
	BaseURL    string // p.ej. https://<proyecto>.supabase.co/storage/v1
	ServiceKey string
	Timeout    time.Duration
}

// Store implementa blob.Store contra la API de objetos:
// POST /object/{bucket}/{path} sube; POST /object/sign/{bucket}/{path} firma.
type Store struct {
	http       *httpclient.Client
	serviceKey string
}

func New(cfg Config) (*Store, error) {
	hc, err := httpclient.NewWithBaseURL(strings.TrimSpace(cfg.BaseURL), cfg.Timeout)
	if err != nil {
		return nil, err
	}
	return &Store{
		http:       hc,
		serviceKey: strings.TrimSpace(cfg.ServiceKey),
	}, nil
}

func (s *Store) IsConfigured() bool {
	return s != nil && s.http != nil && s.http.BaseURL != "" && s.serviceKey != ""
}

func (s *Store) Upload(ctx context.Context, bucket, path string, content []byte, contentType string, upsert bool) error {
	if !s.IsConfigured() {
		return ErrNotConfigured
	}
	if strings.TrimSpace(bucket) == "" || strings.TrimSpace(path) == "" {
		return fmt.Errorf("%w: bucket and path required", ErrUpstream)
	}

	headers := map[string]string{
		"Authorization": "Bearer " + s.serviceKey,
		"x-upsert":      fmt.Sprintf("%t", upsert),
	}

	err := s.http.DoRaw(ctx, http.MethodPost, objectPath(bucket, path), headers, content, contentType, nil)
	if err != nil {
		// El mensaje del proveedor se surface tal cual; sin retry.
		return fmt.Errorf("supastore upload %s/%s: %w", bucket, path, err)
	}
	return nil
}

func (s *Store) CreateSignedURL(ctx context.Context, bucket, path string, ttl time.Duration) (string, error) {
	if !s.IsConfigured() {
		return "", ErrNotConfigured
	}

	secs := int(ttl / time.Second)
	if secs <= 0 {
		secs = 3600
	}

	var out struct {
		SignedURL string `json:"signedURL"`
	}
	headers := map[string]string{"Authorization": "Bearer " + s.serviceKey}

	err := s.http.DoJSON(ctx, http.MethodPost, "/object/sign"+objectSuffix(bucket, path), headers,
		map[string]int{"expiresIn": secs}, &out)
	if err != nil {
		return "", fmt.Errorf("supastore sign %s/%s: %w", bucket, path, err)
	}
	if strings.TrimSpace(out.SignedURL) == "" {
		return "", fmt.Errorf("%w: empty signed url", ErrUpstream)
	}

	// La API devuelve un path relativo al storage root.
	return s.http.BaseURL + "/" + strings.TrimPrefix(out.SignedURL, "/"), nil
}

func objectPath(bucket, path string) string {
	return "/object" + objectSuffix(bucket, path)
}

func objectSuffix(bucket, path string) string {
	segs := []string{url.PathEscape(bucket)}
	for _, p := range strings.Split(path, "/") {
		segs = append(segs, url.PathEscape(p))
	}
	return "/" + strings.Join(segs, "/")
}
