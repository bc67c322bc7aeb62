package gotrue

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"delecti-backend/internal/platform/httpclient"
	"delecti-backend/internal/ports/auth"
)

var (
	ErrNotConfigured = errors.New("gotrue client not configured")
	ErrUnauthorized  = errors.New("gotrue unauthorized")
	ErrUpstream      = errors.New("gotrue upstream error")
)

// Config del cliente GoTrue (el servicio de auth estilo Supabase).
// BaseURL y AnonKey vienen de env vars en quien lo instancie.
type Config struct {
	BaseURL string
	AnonKey string
	Timeout time.Duration
}

type Client struct {
	http    *httpclient.Client
	anonKey string
}

func NewClient(cfg Config) (*Client, error) {
	hc, err := httpclient.NewWithBaseURL(strings.TrimSpace(cfg.BaseURL), cfg.Timeout)
	if err != nil {
		return nil, err
	}
	return &Client{
		http:    hc,
		anonKey: strings.TrimSpace(cfg.AnonKey),
	}, nil
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.http != nil && c.http.BaseURL != "" && c.anonKey != ""
}

type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type sessionResponse struct {
	AccessToken string       `json:"access_token"`
	User        userResponse `json:"user"`
}

// GetUser valida un access token contra /user y devuelve los claims.
func (c *Client) GetUser(ctx context.Context, accessToken string) (auth.Claims, error) {
	if !c.IsConfigured() {
		return auth.Claims{}, ErrNotConfigured
	}
	accessToken = strings.TrimSpace(accessToken)
	if accessToken == "" {
		return auth.Claims{}, ErrUnauthorized
	}

	var out userResponse
	err := c.http.DoJSON(ctx, http.MethodGet, "/user", c.headers(accessToken), nil, &out)
	if err != nil {
		return auth.Claims{}, normalize(err)
	}

	out.ID = strings.TrimSpace(out.ID)
	if out.ID == "" {
		return auth.Claims{}, errors.New("gotrue response missing user id")
	}

	return auth.Claims{UserID: out.ID, Email: strings.TrimSpace(out.Email)}, nil
}

// SignIn hace password grant contra /token.
func (c *Client) SignIn(ctx context.Context, email, password string) (auth.Session, error) {
	return c.session(ctx, "/token?grant_type=password", email, password)
}

// SignUp registra un usuario nuevo. El login de la práctica intenta SignIn
// primero y cae a SignUp si falla (flujo de un solo operador).
func (c *Client) SignUp(ctx context.Context, email, password string) (auth.Session, error) {
	return c.session(ctx, "/signup", email, password)
}

func (c *Client) SignOut(ctx context.Context, accessToken string) error {
	if !c.IsConfigured() {
		return ErrNotConfigured
	}
	err := c.http.DoJSON(ctx, http.MethodPost, "/logout", c.headers(accessToken), nil, nil)
	if err != nil {
		return normalize(err)
	}
	return nil
}

func (c *Client) session(ctx context.Context, path, email, password string) (auth.Session, error) {
	if !c.IsConfigured() {
		return auth.Session{}, ErrNotConfigured
	}
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return auth.Session{}, ErrUnauthorized
	}

	var out sessionResponse
	err := c.http.DoJSON(ctx, http.MethodPost, path, c.headers(""), map[string]string{
		"email":    email,
		"password": password,
	}, &out)
	if err != nil {
		return auth.Session{}, normalize(err)
	}

	if strings.TrimSpace(out.AccessToken) == "" {
		return auth.Session{}, errors.New("gotrue response missing access token")
	}

	return auth.Session{
		AccessToken: out.AccessToken,
		Claims: auth.Claims{
			UserID: strings.TrimSpace(out.User.ID),
			Email:  strings.TrimSpace(out.User.Email),
		},
	}, nil
}

func (c *Client) headers(accessToken string) map[string]string {
	h := map[string]string{"apikey": c.anonKey}
	if accessToken != "" {
		h["Authorization"] = "Bearer " + accessToken
	}
	return h
}

func normalize(err error) error {
	var httpErr *httpclient.HTTPError
	if errors.As(err, &httpErr) {
		switch httpErr.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return ErrUnauthorized
		default:
			return fmt.Errorf("%w: status=%d", ErrUpstream, httpErr.StatusCode)
		}
	}
	return fmt.Errorf("%w: %v", ErrUpstream, err)
}
