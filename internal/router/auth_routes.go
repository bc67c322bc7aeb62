package router

import (
	"encoding/json"
	"net/http"
	"strings"

	"delecti-backend/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	AccessToken string `json:"access_token"`
	UserID      string `json:"user_id"`
	Email       string `json:"email"`
}

// registerAuthRoutes monta /auth/login y /auth/logout contra el
// provider externo. Sin provider los endpoints devuelven 503: en dev
// la identidad viene por header y no hay nada que loguear.
func registerAuthRoutes(r chi.Router, provider auth.Provider) {
	r.Post("/auth/login", loginHandler(provider))
	r.Post("/auth/logout", logoutHandler(provider))
}

func loginHandler(provider auth.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if provider == nil {
			http.Error(w, "auth provider not configured", http.StatusServiceUnavailable)
			return
		}

		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		email := strings.TrimSpace(req.Email)
		if email == "" || req.Password == "" {
			http.Error(w, "email and password required", http.StatusBadRequest)
			return
		}

		// primer intento: credenciales existentes; si falla, registra
		// la cuenta en el momento (la clínica tiene un solo usuario)
		sess, err := provider.SignIn(r.Context(), email, req.Password)
		if err != nil {
			sess, err = provider.SignUp(r.Context(), email, req.Password)
			if err != nil {
				http.Error(w, "unable to sign in", http.StatusUnauthorized)
				return
			}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(sessionResponse{
			AccessToken: sess.AccessToken,
			UserID:      sess.Claims.UserID,
			Email:       sess.Claims.Email,
		})
	}
}

func logoutHandler(provider auth.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if provider == nil {
			http.Error(w, "auth provider not configured", http.StatusServiceUnavailable)
			return
		}

		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if strings.TrimSpace(token) == "" {
			http.Error(w, "sign in required", http.StatusUnauthorized)
			return
		}

		if err := provider.SignOut(r.Context(), token); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
