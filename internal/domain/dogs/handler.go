package dogs

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"delecti-backend/internal/domain/customers"
	"delecti-backend/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, customersSvc *customers.Service) {
	r.Route("/customers/{customerID}/dogs", func(dr chi.Router) {
		dr.Post("/", createDogHandler(svc, customersSvc))
		dr.Get("/", listDogsHandler(svc, customersSvc))
	})

	r.Get("/dogs/{dogID}", getDogHandler(svc))
}

type createDogRequest struct {
	Name   string `json:"name"`
	Breed  string `json:"breed"`
	Age    string `json:"age"`
	Weight string `json:"weight"`
	Notes  string `json:"notes"`
}

type dogResponse struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customer_id"`
	Name       string    `json:"name"`
	Breed      string    `json:"breed"`
	Age        string    `json:"age"`
	Weight     string    `json:"weight"`
	Notes      string    `json:"notes"`
	CreatedAt  time.Time `json:"created_at"`
}

func createDogHandler(svc *Service, customersSvc *customers.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customerID := chi.URLParam(r, "customerID")

		// El cliente debe existir antes de crear el perro que lo referencia.
		if _, err := customersSvc.GetByID(r.Context(), customerID); err != nil {
			if errors.Is(err, auth.ErrNoSession) {
				http.Error(w, "sign in required", http.StatusUnauthorized)
				return
			}
			http.Error(w, "customer not found", http.StatusNotFound)
			return
		}

		var req createDogRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		d, err := svc.Create(r.Context(), customerID, CreateInput{
			Name:   req.Name,
			Breed:  req.Breed,
			Age:    req.Age,
			Weight: req.Weight,
			Notes:  req.Notes,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toDogResponse(d))
	}
}

func listDogsHandler(svc *Service, customersSvc *customers.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customerID := chi.URLParam(r, "customerID")

		if _, err := customersSvc.GetByID(r.Context(), customerID); err != nil {
			if errors.Is(err, auth.ErrNoSession) {
				http.Error(w, "sign in required", http.StatusUnauthorized)
				return
			}
			http.Error(w, "customer not found", http.StatusNotFound)
			return
		}

		items, err := svc.ListByCustomer(r.Context(), customerID)
		if err != nil {
			writeError(w, err)
			return
		}

		out := make([]dogResponse, 0, len(items))
		for _, d := range items {
			out = append(out, toDogResponse(d))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func getDogHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, err := svc.GetByID(r.Context(), chi.URLParam(r, "dogID"))
		if err != nil {
			if errors.Is(err, auth.ErrNoSession) {
				http.Error(w, "sign in required", http.StatusUnauthorized)
				return
			}
			http.Error(w, "dog not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toDogResponse(d))
	}
}

func toDogResponse(d Dog) dogResponse {
	return dogResponse{
		ID:         d.ID,
		CustomerID: d.CustomerID,
		Name:       d.Name,
		Breed:      d.Breed,
		Age:        d.Age,
		Weight:     d.Weight,
		Notes:      d.Notes,
		CreatedAt:  d.CreatedAt,
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, auth.ErrNoSession):
		http.Error(w, "sign in required", http.StatusUnauthorized)
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
