package bookings

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"delecti-backend/internal/domain/dogs"
	"delecti-backend/internal/platform/timecalc"
	"delecti-backend/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/bookings", func(br chi.Router) {
		br.Post("/", createBookingHandler(svc))
		br.Get("/", listBookingsHandler(svc))
		br.Get("/today", listTodayHandler(svc))
	})
}

type createBookingRequest struct {
	CustomerID  string `json:"customer_id"`
	DogID       string `json:"dog_id"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	DurationMin int    `json:"duration_min"`
	Notes       string `json:"notes"`
}

type bookingResponse struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customer_id"`
	DogID      string    `json:"dog_id"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	Notes      string    `json:"notes"`
	CreatedAt  time.Time `json:"created_at"`
}

type bookingListItemResponse struct {
	bookingResponse
	CustomerName string `json:"customer_name"`
	DogName      string `json:"dog_name"`
	Slot         string `json:"slot"`
}

// createBookingHandler godoc
// @Summary      Crear una cita
// @Description  Deriva el intervalo a partir de fecha, hora y duración en la zona de la práctica
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        booking  body      createBookingRequest  true  "Datos de la cita"
// @Success      201      {object}  bookingResponse
// @Failure      400      {string}  string
// @Router       /bookings [post]
func createBookingHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createBookingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		b, err := svc.Create(r.Context(), CreateInput{
			CustomerID:  req.CustomerID,
			DogID:       req.DogID,
			Date:        req.Date,
			Clock:       req.Time,
			DurationMin: req.DurationMin,
			Notes:       req.Notes,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toBookingResponse(b))
	}
}

func listBookingsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var (
			items []ListItem
			err   error
		)

		// ?date=2006-01-02 acota la lista a un día calendario local.
		if date := r.URL.Query().Get("date"); date != "" {
			items, err = svc.ListDay(r.Context(), date)
		} else {
			items, err = svc.ListUpcoming(r.Context())
		}
		if err != nil {
			writeError(w, err)
			return
		}

		out := make([]bookingListItemResponse, 0, len(items))
		for _, it := range items {
			out = append(out, bookingListItemResponse{
				bookingResponse: toBookingResponse(it.Booking),
				CustomerName:    it.CustomerName,
				DogName:         it.DogName,
				Slot:            svc.FormatSlot(it.Booking),
			})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func listTodayHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListToday(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}

		out := make([]bookingListItemResponse, 0, len(items))
		for _, it := range items {
			out = append(out, bookingListItemResponse{
				bookingResponse: toBookingResponse(it.Booking),
				CustomerName:    it.CustomerName,
				DogName:         it.DogName,
				Slot:            svc.FormatSlot(it.Booking),
			})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func toBookingResponse(b Booking) bookingResponse {
	return bookingResponse{
		ID:         b.ID,
		CustomerID: b.CustomerID,
		DogID:      b.DogID,
		Start:      b.Start,
		End:        b.End,
		Notes:      b.Notes,
		CreatedAt:  b.CreatedAt,
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, auth.ErrNoSession):
		http.Error(w, "sign in required", http.StatusUnauthorized)
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrDogNotOwned), errors.Is(err, timecalc.ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, dogs.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
