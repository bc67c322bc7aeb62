package journals

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"delecti-backend/internal/domain/dogs"
	"delecti-backend/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

// maxUploadBytes acota el adjunto en memoria.
const maxUploadBytes = 32 << 20

func RegisterRoutes(r chi.Router, svc *Service, vault *MediaVault, dogsSvc *dogs.Service) {
	r.Route("/dogs/{dogID}/journals", func(jr chi.Router) {
		jr.Post("/", createJournalHandler(svc, dogsSvc))
		jr.Get("/", listJournalsHandler(svc, dogsSvc))
	})

	r.Route("/journals/{journalID}", func(jr chi.Router) {
		jr.Get("/", getJournalHandler(svc))
		jr.Put("/", updateJournalHandler(svc))
		jr.Post("/media", uploadMediaHandler(vault))
		jr.Get("/media", listMediaHandler(vault))
		jr.Get("/print", printJournalHandler(svc, vault, dogsSvc))
	})
}

type journalRequest struct {
	BeforeStatus string `json:"before_status"`
	Treatment    string `json:"treatment"`
	AfterStatus  string `json:"after_status"`
	NextTime     string `json:"next_time"`
}

type journalResponse struct {
	ID           string    `json:"id"`
	DogID        string    `json:"dog_id"`
	BeforeStatus string    `json:"before_status"`
	Treatment    string    `json:"treatment"`
	AfterStatus  string    `json:"after_status"`
	NextTime     string    `json:"next_time"`
	CreatedAt    time.Time `json:"created_at"`
}

type mediaResponse struct {
	ID        string    `json:"id"`
	JournalID string    `json:"journal_id"`
	Path      string    `json:"path"`
	MIME      string    `json:"mime"`
	Kind      MediaKind `json:"kind"`
	SignedURL string    `json:"signed_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type printResponse struct {
	Journal journalResponse `json:"journal"`
	DogName string          `json:"dog_name"`
	Media   []mediaResponse `json:"media"`
}

func createJournalHandler(svc *Service, dogsSvc *dogs.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dogID := chi.URLParam(r, "dogID")

		if _, err := dogsSvc.GetByID(r.Context(), dogID); err != nil {
			if errors.Is(err, auth.ErrNoSession) {
				http.Error(w, "sign in required", http.StatusUnauthorized)
				return
			}
			http.Error(w, "dog not found", http.StatusNotFound)
			return
		}

		var req journalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		j, err := svc.Create(r.Context(), dogID, Input{
			BeforeStatus: req.BeforeStatus,
			Treatment:    req.Treatment,
			AfterStatus:  req.AfterStatus,
			NextTime:     req.NextTime,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toJournalResponse(j))
	}
}

func listJournalsHandler(svc *Service, dogsSvc *dogs.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dogID := chi.URLParam(r, "dogID")

		if _, err := dogsSvc.GetByID(r.Context(), dogID); err != nil {
			if errors.Is(err, auth.ErrNoSession) {
				http.Error(w, "sign in required", http.StatusUnauthorized)
				return
			}
			http.Error(w, "dog not found", http.StatusNotFound)
			return
		}

		items, err := svc.ListByDog(r.Context(), dogID)
		if err != nil {
			writeError(w, err)
			return
		}

		out := make([]journalResponse, 0, len(items))
		for _, j := range items {
			out = append(out, toJournalResponse(j))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func getJournalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		j, err := svc.GetByID(r.Context(), chi.URLParam(r, "journalID"))
		if err != nil {
			if errors.Is(err, auth.ErrNoSession) {
				http.Error(w, "sign in required", http.StatusUnauthorized)
				return
			}
			http.Error(w, "journal not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toJournalResponse(j))
	}
}

func updateJournalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req journalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		j, err := svc.Update(r.Context(), chi.URLParam(r, "journalID"), Input{
			BeforeStatus: req.BeforeStatus,
			Treatment:    req.Treatment,
			AfterStatus:  req.AfterStatus,
			NextTime:     req.NextTime,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toJournalResponse(j))
	}
}

// uploadMediaHandler godoc
// @Summary      Adjuntar un archivo a un journal
// @Description  Sube el archivo al bucket y registra su metadata
// @Tags         journals
// @Accept       multipart/form-data
// @Produce      json
// @Param        journalID  path      string  true  "ID del journal"
// @Param        file       formData  file    true  "Archivo adjunto"
// @Success      201        {object}  mediaResponse
// @Failure      409        {string}  string
// @Failure      413        {string}  string
// @Router       /journals/{journalID}/media [post]
func uploadMediaHandler(vault *MediaVault) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			http.Error(w, "invalid multipart form", http.StatusBadRequest)
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			http.Error(w, "missing file field", http.StatusBadRequest)
			return
		}
		defer file.Close()

		// se lee un byte de más para distinguir "justo en el límite"
		// de "excedido" y rechazar en vez de truncar
		content, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
		if err != nil {
			http.Error(w, "unable to read file", http.StatusBadRequest)
			return
		}
		if len(content) > maxUploadBytes {
			http.Error(w, "file too large", http.StatusRequestEntityTooLarge)
			return
		}

		mime := header.Header.Get("Content-Type")
		if mime == "" {
			mime = "application/octet-stream"
		}

		m, err := vault.Attach(r.Context(), chi.URLParam(r, "journalID"), header.Filename, mime, content)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toMediaResponse(m, ""))
	}
}

func listMediaHandler(vault *MediaVault) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		journalID := chi.URLParam(r, "journalID")

		// vista de edición: lo último subido arriba
		items, err := vault.ListMedia(r.Context(), journalID, false)
		if err != nil {
			writeError(w, err)
			return
		}

		out := make([]mediaResponse, 0, len(items))
		for _, m := range items {
			url, err := vault.Sign(r.Context(), m.Path, 0)
			if err != nil {
				writeError(w, err)
				return
			}
			out = append(out, toMediaResponse(m, url))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// printJournalHandler arma la proyección imprimible: el journal, el
// nombre del perro y los adjuntos con enlaces de lectura vigentes.
func printJournalHandler(svc *Service, vault *MediaVault, dogsSvc *dogs.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		j, err := svc.GetByID(r.Context(), chi.URLParam(r, "journalID"))
		if err != nil {
			if errors.Is(err, auth.ErrNoSession) {
				http.Error(w, "sign in required", http.StatusUnauthorized)
				return
			}
			http.Error(w, "journal not found", http.StatusNotFound)
			return
		}

		dogName := ""
		if d, err := dogsSvc.GetByID(r.Context(), j.DogID); err == nil {
			dogName = d.Name
		}

		items, err := vault.ListMedia(r.Context(), j.ID, true)
		if err != nil {
			writeError(w, err)
			return
		}

		media := make([]mediaResponse, 0, len(items))
		for _, m := range items {
			url, err := vault.Sign(r.Context(), m.Path, 0)
			if err != nil {
				writeError(w, err)
				return
			}
			media = append(media, toMediaResponse(m, url))
		}

		writeJSON(w, http.StatusOK, printResponse{
			Journal: toJournalResponse(j),
			DogName: dogName,
			Media:   media,
		})
	}
}

func toJournalResponse(j Journal) journalResponse {
	return journalResponse{
		ID:           j.ID,
		DogID:        j.DogID,
		BeforeStatus: j.BeforeStatus,
		Treatment:    j.Treatment,
		AfterStatus:  j.AfterStatus,
		NextTime:     j.NextTime,
		CreatedAt:    j.CreatedAt,
	}
}

func toMediaResponse(m Media, signedURL string) mediaResponse {
	return mediaResponse{
		ID:        m.ID,
		JournalID: m.JournalID,
		Path:      m.Path,
		MIME:      m.MIME,
		Kind:      KindOf(m.MIME),
		SignedURL: signedURL,
		CreatedAt: m.CreatedAt,
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, auth.ErrNoSession):
		http.Error(w, "sign in required", http.StatusUnauthorized)
	case errors.Is(err, ErrNoJournalSelected):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
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
