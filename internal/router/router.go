package router

import (
	"database/sql"
	"net/http"
	"os"
	"time"

	memblob "delecti-backend/internal/adapters/blob/memory"
	mem "delecti-backend/internal/adapters/storage/memory"
	pg "delecti-backend/internal/adapters/storage/postgres"
	"delecti-backend/internal/domain/bookings"
	"delecti-backend/internal/domain/customers"
	"delecti-backend/internal/domain/dogs"
	"delecti-backend/internal/domain/journals"
	"delecti-backend/internal/middleware"
	"delecti-backend/internal/platform/logger"
	"delecti-backend/internal/platform/timecalc"
	"delecti-backend/internal/ports/auth"
	"delecti-backend/internal/ports/blob"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "delecti-backend/docs"
)

type Options struct {
	SessionVerifier auth.SessionVerifier // puede ser nil (modo dev)
	AuthProvider    auth.Provider        // puede ser nil: /auth queda deshabilitado

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Opcional: bucket externo. Si no viene, in-memory.
	Blob blob.Store

	// Opcional: zona de la práctica. Si no viene, se lee del env.
	Zone *time.Location

	Log logger.Logger
}

func NewRouter(opts Options) http.Handler {
	log := opts.Log
	if log == nil {
		log = logger.NewFromEnv()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Use(middleware.AuthContext(opts.SessionVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler())

	var (
		customersRepo customers.Repository
		dogsRepo      dogs.Repository
		bookingsRepo  bookings.Repository
		journalsRepo  journals.Repository
		mediaRepo     journals.MediaRepository
	)

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			} else {
				log.Warn("postgres unavailable, falling back to memory", map[string]any{"error": err.Error()})
			}
		}
	}

	if db != nil {
		customersRepo = pg.NewCustomersRepo(db)
		dogsRepo = pg.NewDogsRepo(db)
		bookingsRepo = pg.NewBookingsRepo(db)
		journalsRepo = pg.NewJournalsRepo(db)
		mediaRepo = pg.NewMediaRepo(db)
		log.Info("storage: postgres", nil)
	} else {
		cr := mem.NewCustomersRepo()
		dr := mem.NewDogsRepo()
		customersRepo = cr
		dogsRepo = dr
		bookingsRepo = mem.NewBookingsRepo(cr, dr)
		journalsRepo = mem.NewJournalsRepo()
		mediaRepo = mem.NewMediaRepo()
		log.Info("storage: in-memory", nil)
	}

	blobStore := opts.Blob
	if blobStore == nil {
		blobStore = memblob.NewStore()
		log.Info("blob: in-memory", nil)
	}

	calc := timecalc.New(opts.Zone)
	if opts.Zone == nil {
		fromEnv, err := timecalc.NewFromEnv()
		if err != nil {
			log.Warn("invalid PRACTICE_TZ, using UTC", map[string]any{"error": err.Error()})
		} else {
			calc = fromEnv
		}
	}

	gate := middleware.NewSessionGate()

	// Services por módulo
	customersSvc := customers.NewService(customersRepo, gate)
	dogsSvc := dogs.NewService(dogsRepo, gate)
	bookingsSvc := bookings.NewService(bookingsRepo, gate, calc, dogsSvc)
	journalsSvc := journals.NewService(journalsRepo, gate)
	vault := journals.NewMediaVault(journalsRepo, mediaRepo, blobStore, gate, os.Getenv("MEDIA_BUCKET"))

	// Rutas por módulo
	customers.RegisterRoutes(r, customersSvc)
	dogs.RegisterRoutes(r, dogsSvc, customersSvc)
	bookings.RegisterRoutes(r, bookingsSvc)
	journals.RegisterRoutes(r, journalsSvc, vault, dogsSvc)

	registerAuthRoutes(r, opts.AuthProvider)

	return r
}
