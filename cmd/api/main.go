package main

import (
	"net/http"
	"os"
	"time"

	"delecti-backend/internal/adapters/auth/gotrue"
	"delecti-backend/internal/adapters/blob/supastore"
	"delecti-backend/internal/platform/logger"
	"delecti-backend/internal/ports/auth"
	"delecti-backend/internal/ports/blob"
	"delecti-backend/internal/router"

	"github.com/joho/godotenv"
)

// @title        Delecti Backend API
// @version      1.0
// @description  Registros clínicos y agenda para una práctica de cuidado canino
// @BasePath     /
func main() {
	// .env es opcional; en deploy las vars vienen del entorno
	_ = godotenv.Load()

	log := logger.NewFromEnv()

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	var (
		verifier auth.SessionVerifier
		provider auth.Provider
	)
	if baseURL := os.Getenv("AUTH_BASE_URL"); baseURL != "" {
		client, err := gotrue.NewClient(gotrue.Config{
			BaseURL: baseURL,
			AnonKey: os.Getenv("AUTH_ANON_KEY"),
			Timeout: 5 * time.Second,
		})
		if err != nil {
			log.Error("gotrue client init failed", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
		verifier = gotrue.NewVerifier(client)
		provider = client
		log.Info("auth: gotrue", map[string]any{"base_url": baseURL})
	} else {
		log.Warn("auth: dev mode, identity via X-Debug-User-ID", nil)
	}

	var blobStore blob.Store
	if baseURL := os.Getenv("STORAGE_BASE_URL"); baseURL != "" {
		store, err := supastore.New(supastore.Config{
			BaseURL:    baseURL,
			ServiceKey: os.Getenv("STORAGE_SERVICE_KEY"),
			Timeout:    30 * time.Second,
		})
		if err != nil {
			log.Error("storage client init failed", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
		blobStore = store
		log.Info("blob: supastore", map[string]any{"base_url": baseURL})
	}

	r := router.NewRouter(router.Options{
		SessionVerifier: verifier,
		AuthProvider:    provider,
		Blob:            blobStore,
		Log:             log,
	})

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	log.Info("starting server", map[string]any{"addr": addr})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}
