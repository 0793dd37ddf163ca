// Command server runs the HTN/HGN planning service: an HTTP front end over
// internal/htn's FindPlan and RunLazyLookahead, exposing the example
// domains in internal/domains.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dananau/gtpyhop-go/internal/api"
	"github.com/dananau/gtpyhop-go/internal/auth"
	"github.com/dananau/gtpyhop-go/internal/config"
)

// corsMiddleware adds CORS headers for cross-origin requests.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Accept, Authorization, Content-Type")
		w.Header().Set("Access-Control-Max-Age", "86400")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func main() {
	cfg := config.Load()

	registry := api.DefaultRegistry()
	if manifest, err := api.LoadManifest(cfg.DomainsManifest); err != nil {
		log.Printf("No domains manifest loaded from %s (%v); using built-in defaults", cfg.DomainsManifest, err)
	} else {
		registry.ApplyManifest(manifest)
		log.Printf("Applied domains manifest from %s", cfg.DomainsManifest)
	}
	log.Printf("Registered %d domains", len(registry.List()))

	handler := api.NewHandler(registry)
	authMiddleware := auth.NewMiddleware(&cfg.Auth)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(corsMiddleware)

	r.Get("/health", healthCheckHandler)

	r.Route("/domains", func(r chi.Router) {
		r.Get("/", handler.ListDomains)
		r.Get("/{name}", handler.GetDomain)
		r.With(authMiddleware.Authenticate).Post("/{name}/plan", handler.PlanDomain)
		r.With(authMiddleware.Authenticate).Post("/{name}/act", handler.ActDomain)
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	done := make(chan bool)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("Server is shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		server.SetKeepAlivesEnabled(false)
		if err := server.Shutdown(ctx); err != nil {
			log.Fatalf("Could not gracefully shutdown the server: %v\n", err)
		}
		close(done)
	}()

	log.Printf("Server is starting on %s", addr)
	log.Printf("Health check available at http://localhost%s/health", addr)
	log.Printf("Domain list available at http://localhost%s/domains", addr)

	if cfg.Auth.Secret != "" {
		log.Printf("Bearer-token authentication enabled")
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Could not listen on %s: %v\n", addr, err)
	}

	<-done
	log.Println("Server stopped")
}

// healthCheckHandler handles the /health endpoint.
func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	response := map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "gtpyhop-go",
	}
	json.NewEncoder(w).Encode(response)
}
