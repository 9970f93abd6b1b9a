// Package httpapi assembles the middleware chain and mounts every domain
// handler on one router. Handlers stay thin; no business logic lives here.
package httpapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"contactregistry/internal/platform/metrics"
	"contactregistry/internal/platform/middleware"
)

// Registrar is anything that can mount its routes on a chi router.
type Registrar interface {
	Register(r chi.Router)
}

// Config carries the router's collaborators.
type Config struct {
	Logger         *slog.Logger
	Metrics        *metrics.Metrics
	TokenValidator middleware.TokenValidator
	AdminTokenHash string

	// Handlers are mounted behind the authenticated API chain.
	Handlers []Registrar

	// Health reports readiness of downstream dependencies; nil means
	// always healthy.
	Health func() error
}

// NewRouter builds the full router: open health and metrics endpoints plus
// the authenticated API surface.
func NewRouter(cfg Config) http.Handler {
	root := chi.NewRouter()
	root.Use(middleware.Recovery(cfg.Logger))
	root.Use(middleware.RequestID)
	root.Use(middleware.RequestTime)
	root.Use(middleware.ClientMetadata)
	root.Use(middleware.Logger(cfg.Logger))
	root.Use(middleware.Latency(cfg.Metrics))

	root.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if cfg.Health != nil {
			if err := cfg.Health(); err != nil {
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte(`{"status":"unhealthy"}`))
				return
			}
		}
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	root.Group(func(r chi.Router) {
		r.Use(middleware.RequireAdminToken(cfg.AdminTokenHash, cfg.Logger))
		r.Handle("/metrics", promhttp.Handler())
	})

	root.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(30 * time.Second))
		r.Use(middleware.ContentTypeJSON)
		r.Use(middleware.RequireAuth(cfg.TokenValidator, cfg.Logger))
		for _, h := range cfg.Handlers {
			h.Register(r)
		}
	})

	return root
}
