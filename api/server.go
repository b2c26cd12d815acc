// ABOUTME: HTTP router assembly with CORS, logging and rate limiting
// ABOUTME: Wires handlers onto a standard library mux

package api

import (
	"net/http"

	"portfolio-enhancer-api/api/handlers"
	"portfolio-enhancer-api/api/middleware"
	"portfolio-enhancer-api/core/audit"
	coreconfig "portfolio-enhancer-api/core/config"
	"portfolio-enhancer-api/core/interfaces"

	"github.com/rs/cors"
	"golang.org/x/time/rate"
)

// Config holds configuration for the API router
type Config struct {
	// RateLimit is the allowed requests per minute; 0 disables limiting
	RateLimit int
}

// NewRouter assembles the HTTP handler tree with middleware applied
func NewRouter(deps interfaces.Dependencies, cfg Config) http.Handler {
	mux := http.NewServeMux()

	auditService := audit.NewService(deps, coreconfig.DefaultOptions().Keywords)

	mux.Handle("/enhance", handlers.NewEnhanceHandler(deps))
	mux.Handle("/sitemap", handlers.NewSitemapHandler(deps))
	mux.Handle("/audit", handlers.NewAuditHandler(auditService, deps.Logger))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	var handler http.Handler = mux

	if cfg.RateLimit > 0 {
		limiter := rate.NewLimiter(rate.Limit(float64(cfg.RateLimit)/60.0), cfg.RateLimit)
		handler = middleware.RateLimit(limiter)(handler)
	}

	if deps.Logger != nil {
		handler = middleware.RequestLogging(deps.Logger)(handler)
	}

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "Content-Length", "Authorization"},
		MaxAge:         300,
	})

	return c.Handler(handler)
}
