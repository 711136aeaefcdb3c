// Package httptransport assembles the HTTP surface: middleware chain, CORS
// policy, liveness and diagnostic endpoints, and the per-module handlers.
package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"growthsphere/internal/platform/config"
	"growthsphere/internal/platform/docstore"
	"growthsphere/internal/platform/metrics"
	"growthsphere/internal/platform/middleware"
)

// Registrar is implemented by module handlers that attach routes.
type Registrar interface {
	Register(r chi.Router)
}

// NewRouter wires the full route table.
//
// The CORS policy is wide open (all origins, methods, headers, credentials);
// appropriate only for early-stage internal use.
func NewRouter(
	logger *slog.Logger,
	m *metrics.Metrics,
	cfg config.Server,
	conn *docstore.Conn,
	handlers ...Registrar,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))
	r.Use(metrics.LatencyMiddleware(m))

	diag := newDiagnostics(cfg, conn)
	r.Get("/", diag.handleRoot)
	r.Get("/test", diag.handleTest)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	for _, h := range handlers {
		h.Register(r)
	}
	return r
}
