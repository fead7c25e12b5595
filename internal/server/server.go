// Package server exposes the analysis engines over HTTP. It is a thin
// report surface: handlers map JSON requests onto the engine shapes, run
// them, and encode the results back out. No authentication and no state
// beyond the snapshot store.
package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/midori-advisory/finplan-cli/internal/config"
	"github.com/midori-advisory/finplan-cli/internal/store"
)

// Server is the HTTP report surface.
type Server struct {
	store    store.Store
	defaults config.AssumptionsConfig
	router   *chi.Mux
	srv      *http.Server
	limiter  *rate.Limiter
}

// New builds a server around a snapshot store. The assumption defaults fill
// rates that simulate requests leave unset.
func New(cfg config.ServerConfig, defaults config.AssumptionsConfig, st store.Store) *Server {
	s := &Server{
		store:    st,
		defaults: defaults,
		limiter:  rate.NewLimiter(rate.Limit(cfg.SimulateRPS), simulateBurst(cfg.SimulateRPS)),
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(requestLogger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}))

	r.Get("/health", s.handleHealth)
	r.Get("/companies/{id}/indicators", s.handleIndicators)
	r.Get("/companies/{id}/projection", s.handleProjection)
	r.Post("/restructure", s.handleRestructure)
	r.With(s.limitSimulate).Post("/simulate", s.handleSimulate)
	r.Post("/debt-capacity", s.handleDebtCapacity)

	s.router = r
	s.srv = &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: r,
	}
	return s
}

func simulateBurst(rps float64) int {
	if rps < 1 {
		return 1
	}
	return int(rps)
}

// Handler returns the configured router, mainly for tests.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe runs the server until it fails or Shutdown is called.
func (s *Server) ListenAndServe() error {
	zap.L().Info("starting server", zap.String("addr", s.srv.Addr))
	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return eris.Wrap(err, "server: listen")
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
