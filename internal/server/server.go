package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/kanishkdw/mita/internal/config"
	"github.com/kanishkdw/mita/internal/handler"
	appmw "github.com/kanishkdw/mita/internal/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Server runs the public API and, when enabled, the admin listener.
type Server struct {
	cfg   *config.Config
	log   *zap.Logger
	http  *http.Server
	admin *http.Server
}

// New creates a new server.
func New(cfg *config.Config, log *zap.Logger, deps *Deps) *Server {
	s := &Server{
		cfg: cfg,
		log: log,
		http: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           PublicRouter(log),
			ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		},
	}
	if cfg.AdminPort > 0 {
		s.admin = &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.AdminPort),
			Handler:           AdminRouter(log, deps),
			ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		}
	}
	return s
}

func use(r chi.Router, log *zap.Logger) {
	r.Use(appmw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)
	r.Use(appmw.Metrics)
	r.Use(appmw.Logging(log))
}

// PublicRouter serves only the two fixed endpoints; everything else gets chi's default 404/405.
func PublicRouter(log *zap.Logger) chi.Router {
	r := chi.NewRouter()
	use(r, log)

	r.Get("/health", handler.Health)
	r.Get("/hello", handler.Hello)
	return r
}

// AdminRouter serves metrics and readiness, kept off the public port.
func AdminRouter(log *zap.Logger, deps *Deps) chi.Router {
	r := chi.NewRouter()
	use(r, log)
	r.NotFound(appmw.NotFound)
	r.MethodNotAllowed(appmw.MethodNotAllowed)

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/ready", deps.Ready.Ready)
	return r
}

// Start starts the admin listener in the background and blocks on the public one.
func (s *Server) Start() error {
	if s.admin != nil {
		go func() {
			s.log.Info("starting admin server", zap.String("addr", s.admin.Addr))
			if err := s.admin.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				s.log.Error("admin server failed", zap.Error(err))
			}
		}()
	}

	s.log.Info("starting server", zap.String("addr", s.http.Addr))
	return s.http.ListenAndServe()
}

// Shutdown gracefully stops both listeners.
func (s *Server) Shutdown(ctx context.Context) error {
	var errs []error
	if s.admin != nil {
		if err := s.admin.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("admin shutdown: %w", err))
		}
	}
	if err := s.http.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("shutdown: %w", err))
	}
	return errors.Join(errs...)
}
