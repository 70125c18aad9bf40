package server

import (
	"context"
	"net"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/pborges/qmc/internal/config"
	"github.com/pborges/qmc/internal/metrics"
	"github.com/pborges/qmc/internal/minimizer"
)

// Option applies a configuration option to the given server.
type Option func(s *Server)

func WithLogger(logger *zap.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

func WithConfig(c config.Config) Option {
	return func(s *Server) {
		s.config = c
	}
}

// WithRegistry registers the server's metrics on reg instead of a private
// registry.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(s *Server) {
		s.registry = reg
	}
}

// Server exposes the minimizer over HTTP.
type Server struct {
	logger   *zap.Logger
	config   config.Config
	registry *prometheus.Registry
	recorder *metrics.Recorder
	simplify func(string) (minimizer.Result, error)
}

func New(options ...Option) (*Server, error) {
	s := &Server{
		logger:   zap.NewNop(),
		config:   config.Default(),
		simplify: minimizer.Simplify,
	}
	for _, o := range options {
		o(s)
	}
	if err := s.config.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid server configuration")
	}
	if s.registry == nil {
		s.registry = prometheus.NewRegistry()
	}
	s.recorder = metrics.NewRecorder()
	if err := s.recorder.Register(s.registry); err != nil {
		return nil, err
	}
	return s, nil
}

// Handler returns the router serving the API, health and metrics endpoints.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/runSimulation", s.runSimulation).Methods(http.MethodPost, http.MethodOptions)
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)
	if s.config.Metrics.Enabled {
		r.Handle(s.config.Metrics.Path, promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	}
	r.Use(mux.CORSMethodMiddleware(r))
	r.Use(s.cors)
	return r
}

func (s *Server) cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if origin := s.config.CORS.AllowOrigin(r.Header.Get("Origin")); origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			if origin != "*" {
				w.Header().Add("Vary", "Origin")
			}
		}
		next.ServeHTTP(w, r)
	})
}

// Run listens on the configured address until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	l, err := net.Listen("tcp", s.config.Server.Address)
	if err != nil {
		return errors.Wrapf(err, "listening on %s", s.config.Server.Address)
	}
	return s.Serve(ctx, l)
}

// Serve accepts connections on l until ctx is cancelled, then shuts down
// gracefully within the configured shutdown timeout.
func (s *Server) Serve(ctx context.Context, l net.Listener) error {
	srv := &http.Server{
		Handler:      s.Handler(),
		ReadTimeout:  s.config.Server.ReadTimeout,
		WriteTimeout: s.config.Server.WriteTimeout,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("serving", zap.String("address", l.Addr().String()))
		if err := srv.Serve(l); err != nil && err != http.ErrServerClosed {
			return errors.Wrap(err, "serving http")
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.Server.ShutdownTimeout)
		defer cancel()
		s.logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
