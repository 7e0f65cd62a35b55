// Package server exposes the numeric primitives over an HTTP API with
// Prometheus metrics, OpenTelemetry tracing, and basic request hardening.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/primkit/primkit/internal/config"
	"github.com/primkit/primkit/internal/fibonacci"
	"github.com/primkit/primkit/internal/logging"
)

const (
	// shutdownGracePeriod bounds the graceful drain once the run context ends.
	shutdownGracePeriod = 10 * time.Second
	// readHeaderTimeout guards against slowloris-style header trickling.
	readHeaderTimeout = 5 * time.Second
)

// Server hosts the HTTP API. It owns its metrics registry, security policy,
// and underlying http.Server.
type Server struct {
	cfg        config.AppConfig
	factory    fibonacci.CalculatorFactory
	logger     logging.Logger
	metrics    *Metrics
	security   SecurityConfig
	tracer     trace.Tracer
	httpServer *http.Server
}

// New creates a Server bound to cfg.HTTPAddr. The security policy starts from
// DefaultSecurityConfig with the recursive-strategy cap taken from the
// configuration.
func New(cfg config.AppConfig, factory fibonacci.CalculatorFactory, logger logging.Logger) *Server {
	security := DefaultSecurityConfig()
	if cfg.MaxRecursiveN > 0 {
		security.MaxRecursiveIndex = cfg.MaxRecursiveN
	}

	s := &Server{
		cfg:      cfg,
		factory:  factory,
		logger:   logger,
		metrics:  NewMetrics(),
		security: security,
		tracer:   otel.Tracer("primkit/server"),
	}
	s.httpServer = &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: readHeaderTimeout,
	}
	return s
}

// Routes builds the request multiplexer with the full middleware chain
// applied to every endpoint.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/fibonacci", s.wrap(s.handleFibonacci))
	mux.HandleFunc("/api/v1/matrix/multiply", s.wrap(s.handleMatrixMultiply))
	mux.HandleFunc("/api/v1/sort", s.wrap(s.handleSort))
	mux.HandleFunc("/healthz", s.wrap(s.handleHealthz))
	mux.HandleFunc("/metrics", s.wrap(s.handleMetrics))
	return mux
}

// wrap applies the security and metrics middlewares to a handler.
func (s *Server) wrap(h http.HandlerFunc) http.HandlerFunc {
	return SecurityMiddleware(s.security, s.metricsMiddleware(h))
}

// statusRecorder captures the status code written by a handler so the
// metrics middleware can label the request counter with it.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

// WriteHeader records the status before delegating.
func (sr *statusRecorder) WriteHeader(status int) {
	sr.status = status
	sr.ResponseWriter.WriteHeader(status)
}

// metricsMiddleware tracks in-flight requests and records the request count
// and latency once the handler returns.
func (s *Server) metricsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.metrics.IncrementActiveRequests()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		defer func() {
			s.metrics.DecrementActiveRequests()
			s.metrics.ObserveRequest(r.URL.Path, recorder.status, time.Since(start))
		}()
		next(recorder, r)
	}
}

// Run starts the listener and blocks until ctx is canceled or the listener
// fails. On cancellation the server drains in-flight requests for up to
// shutdownGracePeriod.
func (s *Server) Run(ctx context.Context) error {
	errChan := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", logging.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
			return
		}
		errChan <- nil
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("http server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGracePeriod)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("graceful shutdown failed", err)
		return err
	}
	return <-errChan
}
