// Package server exposes the HTTP observability endpoints: Prometheus
// metrics and a liveness probe. It is started only when the user passes
// -metrics-addr; formatting itself never depends on it.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/agbru/readnum/internal/logging"
	"github.com/agbru/readnum/internal/metrics"
)

// shutdownGrace bounds how long in-flight requests may run after the
// application context is canceled.
const shutdownGrace = 5 * time.Second

// Server serves the /metrics and /healthz endpoints.
type Server struct {
	addr    string
	metrics *metrics.Metrics
	logger  logging.Logger
}

// New creates a Server bound to addr, reporting through the given metrics
// instance and logger.
func New(addr string, m *metrics.Metrics, logger logging.Logger) *Server {
	return &Server{addr: addr, metrics: m, logger: logger}
}

// Run serves HTTP until ctx is canceled, then shuts down gracefully. The
// returned error is nil on a clean shutdown.
func (s *Server) Run(ctx context.Context) error {
	security := DefaultSecurityConfig()
	mux := http.NewServeMux()
	mux.HandleFunc("/metrics", s.metricsMiddleware(SecurityMiddleware(security, s.handleMetrics)))
	mux.HandleFunc("/healthz", s.metricsMiddleware(SecurityMiddleware(security, s.handleHealth)))

	srv := &http.Server{
		Addr:              s.addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("metrics server listening", logging.String("addr", s.addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		<-errCh
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// metricsMiddleware tracks request activity around the next handler.
func (s *Server) metricsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.metrics.IncrementActiveRequests()
		defer s.metrics.DecrementActiveRequests()
		next(w, r)
	}
}

// handleMetrics serves the Prometheus exposition endpoint.
func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.metrics.WritePrometheus(w, r)
}

// handleHealth serves the liveness probe.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok\n"))
}
