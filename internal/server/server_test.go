package server

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/agbru/readnum/internal/logging"
	"github.com/agbru/readnum/internal/metrics"
)

func newTestServer() *Server {
	discard := log.New(io.Discard, "", 0)
	return New("127.0.0.1:0", metrics.NewMetrics(), logging.NewStdLoggerAdapter(discard))
}

func TestServer_handleMetrics(t *testing.T) {
	t.Run("GET returns metrics", func(t *testing.T) {
		s := newTestServer()
		s.metrics.RecordValue(metrics.ModeShortform)

		req := httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody)
		rec := httptest.NewRecorder()
		s.handleMetrics(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
		}
		body := rec.Body.String()
		if !strings.Contains(body, "readnum_values_formatted_total") {
			t.Error("metrics output should contain readnum_values_formatted_total")
		}
		if !strings.Contains(body, "readnum_active_requests") {
			t.Error("metrics output should contain readnum_active_requests")
		}
		if !strings.Contains(body, "go_") {
			t.Error("metrics output should contain Go runtime metrics")
		}
	})

	t.Run("POST is rejected", func(t *testing.T) {
		s := newTestServer()

		req := httptest.NewRequest(http.MethodPost, "/metrics", http.NoBody)
		rec := httptest.NewRecorder()
		s.handleMetrics(rec, req)

		if rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
		}
	})
}

func TestServer_handleHealth(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/healthz", http.NoBody)
	rec := httptest.NewRecorder()
	s.handleHealth(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if got := rec.Body.String(); got != "ok\n" {
		t.Errorf("body = %q, want %q", got, "ok\n")
	}
}

func TestServer_metricsMiddleware(t *testing.T) {
	t.Run("next handler is called", func(t *testing.T) {
		s := newTestServer()

		nextCalled := false
		handler := s.metricsMiddleware(func(w http.ResponseWriter, r *http.Request) {
			nextCalled = true
			w.WriteHeader(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/test", http.NoBody)
		rec := httptest.NewRecorder()
		handler(rec, req)

		if !nextCalled {
			t.Error("next handler was not called")
		}
		if rec.Code != http.StatusOK {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
		}
	})
}

func TestServer_Run(t *testing.T) {
	s := newTestServer()

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- s.Run(ctx) }()

	// Let the listener come up, then request a clean shutdown.
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		if err != nil {
			t.Errorf("Run() = %v, want nil on graceful shutdown", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run() did not shut down after context cancellation")
	}
}
