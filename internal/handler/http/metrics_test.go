package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"techdiet/internal/observability/metrics"
)

func TestMetricsMiddleware_CountsRequests(t *testing.T) {
	metrics.HTTPRequestsTotal.Reset()
	metrics.HTTPRequestDuration.Reset()

	handler := MetricsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}))

	req := httptest.NewRequest(http.MethodGet, "/entries", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	got := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "/entries", "200"))
	if got != 1 {
		t.Errorf("counter = %v, want 1", got)
	}
}

func TestMetricsMiddleware_NormalizesIDPaths(t *testing.T) {
	metrics.HTTPRequestsTotal.Reset()
	metrics.HTTPRequestDuration.Reset()

	handler := MetricsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	// Distinct IDs must land on one label value.
	for _, path := range []string{
		"/entries/0f2c1d9e-9a1b-4c6d-8e7f-123456789abc",
		"/entries/5b1a0c2d-1111-4c6d-8e7f-abcdefabcdef",
		"/entries/e3",
	} {
		req := httptest.NewRequest(http.MethodDelete, path, nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
	}

	got := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("DELETE", "/entries/:id", "204"))
	if got != 3 {
		t.Errorf("counter = %v, want 3 requests collapsed onto /entries/:id", got)
	}
}

func TestMetricsMiddleware_RecordsErrorStatus(t *testing.T) {
	metrics.HTTPRequestsTotal.Reset()

	handler := MetricsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))

	req := httptest.NewRequest(http.MethodGet, "/sources/ghost", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	got := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "/sources/:id", "404"))
	if got != 1 {
		t.Errorf("counter = %v, want 1", got)
	}
}

func TestMetricsHandler_ServesPrometheusFormat(t *testing.T) {
	// Touch a counter so the exposition is not empty.
	metrics.HTTPRequestsTotal.WithLabelValues("GET", "/goal", "200").Inc()

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	MetricsHandler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status code = %d, want %d", rec.Code, http.StatusOK)
	}
	if rec.Body.Len() == 0 {
		t.Error("metrics exposition is empty")
	}
}
