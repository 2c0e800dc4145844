package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestHTTPMetrics_Handler(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg, "sensorapi_test")

	r := chi.NewRouter()
	r.Use(m.Handler)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	r.Get("/boom", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	tests := []struct {
		method string
		path   string
		route  string
		status string
	}{
		{http.MethodGet, "/health", "/health", "200"},
		{http.MethodGet, "/health", "/health", "200"},
		{http.MethodGet, "/boom", "/boom", "500"},
		{http.MethodGet, "/nope", "unmatched", "404"},
		{http.MethodPost, "/health", "unmatched", "405"},
	}

	for _, tt := range tests {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
	}

	expect := []struct {
		method, route, status string
		count                 float64
	}{
		{http.MethodGet, "/health", "200", 2},
		{http.MethodGet, "/boom", "500", 1},
		{http.MethodGet, "unmatched", "404", 1},
		{http.MethodPost, "unmatched", "405", 1},
	}
	for _, e := range expect {
		got := testutil.ToFloat64(m.requests.WithLabelValues(e.method, e.route, e.status))
		if got != e.count {
			t.Errorf("requests{%s,%s,%s} = %v, want %v", e.method, e.route, e.status, got, e.count)
		}
	}

	if got := testutil.ToFloat64(m.inFlight); got != 0 {
		t.Errorf("expected no requests in flight, got %v", got)
	}
	if n := testutil.CollectAndCount(m.duration); n != 4 {
		t.Errorf("expected 4 duration series, got %d", n)
	}
}
