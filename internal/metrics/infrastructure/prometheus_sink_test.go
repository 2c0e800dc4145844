package infrastructure

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"sensorapi/internal/metrics/domain"
)

func TestPrometheusSink_Emit(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	sink := NewPrometheusSink("sensorapi_test")

	tests := []struct {
		name    string
		sample  domain.Sample
		wantErr bool
	}{
		{
			name:   "gauge",
			sample: domain.NewSample(now, domain.MetricGauge, domain.CPUUsageMetric, 37.5, map[string]string{"source": "load"}),
		},
		{
			name:   "gauge same labels different value",
			sample: domain.NewSample(now, domain.MetricGauge, domain.CPUUsageMetric, 12.5, map[string]string{"source": "collector"}),
		},
		{
			name:   "counter",
			sample: domain.NewSample(now, domain.MetricCounter, "load_runs_total", 1, nil),
		},
		{
			name:   "histogram",
			sample: domain.NewSample(now, domain.MetricHistogram, "load_duration_seconds", 1.2, nil),
		},
		{
			name:    "type mismatch",
			sample:  domain.NewSample(now, domain.MetricCounter, domain.CPUUsageMetric, 1, map[string]string{"source": "load"}),
			wantErr: true,
		},
		{
			name:    "label mismatch",
			sample:  domain.NewSample(now, domain.MetricGauge, domain.CPUUsageMetric, 1, map[string]string{"host": "a"}),
			wantErr: true,
		},
		{
			name:    "negative counter",
			sample:  domain.NewSample(now, domain.MetricCounter, "load_runs_total", -1, nil),
			wantErr: true,
		},
		{
			name:    "unknown type",
			sample:  domain.NewSample(now, domain.MetricType("summary"), "latency", 1, nil),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := sink.Emit(ctx, tt.sample)
			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}

	gauge := sink.entries[domain.CPUUsageMetric].gauge
	if got := testutil.ToFloat64(gauge.WithLabelValues("load")); got != 37.5 {
		t.Errorf("expected load gauge 37.5, got %v", got)
	}
	if got := testutil.ToFloat64(gauge.WithLabelValues("collector")); got != 12.5 {
		t.Errorf("expected collector gauge 12.5, got %v", got)
	}
	if got := testutil.ToFloat64(sink.entries["load_runs_total"].counter.WithLabelValues()); got != 1 {
		t.Errorf("expected counter 1, got %v", got)
	}
}

func TestPrometheusSink_Handler(t *testing.T) {
	sink := NewPrometheusSink("sensorapi_test")
	err := sink.Emit(context.Background(), domain.NewSample(time.Now(), domain.MetricGauge, domain.CPUUsageMetric, 55, map[string]string{"source": "collector"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	srv := httptest.NewServer(sink.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	out := string(body)
	if !strings.Contains(out, `sensorapi_test_cpu_usage_percent{source="collector"} 55`) {
		t.Errorf("expected cpu gauge in exposition, got:\n%s", out)
	}
	if !strings.Contains(out, "go_goroutines") {
		t.Error("expected go runtime collector in exposition")
	}
}
