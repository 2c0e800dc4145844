package application

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"sensorapi/internal/infrastructure/logger"
	"sensorapi/internal/metrics/domain"
	"sensorapi/internal/shared/validation"
)

type fakeReader struct {
	value float64
	err   error
	calls atomic.Int32
}

func (r *fakeReader) ReadCPUPercent(ctx context.Context, window time.Duration) (float64, error) {
	r.calls.Add(1)
	return r.value, r.err
}

type recordingSink struct {
	mu      sync.Mutex
	samples []domain.Sample
}

func (s *recordingSink) Emit(ctx context.Context, sample domain.Sample) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.samples = append(s.samples, sample)
	return nil
}

func (s *recordingSink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.samples)
}

func TestCPUMetrics_Run(t *testing.T) {
	tests := []struct {
		name      string
		reader    *fakeReader
		wantErr   bool
		wantValue float64
	}{
		{
			name:      "emits reading",
			reader:    &fakeReader{value: 63.2},
			wantValue: 63.2,
		},
		{
			name:    "reader error",
			reader:  &fakeReader{err: errors.New("no /proc")},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := &recordingSink{}
			m := NewCPUMetrics("collector", time.Millisecond, tt.reader, sink)

			err := m.Run(context.Background())
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if sink.count() != 0 {
					t.Errorf("expected no samples on error, got %d", sink.count())
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if sink.count() != 1 {
				t.Fatalf("expected 1 sample, got %d", sink.count())
			}
			s := sink.samples[0]
			if s.Name != domain.CPUUsageMetric || s.Type != domain.MetricGauge {
				t.Errorf("unexpected sample: %+v", s)
			}
			if s.Value != tt.wantValue {
				t.Errorf("expected value %v, got %v", tt.wantValue, s.Value)
			}
			if s.Labels["source"] != "collector" {
				t.Errorf("expected source label collector, got %v", s.Labels)
			}
		})
	}
}

func TestService_Register(t *testing.T) {
	svc := NewService(logger.DefaultLogger())
	defer svc.Stop(context.Background())

	metric := NewCPUMetrics("collector", time.Millisecond, &fakeReader{}, &recordingSink{})

	if err := svc.Register(domain.MetricConfig{Name: "cpu", Interval: time.Second}, metric); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := svc.Register(domain.MetricConfig{Name: "cpu", Interval: time.Second}, metric)
	if err == nil {
		t.Error("expected duplicate registration error")
	}

	err = svc.Register(domain.MetricConfig{Name: "bad"}, metric)
	var valErr *validation.ValidationError
	if !errors.As(err, &valErr) {
		t.Errorf("expected validation error for zero interval, got %v", err)
	}
}

func TestService_StartStop(t *testing.T) {
	reader := &fakeReader{value: 10}
	sink := &recordingSink{}
	svc := NewService(logger.DefaultLogger())

	err := svc.Register(domain.MetricConfig{Name: "cpu", Interval: 5 * time.Millisecond}, NewCPUMetrics("collector", 0, reader, sink))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	svc.Start()

	deadline := time.Now().Add(2 * time.Second)
	for sink.count() < 3 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if sink.count() < 3 {
		t.Fatalf("expected at least 3 samples, got %d", sink.count())
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := svc.Stop(ctx); err != nil {
		t.Fatalf("unexpected stop error: %v", err)
	}

	calls := reader.calls.Load()
	time.Sleep(30 * time.Millisecond)
	if reader.calls.Load() != calls {
		t.Error("expected collection to stop after Stop")
	}
}

func TestService_RegisterAfterStart(t *testing.T) {
	sink := &recordingSink{}
	svc := NewService(logger.DefaultLogger())
	svc.Start()
	defer svc.Stop(context.Background())

	err := svc.Register(domain.MetricConfig{Name: "cpu", Interval: 5 * time.Millisecond}, NewCPUMetrics("collector", 0, &fakeReader{value: 1}, sink))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for sink.count() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if sink.count() == 0 {
		t.Error("expected metric registered after Start to run")
	}
}
