package infrastructure

import (
	"context"
	"testing"
	"time"
)

func TestSystemMetricsReader_ReadCPUPercent(t *testing.T) {
	reader := NewSystemMetricsReader()
	window := 100 * time.Millisecond

	start := time.Now()
	v, err := reader.ReadCPUPercent(context.Background(), window)
	elapsed := time.Since(start)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v < 0 || v > 100 {
		t.Errorf("expected percentage in [0, 100], got %v", v)
	}
	if elapsed < window {
		t.Errorf("expected read to block for at least %s, took %s", window, elapsed)
	}
}

func TestSystemMetricsReader_ZeroWindow(t *testing.T) {
	reader := NewSystemMetricsReader()

	// Each call reports utilisation since the previous one
	for i := 0; i < 3; i++ {
		start := time.Now()
		v, err := reader.ReadCPUPercent(context.Background(), 0)
		elapsed := time.Since(start)

		if err != nil {
			t.Fatalf("call %d: unexpected error: %v", i, err)
		}
		if v < 0 || v > 100 {
			t.Errorf("call %d: expected percentage in [0, 100], got %v", i, v)
		}
		if elapsed > 50*time.Millisecond {
			t.Errorf("call %d: expected zero window not to block, took %s", i, elapsed)
		}
	}
}

func TestSystemMetricsReader_CancelledContext(t *testing.T) {
	reader := NewSystemMetricsReader()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := reader.ReadCPUPercent(ctx, time.Second); err == nil {
		t.Error("expected error for cancelled context")
	}
}

func TestClampPercent(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-3, 0},
		{0, 0},
		{42.1, 42.1},
		{100, 100},
		{100.4, 100},
	}

	for _, tt := range tests {
		if got := clampPercent(tt.in); got != tt.want {
			t.Errorf("clampPercent(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
