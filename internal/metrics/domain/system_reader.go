package domain

import (
	"context"
	"time"
)

// SystemMetricsReader defines the interface for reading system metrics
// This interface abstracts system-level operations from the domain layer
type SystemMetricsReader interface {
	// ReadCPUPercent blocks for window and returns the system-wide CPU
	// utilisation over it as a percentage in [0, 100]. A zero window reports
	// utilisation since the previous zero-window call without blocking.
	ReadCPUPercent(ctx context.Context, window time.Duration) (float64, error)
}
