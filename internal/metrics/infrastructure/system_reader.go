package infrastructure

import (
	"context"
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"

	"sensorapi/internal/metrics/domain"
)

// SystemMetricsReaderImpl implements the domain SystemMetricsReader interface
type SystemMetricsReaderImpl struct{}

// NewSystemMetricsReader creates a new system metrics reader implementation
func NewSystemMetricsReader() domain.SystemMetricsReader {
	return &SystemMetricsReaderImpl{}
}

// ReadCPUPercent measures combined utilisation of all CPUs over window
func (r *SystemMetricsReaderImpl) ReadCPUPercent(ctx context.Context, window time.Duration) (float64, error) {
	percents, err := cpu.PercentWithContext(ctx, window, false)
	if err != nil {
		return 0, fmt.Errorf("failed to read cpu utilisation: %w", err)
	}

	if len(percents) == 0 {
		return 0, fmt.Errorf("no cpu utilisation reported")
	}

	return clampPercent(percents[0]), nil
}

func clampPercent(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 100
	}
	return v
}
