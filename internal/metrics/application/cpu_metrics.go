package application

import (
	"context"
	"time"

	"sensorapi/internal/metrics/domain"
)

// CPUMetrics is an application service for CPU metrics collection
type CPUMetrics struct {
	Source       string
	Window       time.Duration
	sink         domain.Sink
	systemReader domain.SystemMetricsReader
}

// NewCPUMetrics creates a CPU collector emitting gauges labelled with source
func NewCPUMetrics(source string, window time.Duration, systemReader domain.SystemMetricsReader, sink domain.Sink) *CPUMetrics {
	return &CPUMetrics{
		Source:       source,
		Window:       window,
		sink:         sink,
		systemReader: systemReader,
	}
}

// Run collects and emits CPU metrics
func (m *CPUMetrics) Run(ctx context.Context) error {
	usage, err := m.systemReader.ReadCPUPercent(ctx, m.Window)
	if err != nil {
		return err
	}

	sample := domain.NewSample(
		time.Now(),
		domain.MetricGauge,
		domain.CPUUsageMetric,
		usage,
		map[string]string{
			"source": m.Source,
		},
	)

	return m.sink.Emit(ctx, sample)
}
