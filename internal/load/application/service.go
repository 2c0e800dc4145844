package application

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"sensorapi/internal/infrastructure/tracing"
	"sensorapi/internal/load/domain"
	metricsdomain "sensorapi/internal/metrics/domain"
	sharedlogger "sensorapi/internal/shared/logger"
)

const tracerName = "sensorapi/internal/load"

// Service generates CPU load and reports the utilisation observed right after
type Service struct {
	logger       sharedlogger.Logger
	generator    domain.Generator
	systemReader metricsdomain.SystemMetricsReader
	sink         metricsdomain.Sink
	window       time.Duration
	tracer       trace.Tracer
}

// NewService creates a load service sampling CPU over window after each run.
// sink may be nil when no metrics are exported.
func NewService(
	logger sharedlogger.Logger,
	generator domain.Generator,
	systemReader metricsdomain.SystemMetricsReader,
	sink metricsdomain.Sink,
	window time.Duration,
) *Service {
	return &Service{
		logger:       logger,
		generator:    generator,
		systemReader: systemReader,
		sink:         sink,
		window:       window,
		tracer:       tracing.GetTracer(tracerName),
	}
}

// Run burns CPU, then samples utilisation for the configured window.
// The window always runs to completion, even if ctx is cancelled.
func (s *Service) Run(ctx context.Context) (domain.Result, error) {
	ctx, span := s.tracer.Start(ctx, "load.run")
	defer span.End()

	start := time.Now()

	_, genSpan := s.tracer.Start(ctx, "load.generate")
	_ = s.generator.Generate(ctx)
	genSpan.End()

	usage, err := s.systemReader.ReadCPUPercent(context.WithoutCancel(ctx), s.window)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "cpu sampling failed")
		return domain.Result{}, fmt.Errorf("failed to sample cpu usage: %w", err)
	}

	elapsed := time.Since(start)
	usage = roundTo1(usage)
	span.SetAttributes(
		attribute.Float64("load.cpu_usage", usage),
		attribute.String("load.window", s.window.String()),
	)

	s.record(ctx, usage, elapsed)
	s.logger.Debug("Load generated", "cpu_usage", usage, "elapsed", elapsed)

	return domain.Result{
		Message:  domain.ResultMessage,
		CPUUsage: usage,
	}, nil
}

func (s *Service) record(ctx context.Context, usage float64, elapsed time.Duration) {
	if s.sink == nil {
		return
	}

	now := time.Now()
	samples := []metricsdomain.Sample{
		metricsdomain.NewSample(now, metricsdomain.MetricGauge, metricsdomain.CPUUsageMetric, usage, map[string]string{"source": "load"}),
		metricsdomain.NewSample(now, metricsdomain.MetricCounter, "load_runs_total", 1, nil),
		metricsdomain.NewSample(now, metricsdomain.MetricHistogram, "load_duration_seconds", elapsed.Seconds(), nil),
	}

	for _, sample := range samples {
		if err := s.sink.Emit(ctx, sample); err != nil {
			s.logger.Warn("Failed to record load metric", "name", sample.Name, "err", err)
		}
	}
}

func roundTo1(v float64) float64 {
	return math.Round(v*10) / 10
}
