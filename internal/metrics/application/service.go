package application

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"sensorapi/internal/metrics/domain"
	sharedlogger "sensorapi/internal/shared/logger"
	"sensorapi/internal/shared/validation"
)

// MetricInstance represents a scheduled metric collection instance
type MetricInstance struct {
	Metric domain.Metric
	Config domain.MetricConfig
}

// Service runs registered metrics on their own tickers until stopped
type Service struct {
	logger sharedlogger.Logger

	mu      sync.Mutex
	metrics map[string]*MetricInstance
	started bool

	wg sync.WaitGroup

	ctx    context.Context
	cancel context.CancelFunc
}

// NewService creates a new metrics service
func NewService(logger sharedlogger.Logger) *Service {
	ctx, cancel := context.WithCancel(context.Background())
	return &Service{
		logger:  logger,
		metrics: make(map[string]*MetricInstance),
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Register schedules metric according to cfg. Metrics registered after
// Start begin running immediately.
func (s *Service) Register(cfg domain.MetricConfig, metric domain.Metric) error {
	if err := validation.Check(s.ctx, &cfg, "metrics", cfg.Name); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.metrics[cfg.Name]; exists {
		return fmt.Errorf("metric %q already registered", cfg.Name)
	}

	inst := &MetricInstance{Metric: metric, Config: cfg}
	s.metrics[cfg.Name] = inst
	if s.started {
		s.startInstanceUnsynced(inst)
	}

	return nil
}

// Start launches every registered metric
func (s *Service) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return
	}
	s.started = true

	for _, inst := range s.metrics {
		s.startInstanceUnsynced(inst)
	}
	s.logger.Debug("Metrics collection started", "count", len(s.metrics))
}

// Stop stops all metrics collection
func (s *Service) Stop(ctx context.Context) error {
	s.cancel()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-done:
		return nil
	}
}

func (s *Service) startInstanceUnsynced(inst *MetricInstance) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.runMetric(inst)
	}()
}

func (s *Service) runMetric(inst *MetricInstance) {
	ticker := time.NewTicker(inst.Config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			err := inst.Metric.Run(s.ctx)
			if errors.Is(err, context.Canceled) {
				return
			}
			if err != nil {
				s.logger.Warn("Metrics tick error", "name", inst.Config.Name, "err", err)
			}
		case <-s.ctx.Done():
			return
		}
	}
}
