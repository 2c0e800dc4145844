package infrastructure

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"sensorapi/internal/metrics/domain"
)

type sinkEntry struct {
	metricType domain.MetricType
	labelNames []string

	gauge     *prometheus.GaugeVec
	counter   *prometheus.CounterVec
	histogram *prometheus.HistogramVec
}

// PrometheusSink exposes emitted samples as Prometheus collectors.
// A collector is registered the first time a sample name is seen; later
// samples with the same name must keep its type and label names.
type PrometheusSink struct {
	registry  *prometheus.Registry
	namespace string

	mu      sync.Mutex
	entries map[string]*sinkEntry
}

// NewPrometheusSink creates a sink backed by a fresh registry that also
// carries the Go runtime and process collectors
func NewPrometheusSink(namespace string) *PrometheusSink {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &PrometheusSink{
		registry:  reg,
		namespace: namespace,
		entries:   make(map[string]*sinkEntry),
	}
}

// Registry returns the registry so other components can add their own collectors
func (s *PrometheusSink) Registry() *prometheus.Registry {
	return s.registry
}

// Namespace returns the metric name prefix
func (s *PrometheusSink) Namespace() string {
	return s.namespace
}

// Handler serves the registry in the Prometheus exposition format
func (s *PrometheusSink) Handler() http.Handler {
	return promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{Registry: s.registry})
}

// Emit implements domain.Sink
func (s *PrometheusSink) Emit(ctx context.Context, sample domain.Sample) error {
	labelNames := make([]string, 0, len(sample.Labels))
	for name := range sample.Labels {
		labelNames = append(labelNames, name)
	}
	sort.Strings(labelNames)

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[sample.Name]
	if !ok {
		var err error
		entry, err = s.register(sample, labelNames)
		if err != nil {
			return err
		}
		s.entries[sample.Name] = entry
	} else if entry.metricType != sample.Type || !equalNames(entry.labelNames, labelNames) {
		return fmt.Errorf("sample %q does not match registered %s with labels %v", sample.Name, entry.metricType, entry.labelNames)
	}

	labels := prometheus.Labels(sample.Labels)
	switch entry.metricType {
	case domain.MetricGauge:
		entry.gauge.With(labels).Set(sample.Value)
	case domain.MetricCounter:
		if sample.Value < 0 {
			return fmt.Errorf("counter %q cannot decrease (got %v)", sample.Name, sample.Value)
		}
		entry.counter.With(labels).Add(sample.Value)
	case domain.MetricHistogram:
		entry.histogram.With(labels).Observe(sample.Value)
	}

	return nil
}

func (s *PrometheusSink) register(sample domain.Sample, labelNames []string) (*sinkEntry, error) {
	entry := &sinkEntry{metricType: sample.Type, labelNames: labelNames}
	help := fmt.Sprintf("%s %s emitted by %s", sample.Name, sample.Type, s.namespace)

	var collector prometheus.Collector
	switch sample.Type {
	case domain.MetricGauge:
		entry.gauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: s.namespace,
			Name:      sample.Name,
			Help:      help,
		}, labelNames)
		collector = entry.gauge
	case domain.MetricCounter:
		entry.counter = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: s.namespace,
			Name:      sample.Name,
			Help:      help,
		}, labelNames)
		collector = entry.counter
	case domain.MetricHistogram:
		entry.histogram = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: s.namespace,
			Name:      sample.Name,
			Help:      help,
			Buckets:   prometheus.DefBuckets,
		}, labelNames)
		collector = entry.histogram
	default:
		return nil, fmt.Errorf("unknown metric type %q for sample %q", sample.Type, sample.Name)
	}

	if err := s.registry.Register(collector); err != nil {
		return nil, fmt.Errorf("failed to register %q: %w", sample.Name, err)
	}

	return entry, nil
}

func equalNames(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
