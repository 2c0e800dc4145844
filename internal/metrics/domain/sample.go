package domain

import (
	"time"
)

// MetricType represents the type of metric
type MetricType string

const (
	MetricGauge     MetricType = "gauge"
	MetricCounter   MetricType = "counter"
	MetricHistogram MetricType = "histogram"
)

// Sample represents a metrics sample value object
type Sample struct {
	Timestamp time.Time
	Type      MetricType
	Name      string
	Value     float64
	Labels    map[string]string
}

// NewSample creates a new metrics sample
func NewSample(timestamp time.Time, metricType MetricType, name string, value float64, labels map[string]string) Sample {
	return Sample{
		Timestamp: timestamp,
		Type:      metricType,
		Name:      name,
		Value:     value,
		Labels:    labels,
	}
}
