package domain

import (
	"context"
	"time"
)

// Metric represents a periodically collected metric
type Metric interface {
	Run(ctx context.Context) error
}

// MetricConfig represents the schedule of a metric
type MetricConfig struct {
	Name     string
	Interval time.Duration
}

func (c *MetricConfig) Valid(ctx context.Context) map[string]string {
	problems := make(map[string]string, 2)

	if len(c.Name) == 0 {
		problems["name"] = "'name' is required"
	}

	if c.Interval <= 0 {
		problems["interval"] = "interval should be more than zero"
	}

	return problems
}

// CPUUsageMetric is the sample name used for CPU utilisation gauges
const CPUUsageMetric = "cpu_usage_percent"
