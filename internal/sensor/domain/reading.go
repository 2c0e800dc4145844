package domain

import (
	"math"
	"time"
)

// Range is a closed interval [Min, Max] a simulated value is drawn from
type Range struct {
	Min float64
	Max float64
}

var (
	TemperatureRange = Range{Min: 20, Max: 40}
	HumidityRange    = Range{Min: 30, Max: 80}
)

// Contains reports whether v lies inside the range
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Reading is a single simulated sensor reading
type Reading struct {
	Temperature float64
	Humidity    float64
	Timestamp   time.Time
}

// NewReading creates a new sensor reading
func NewReading(temperature, humidity float64, timestamp time.Time) Reading {
	return Reading{
		Temperature: temperature,
		Humidity:    humidity,
		Timestamp:   timestamp,
	}
}

// Random is a source of uniformly distributed floats in [0, 1)
type Random interface {
	Float64() float64
}

// Uniform draws a value uniformly from r using src, rounded to two decimals
func Uniform(src Random, r Range) float64 {
	v := r.Min + src.Float64()*(r.Max-r.Min)
	return clamp(RoundTo2(v), r)
}

// RoundTo2 rounds v half away from zero to two decimal places
func RoundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}

func clamp(v float64, r Range) float64 {
	return math.Min(math.Max(v, r.Min), r.Max)
}
