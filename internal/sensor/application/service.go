package application

import (
	"context"
	"time"

	"sensorapi/internal/sensor/domain"
)

// Service produces simulated sensor readings
type Service struct {
	random domain.Random
	now    func() time.Time
}

// NewService creates a sensor service drawing from random and stamping with now
func NewService(random domain.Random, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{
		random: random,
		now:    now,
	}
}

// Read returns a fresh reading. Temperature is drawn before humidity.
func (s *Service) Read(ctx context.Context) domain.Reading {
	temperature := domain.Uniform(s.random, domain.TemperatureRange)
	humidity := domain.Uniform(s.random, domain.HumidityRange)
	return domain.NewReading(temperature, humidity, s.now())
}
