package application

import (
	"time"

	loaddomain "sensorapi/internal/load/domain"
	sensordomain "sensorapi/internal/sensor/domain"
)

const (
	// ServiceMessage is the banner returned by the root route
	ServiceMessage = "IoT Sensor API Running!"
	// StatusHealthy is the only status this service reports
	StatusHealthy = "healthy"
)

// ServiceInfoResponse represents the root route payload
type ServiceInfoResponse struct {
	Message   string  `json:"message" example:"IoT Sensor API Running!"`
	Status    string  `json:"status" example:"healthy"`
	Timestamp float64 `json:"timestamp" example:"1700000000.123456"`
}

// SensorReadingResponse represents a simulated sensor reading in API responses
type SensorReadingResponse struct {
	Temperature float64 `json:"temperature" example:"27.41"`
	Humidity    float64 `json:"humidity" example:"55.02"`
	Timestamp   float64 `json:"timestamp" example:"1700000000.123456"`
}

// HealthResponse represents the liveness/readiness probe payload
type HealthResponse struct {
	Status string `json:"status" example:"healthy"`
}

// LoadResponse represents the outcome of a load run in API responses
type LoadResponse struct {
	Message  string  `json:"message" example:"Load generated"`
	CPUUsage float64 `json:"cpu_usage" example:"73.4"`
}

// ErrorResponse represents an error in API responses
type ErrorResponse struct {
	Error string `json:"error"`
}

// EpochSeconds converts t to fractional seconds since the Unix epoch
func EpochSeconds(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}

// NewServiceInfoResponse builds the root route payload stamped with now
func NewServiceInfoResponse(now time.Time) ServiceInfoResponse {
	return ServiceInfoResponse{
		Message:   ServiceMessage,
		Status:    StatusHealthy,
		Timestamp: EpochSeconds(now),
	}
}

// ToSensorReadingResponse converts a domain reading to an API response
func ToSensorReadingResponse(r sensordomain.Reading) SensorReadingResponse {
	return SensorReadingResponse{
		Temperature: r.Temperature,
		Humidity:    r.Humidity,
		Timestamp:   EpochSeconds(r.Timestamp),
	}
}

// ToLoadResponse converts a domain load result to an API response
func ToLoadResponse(r loaddomain.Result) LoadResponse {
	return LoadResponse{
		Message:  r.Message,
		CPUUsage: r.CPUUsage,
	}
}
