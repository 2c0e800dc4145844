package handlers

import (
	"context"
	"net/http"

	api "sensorapi/internal/api/application"
	sensordomain "sensorapi/internal/sensor/domain"
)

// SensorReader produces simulated readings
type SensorReader interface {
	Read(ctx context.Context) sensordomain.Reading
}

// SensorHandler handles simulated sensor queries
type SensorHandler struct {
	reader SensorReader
}

// NewSensorHandler creates a new sensor handler
func NewSensorHandler(reader SensorReader) *SensorHandler {
	return &SensorHandler{
		reader: reader,
	}
}

// GetReading handles GET /sensor
// @Summary      Sensor reading
// @Description  Returns a simulated temperature (20-40) and humidity (30-80) reading
// @Tags         sensor
// @Produce      json
// @Success      200  {object}  application.SensorReadingResponse
// @Router       /sensor [get]
func (h *SensorHandler) GetReading(w http.ResponseWriter, r *http.Request) {
	reading := h.reader.Read(r.Context())
	respondJSON(w, http.StatusOK, api.ToSensorReadingResponse(reading))
}
