package handlers

import (
	"net/http"
	"time"

	api "sensorapi/internal/api/application"
)

// StatusHandler serves the root banner and the probe endpoint
type StatusHandler struct {
	now func() time.Time
}

// NewStatusHandler creates a new status handler
func NewStatusHandler(now func() time.Time) *StatusHandler {
	if now == nil {
		now = time.Now
	}
	return &StatusHandler{
		now: now,
	}
}

// Home handles GET /
// @Summary      Service info
// @Description  Returns the service banner, status and current Unix timestamp
// @Tags         status
// @Produce      json
// @Success      200  {object}  application.ServiceInfoResponse
// @Router       / [get]
func (h *StatusHandler) Home(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, api.NewServiceInfoResponse(h.now()))
}

// Health handles GET /health
// @Summary      Health check
// @Description  Liveness and readiness probe; always healthy
// @Tags         status
// @Produce      json
// @Success      200  {object}  application.HealthResponse
// @Router       /health [get]
func (h *StatusHandler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, api.HealthResponse{Status: api.StatusHealthy})
}
