package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/httplog/v3"

	api "sensorapi/internal/api/application"
	loaddomain "sensorapi/internal/load/domain"
	sharedlogger "sensorapi/internal/shared/logger"
)

// LoadRunner burns CPU and reports utilisation
type LoadRunner interface {
	Run(ctx context.Context) (loaddomain.Result, error)
}

// LoadHandler handles synthetic load requests
type LoadHandler struct {
	runner LoadRunner
	logger sharedlogger.Logger
}

// NewLoadHandler creates a new load handler
func NewLoadHandler(runner LoadRunner, logger sharedlogger.Logger) *LoadHandler {
	return &LoadHandler{
		runner: runner,
		logger: logger,
	}
}

// GenerateLoad handles GET /load
// @Summary      Generate CPU load
// @Description  Burns CPU, then samples system CPU utilisation over a one second window. Takes at least one second.
// @Tags         load
// @Produce      json
// @Success      200  {object}  application.LoadResponse
// @Failure      500  {object}  application.ErrorResponse
// @Router       /load [get]
func (h *LoadHandler) GenerateLoad(w http.ResponseWriter, r *http.Request) {
	result, err := h.runner.Run(r.Context())
	if err != nil {
		h.logger.Error("Failed to generate load", "err", err)
		respondJSONError(w, http.StatusInternalServerError, "Failed to generate load: "+err.Error())
		return
	}

	httplog.SetAttrs(r.Context(), slog.Float64("cpu_usage", result.CPUUsage))
	respondJSON(w, http.StatusOK, api.ToLoadResponse(result))
}
