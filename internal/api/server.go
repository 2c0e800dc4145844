package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	_ "sensorapi/docs" // Swagger docs

	"sensorapi/internal/api/handlers"
	apimiddleware "sensorapi/internal/api/middleware"
	configapp "sensorapi/internal/config/application"
	metricsinfra "sensorapi/internal/metrics/infrastructure"
	sharedlogger "sensorapi/internal/shared/logger"
)

// Server represents the API server
type Server struct {
	httpServer *http.Server
	logger     sharedlogger.Logger
}

// NewServer creates a new API server
func NewServer(
	logger sharedlogger.Logger,
	runtimeCfg *configapp.RuntimeConfig,
	sensorReader handlers.SensorReader,
	loadRunner handlers.LoadRunner,
	sink *metricsinfra.PrometheusSink,
) (*Server, error) {
	if err := runtimeCfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid runtime configuration: %w", err)
	}

	// Initialize handlers
	statusHandler := handlers.NewStatusHandler(time.Now)
	sensorHandler := handlers.NewSensorHandler(sensorReader)
	loadHandler := handlers.NewLoadHandler(loadRunner, logger)
	httpMetrics := apimiddleware.NewHTTPMetrics(sink.Registry(), sink.Namespace())

	// Setup chi router
	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	// HTTP logging middleware - need concrete slog.Logger for httplog
	var slogLogger *slog.Logger
	if infraLogger, ok := logger.(interface{ SLog() *slog.Logger }); ok {
		slogLogger = infraLogger.SLog()
	} else {
		slogLogger = slog.Default()
	}

	r.Use(httplog.RequestLogger(slogLogger, &httplog.Options{
		Level:             slog.LevelInfo,
		Schema:            httplog.SchemaECS.Concise(true),
		LogRequestHeaders: []string{}, // Log no headers by default to reduce verbosity
		// Probes and scrapes hit these every few seconds
		Skip: func(req *http.Request, respStatus int) bool {
			return respStatus < 400 && (req.URL.Path == "/health" || req.URL.Path == "/metrics")
		},
	}))

	// The frontend is hosted separately
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	r.Use(httpMetrics.Handler)

	// Swagger UI (only in dev mode)
	if runtimeCfg.DevMode {
		swaggerHandler := httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
		)
		r.Handle("/swagger/*", swaggerHandler)
		r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/swagger/", http.StatusMovedPermanently)
		})
	}

	// Routes
	r.Get("/", statusHandler.Home)
	r.Get("/sensor", sensorHandler.GetReading)
	r.Get("/health", statusHandler.Health)
	r.Get("/load", loadHandler.GenerateLoad)
	r.Method(http.MethodGet, "/metrics", sink.Handler())

	httpServer := &http.Server{
		Addr:         runtimeCfg.Addr(),
		Handler:      otelhttp.NewHandler(r, runtimeCfg.ServiceName),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: runtimeCfg.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	logger.Debug("Server configured",
		"addr", httpServer.Addr,
		"dev_mode", runtimeCfg.DevMode,
		"middleware", []string{"RequestID", "RealIP", "Recoverer", "httplog", "cors", "prometheus", "otelhttp"},
	)

	return &Server{
		httpServer: httpServer,
		logger:     logger,
	}, nil
}

// Handler returns the fully wrapped HTTP handler
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start binds the configured address and serves until shutdown
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		s.logger.Error("Failed to bind", "addr", s.httpServer.Addr, "err", err)
		return fmt.Errorf("failed to bind %s: %w", s.httpServer.Addr, err)
	}
	return s.Serve(ln)
}

// Serve serves HTTP on an already bound listener
func (s *Server) Serve(ln net.Listener) error {
	s.logger.Info("Starting HTTP server", "addr", ln.Addr().String())
	err := s.httpServer.Serve(ln)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.logger.Error("Server error", "err", err)
	}
	return err
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		s.logger.Error("Server shutdown error", "err", err)
	} else {
		s.logger.Info("Server shutdown complete")
	}
	return err
}
