// @title           IoT Sensor API
// @version         1.0
// @description     Simulated IoT sensor readings and a synthetic CPU load endpoint for autoscaling demos.

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @BasePath  /

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	apiserver "sensorapi/internal/api"
	configapp "sensorapi/internal/config/application"
	"sensorapi/internal/infrastructure/logger"
	"sensorapi/internal/infrastructure/tracing"
	loadapp "sensorapi/internal/load/application"
	loaddomain "sensorapi/internal/load/domain"
	metricsapp "sensorapi/internal/metrics/application"
	metricsdomain "sensorapi/internal/metrics/domain"
	metricsinfra "sensorapi/internal/metrics/infrastructure"
	sensorapp "sensorapi/internal/sensor/application"
	sensorinfra "sensorapi/internal/sensor/infrastructure"
)

const metricsNamespace = "sensorapi"

func newApp() *cli.App {
	return &cli.App{
		Name:  "sensorapi",
		Usage: "IoT sensor demo API with a CPU load endpoint for autoscaling",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "host", Usage: "interface to bind (env SENSORAPI_HOST, default 0.0.0.0)"},
			&cli.StringFlag{Name: "port", Aliases: []string{"p"}, Usage: "port to bind (env SENSORAPI_PORT, default 80)"},
			&cli.StringFlag{Name: "log-level", Usage: "DEBUG, INFO, WARN or ERROR (env SENSORAPI_LOG_LEVEL)"},
			&cli.StringFlag{Name: "log-format", Usage: "text or json (env SENSORAPI_LOG_FORMAT)"},
			&cli.StringFlag{Name: "log-output", Usage: "stdout, stderr or a file path (env SENSORAPI_LOG_OUTPUT)"},
			&cli.StringFlag{Name: "env-file", Usage: "path of the .env file to load (default .env)"},
			&cli.BoolFlag{Name: "dev-mode", Usage: "serve Swagger UI under /swagger (env SENSORAPI_DEV_MODE)"},
			&cli.StringFlag{Name: "load-iterations", Usage: "number of squares summed per /load request (env SENSORAPI_LOAD_ITERATIONS, default 1000000)"},
			&cli.StringFlag{Name: "load-sample-window", Usage: "CPU sampling window of /load (env SENSORAPI_LOAD_SAMPLE_WINDOW, default 1s)"},
			&cli.StringFlag{Name: "cpu-collect-interval", Usage: "interval of the background CPU gauge, 0 disables (env SENSORAPI_CPU_COLLECT_INTERVAL, default 15s)"},
			&cli.StringFlag{Name: "write-timeout", Usage: "HTTP write timeout (env SENSORAPI_WRITE_TIMEOUT, default 15s)"},
			&cli.StringFlag{Name: "otlp-endpoint", Usage: "OTLP/HTTP traces URL, empty disables tracing (env SENSORAPI_OTLP_ENDPOINT)"},
			&cli.StringFlag{Name: "service-name", Usage: "service name reported to tracing (env SENSORAPI_SERVICE_NAME)"},
			&cli.StringFlag{Name: "environment", Usage: "deployment environment reported to tracing (env SENSORAPI_ENVIRONMENT)"},
		},
		Action: run,
	}
}

func run(c *cli.Context) error {
	bootLogger := logger.DefaultLogger()
	configapp.LoadEnvFile(bootLogger, c.String("env-file"))

	runtimeCfg, err := configapp.LoadRuntimeConfig(configapp.Flags{
		Host:               c.String("host"),
		Port:               c.String("port"),
		LogLevel:           c.String("log-level"),
		LogFormat:          c.String("log-format"),
		LogOutput:          c.String("log-output"),
		LoadIterations:     c.String("load-iterations"),
		LoadSampleWindow:   c.String("load-sample-window"),
		CPUCollectInterval: c.String("cpu-collect-interval"),
		WriteTimeout:       c.String("write-timeout"),
		OTLPEndpoint:       c.String("otlp-endpoint"),
		ServiceName:        c.String("service-name"),
		Environment:        c.String("environment"),
		DevMode:            c.Bool("dev-mode"),
	})
	if err != nil {
		return fmt.Errorf("failed to load runtime config: %w", err)
	}
	appLogger := logger.NewLogger(logger.Options{
		Level:  runtimeCfg.LogLevel,
		Format: runtimeCfg.LogFormat,
		Output: runtimeCfg.LogOutput,
	})
	logger.SetDefaultLogger(appLogger)

	appLogger.Info("Starting sensorapi", "version", "1.0", "addr", runtimeCfg.Addr())

	sigCtx, cancel := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	shutdownTracer, err := tracing.InitTracer(sigCtx, tracing.Config{
		ServiceName: runtimeCfg.ServiceName,
		Environment: runtimeCfg.Environment,
		Endpoint:    runtimeCfg.OTLPEndpoint,
	})
	if err != nil {
		appLogger.Error("Failed to initialize tracer", "err", err)
		return fmt.Errorf("failed to initialize tracer: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracer(ctx); err != nil {
			appLogger.Warn("Tracer shutdown error", "err", err)
		}
	}()

	sink := metricsinfra.NewPrometheusSink(metricsNamespace)
	systemReader := metricsinfra.NewSystemMetricsReader()

	// Background CPU gauge for scrapers
	collector := metricsapp.NewService(appLogger)
	if runtimeCfg.CPUCollectInterval > 0 {
		err := collector.Register(
			metricsdomain.MetricConfig{Name: "cpu", Interval: runtimeCfg.CPUCollectInterval},
			metricsapp.NewCPUMetrics("collector", 0, systemReader, sink),
		)
		if err != nil {
			return fmt.Errorf("failed to register cpu collector: %w", err)
		}
		appLogger.Debug("CPU collector registered", "interval", runtimeCfg.CPUCollectInterval)
	}

	sensorService := sensorapp.NewService(sensorinfra.NewRandom(0), time.Now)
	loadService := loadapp.NewService(
		appLogger,
		loaddomain.NewSquareSum(runtimeCfg.LoadIterations),
		systemReader,
		sink,
		runtimeCfg.LoadSampleWindow,
	)

	apiServer, err := apiserver.NewServer(appLogger, runtimeCfg, sensorService, loadService, sink)
	if err != nil {
		appLogger.Error("Failed to create API server", "err", err)
		return fmt.Errorf("failed to create API server: %w", err)
	}

	collector.Start()

	serverErrChan := make(chan error, 1)
	go func() {
		if err := apiServer.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrChan <- err
		}
	}()

	// Wait for interrupt or server error
	select {
	case <-sigCtx.Done():
		appLogger.Info("Shutdown signal received, starting graceful shutdown")
	case err := <-serverErrChan:
		appLogger.Error("Server error received", "err", err)
		stopCtx, stopCancel := context.WithTimeout(context.Background(), time.Second)
		defer stopCancel()
		_ = collector.Stop(stopCtx)
		return err
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), runtimeCfg.WriteTimeout)
	defer shutdownCancel()

	var shutdownErr error
	if err := apiServer.Shutdown(shutdownCtx); err != nil {
		shutdownErr = fmt.Errorf("API server shutdown error: %w", err)
	}

	if err := collector.Stop(shutdownCtx); err != nil {
		appLogger.Error("Collector shutdown error", "err", err)
		shutdownErr = errors.Join(shutdownErr, fmt.Errorf("collector shutdown error: %w", err))
	}

	if shutdownErr == nil {
		appLogger.Info("Graceful shutdown completed")
	}
	return shutdownErr
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logger.DefaultLogger().Error("Application error", "err", err)
		os.Exit(1)
	}
}
