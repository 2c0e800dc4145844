package application

import (
	"context"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"sensorapi/internal/shared/validation"
)

const envPrefix = "SENSORAPI_"

// Flags holds raw CLI flag values. Empty strings mean "not set on the command line".
type Flags struct {
	Host               string
	Port               string
	LogLevel           string
	LogFormat          string
	LogOutput          string
	LoadIterations     string
	LoadSampleWindow   string
	CPUCollectInterval string
	WriteTimeout       string
	OTLPEndpoint       string
	ServiceName        string
	Environment        string
	DevMode            bool
}

// RuntimeConfig holds all runtime configuration from CLI flags, environment variables, and .env file
type RuntimeConfig struct {
	// HTTP Configuration
	Host         string
	Port         int
	WriteTimeout time.Duration

	// Development Mode
	DevMode bool

	// Logging Configuration
	LogLevel  string
	LogFormat string
	LogOutput string

	// Load generation
	LoadIterations     int
	LoadSampleWindow   time.Duration
	CPUCollectInterval time.Duration

	// Tracing
	OTLPEndpoint string
	ServiceName  string
	Environment  string
}

// LoadRuntimeConfig loads configuration with precedence: CLI flags > env vars > .env file > defaults.
// Malformed numbers and durations are reported together as a validation error.
func LoadRuntimeConfig(flags Flags) (*RuntimeConfig, error) {
	problems := make(map[string]string)

	cfg := &RuntimeConfig{
		Host:               getValue(flags.Host, "HOST", "0.0.0.0"),
		Port:               getInt(problems, "port", flags.Port, "PORT", 80),
		WriteTimeout:       getDuration(problems, "write-timeout", flags.WriteTimeout, "WRITE_TIMEOUT", 15*time.Second),
		DevMode:            flags.DevMode || getBoolEnv("DEV_MODE", false),
		LogLevel:           getValue(flags.LogLevel, "LOG_LEVEL", "INFO"),
		LogFormat:          getValue(flags.LogFormat, "LOG_FORMAT", "text"),
		LogOutput:          getValue(flags.LogOutput, "LOG_OUTPUT", "stdout"),
		LoadIterations:     getInt(problems, "load-iterations", flags.LoadIterations, "LOAD_ITERATIONS", 1_000_000),
		LoadSampleWindow:   getDuration(problems, "load-sample-window", flags.LoadSampleWindow, "LOAD_SAMPLE_WINDOW", time.Second),
		CPUCollectInterval: getDuration(problems, "cpu-collect-interval", flags.CPUCollectInterval, "CPU_COLLECT_INTERVAL", 15*time.Second),
		OTLPEndpoint:       getValue(flags.OTLPEndpoint, "OTLP_ENDPOINT", ""),
		ServiceName:        getValue(flags.ServiceName, "SERVICE_NAME", "sensorapi"),
		Environment:        getValue(flags.Environment, "ENVIRONMENT", "development"),
	}

	if len(problems) > 0 {
		return nil, validation.NewValidationError(problems, "runtime")
	}

	return cfg, nil
}

// Addr returns the listen address of the HTTP server.
func (c *RuntimeConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Valid implements validation.Validator.
func (c *RuntimeConfig) Valid(ctx context.Context) map[string]string {
	problems := make(map[string]string)

	if c.Port < 1 || c.Port > 65535 {
		problems["port"] = "port must be between 1 and 65535"
	}
	if c.LoadIterations <= 0 {
		problems["load-iterations"] = "load iterations must be positive"
	}
	if c.LoadSampleWindow <= 0 {
		problems["load-sample-window"] = "sampling window must be positive"
	}
	if c.CPUCollectInterval < 0 {
		problems["cpu-collect-interval"] = "collect interval cannot be negative (0 disables the collector)"
	}
	if c.WriteTimeout <= c.LoadSampleWindow {
		problems["write-timeout"] = "write timeout must be longer than the load sampling window"
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		problems["log-format"] = "log format must be text or json"
	}

	return problems
}

// Validate checks that the configuration is usable
func (c *RuntimeConfig) Validate() error {
	return validation.Check(context.Background(), c, "runtime")
}

// getValue returns the first non-empty value from CLI flag, env var, or default
func getValue(cliValue, envKey, defaultValue string) string {
	if cliValue != "" {
		return cliValue
	}
	if envValue := os.Getenv(envPrefix + envKey); envValue != "" {
		return envValue
	}
	return defaultValue
}

func getInt(problems map[string]string, field, cliValue, envKey string, defaultValue int) int {
	raw := getValue(cliValue, envKey, "")
	if raw == "" {
		return defaultValue
	}
	v, err := strconv.Atoi(strings.ReplaceAll(raw, "_", ""))
	if err != nil {
		problems[field] = "invalid integer: " + raw
		return defaultValue
	}
	return v
}

func getDuration(problems map[string]string, field, cliValue, envKey string, defaultValue time.Duration) time.Duration {
	raw := getValue(cliValue, envKey, "")
	if raw == "" {
		return defaultValue
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		problems[field] = "invalid duration: " + raw
		return defaultValue
	}
	return v
}

// getBoolEnv gets a boolean environment variable
func getBoolEnv(key string, defaultValue bool) bool {
	value := strings.ToLower(os.Getenv(envPrefix + key))
	if value == "true" || value == "1" || value == "yes" {
		return true
	}
	if value == "false" || value == "0" || value == "no" {
		return false
	}
	return defaultValue
}
