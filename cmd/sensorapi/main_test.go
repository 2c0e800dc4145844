package main

import (
	"testing"
)

func TestNewApp_Flags(t *testing.T) {
	app := newApp()

	want := map[string]bool{
		"host": false, "port": false, "log-level": false, "log-format": false,
		"log-output": false, "env-file": false, "dev-mode": false,
		"load-iterations": false, "load-sample-window": false, "cpu-collect-interval": false,
		"write-timeout": false, "otlp-endpoint": false, "service-name": false, "environment": false,
	}

	for _, f := range app.Flags {
		for _, name := range f.Names() {
			if _, ok := want[name]; ok {
				want[name] = true
			}
		}
	}

	for name, found := range want {
		if !found {
			t.Errorf("expected flag --%s", name)
		}
	}
}

func TestRun_InvalidConfig(t *testing.T) {
	t.Setenv("SENSORAPI_PORT", "")
	t.Setenv("SENSORAPI_LOAD_SAMPLE_WINDOW", "")

	tests := []struct {
		name string
		args []string
	}{
		{"malformed port", []string{"sensorapi", "--env-file", t.TempDir() + "/none.env", "--port", "eighty"}},
		{"port out of range", []string{"sensorapi", "--env-file", t.TempDir() + "/none.env", "--port", "70000"}},
		{"window longer than write timeout", []string{"sensorapi", "--env-file", t.TempDir() + "/none.env", "--load-sample-window", "30s", "--write-timeout", "10s"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := newApp().Run(tt.args); err == nil {
				t.Error("expected configuration error, got nil")
			}
		})
	}
}
