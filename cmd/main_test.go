package main

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/fx/fxevent"

	"logdeck/internal/config"
	"logdeck/internal/config/logger"
)

func Test_LoadConfig(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := loadConfig()

	assert.NoError(t, err)
	assert.Equal(t, config.DefaultStoreCapacity, cfg.Store.Capacity)
	assert.Equal(t, config.DefaultStreamInterval, cfg.Stream.Interval)
}

func Test_CreateApp(t *testing.T) {
	tests := []struct {
		name  string
		level string
		noUI  bool
	}{
		{name: "info level with console", level: logger.InfoLevel, noUI: false},
		{name: "debug level headless", level: logger.DebugLevel, noUI: true},
		{name: "error level", level: logger.ErrorLevel, noUI: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			cfg.Logging.Level = tt.level

			app := createApp(cfg, tt.noUI)

			assert.NotNil(t, app)
			assert.NoError(t, app.Err())
		})
	}
}

func Test_HasNoUIFlag(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected bool
	}{
		{name: "no args", args: []string{}, expected: false},
		{name: "only flag", args: []string{"--no-ui"}, expected: true},
		{name: "flag after command", args: []string{"run", "--stream", "--no-ui"}, expected: true},
		{name: "other flags", args: []string{"run", "--stream"}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, hasNoUIFlag(tt.args))
		})
	}
}

func Test_LogOutput(t *testing.T) {
	assert.Equal(t, io.Discard, logOutput(false).Writer)
	assert.Equal(t, os.Stderr, logOutput(true).Writer)
}

func Test_CreateFxLogger(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		expected interface{}
	}{
		{name: "debug uses console logger", level: logger.DebugLevel, expected: &fxevent.ConsoleLogger{W: os.Stderr}},
		{name: "info is silent", level: logger.InfoLevel, expected: fxevent.NopLogger},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			cfg.Logging.Level = tt.level

			assert.Equal(t, tt.expected, createFxLogger(cfg)())
		})
	}
}
