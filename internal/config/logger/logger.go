//go:generate mockgen -source=logger.go -destination=logger_mock.go -package=logger
package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"

	"logdeck/internal/config"
)

// Logger configuration constants
const (
	DebugLevel = "debug"
	InfoLevel  = "info"
	WarnLevel  = "warn"
	ErrorLevel = "error"
	FatalLevel = "fatal"
	PanicLevel = "panic"
	TraceLevel = "trace"

	ConsoleFormat = "console"
	JSONFormat    = "json"

	TimeFormat = "15:04:05.000"
)

// Logger interface for application logging
type Logger interface {
	Debug() *zerolog.Event
	Info() *zerolog.Event
	Warn() *zerolog.Event
	Error() *zerolog.Event
	WithComponent(name string) Logger
}

// AppLogger represents a logger implementation using zerolog
type AppLogger struct {
	log zerolog.Logger
}

// NewLogger creates a new logger instance writing to stdout
func NewLogger(cfg *config.Config) Logger {
	return NewLoggerWithOutput(cfg, nil)
}

// NewLoggerWithOutput creates a new logger instance with a custom output writer
func NewLoggerWithOutput(cfg *config.Config, customOutput io.Writer) Logger {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	zerolog.TimeFieldFormat = time.RFC3339Nano

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = InfoLevel
	}

	if cfg.Logging.Format == "" {
		cfg.Logging.Format = ConsoleFormat
	}

	var output io.Writer

	switch {
	case customOutput != nil:
		output = customOutput
	case cfg.Logging.Format == JSONFormat:
		output = os.Stdout
	default:
		output = newConsoleWriter(os.Stdout)
	}

	logger := zerolog.
		New(output).
		Level(getLogLevel(cfg.Logging.Level)).
		With().
		Timestamp().
		Str("app", config.AppName).
		Str("version", config.Version).
		Logger()

	return &AppLogger{log: logger}
}

// NewNopLogger returns a logger that drops every event
func NewNopLogger() Logger {
	return &AppLogger{log: zerolog.Nop()}
}

// Debug returns a debug level Event for logging debug messages
func (l *AppLogger) Debug() *zerolog.Event {
	return l.log.Debug()
}

// Info returns an info level Event for logging informational messages
func (l *AppLogger) Info() *zerolog.Event {
	return l.log.Info()
}

// Warn returns a warn level Event for logging warning messages
func (l *AppLogger) Warn() *zerolog.Event {
	return l.log.Warn()
}

// Error returns an error level Event for logging error messages
func (l *AppLogger) Error() *zerolog.Event {
	return l.log.Error()
}

// WithComponent creates a new logger with a component name for contextual logging
func (l *AppLogger) WithComponent(name string) Logger {
	return &AppLogger{
		log: l.log.With().Str("component", name).Logger(),
	}
}

// newConsoleWriter creates a console writer that renders the component as a [TAG] prefix
func newConsoleWriter(out io.Writer) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: TimeFormat,
		FormatFieldName: func(i interface{}) string {
			return fmt.Sprintf("%s=", i)
		},
		FormatPrepare: func(m map[string]interface{}) error {
			if component, ok := m["component"].(string); ok {
				m["component"] = fmt.Sprintf("[%s]", component)
			}

			delete(m, "app")
			delete(m, "version")

			return nil
		},
		PartsOrder: []string{
			zerolog.TimestampFieldName,
			zerolog.LevelFieldName,
			"component",
			zerolog.MessageFieldName,
		},
		FieldsExclude: []string{"component"},
	}
}

// getLogLevel converts string level to zerolog.Level
func getLogLevel(level string) zerolog.Level {
	switch level {
	case DebugLevel:
		return zerolog.DebugLevel
	case InfoLevel:
		return zerolog.InfoLevel
	case WarnLevel:
		return zerolog.WarnLevel
	case ErrorLevel:
		return zerolog.ErrorLevel
	case FatalLevel:
		return zerolog.FatalLevel
	case PanicLevel:
		return zerolog.PanicLevel
	case TraceLevel:
		return zerolog.TraceLevel
	default:
		return zerolog.InfoLevel
	}
}
