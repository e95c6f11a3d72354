package logger

import (
	"io"

	"go.uber.org/fx"

	"logdeck/internal/config"
)

// Output selects where log events are written; a nil Writer means stdout
type Output struct {
	io.Writer
}

// Module provides the fx dependency injection options for the logger package
var Module = fx.Options(
	fx.Provide(func(cfg *config.Config, out Output) Logger {
		return NewLoggerWithOutput(cfg, out.Writer)
	}),
)
