package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"logdeck/internal/app"
	"logdeck/internal/config"
	"logdeck/internal/config/logger"
)

// main is the entry point for the application
func main() {
	runApp()
}

// runApp contains the main application logic
func runApp() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	noUI := hasNoUIFlag(os.Args[1:])
	application := createApp(cfg, noUI)
	application.Run()
}

// hasNoUIFlag checks if --no-ui flag is present in args
func hasNoUIFlag(args []string) bool {
	for _, arg := range args {
		if arg == "--no-ui" {
			return true
		}
	}

	return false
}

// loadConfig wraps config.Load for easier testing
func loadConfig() (*config.Config, error) {
	return config.Load()
}

// createApp creates the FX application with the given config
func createApp(cfg *config.Config, noUI bool) *fx.App {
	return fx.New(
		fx.WithLogger(createFxLogger(cfg)),
		fx.StopTimeout(config.ShutdownTimeout),
		fx.Supply(cfg),
		fx.Supply(logOutput(noUI)),
		app.Module,
	)
}

// logOutput silences logging while the console owns the terminal; headless mode logs to stderr
func logOutput(noUI bool) logger.Output {
	if noUI {
		return logger.Output{Writer: os.Stderr}
	}

	return logger.Output{Writer: io.Discard}
}

// createFxLogger returns an FX logger based on the config
func createFxLogger(cfg *config.Config) func() fxevent.Logger {
	return func() fxevent.Logger {
		if cfg.Logging.Level == logger.DebugLevel {
			return &fxevent.ConsoleLogger{W: os.Stderr}
		}

		return fxevent.NopLogger
	}
}
