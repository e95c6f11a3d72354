package app

import (
	"context"

	"go.uber.org/fx"

	"logdeck/internal/app/cli"
	"logdeck/internal/config/logger"
)

// App represents the main application container
type App struct {
	cli        cli.CLI
	shutdowner fx.Shutdowner
	done       chan struct{}
	log        logger.Logger
}

// NewApp creates a new application instance with its dependencies
func NewApp(cli cli.CLI, shutdowner fx.Shutdowner, log logger.Logger) *App {
	return &App{
		cli:        cli,
		shutdowner: shutdowner,
		done:       make(chan struct{}),
		log:        log,
	}
}

// Run executes the CLI and asks fx to shut down with its exit code
func (a *App) Run() {
	exitCode := a.execute()
	close(a.done)

	if err := a.shutdowner.Shutdown(fx.ExitCode(exitCode)); err != nil {
		a.log.Error().Err(err).Msg("Failed to shutdown application")
	}
}

// execute runs the CLI and returns exit code
func (a *App) execute() int {
	exitCode, err := a.cli.Execute()
	if err != nil {
		a.log.Error().Err(err).Msg("Command failed")
	}

	return exitCode
}

// Register registers the application's lifecycle hooks with fx
func Register(lifecycle fx.Lifecycle, app *App) {
	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go app.Run()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			select {
			case <-app.done:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	})
}
