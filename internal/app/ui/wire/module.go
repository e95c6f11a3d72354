package wire

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/fx"

	"logdeck/internal/app/bus"
	"logdeck/internal/app/export"
	"logdeck/internal/app/monitor"
	"logdeck/internal/app/store"
	"logdeck/internal/app/stream"
	"logdeck/internal/app/ui/console"
	"logdeck/internal/config"
	"logdeck/internal/config/logger"
)

// UI creates a Bubble Tea program for the console
type UI func(ctx context.Context) (*tea.Program, error)

// Module provides the UI factory
var Module = fx.Options(
	fx.Provide(NewUI),
)

// UIParams contains dependencies for creating the UI factory
type UIParams struct {
	fx.In

	Config   *config.Config
	Bus      bus.Bus
	Store    store.Store
	Streamer stream.Streamer
	Exporter export.Exporter
	Monitor  monitor.Monitor
	Logger   logger.Logger
}

// NewUI creates a factory function for constructing Bubble Tea programs
func NewUI(params UIParams) UI {
	return func(ctx context.Context) (*tea.Program, error) {
		model := console.NewModel(
			ctx,
			params.Config.UI.Theme,
			console.Deps{
				Bus:      params.Bus,
				Store:    params.Store,
				Streamer: params.Streamer,
				Exporter: params.Exporter,
				Monitor:  params.Monitor,
			},
			params.Logger,
		)

		p := tea.NewProgram(
			model,
			tea.WithAltScreen(),
			tea.WithContext(ctx),
		)

		params.Logger.Debug().Msg("TUI: Program created via factory")

		return p, nil
	}
}
