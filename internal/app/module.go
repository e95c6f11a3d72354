package app

import (
	"go.uber.org/fx"

	"logdeck/internal/app/bus"
	"logdeck/internal/app/cli"
	"logdeck/internal/app/export"
	"logdeck/internal/app/generator"
	"logdeck/internal/app/monitor"
	"logdeck/internal/app/store"
	"logdeck/internal/app/stream"
	"logdeck/internal/app/ui/wire"
	"logdeck/internal/config/logger"
)

// Module wires the whole application
var Module = fx.Options(
	logger.Module,
	bus.Module,
	store.Module,
	stream.Module,
	export.Module,
	monitor.Module,
	generator.Module,
	wire.Module,
	cli.Module,
	fx.Provide(NewApp),
	fx.Invoke(Register),
)
