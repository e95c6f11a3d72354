package store

import (
	"go.uber.org/fx"

	"logdeck/internal/app/bus"
	"logdeck/internal/config"
	"logdeck/internal/config/logger"
)

// Module provides the log store
var Module = fx.Options(
	fx.Provide(
		func(cfg *config.Config, b bus.Bus, log logger.Logger) Store {
			return New(cfg.Store.Capacity, b, log.WithComponent("STORE"))
		},
		func(s Store) Appender {
			return s
		},
	),
)
