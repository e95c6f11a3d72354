package export

import (
	"go.uber.org/fx"

	"logdeck/internal/app/bus"
	"logdeck/internal/config"
	"logdeck/internal/config/logger"
)

// Module provides the exporter
var Module = fx.Options(
	fx.Provide(func(cfg *config.Config, b bus.Bus, log logger.Logger) Exporter {
		return New(cfg, b, log.WithComponent("EXPORT"))
	}),
)
