package generator

import (
	"go.uber.org/fx"

	"logdeck/internal/config/logger"
)

// Module provides the config file generator
var Module = fx.Options(
	fx.Provide(func(log logger.Logger) Generator {
		return NewGenerator(log.WithComponent("INIT"))
	}),
)
