package bus

import (
	"context"

	"go.uber.org/fx"

	"logdeck/internal/config"
	"logdeck/internal/config/logger"
)

// Module provides bus for dependency injection
var Module = fx.Module("bus",
	fx.Provide(func(cfg *config.Config, log logger.Logger) Bus {
		return New(cfg, log.WithComponent("BUS"))
	}),
	fx.Invoke(registerClose),
)

func registerClose(lc fx.Lifecycle, b Bus) {
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			b.Close()
			return nil
		},
	})
}
