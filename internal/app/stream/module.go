package stream

import (
	"context"
	"time"

	"go.uber.org/fx"

	"logdeck/internal/app/bus"
	"logdeck/internal/app/store"
	"logdeck/internal/config"
	"logdeck/internal/config/logger"
)

// Module provides the synthetic feed and seeds the store
var Module = fx.Module("stream",
	fx.Provide(
		NewTimerScheduler,
		NewGenerator,
		func(cfg *config.Config, scheduler Scheduler, generator Generator, appender store.Appender, b bus.Bus, log logger.Logger) Streamer {
			return NewStreamer(cfg.Stream.Interval, scheduler, generator, appender, time.Now, b, log.WithComponent("STREAM"))
		},
	),
	fx.Invoke(register),
)

func register(lc fx.Lifecycle, cfg *config.Config, appender store.Appender, s Streamer) {
	if cfg.UI.Seed {
		Seed(appender, time.Now())
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			s.Close()
			return nil
		},
	})
}
