package stream

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/looplab/fsm"

	"logdeck/internal/app/bus"
	"logdeck/internal/app/errors"
	"logdeck/internal/app/store"
	"logdeck/internal/config"
	"logdeck/internal/config/logger"
)

// FSM states
const (
	Idle      = "idle"
	Streaming = "streaming"
)

// FSM events
const (
	Start = "start"
	Stop  = "stop"
)

// FSM callbacks
const (
	OnStreaming = "enter_streaming"
	OnIdle      = "enter_idle"
)

// Streamer appends a synthetic entry to the store every interval while streaming
type Streamer interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
	Toggle(ctx context.Context) error
	IsStreaming() bool
	State() string
	Interval() time.Duration
	Close()
}

type streamer struct {
	mu        sync.Mutex
	fsm       *fsm.FSM
	handle    Handle
	scheduler Scheduler
	generator Generator
	appender  store.Appender
	bus       bus.Bus
	interval  time.Duration
	now       func() time.Time
	log       logger.Logger
}

// NewStreamer creates an idle streamer; a non-positive interval falls back to the default
func NewStreamer(
	interval time.Duration,
	scheduler Scheduler,
	generator Generator,
	appender store.Appender,
	now func() time.Time,
	b bus.Bus,
	log logger.Logger,
) Streamer {
	if interval <= 0 {
		interval = config.DefaultStreamInterval
	}

	if now == nil {
		now = time.Now
	}

	if b == nil {
		b = bus.NoOp()
	}

	if log == nil {
		log = logger.NewNopLogger()
	}

	s := &streamer{
		scheduler: scheduler,
		generator: generator,
		appender:  appender,
		bus:       b,
		interval:  interval,
		now:       now,
		log:       log,
	}

	s.fsm = newStreamFSM(s)

	return s
}

func newStreamFSM(s *streamer) *fsm.FSM {
	return fsm.NewFSM(
		Idle,
		fsm.Events{
			{Name: Start, Src: []string{Idle}, Dst: Streaming},
			{Name: Stop, Src: []string{Streaming}, Dst: Idle},
		},
		fsm.Callbacks{
			"after_event": func(ctx context.Context, e *fsm.Event) {
				s.log.Debug().Msgf("STATE stream: %s → %s (trigger: %s)", e.Src, e.Dst, e.Event)
			},
			OnStreaming: func(ctx context.Context, e *fsm.Event) {
				s.handle = s.scheduler.Every(s.interval, s.tick)
				s.bus.Publish(bus.Message{
					Type: bus.EventStreamStarted,
					Data: bus.StreamChanged{Interval: s.interval},
				})
			},
			OnIdle: func(ctx context.Context, e *fsm.Event) {
				if s.handle != nil {
					s.handle.Cancel()
					s.handle = nil
				}

				s.bus.Publish(bus.Message{
					Type: bus.EventStreamStopped,
					Data: bus.StreamChanged{Interval: s.interval},
				})
			},
		},
	)
}

func (s *streamer) tick() {
	s.appender.Append(s.generator.Next(s.now()))
}

// Start begins streaming; calling it while already streaming does nothing
func (s *streamer) Start(ctx context.Context) error {
	return s.fire(ctx, Start)
}

// Stop ends streaming; no tick runs after it returns
func (s *streamer) Stop(ctx context.Context) error {
	return s.fire(ctx, Stop)
}

// Toggle switches between idle and streaming
func (s *streamer) Toggle(ctx context.Context) error {
	s.mu.Lock()
	event := Start
	if s.fsm.Current() == Streaming {
		event = Stop
	}
	s.mu.Unlock()

	return s.fire(ctx, event)
}

func (s *streamer) fire(ctx context.Context, event string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.fsm.Can(event) {
		return nil
	}

	if err := s.fsm.Event(ctx, event); err != nil {
		return fmt.Errorf("%w: %s from %s: %w", errors.ErrStreamTransition, event, s.fsm.Current(), err)
	}

	return nil
}

// IsStreaming reports whether the feed is running
func (s *streamer) IsStreaming() bool {
	return s.State() == Streaming
}

// State returns the current FSM state
func (s *streamer) State() string {
	return s.fsm.Current()
}

// Interval returns the tick period
func (s *streamer) Interval() time.Duration {
	return s.interval
}

// Close stops streaming if needed
func (s *streamer) Close() {
	if err := s.Stop(context.Background()); err != nil {
		s.log.Warn().Err(err).Msg("Failed to stop stream on close")
	}
}
