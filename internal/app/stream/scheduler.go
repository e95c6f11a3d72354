package stream

import (
	"sync"
	"time"
)

// Handle is a cancellable periodic task
type Handle interface {
	// Cancel stops the task; once it returns the callback never runs again
	Cancel()
}

// Scheduler runs a callback at a fixed interval
type Scheduler interface {
	Every(interval time.Duration, fn func()) Handle
}

// timerScheduler re-arms a time.AfterFunc timer after every tick
type timerScheduler struct{}

// NewTimerScheduler creates a wall-clock Scheduler
func NewTimerScheduler() Scheduler {
	return &timerScheduler{}
}

// Every schedules fn to run every interval until the handle is cancelled
func (s *timerScheduler) Every(interval time.Duration, fn func()) Handle {
	h := &timerHandle{
		interval: interval,
		fn:       fn,
	}

	h.mu.Lock()
	h.timer = time.AfterFunc(interval, h.fire)
	h.mu.Unlock()

	return h
}

// timerHandle runs fn while holding mu so Cancel waits out an in-flight tick
type timerHandle struct {
	mu        sync.Mutex
	interval  time.Duration
	fn        func()
	timer     *time.Timer
	cancelled bool
}

func (h *timerHandle) fire() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.cancelled {
		return
	}

	h.timer = time.AfterFunc(h.interval, h.fire)
	h.fn()
}

// Cancel stops the timer and discards any tick that already fired but has not run
func (h *timerHandle) Cancel() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.cancelled = true

	if h.timer != nil {
		h.timer.Stop()
		h.timer = nil
	}
}
