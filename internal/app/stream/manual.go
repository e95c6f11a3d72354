package stream

import (
	"sync"
	"time"
)

// ManualScheduler is a Scheduler driven by simulated time, used for replays and tests
type ManualScheduler struct {
	mu    sync.Mutex
	now   time.Time
	tasks []*manualTask
}

type manualTask struct {
	interval  time.Duration
	due       time.Time
	fn        func()
	cancelled bool
}

// NewManualScheduler creates a scheduler whose clock starts at start
func NewManualScheduler(start time.Time) *ManualScheduler {
	return &ManualScheduler{now: start}
}

// Every registers fn to run each time the simulated clock crosses another interval
func (m *ManualScheduler) Every(interval time.Duration, fn func()) Handle {
	m.mu.Lock()
	defer m.mu.Unlock()

	task := &manualTask{
		interval: interval,
		due:      m.now.Add(interval),
		fn:       fn,
	}

	m.tasks = append(m.tasks, task)

	return &manualHandle{scheduler: m, task: task}
}

// Now returns the simulated clock
func (m *ManualScheduler) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.now
}

// Advance moves the clock forward by d, running every due callback in due order
func (m *ManualScheduler) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now.Add(d)
	m.mu.Unlock()

	for {
		m.mu.Lock()

		task := m.nextDue(target)
		if task == nil {
			m.now = target
			m.mu.Unlock()

			return
		}

		m.now = task.due
		task.due = task.due.Add(task.interval)
		fn := task.fn

		m.mu.Unlock()

		fn()
	}
}

// Pending returns the number of live tasks
func (m *ManualScheduler) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	count := 0

	for _, task := range m.tasks {
		if !task.cancelled {
			count++
		}
	}

	return count
}

func (m *ManualScheduler) nextDue(target time.Time) *manualTask {
	var earliest *manualTask

	for _, task := range m.tasks {
		if task.cancelled || task.due.After(target) {
			continue
		}

		if earliest == nil || task.due.Before(earliest.due) {
			earliest = task
		}
	}

	return earliest
}

type manualHandle struct {
	scheduler *ManualScheduler
	task      *manualTask
}

// Cancel marks the task dead so Advance skips it
func (h *manualHandle) Cancel() {
	h.scheduler.mu.Lock()
	defer h.scheduler.mu.Unlock()

	h.task.cancelled = true
}
