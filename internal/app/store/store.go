package store

import (
	"sync"

	"logdeck/internal/app/bus"
	"logdeck/internal/app/entry"
	"logdeck/internal/config"
	"logdeck/internal/config/logger"
)

// Appender accepts entries one at a time
type Appender interface {
	Append(e entry.Entry)
}

// Store is a bounded, most-recent-first collection of log entries
type Store interface {
	Appender
	// Snapshot returns a copy of the entries, newest first
	Snapshot() []entry.Entry
	// Find returns the entry with the given id if it is still retained
	Find(id string) (entry.Entry, bool)
	Len() int
	Capacity() int
}

// store keeps entries in a fixed-size ring; index tail-1 holds the newest entry
type store struct {
	mu       sync.RWMutex
	entries  []entry.Entry
	index    map[string]int // id -> physical slot
	head     int            // slot of the oldest entry
	tail     int            // slot the next entry is written to
	count    int
	capacity int
	bus      bus.Bus
	log      logger.Logger
}

// New creates a store holding at most capacity entries; non-positive capacity uses the default
func New(capacity int, b bus.Bus, log logger.Logger) Store {
	if capacity <= 0 {
		capacity = config.DefaultStoreCapacity
	}

	if b == nil {
		b = bus.NoOp()
	}

	if log == nil {
		log = logger.NewNopLogger()
	}

	return &store{
		entries:  make([]entry.Entry, capacity),
		index:    make(map[string]int, capacity),
		capacity: capacity,
		bus:      b,
		log:      log,
	}
}

// Append inserts the entry as the newest one, evicting the oldest when full
func (s *store) Append(e entry.Entry) {
	s.mu.Lock()

	if s.count == s.capacity {
		evicted := s.entries[s.head]
		if slot, ok := s.index[evicted.ID]; ok && slot == s.head {
			delete(s.index, evicted.ID)
		}

		s.head = (s.head + 1) % s.capacity
		s.count--

		s.log.Debug().Str("id", evicted.ID).Msg("Evicted oldest entry")
	}

	s.entries[s.tail] = e
	s.index[e.ID] = s.tail
	s.tail = (s.tail + 1) % s.capacity
	s.count++

	size := s.count

	s.mu.Unlock()

	s.bus.Publish(bus.Message{
		Type: bus.EventEntryAppended,
		Data: bus.EntryAppended{Entry: e, Size: size},
	})
}

// Snapshot returns the retained entries, newest first
func (s *store) Snapshot() []entry.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]entry.Entry, s.count)
	for i := 0; i < s.count; i++ {
		result[i] = s.entries[s.slot(i)]
	}

	return result
}

// Find returns the retained entry with the given id
func (s *store) Find(id string) (entry.Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	slot, ok := s.index[id]
	if !ok {
		return entry.Entry{}, false
	}

	return s.entries[slot], true
}

// Len returns the number of retained entries
func (s *store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.count
}

// Capacity returns the maximum number of retained entries
func (s *store) Capacity() int {
	return s.capacity
}

// slot maps a newest-first position to its physical ring index
func (s *store) slot(position int) int {
	return (s.tail - 1 - position + 2*s.capacity) % s.capacity
}
