//go:generate mockgen -source=bus.go -destination=bus_mock.go -package=bus
package bus

import (
	"context"
	"fmt"
	"sync"
	"time"

	"logdeck/internal/app/entry"
	"logdeck/internal/config"
	"logdeck/internal/config/logger"
)

// MessageType represents the type of message
type MessageType string

// Event types
const (
	EventEntryAppended  MessageType = "entry_appended"
	EventStreamStarted  MessageType = "stream_started"
	EventStreamStopped  MessageType = "stream_stopped"
	EventExportFinished MessageType = "export_finished"
)

// Message represents a bus message
type Message struct {
	Type      MessageType
	Timestamp time.Time
	Data      interface{}
	Critical  bool
}

// EntryAppended is published after the store accepted an entry
type EntryAppended struct {
	Entry entry.Entry
	Size  int
}

// StreamChanged is published when the synthetic feed starts or stops
type StreamChanged struct {
	Interval time.Duration
}

// ExportFinished reports the outcome of an export
type ExportFinished struct {
	Path  string
	Count int
	Error error
}

// Bus handles pub/sub messaging
type Bus interface {
	Subscribe(ctx context.Context) <-chan Message
	Publish(msg Message)
	Close()
}

// bus implements the Bus interface with pub/sub messaging
type bus struct {
	cfg         *config.Config
	subscribers []chan Message
	mu          sync.RWMutex
	closed      bool
	log         logger.Logger
}

// New creates a new Bus
func New(cfg *config.Config, log logger.Logger) Bus {
	return &bus{
		cfg:         cfg,
		subscribers: make([]chan Message, 0),
		log:         log,
	}
}

// Subscribe creates a new subscription channel
func (b *bus) Subscribe(ctx context.Context) <-chan Message {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan Message, b.cfg.Bus.Buffer)

	if b.closed {
		close(ch)
		return ch
	}

	b.subscribers = append(b.subscribers, ch)

	go func() {
		<-ctx.Done()
		b.unsubscribe(ch)
	}()

	return ch
}

// Publish sends a message to all subscribers, dropping it for full subscribers unless critical
func (b *bus) Publish(msg Message) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return
	}

	msg.Timestamp = time.Now()

	if b.log != nil {
		b.log.Debug().Msgf("%s %s", msg.Type, formatData(msg.Data))
	}

	for _, ch := range b.subscribers {
		select {
		case ch <- msg:
		default:
			if msg.Critical {
				go func(c chan Message, m Message) {
					defer func() { recover() }() //nolint:errcheck // send on closed channel after unsubscribe

					c <- m
				}(ch, msg)
			}
		}
	}
}

// Close closes all subscriber channels
func (b *bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}

	b.closed = true

	for _, ch := range b.subscribers {
		close(ch)
	}

	b.subscribers = nil
}

func (b *bus) unsubscribe(ch chan Message) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, sub := range b.subscribers {
		if sub == ch {
			b.subscribers = append(b.subscribers[:i], b.subscribers[i+1:]...)

			close(ch)

			break
		}
	}
}

func formatData(data interface{}) string {
	switch d := data.(type) {
	case EntryAppended:
		return fmt.Sprintf("{id: %s, level: %s, size: %d}", d.Entry.ID, d.Entry.Level, d.Size)
	case StreamChanged:
		return fmt.Sprintf("{interval: %s}", d.Interval)
	case ExportFinished:
		return fmt.Sprintf("{path: %s, count: %d, error: %v}", d.Path, d.Count, d.Error)
	case nil:
		return "{}"
	default:
		return fmt.Sprintf("%+v", data)
	}
}

// NoOp returns a no-op bus for when messaging is disabled
func NoOp() Bus {
	return &noOpBus{}
}

// noOpBus implements Bus interface with no-op methods for testing
type noOpBus struct{}

func (n *noOpBus) Subscribe(ctx context.Context) <-chan Message {
	ch := make(chan Message)

	go func() {
		<-ctx.Done()
		close(ch)
	}()

	return ch
}

func (n *noOpBus) Publish(msg Message) {}
func (n *noOpBus) Close()              {}
