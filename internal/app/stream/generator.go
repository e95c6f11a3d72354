package stream

import (
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"logdeck/internal/app/entry"
)

// Synthetic message and source pools
var (
	Messages = []string{
		"New workflow initiated",
		"Token limit check completed",
		"Storage cleanup process started",
		"System health check passed",
		"API rate limit warning",
		"Database connection established",
	}

	Sources = []string{
		"workflow-engine",
		"token-service",
		"storage-monitor",
		"system",
	}
)

// Generator produces synthetic log entries
type Generator interface {
	Next(now time.Time) entry.Entry
}

type generator struct {
	intn  func(n int) int
	newID func() string
}

// NewGenerator creates a generator with uniform random picks and uuid ids
func NewGenerator() Generator {
	return &generator{
		intn:  rand.IntN, //nolint:gosec // synthetic data, not security sensitive
		newID: uuid.NewString,
	}
}

// Next builds an entry stamped with now; details are never set
func (g *generator) Next(now time.Time) entry.Entry {
	return entry.Entry{
		ID:        g.newID(),
		Timestamp: now,
		Level:     entry.Levels[g.intn(len(entry.Levels))],
		Category:  entry.Categories[g.intn(len(entry.Categories))],
		Message:   Messages[g.intn(len(Messages))],
		Source:    Sources[g.intn(len(Sources))],
	}
}
