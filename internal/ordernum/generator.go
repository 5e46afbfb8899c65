// Package ordernum generates order numbers. Three interchangeable
// implementations exist; the active one is selected by configuration.
package ordernum

import (
	"fmt"         // Number formatting
	"math/rand"   // Random suffix for the time-based generator
	"strings"     // UUID cleanup
	"sync/atomic" // Sequence counter
	"time"        // Timestamps

	"github.com/google/uuid" // UUID source for the uuid generator
)

// Generator produces unique order numbers
type Generator interface {
	Generate() string // Returns the next order number
}

// UUIDGenerator builds order numbers from random UUIDs
type UUIDGenerator struct{}

// Generate returns "ORD-" plus the first 10 hex characters of a UUID
func (UUIDGenerator) Generate() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "") // Strip dashes
	return "ORD-" + strings.ToUpper(id[:10])            // Keep it short
}

// SequentialGenerator combines a unix timestamp with an atomic counter
type SequentialGenerator struct {
	counter atomic.Int64 // Process-local sequence
}

// Generate returns "ORD-<unix seconds>-<5 digit sequence>"
func (g *SequentialGenerator) Generate() string {
	seq := g.counter.Add(1) % 100000 // Reset after 99999
	return fmt.Sprintf("ORD-%d-%05d", time.Now().Unix(), seq)
}

// TimeBasedGenerator combines the last millisecond digits with a random suffix
type TimeBasedGenerator struct {
	Now func() time.Time // Clock, injectable for tests
}

// Generate returns "ORD-" plus the last 6 digits of the epoch millis and a
// 4 digit random suffix
func (g *TimeBasedGenerator) Generate() string {
	now := time.Now
	if g.Now != nil {
		now = g.Now // Use the injected clock
	}
	millis := fmt.Sprintf("%d", now().UnixMilli())
	last6 := millis[len(millis)-6:]                            // Last 6 digits
	return fmt.Sprintf("ORD-%s%04d", last6, rand.Intn(10000)) // Random 0-9999 suffix
}

// New returns the generator named by kind, defaulting to uuid
func New(kind string) Generator {
	switch strings.ToLower(kind) {
	case "sequential":
		return &SequentialGenerator{}
	case "timebased":
		return &TimeBasedGenerator{}
	default:
		return UUIDGenerator{}
	}
}
