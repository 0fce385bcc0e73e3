package tracker

import (
	"fmt"

	"github.com/google/uuid"
)

// Id kinds passed to IDGenerator.NewID.
const (
	KindTask = "task"
	KindNote = "note"
)

// Id strategy names accepted by NewIDGenerator.
const (
	StrategyCounter = "counter"
	StrategyUUID    = "uuid"
)

// IDGenerator produces ids that are unique per kind for the lifetime of
// the generator.
type IDGenerator interface {
	NewID(kind string) string
}

// CounterIDs issues "<kind>-<n>" ids from a per-kind counter starting at 1.
type CounterIDs struct {
	next map[string]uint64
}

// NewCounterIDs creates a CounterIDs with all counters at zero.
func NewCounterIDs() *CounterIDs {
	return &CounterIDs{next: make(map[string]uint64)}
}

// NewID returns the next id for kind.
func (c *CounterIDs) NewID(kind string) string {
	c.next[kind]++
	return fmt.Sprintf("%s-%d", kind, c.next[kind])
}

// UUIDIDs issues random version 4 UUIDs, ignoring kind.
type UUIDIDs struct{}

// NewID returns a fresh UUID string.
func (UUIDIDs) NewID(string) string {
	return uuid.NewString()
}

// NewIDGenerator returns the generator for a strategy name. Unknown names
// fall back to the counter strategy.
func NewIDGenerator(strategy string) IDGenerator {
	if strategy == StrategyUUID {
		return UUIDIDs{}
	}
	return NewCounterIDs()
}

// ValidStrategies lists the accepted id strategy names.
func ValidStrategies() []string {
	return []string{StrategyCounter, StrategyUUID}
}
