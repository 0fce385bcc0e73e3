// Package testutil provides testing utilities for tally tests.
package testutil

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/Iron-Ham/tally/internal/event"
)

// ConfigHome points XDG_CONFIG_HOME at a fresh temporary directory for the
// duration of the test and returns the tally config directory inside it.
func ConfigHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return filepath.Join(dir, "tally")
}

// WriteFile writes content to name inside dir, creating parent
// directories, and returns the full path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	fullPath := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		t.Fatalf("failed to create directory for %s: %v", name, err)
	}
	if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write file %s: %v", name, err)
	}
	return fullPath
}

// WriteFiles writes every relative path in files under a new temporary
// directory and returns that directory.
func WriteFiles(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		WriteFile(t, dir, name, content)
	}
	return dir
}

// Recorder captures every event published on a bus.
// It is safe for concurrent use.
type Recorder struct {
	mu     sync.Mutex
	events []event.Event
}

// Record subscribes a new Recorder to all events on bus. The subscription
// is removed when the test completes.
func Record(t *testing.T, bus *event.Bus) *Recorder {
	t.Helper()

	r := &Recorder{}
	id := bus.SubscribeAll(func(e event.Event) {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.events = append(r.events, e)
	})
	t.Cleanup(func() { bus.Unsubscribe(id) })
	return r
}

// Events returns a copy of the recorded events in publish order.
func (r *Recorder) Events() []event.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]event.Event, len(r.events))
	copy(out, r.events)
	return out
}

// Types returns the type of each recorded event in publish order.
func (r *Recorder) Types() []string {
	events := r.Events()
	types := make([]string, len(events))
	for i, e := range events {
		types[i] = e.EventType()
	}
	return types
}

// Unlocks returns the recorded achievement unlocks in publish order.
func (r *Recorder) Unlocks() []event.AchievementUnlockedEvent {
	var out []event.AchievementUnlockedEvent
	for _, e := range r.Events() {
		if u, ok := e.(event.AchievementUnlockedEvent); ok {
			out = append(out, u)
		}
	}
	return out
}

// Reset discards everything recorded so far.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}
