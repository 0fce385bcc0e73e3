package event

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/Iron-Ham/tally/internal/logging"
)

func TestBus_Subscribe(t *testing.T) {
	bus := NewBus(nil)

	called := false
	id := bus.Subscribe("test.event", func(e Event) {
		called = true
	})

	if id == "" {
		t.Error("Subscribe should return a non-empty ID")
	}
	if bus.SubscriptionCount() != 1 {
		t.Errorf("Expected 1 subscription, got %d", bus.SubscriptionCount())
	}
	if called {
		t.Error("Handler should not be called until an event is published")
	}
}

func TestBus_SubscribeIDsAreUnique(t *testing.T) {
	bus := NewBus(nil)

	seen := make(map[string]bool)
	for range 100 {
		id := bus.Subscribe("test.event", func(Event) {})
		if seen[id] {
			t.Fatalf("duplicate subscription id %q", id)
		}
		seen[id] = true
	}
}

func TestBus_Publish(t *testing.T) {
	bus := NewBus(nil)

	var received Event
	bus.Subscribe(TypeAchievementUnlocked, func(e Event) {
		received = e
	})

	bus.Publish(NewAchievementUnlockedEvent("note_keeper", "Achievement Unlocked!", "Note Keeper: Create 3 notes"))

	if received == nil {
		t.Fatal("Handler should have received the event")
	}
	unlocked, ok := received.(AchievementUnlockedEvent)
	if !ok {
		t.Fatalf("expected AchievementUnlockedEvent, got %T", received)
	}
	if unlocked.Description != "Note Keeper: Create 3 notes" {
		t.Errorf("Description = %q, want %q", unlocked.Description, "Note Keeper: Create 3 notes")
	}
}

func TestBus_PublishMultipleHandlers(t *testing.T) {
	bus := NewBus(nil)

	callCount := 0
	bus.Subscribe("test.event", func(e Event) { callCount++ })
	bus.Subscribe("test.event", func(e Event) { callCount++ })

	bus.Publish(newBaseEvent("test.event"))

	if callCount != 2 {
		t.Errorf("Expected both handlers to be called, got %d calls", callCount)
	}
}

func TestBus_PublishNoMatchingHandlers(t *testing.T) {
	bus := NewBus(nil)

	bus.Subscribe("other.event", func(e Event) {
		t.Error("Handler should not be called for non-matching event type")
	})

	bus.Publish(newBaseEvent("test.event"))
}

func TestBus_SubscribeAll(t *testing.T) {
	bus := NewBus(nil)

	var events []string
	bus.SubscribeAll(func(e Event) {
		events = append(events, e.EventType())
	})

	bus.Publish(NewTaskAddedEvent("task-1", "New Task"))
	bus.Publish(NewTaskToggledEvent("task-1", true, true))
	bus.Publish(NewNoteAddedEvent("note-1"))

	expected := []string{TypeTaskAdded, TypeTaskToggled, TypeNoteAdded}
	if len(events) != len(expected) {
		t.Fatalf("Expected %d events, got %d", len(expected), len(events))
	}
	for i, e := range expected {
		if events[i] != e {
			t.Errorf("Expected event %d to be '%s', got '%s'", i, e, events[i])
		}
	}
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := NewBus(nil)

	called := false
	id := bus.Subscribe("test.event", func(e Event) {
		called = true
	})

	if !bus.Unsubscribe(id) {
		t.Error("Unsubscribe should return true when subscription exists")
	}
	if bus.SubscriptionCount() != 0 {
		t.Errorf("Expected 0 subscriptions after unsubscribe, got %d", bus.SubscriptionCount())
	}

	bus.Publish(newBaseEvent("test.event"))

	if called {
		t.Error("Handler should not be called after unsubscribing")
	}
}

func TestBus_UnsubscribeNonExistent(t *testing.T) {
	bus := NewBus(nil)

	if bus.Unsubscribe("non-existent-id") {
		t.Error("Unsubscribe should return false for non-existent ID")
	}
}

func TestBus_UnsubscribeOne(t *testing.T) {
	bus := NewBus(nil)

	calls := make(map[string]int)
	id1 := bus.Subscribe("test.event", func(e Event) { calls["handler1"]++ })
	bus.Subscribe("test.event", func(e Event) { calls["handler2"]++ })
	bus.Subscribe("test.event", func(e Event) { calls["handler3"]++ })

	bus.Unsubscribe(id1)
	bus.Publish(newBaseEvent("test.event"))

	if calls["handler1"] != 0 {
		t.Error("handler1 should not be called after unsubscribing")
	}
	if calls["handler2"] != 1 || calls["handler3"] != 1 {
		t.Errorf("remaining handlers should be called once, got %v", calls)
	}
}

func TestBus_UnsubscribeDuringPublish(t *testing.T) {
	bus := NewBus(nil)

	var id string
	calls := 0
	id = bus.Subscribe("test.event", func(e Event) {
		calls++
		bus.Unsubscribe(id)
	})

	bus.Publish(newBaseEvent("test.event"))
	bus.Publish(newBaseEvent("test.event"))

	if calls != 1 {
		t.Errorf("expected handler to run once before unsubscribing itself, got %d", calls)
	}
}

func TestBus_Clear(t *testing.T) {
	bus := NewBus(nil)

	bus.Subscribe("event.one", func(e Event) {})
	bus.Subscribe("event.two", func(e Event) {})
	bus.SubscribeAll(func(e Event) {})

	if bus.SubscriptionCount() != 3 {
		t.Errorf("Expected 3 subscriptions before clear, got %d", bus.SubscriptionCount())
	}

	bus.Clear()

	if bus.SubscriptionCount() != 0 {
		t.Errorf("Expected 0 subscriptions after clear, got %d", bus.SubscriptionCount())
	}
}

func TestBus_HandlerPanicRecovery(t *testing.T) {
	var buf bytes.Buffer
	bus := NewBus(logging.NewWriterLogger(&buf, logging.LevelError))

	calls := 0
	bus.Subscribe("test.event", func(e Event) {
		calls++
		panic("handler panic")
	})
	bus.Subscribe("test.event", func(e Event) {
		calls++
	})

	bus.Publish(newBaseEvent("test.event"))

	if calls != 2 {
		t.Errorf("Expected both handlers to be called despite panic, got %d calls", calls)
	}
	if !strings.Contains(buf.String(), "handler panic") {
		t.Errorf("expected panic to be logged, got %q", buf.String())
	}
}

func TestBus_ConcurrentPublish(t *testing.T) {
	bus := NewBus(nil)

	var mu sync.Mutex
	calls := 0
	bus.Subscribe("test.event", func(e Event) {
		mu.Lock()
		calls++
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for range 100 {
		wg.Go(func() {
			bus.Publish(newBaseEvent("test.event"))
		})
	}
	wg.Wait()

	if calls != 100 {
		t.Errorf("Expected 100 calls, got %d", calls)
	}
}

func TestBus_MixedSubscriptions(t *testing.T) {
	bus := NewBus(nil)

	var events []string
	bus.SubscribeAll(func(e Event) {
		events = append(events, "wildcard:"+e.EventType())
	})
	bus.Subscribe("specific.event", func(e Event) {
		events = append(events, "specific:"+e.EventType())
	})

	bus.Publish(newBaseEvent("specific.event"))
	bus.Publish(newBaseEvent("other.event"))

	expected := []string{
		"specific:specific.event",
		"wildcard:specific.event",
		"wildcard:other.event",
	}
	if len(events) != len(expected) {
		t.Fatalf("Expected %d events, got %d: %v", len(expected), len(events), events)
	}
	for i, e := range expected {
		if events[i] != e {
			t.Errorf("Event %d: expected %q, got %q", i, e, events[i])
		}
	}
}
