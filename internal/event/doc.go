// Package event provides the synchronous pub-sub bus that carries tracker
// activity to observers.
//
// The tracker publishes an event after every mutation and one event per
// achievement that flips from locked to unlocked. Observers (the TUI toast
// stack, the replay command's printer, the debug log) subscribe without the
// tracker knowing about them.
//
// # Main Types
//
//   - [Event]: Interface that all events implement, providing EventType() and Timestamp()
//   - [Bus]: Synchronous dispatcher with thread-safe subscribe and publish
//   - [Handler]: Function type for event handlers (func(Event))
//
// # Event Types
//
//   - [TaskAddedEvent]: "task.added"
//   - [TaskToggledEvent]: "task.toggled"
//   - [NoteAddedEvent]: "note.added"
//   - [AchievementUnlockedEvent]: "achievement.unlocked"
//
// # Thread Safety
//
// [Bus] is safe for concurrent use. Handlers run synchronously on the
// publishing goroutine, in registration order, and a panicking handler is
// recovered and logged so the remaining handlers still run.
//
// # Basic Usage
//
//	bus := event.NewBus()
//	bus.Subscribe(event.TypeAchievementUnlocked, func(e event.Event) {
//	    unlocked := e.(event.AchievementUnlockedEvent)
//	    fmt.Println(unlocked.Title, unlocked.Description)
//	})
//	bus.Publish(event.NewNoteAddedEvent("note-1"))
package event
