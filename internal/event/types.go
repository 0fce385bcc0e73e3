package event

import "time"

// Event is the interface that all events must implement.
type Event interface {
	// EventType returns a string identifier for this event type.
	// Convention: "category.action" (e.g., "task.added", "achievement.unlocked")
	EventType() string

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// Event type identifiers.
const (
	TypeTaskAdded           = "task.added"
	TypeTaskToggled         = "task.toggled"
	TypeNoteAdded           = "note.added"
	TypeAchievementUnlocked = "achievement.unlocked"
)

// baseEvent provides common fields for all events.
// Embed this in concrete event types to satisfy the Event interface.
type baseEvent struct {
	eventType string
	timestamp time.Time
}

func (e baseEvent) EventType() string    { return e.eventType }
func (e baseEvent) Timestamp() time.Time { return e.timestamp }

func newBaseEvent(eventType string) baseEvent {
	return baseEvent{
		eventType: eventType,
		timestamp: time.Now(),
	}
}

// -----------------------------------------------------------------------------
// Task Events
// -----------------------------------------------------------------------------

// TaskAddedEvent is emitted after a task is appended to the task list.
type TaskAddedEvent struct {
	baseEvent
	TaskID string
	Title  string
}

// NewTaskAddedEvent creates a TaskAddedEvent.
func NewTaskAddedEvent(taskID, title string) TaskAddedEvent {
	return TaskAddedEvent{
		baseEvent: newBaseEvent(TypeTaskAdded),
		TaskID:    taskID,
		Title:     title,
	}
}

// TaskToggledEvent is emitted after a toggle request. Found is false when
// the id matched no task, in which case Completed is meaningless.
type TaskToggledEvent struct {
	baseEvent
	TaskID    string
	Completed bool
	Found     bool
}

// NewTaskToggledEvent creates a TaskToggledEvent.
func NewTaskToggledEvent(taskID string, completed, found bool) TaskToggledEvent {
	return TaskToggledEvent{
		baseEvent: newBaseEvent(TypeTaskToggled),
		TaskID:    taskID,
		Completed: completed,
		Found:     found,
	}
}

// -----------------------------------------------------------------------------
// Note Events
// -----------------------------------------------------------------------------

// NoteAddedEvent is emitted after a note is appended to the note list.
type NoteAddedEvent struct {
	baseEvent
	NoteID string
}

// NewNoteAddedEvent creates a NoteAddedEvent.
func NewNoteAddedEvent(noteID string) NoteAddedEvent {
	return NoteAddedEvent{
		baseEvent: newBaseEvent(TypeNoteAdded),
		NoteID:    noteID,
	}
}

// -----------------------------------------------------------------------------
// Achievement Events
// -----------------------------------------------------------------------------

// AchievementUnlockedEvent is emitted once per achievement, on the
// evaluation pass where its threshold is first met.
type AchievementUnlockedEvent struct {
	baseEvent
	Achievement string // Stable key, e.g. "task_master"
	Title       string // Notification headline
	Description string // e.g. "Task Master: Complete 5 tasks"
}

// NewAchievementUnlockedEvent creates an AchievementUnlockedEvent.
func NewAchievementUnlockedEvent(achievement, title, description string) AchievementUnlockedEvent {
	return AchievementUnlockedEvent{
		baseEvent:   newBaseEvent(TypeAchievementUnlocked),
		Achievement: achievement,
		Title:       title,
		Description: description,
	}
}
