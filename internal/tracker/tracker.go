package tracker

import (
	"slices"

	"github.com/Iron-Ham/tally/internal/event"
	"github.com/Iron-Ham/tally/internal/logging"
)

// Publisher receives the events a Tracker emits. *event.Bus satisfies it.
type Publisher interface {
	Publish(event.Event)
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithIDGenerator sets the id source. The default is NewCounterIDs().
func WithIDGenerator(ids IDGenerator) Option {
	return func(t *Tracker) {
		if ids != nil {
			t.ids = ids
		}
	}
}

// WithPublisher sets where mutation and unlock events are published.
// Without one, events are dropped.
func WithPublisher(p Publisher) Option {
	return func(t *Tracker) {
		t.publisher = p
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *logging.Logger) Option {
	return func(t *Tracker) {
		if l != nil {
			t.logger = l
		}
	}
}

// Tracker owns the tasks, notes and achievement flags of one session.
type Tracker struct {
	tasks        []Task
	notes        []Note
	achievements AchievementState

	ids       IDGenerator
	publisher Publisher
	logger    *logging.Logger
}

// New creates an empty Tracker with every achievement locked.
func New(opts ...Option) *Tracker {
	t := &Tracker{
		ids:    NewCounterIDs(),
		logger: logging.NopLogger(),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.logger = t.logger.WithComponent("tracker")
	return t
}

// AddTask appends a task titled "New Task" and re-evaluates achievements.
func (t *Tracker) AddTask() Task {
	task := Task{
		ID:    t.ids.NewID(KindTask),
		Title: DefaultTaskTitle,
	}
	t.tasks = append(t.tasks, task)

	t.logger.Debug("task added", "task_id", task.ID, "tasks", len(t.tasks))
	t.publish(event.NewTaskAddedEvent(task.ID, task.Title))
	t.evaluate()
	return task
}

// AddNote appends a note with content "New Note" and re-evaluates
// achievements.
func (t *Tracker) AddNote() Note {
	note := Note{
		ID:      t.ids.NewID(KindNote),
		Content: DefaultNoteContent,
	}
	t.notes = append(t.notes, note)

	t.logger.Debug("note added", "note_id", note.ID, "notes", len(t.notes))
	t.publish(event.NewNoteAddedEvent(note.ID))
	t.evaluate()
	return note
}

// ToggleTask flips the completion flag of the task with the given id and
// re-evaluates achievements. An unknown id leaves the tasks unchanged.
// It reports whether a task was found.
func (t *Tracker) ToggleTask(id string) bool {
	i := t.indexOf(id)
	found := i >= 0
	completed := false
	if found {
		t.tasks[i].Completed = !t.tasks[i].Completed
		completed = t.tasks[i].Completed
		t.logger.Debug("task toggled", "task_id", id, "completed", completed)
	} else {
		t.logger.Debug("toggle ignored for unknown task", "task_id", id)
	}

	t.publish(event.NewTaskToggledEvent(id, completed, found))
	t.evaluate()
	return found
}

// Tasks returns a copy of the tasks in insertion order.
func (t *Tracker) Tasks() []Task {
	return slices.Clone(t.tasks)
}

// Notes returns a copy of the notes in insertion order.
func (t *Tracker) Notes() []Note {
	return slices.Clone(t.notes)
}

// Task returns the task with the given id.
func (t *Tracker) Task(id string) (Task, bool) {
	if i := t.indexOf(id); i >= 0 {
		return t.tasks[i], true
	}
	return Task{}, false
}

// Achievements returns the current achievement flags.
func (t *Tracker) Achievements() AchievementState {
	return t.achievements
}

// CompletedCount returns the number of completed tasks.
func (t *Tracker) CompletedCount() int {
	n := 0
	for _, task := range t.tasks {
		if task.Completed {
			n++
		}
	}
	return n
}

// NoteCount returns the number of notes.
func (t *Tracker) NoteCount() int {
	return len(t.notes)
}

func (t *Tracker) indexOf(id string) int {
	return slices.IndexFunc(t.tasks, func(task Task) bool {
		return task.ID == id
	})
}

// evaluate checks every rule against the current counts, sets newly met
// flags and publishes one unlock per transition.
func (t *Tracker) evaluate() []Unlock {
	completed := t.CompletedCount()
	notes := t.NoteCount()

	var unlocks []Unlock
	for _, r := range rules {
		if t.achievements.Has(r.Achievement) || !r.Met(completed, notes) {
			continue
		}
		t.achievements.unlock(r.Achievement)
		unlocks = append(unlocks, Unlock{
			Achievement: r.Achievement,
			Title:       UnlockTitle,
			Description: r.Description(),
		})
	}

	for _, u := range unlocks {
		t.logger.Info("achievement unlocked",
			"achievement", string(u.Achievement),
			"completed_tasks", completed,
			"notes", notes)
		t.publish(event.NewAchievementUnlockedEvent(string(u.Achievement), u.Title, u.Description))
	}
	return unlocks
}

func (t *Tracker) publish(e event.Event) {
	if t.publisher != nil {
		t.publisher.Publish(e)
	}
}
