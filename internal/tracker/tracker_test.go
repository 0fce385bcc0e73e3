package tracker

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Iron-Ham/tally/internal/event"
	"github.com/Iron-Ham/tally/internal/logging"
	"github.com/google/go-cmp/cmp"
)

// recorder collects the unlock events published by a tracker.
type recorder struct {
	unlocks []event.AchievementUnlockedEvent
	all     []string
}

func newRecordedTracker(t *testing.T, opts ...Option) (*Tracker, *recorder) {
	t.Helper()
	bus := event.NewBus(nil)
	rec := &recorder{}
	bus.Subscribe(event.TypeAchievementUnlocked, func(e event.Event) {
		rec.unlocks = append(rec.unlocks, e.(event.AchievementUnlockedEvent))
	})
	bus.SubscribeAll(func(e event.Event) {
		rec.all = append(rec.all, e.EventType())
	})
	return New(append([]Option{WithPublisher(bus)}, opts...)...), rec
}

func (r *recorder) descriptions() []string {
	var out []string
	for _, u := range r.unlocks {
		out = append(out, u.Description)
	}
	return out
}

func TestNew_StartsEmpty(t *testing.T) {
	tr := New()

	if len(tr.Tasks()) != 0 {
		t.Errorf("Tasks() len = %d, want 0", len(tr.Tasks()))
	}
	if len(tr.Notes()) != 0 {
		t.Errorf("Notes() len = %d, want 0", len(tr.Notes()))
	}
	if tr.Achievements() != (AchievementState{}) {
		t.Errorf("Achievements() = %+v, want all false", tr.Achievements())
	}
}

func TestAddTask(t *testing.T) {
	tr, rec := newRecordedTracker(t)

	task := tr.AddTask()

	want := Task{ID: "task-1", Title: "New Task", Completed: false}
	if diff := cmp.Diff(want, task); diff != "" {
		t.Errorf("AddTask() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]Task{want}, tr.Tasks()); diff != "" {
		t.Errorf("Tasks() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{event.TypeTaskAdded}, rec.all); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestAddNote(t *testing.T) {
	tr, rec := newRecordedTracker(t)

	note := tr.AddNote()

	want := Note{ID: "note-1", Content: "New Note"}
	if diff := cmp.Diff(want, note); diff != "" {
		t.Errorf("AddNote() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{event.TypeNoteAdded}, rec.all); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestInsertionOrder(t *testing.T) {
	tr := New()

	var wantTasks []Task
	var wantNotes []Note
	for range 7 {
		wantTasks = append(wantTasks, tr.AddTask())
		wantNotes = append(wantNotes, tr.AddNote())
	}

	if diff := cmp.Diff(wantTasks, tr.Tasks()); diff != "" {
		t.Errorf("Tasks() order mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantNotes, tr.Notes()); diff != "" {
		t.Errorf("Notes() order mismatch (-want +got):\n%s", diff)
	}
}

func TestTasksReturnsCopy(t *testing.T) {
	tr := New()
	tr.AddTask()

	tasks := tr.Tasks()
	tasks[0].Completed = true
	tasks[0].Title = "mutated"

	got, _ := tr.Task("task-1")
	if got.Completed || got.Title != DefaultTaskTitle {
		t.Errorf("mutating Tasks() result changed tracker state: %+v", got)
	}
}

func TestToggleTask_DoubleToggleRestores(t *testing.T) {
	tr := New()
	task := tr.AddTask()

	if !tr.ToggleTask(task.ID) {
		t.Fatal("ToggleTask() = false for existing task")
	}
	got, _ := tr.Task(task.ID)
	if !got.Completed {
		t.Error("task should be completed after first toggle")
	}

	tr.ToggleTask(task.ID)
	got, _ = tr.Task(task.ID)
	if got.Completed {
		t.Error("task should be back to not completed after second toggle")
	}
}

func TestToggleTask_OnlyTargetChanges(t *testing.T) {
	tr := New()
	tr.AddTask()
	target := tr.AddTask()
	tr.AddTask()

	tr.ToggleTask(target.ID)

	want := []Task{
		{ID: "task-1", Title: "New Task"},
		{ID: "task-2", Title: "New Task", Completed: true},
		{ID: "task-3", Title: "New Task"},
	}
	if diff := cmp.Diff(want, tr.Tasks()); diff != "" {
		t.Errorf("Tasks() mismatch (-want +got):\n%s", diff)
	}
}

func TestToggleTask_UnknownID(t *testing.T) {
	tr, rec := newRecordedTracker(t)
	tr.AddTask()
	before := tr.Tasks()

	if tr.ToggleTask("does-not-exist") {
		t.Error("ToggleTask() = true for unknown id")
	}

	if diff := cmp.Diff(before, tr.Tasks()); diff != "" {
		t.Errorf("unknown id changed tasks (-want +got):\n%s", diff)
	}
	if len(rec.unlocks) != 0 {
		t.Errorf("unexpected unlocks: %v", rec.descriptions())
	}
}

func TestToggleTask_UnknownIDOnEmptyTracker(t *testing.T) {
	tr := New()
	tr.ToggleTask("")
	if len(tr.Tasks()) != 0 {
		t.Errorf("Tasks() len = %d, want 0", len(tr.Tasks()))
	}
}

// Five tasks completed one by one unlock Task Master exactly once, on the
// fifth toggle.
func TestScenario_TaskMaster(t *testing.T) {
	tr, rec := newRecordedTracker(t)

	var ids []string
	for range 5 {
		ids = append(ids, tr.AddTask().ID)
	}
	if len(rec.unlocks) != 0 {
		t.Fatalf("adding tasks should not unlock anything, got %v", rec.descriptions())
	}

	for i, id := range ids {
		tr.ToggleTask(id)
		if i < 4 && tr.Achievements().TaskMaster {
			t.Fatalf("TaskMaster unlocked early at toggle %d", i+1)
		}
	}

	if !tr.Achievements().TaskMaster {
		t.Fatal("TaskMaster should be unlocked after five completions")
	}
	want := []string{"Task Master: Complete 5 tasks"}
	if diff := cmp.Diff(want, rec.descriptions()); diff != "" {
		t.Errorf("unlocks mismatch (-want +got):\n%s", diff)
	}
	if rec.unlocks[0].Title != UnlockTitle {
		t.Errorf("Title = %q, want %q", rec.unlocks[0].Title, UnlockTitle)
	}
	if rec.unlocks[0].Achievement != string(TaskMaster) {
		t.Errorf("Achievement = %q, want %q", rec.unlocks[0].Achievement, TaskMaster)
	}
}

// Three notes with no tasks unlock only Note Keeper.
func TestScenario_NoteKeeper(t *testing.T) {
	tr, rec := newRecordedTracker(t)

	tr.AddNote()
	tr.AddNote()
	if tr.Achievements().NoteKeeper {
		t.Fatal("NoteKeeper unlocked after two notes")
	}
	tr.AddNote()

	want := AchievementState{NoteKeeper: true}
	if diff := cmp.Diff(want, tr.Achievements()); diff != "" {
		t.Errorf("Achievements() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Note Keeper: Create 3 notes"}, rec.descriptions()); diff != "" {
		t.Errorf("unlocks mismatch (-want +got):\n%s", diff)
	}
}

// Ten completed tasks followed by five notes unlock Perfectionist on the
// fifth note, with one notification per achievement.
func TestScenario_Perfectionist(t *testing.T) {
	tr, rec := newRecordedTracker(t)

	for range 10 {
		tr.ToggleTask(tr.AddTask().ID)
	}
	if diff := cmp.Diff([]string{"Task Master: Complete 5 tasks"}, rec.descriptions()); diff != "" {
		t.Fatalf("unlocks after tasks mismatch (-want +got):\n%s", diff)
	}

	for i := range 5 {
		tr.AddNote()
		if i < 4 && tr.Achievements().Perfectionist {
			t.Fatalf("Perfectionist unlocked early at note %d", i+1)
		}
	}

	want := []string{
		"Task Master: Complete 5 tasks",
		"Note Keeper: Create 3 notes",
		"Perfectionist: Master of tasks and notes",
	}
	if diff := cmp.Diff(want, rec.descriptions()); diff != "" {
		t.Errorf("unlocks mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(AchievementState{TaskMaster: true, NoteKeeper: true, Perfectionist: true}, tr.Achievements()); diff != "" {
		t.Errorf("Achievements() mismatch (-want +got):\n%s", diff)
	}
}

// Perfectionist can be completed by a toggle as well as by a note.
func TestEvaluate_PerfectionistOnToggle(t *testing.T) {
	tr, rec := newRecordedTracker(t)

	for range 4 {
		tr.AddNote()
	}
	// Note Keeper fired on note 3.
	rec.unlocks = nil

	var ids []string
	for range 10 {
		ids = append(ids, tr.AddTask().ID)
	}
	for _, id := range ids[:9] {
		tr.ToggleTask(id)
	}
	// Task Master fired on toggle 5.
	rec.unlocks = nil

	tr.AddNote() // five notes, nine completed
	tr.ToggleTask(ids[9])

	if diff := cmp.Diff([]string{"Perfectionist: Master of tasks and notes"}, rec.descriptions()); diff != "" {
		t.Errorf("unlocks mismatch (-want +got):\n%s", diff)
	}
}

func TestEvaluate_AllInOnePass(t *testing.T) {
	tr := New()
	// Build the state directly so a single evaluation sees every threshold.
	for range 10 {
		tr.tasks = append(tr.tasks, Task{ID: tr.ids.NewID(KindTask), Title: DefaultTaskTitle, Completed: true})
	}
	for range 5 {
		tr.notes = append(tr.notes, Note{ID: tr.ids.NewID(KindNote), Content: DefaultNoteContent})
	}

	unlocks := tr.evaluate()

	var got []Achievement
	for _, u := range unlocks {
		got = append(got, u.Achievement)
	}
	if diff := cmp.Diff([]Achievement{TaskMaster, NoteKeeper, Perfectionist}, got); diff != "" {
		t.Errorf("unlocks mismatch (-want +got):\n%s", diff)
	}

	if again := tr.evaluate(); len(again) != 0 {
		t.Errorf("second evaluate() should unlock nothing, got %v", again)
	}
}

// Toggling one task on, off and on evaluates three times without unlocking.
func TestScenario_SingleTaskFlipFlop(t *testing.T) {
	tr, rec := newRecordedTracker(t)
	task := tr.AddTask()

	tr.ToggleTask(task.ID)
	tr.ToggleTask(task.ID)
	tr.ToggleTask(task.ID)

	got, _ := tr.Task(task.ID)
	if !got.Completed {
		t.Error("task should end completed")
	}
	if tr.Achievements() != (AchievementState{}) {
		t.Errorf("Achievements() = %+v, want all false", tr.Achievements())
	}
	if len(rec.unlocks) != 0 {
		t.Errorf("unexpected unlocks: %v", rec.descriptions())
	}
	toggles := 0
	for _, e := range rec.all {
		if e == event.TypeTaskToggled {
			toggles++
		}
	}
	if toggles != 3 {
		t.Errorf("toggle events = %d, want 3", toggles)
	}
}

func TestAchievementsAreMonotonic(t *testing.T) {
	tr, rec := newRecordedTracker(t)

	var ids []string
	for range 5 {
		ids = append(ids, tr.AddTask().ID)
	}
	for _, id := range ids {
		tr.ToggleTask(id)
	}
	// Uncomplete everything: the count drops below 5, the flag must stay.
	for _, id := range ids {
		tr.ToggleTask(id)
	}
	if !tr.Achievements().TaskMaster {
		t.Fatal("TaskMaster reverted after completed count dropped")
	}

	// Crossing the threshold again must not notify twice.
	for _, id := range ids {
		tr.ToggleTask(id)
	}
	if len(rec.unlocks) != 1 {
		t.Errorf("expected a single unlock, got %v", rec.descriptions())
	}
}

func TestCounts(t *testing.T) {
	tr := New()
	a := tr.AddTask()
	tr.AddTask()
	tr.AddNote()
	tr.ToggleTask(a.ID)

	if got := tr.CompletedCount(); got != 1 {
		t.Errorf("CompletedCount() = %d, want 1", got)
	}
	if got := tr.NoteCount(); got != 1 {
		t.Errorf("NoteCount() = %d, want 1", got)
	}
}

func TestWithoutPublisher(t *testing.T) {
	tr := New()
	for range 5 {
		tr.ToggleTask(tr.AddTask().ID)
	}
	if !tr.Achievements().TaskMaster {
		t.Error("TaskMaster should unlock without a publisher")
	}
}

func TestWithIDGenerator(t *testing.T) {
	tr := New(WithIDGenerator(UUIDIDs{}))
	a := tr.AddTask()
	b := tr.AddTask()

	if a.ID == b.ID {
		t.Errorf("expected distinct ids, got %q twice", a.ID)
	}
	if strings.HasPrefix(a.ID, "task-") {
		t.Errorf("expected uuid id, got %q", a.ID)
	}
}

func TestWithIDGenerator_NilKeepsDefault(t *testing.T) {
	tr := New(WithIDGenerator(nil))
	if got := tr.AddTask().ID; got != "task-1" {
		t.Errorf("AddTask().ID = %q, want %q", got, "task-1")
	}
}

func TestWithLogger_LogsUnlocks(t *testing.T) {
	var buf bytes.Buffer
	tr := New(WithLogger(logging.NewWriterLogger(&buf, logging.LevelInfo)))

	for range 3 {
		tr.AddNote()
	}

	out := buf.String()
	if !strings.Contains(out, `"achievement":"note_keeper"`) {
		t.Errorf("expected unlock to be logged, got %q", out)
	}
	if !strings.Contains(out, `"component":"tracker"`) {
		t.Errorf("expected component attribute, got %q", out)
	}
	if strings.Contains(out, "note added") {
		t.Error("DEBUG entries should be filtered at INFO level")
	}
}
