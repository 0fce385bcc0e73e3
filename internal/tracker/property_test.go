package tracker

import (
	"testing"

	"github.com/Iron-Ham/tally/internal/event"
	"pgregory.net/rapid"
)

const (
	opAddTask = iota
	opAddNote
	opToggle
	opToggleUnknown
)

// TestProperty_AchievementsFollowHistory drives random operation sequences
// and checks that every flag is set exactly when some evaluation met its
// threshold, never clears, and is announced exactly once.
func TestProperty_AchievementsFollowHistory(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		bus := event.NewBus(nil)
		announced := make(map[string]int)
		bus.Subscribe(event.TypeAchievementUnlocked, func(e event.Event) {
			announced[e.(event.AchievementUnlockedEvent).Achievement]++
		})
		tr := New(WithPublisher(bus))

		var everMet AchievementState
		var prev AchievementState
		ops := rapid.SliceOfN(rapid.IntRange(opAddTask, opToggleUnknown), 0, 80).Draw(t, "ops")

		for step, op := range ops {
			switch op {
			case opAddTask:
				tr.AddTask()
			case opAddNote:
				tr.AddNote()
			case opToggle:
				tasks := tr.Tasks()
				if len(tasks) == 0 {
					continue
				}
				i := rapid.IntRange(0, len(tasks)-1).Draw(t, "task")
				tr.ToggleTask(tasks[i].ID)
			case opToggleUnknown:
				before := tr.Tasks()
				tr.ToggleTask("missing")
				if len(before) != len(tr.Tasks()) {
					t.Fatalf("step %d: unknown toggle changed task count", step)
				}
			}

			completed, notes := tr.CompletedCount(), tr.NoteCount()
			for _, r := range Rules() {
				if r.Met(completed, notes) {
					everMet.unlock(r.Achievement)
				}
			}

			got := tr.Achievements()
			if got != everMet {
				t.Fatalf("step %d: achievements = %+v, want %+v", step, got, everMet)
			}
			for _, r := range Rules() {
				if prev.Has(r.Achievement) && !got.Has(r.Achievement) {
					t.Fatalf("step %d: %s reverted to false", step, r.Achievement)
				}
			}
			prev = got
		}

		for _, r := range Rules() {
			want := 0
			if tr.Achievements().Has(r.Achievement) {
				want = 1
			}
			if announced[string(r.Achievement)] != want {
				t.Fatalf("%s announced %d times, want %d", r.Achievement, announced[string(r.Achievement)], want)
			}
		}
	})
}

// TestProperty_InsertionOrder checks that N adds yield N entries in call
// order with unique ids.
func TestProperty_InsertionOrder(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		tr := New()
		n := rapid.IntRange(0, 50).Draw(t, "tasks")
		m := rapid.IntRange(0, 50).Draw(t, "notes")

		var taskIDs, noteIDs []string
		for range n {
			taskIDs = append(taskIDs, tr.AddTask().ID)
		}
		for range m {
			noteIDs = append(noteIDs, tr.AddNote().ID)
		}

		tasks := tr.Tasks()
		if len(tasks) != n {
			t.Fatalf("len(Tasks()) = %d, want %d", len(tasks), n)
		}
		seen := make(map[string]bool)
		for i, task := range tasks {
			if task.ID != taskIDs[i] {
				t.Fatalf("task %d id = %q, want %q", i, task.ID, taskIDs[i])
			}
			if seen[task.ID] {
				t.Fatalf("duplicate task id %q", task.ID)
			}
			seen[task.ID] = true
		}

		notes := tr.Notes()
		if len(notes) != m {
			t.Fatalf("len(Notes()) = %d, want %d", len(notes), m)
		}
		for i, note := range notes {
			if note.ID != noteIDs[i] {
				t.Fatalf("note %d id = %q, want %q", i, note.ID, noteIDs[i])
			}
		}
	})
}

// TestProperty_DoubleToggle checks that two toggles of the same id restore
// the task.
func TestProperty_DoubleToggle(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		tr := New()
		n := rapid.IntRange(1, 20).Draw(t, "tasks")
		for range n {
			tr.AddTask()
		}
		for _, idx := range rapid.SliceOf(rapid.IntRange(0, n-1)).Draw(t, "pre") {
			tr.ToggleTask(tr.Tasks()[idx].ID)
		}

		target := tr.Tasks()[rapid.IntRange(0, n-1).Draw(t, "target")]
		tr.ToggleTask(target.ID)
		tr.ToggleTask(target.ID)

		got, _ := tr.Task(target.ID)
		if got != target {
			t.Fatalf("after double toggle task = %+v, want %+v", got, target)
		}
	})
}
