package tracker

import "slices"

// Achievement identifies one of the fixed milestones.
type Achievement string

const (
	TaskMaster    Achievement = "task_master"
	NoteKeeper    Achievement = "note_keeper"
	Perfectionist Achievement = "perfectionist"
)

// UnlockTitle is the headline shown with every unlock notification.
const UnlockTitle = "Achievement Unlocked!"

// Rule is a threshold over the completed-task count and the note count.
// A rule is met when both minimums are reached.
type Rule struct {
	Achievement  Achievement
	Name         string
	Summary      string
	MinCompleted int
	MinNotes     int
}

// Description is the notification body, e.g. "Task Master: Complete 5 tasks".
func (r Rule) Description() string {
	return r.Name + ": " + r.Summary
}

// Met reports whether the rule holds for the given counts.
func (r Rule) Met(completed, notes int) bool {
	return completed >= r.MinCompleted && notes >= r.MinNotes
}

// rules are evaluated independently on every pass; order only affects the
// order in which unlocks from the same pass are published.
var rules = []Rule{
	{Achievement: TaskMaster, Name: "Task Master", Summary: "Complete 5 tasks", MinCompleted: 5},
	{Achievement: NoteKeeper, Name: "Note Keeper", Summary: "Create 3 notes", MinNotes: 3},
	{Achievement: Perfectionist, Name: "Perfectionist", Summary: "Master of tasks and notes", MinCompleted: 10, MinNotes: 5},
}

// Rules returns a copy of the achievement rules in evaluation order.
func Rules() []Rule {
	return slices.Clone(rules)
}

// RuleFor returns the rule for a, if any.
func RuleFor(a Achievement) (Rule, bool) {
	for _, r := range rules {
		if r.Achievement == a {
			return r, true
		}
	}
	return Rule{}, false
}

// Unlock describes a single false-to-true transition.
type Unlock struct {
	Achievement Achievement
	Title       string
	Description string
}
