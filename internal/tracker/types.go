package tracker

// Default titles for newly created entries.
const (
	DefaultTaskTitle   = "New Task"
	DefaultNoteContent = "New Note"
)

// Task is a completable unit of work.
type Task struct {
	ID        string `json:"id" yaml:"id"`
	Title     string `json:"title" yaml:"title"`
	Completed bool   `json:"completed" yaml:"completed"`
}

// Note is a freeform text entry. Notes are immutable once created.
type Note struct {
	ID      string `json:"id" yaml:"id"`
	Content string `json:"content" yaml:"content"`
}

// AchievementState holds one monotonic flag per achievement.
type AchievementState struct {
	TaskMaster    bool `json:"task_master" yaml:"task_master"`
	NoteKeeper    bool `json:"note_keeper" yaml:"note_keeper"`
	Perfectionist bool `json:"perfectionist" yaml:"perfectionist"`
}

// Has reports whether the given achievement is unlocked.
func (s AchievementState) Has(a Achievement) bool {
	switch a {
	case TaskMaster:
		return s.TaskMaster
	case NoteKeeper:
		return s.NoteKeeper
	case Perfectionist:
		return s.Perfectionist
	default:
		return false
	}
}

// Count returns the number of unlocked achievements.
func (s AchievementState) Count() int {
	n := 0
	for _, r := range rules {
		if s.Has(r.Achievement) {
			n++
		}
	}
	return n
}

// unlock sets the flag for a. It never clears a flag.
func (s *AchievementState) unlock(a Achievement) {
	switch a {
	case TaskMaster:
		s.TaskMaster = true
	case NoteKeeper:
		s.NoteKeeper = true
	case Perfectionist:
		s.Perfectionist = true
	}
}
