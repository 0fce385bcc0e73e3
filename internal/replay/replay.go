// Package replay applies a scripted sequence of tracker operations read
// from YAML. It backs the headless `tally replay` command and doubles as a
// fixture format for tests.
package replay

import (
	"fmt"
	"io"
	"os"

	"github.com/Iron-Ham/tally/internal/errors"
	"github.com/Iron-Ham/tally/internal/event"
	"github.com/Iron-Ham/tally/internal/tracker"
	"gopkg.in/yaml.v3"
)

// Operation names accepted in a step file.
const (
	OpAddTask = "add_task"
	OpAddNote = "add_note"
	OpToggle  = "toggle"
)

// MaxRepeat is the largest repeat count a single step may ask for.
const MaxRepeat = 10000

// Script is the top-level document of a step file.
type Script struct {
	Steps []Step `yaml:"steps"`
}

// Step is one operation. Repeat applies it several times (default 1).
// A toggle names its task either by id (Task) or by 1-based position
// (Index).
type Step struct {
	Op     string `yaml:"op"`
	Repeat int    `yaml:"repeat,omitempty"`
	Task   string `yaml:"task,omitempty"`
	Index  int    `yaml:"index,omitempty"`
}

// Result is what a replay produced.
type Result struct {
	Unlocks      []event.AchievementUnlockedEvent
	Tasks        []tracker.Task
	Notes        []tracker.Note
	Achievements tracker.AchievementState
}

// Parse decodes a step file. Unknown keys are rejected so a typo such as
// `indx:` is reported instead of silently ignored. A file holds exactly
// one YAML document.
func Parse(r io.Reader) (*Script, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Script
	if err := dec.Decode(&s); err != nil {
		if err == io.EOF {
			return &s, nil
		}
		return nil, fmt.Errorf("failed to parse step file: %w", err)
	}

	var extra yaml.Node
	switch err := dec.Decode(&extra); err {
	case io.EOF:
		return &s, nil
	case nil:
		return nil, fmt.Errorf("failed to parse step file: found a second document at line %d", extra.Line)
	default:
		return nil, fmt.Errorf("failed to parse step file: %w", err)
	}
}

// ParseFile reads and decodes the step file at path.
func ParseFile(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open step file: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Validate checks every step before anything is applied.
func (s *Script) Validate() error {
	for i, step := range s.Steps {
		if err := step.validate(); err != nil {
			return errors.NewStepError(i+1, step.Op, err)
		}
	}
	return nil
}

func (s Step) validate() error {
	switch s.Op {
	case OpAddTask, OpAddNote:
	case OpToggle:
		if s.Task == "" && s.Index <= 0 {
			return fmt.Errorf("%w: toggle needs task or a positive index", errors.ErrInvalidStep)
		}
		if s.Task != "" && s.Index != 0 {
			return fmt.Errorf("%w: toggle takes task or index, not both", errors.ErrInvalidStep)
		}
	default:
		return errors.ErrUnknownOperation
	}
	if s.Repeat < 0 {
		return fmt.Errorf("%w: repeat must not be negative", errors.ErrInvalidStep)
	}
	if s.Repeat > MaxRepeat {
		return fmt.Errorf("%w: repeat must be at most %d", errors.ErrInvalidStep, MaxRepeat)
	}
	return nil
}

func (s Step) times() int {
	if s.Repeat == 0 {
		return 1
	}
	return s.Repeat
}

// Run validates the script and applies it to tr. bus must be the bus tr
// publishes to; Run subscribes to it for the duration of the replay to
// collect unlocks.
func Run(s *Script, tr *tracker.Tracker, bus *event.Bus) (*Result, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	res := &Result{}
	id := bus.Subscribe(event.TypeAchievementUnlocked, func(e event.Event) {
		res.Unlocks = append(res.Unlocks, e.(event.AchievementUnlockedEvent))
	})
	defer bus.Unsubscribe(id)

	for _, step := range s.Steps {
		for range step.times() {
			apply(step, tr)
		}
	}

	res.Tasks = tr.Tasks()
	res.Notes = tr.Notes()
	res.Achievements = tr.Achievements()
	return res, nil
}

func apply(step Step, tr *tracker.Tracker) {
	switch step.Op {
	case OpAddTask:
		tr.AddTask()
	case OpAddNote:
		tr.AddNote()
	case OpToggle:
		tr.ToggleTask(resolveTask(step, tr))
	}
}

// resolveTask maps a step to a task id. An out-of-range index resolves to
// the empty id, which the tracker ignores like any unknown id.
func resolveTask(step Step, tr *tracker.Tracker) string {
	if step.Task != "" {
		return step.Task
	}
	tasks := tr.Tasks()
	if step.Index > len(tasks) {
		return ""
	}
	return tasks[step.Index-1].ID
}
