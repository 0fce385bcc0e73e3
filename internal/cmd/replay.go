package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Iron-Ham/tally/internal/event"
	"github.com/Iron-Ham/tally/internal/replay"
	"github.com/Iron-Ham/tally/internal/tracker"
	"github.com/gobwas/glob"
	"github.com/spf13/cobra"
)

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Run a step file without the interactive screen",
	Long: `Run a YAML step file against a fresh tracker and print what happened.

A step file lists operations in order:

  steps:
    - op: add_task
      repeat: 5
    - op: toggle
      task: task-3
    - op: toggle
      index: 2
    - op: add_note

Examples:
  # Print unlocks and the final state
  tally replay steps.yaml

  # Machine-readable output
  tally replay steps.yaml --json

  # Also print every task event
  tally replay steps.yaml --trace 'task.*'`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

var (
	replayJSON  bool
	replayTrace string
)

func init() {
	rootCmd.AddCommand(replayCmd)

	replayCmd.Flags().BoolVar(&replayJSON, "json", false, "Print the result as JSON")
	replayCmd.Flags().StringVar(&replayTrace, "trace", "", "Print events whose type matches this glob (e.g. 'task.*', '*')")
}

// traceEntry is one traced bus event.
type traceEntry struct {
	Type   string `json:"type"`
	Detail string `json:"detail"`
}

// replayOutput is the --json document.
type replayOutput struct {
	Unlocks      []unlockOutput           `json:"unlocks"`
	Tasks        []tracker.Task           `json:"tasks"`
	Notes        []tracker.Note           `json:"notes"`
	Achievements tracker.AchievementState `json:"achievements"`
	Trace        []traceEntry             `json:"trace,omitempty"`
}

type unlockOutput struct {
	Achievement string `json:"achievement"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

func runReplay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var pattern glob.Glob
	if replayTrace != "" {
		pattern, err = glob.Compile(replayTrace)
		if err != nil {
			return fmt.Errorf("invalid --trace pattern %q: %w", replayTrace, err)
		}
	}

	script, err := replay.ParseFile(args[0])
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Close() }()

	bus := event.NewBus(logger)
	tr := tracker.New(
		tracker.WithIDGenerator(tracker.NewIDGenerator(cfg.IDs.Strategy)),
		tracker.WithPublisher(bus),
		tracker.WithLogger(logger),
	)

	var trace []traceEntry
	if pattern != nil {
		bus.SubscribeAll(func(e event.Event) {
			if pattern.Match(e.EventType()) {
				trace = append(trace, traceEntry{Type: e.EventType(), Detail: describeEvent(e)})
			}
		})
	}

	result, err := replay.Run(script, tr, bus)
	if err != nil {
		return err
	}
	logger.Info("replay finished", "file", args[0], "steps", len(script.Steps), "unlocks", len(result.Unlocks))

	out := cmd.OutOrStdout()
	if replayJSON {
		return writeReplayJSON(out, result, trace)
	}
	writeReplayText(out, result, trace)
	return nil
}

func writeReplayJSON(w io.Writer, result *replay.Result, trace []traceEntry) error {
	doc := replayOutput{
		Unlocks:      make([]unlockOutput, 0, len(result.Unlocks)),
		Tasks:        result.Tasks,
		Notes:        result.Notes,
		Achievements: result.Achievements,
		Trace:        trace,
	}
	if doc.Tasks == nil {
		doc.Tasks = []tracker.Task{}
	}
	if doc.Notes == nil {
		doc.Notes = []tracker.Note{}
	}
	for _, u := range result.Unlocks {
		doc.Unlocks = append(doc.Unlocks, unlockOutput{
			Achievement: u.Achievement,
			Title:       u.Title,
			Description: u.Description,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	return nil
}

func writeReplayText(w io.Writer, result *replay.Result, trace []traceEntry) {
	if len(trace) > 0 {
		fmt.Fprintln(w, "Trace:")
		for _, t := range trace {
			fmt.Fprintf(w, "  %-22s %s\n", t.Type, t.Detail)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "Unlocks:")
	if len(result.Unlocks) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for _, u := range result.Unlocks {
		fmt.Fprintf(w, "  %s %s\n", u.Title, u.Description)
	}

	fmt.Fprintf(w, "\nTasks (%d):\n", len(result.Tasks))
	for _, t := range result.Tasks {
		check := "[ ]"
		if t.Completed {
			check = "[x]"
		}
		fmt.Fprintf(w, "  %s %s %s\n", check, t.ID, t.Title)
	}

	fmt.Fprintf(w, "\nNotes (%d):\n", len(result.Notes))
	for _, n := range result.Notes {
		fmt.Fprintf(w, "  %s %s\n", n.ID, n.Content)
	}

	fmt.Fprintln(w, "\nAchievements:")
	for _, r := range tracker.Rules() {
		mark := "locked"
		if result.Achievements.Has(r.Achievement) {
			mark = "unlocked"
		}
		fmt.Fprintf(w, "  %-14s %s\n", r.Name, mark)
	}
}

// describeEvent renders an event's fields as key=value pairs.
func describeEvent(e event.Event) string {
	switch ev := e.(type) {
	case event.TaskAddedEvent:
		return fmt.Sprintf("task_id=%s title=%q", ev.TaskID, ev.Title)
	case event.TaskToggledEvent:
		return fmt.Sprintf("task_id=%s completed=%t found=%t", ev.TaskID, ev.Completed, ev.Found)
	case event.NoteAddedEvent:
		return fmt.Sprintf("note_id=%s", ev.NoteID)
	case event.AchievementUnlockedEvent:
		return fmt.Sprintf("achievement=%s description=%q", ev.Achievement, ev.Description)
	default:
		return ""
	}
}
