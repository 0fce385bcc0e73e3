package view

import (
	"fmt"
	"strings"

	"github.com/Iron-Ham/tally/internal/tracker"
	"github.com/Iron-Ham/tally/internal/tui/styles"
	"github.com/charmbracelet/lipgloss"
)

// Task list markers.
const (
	CursorMarker = "›"
	CheckOpen    = "[ ]"
	CheckDone    = "[x]"

	ScrollUpMarker   = "▲"
	ScrollDownMarker = "▼"
)

// EmptyTasksText is shown when no task has been added yet.
const EmptyTasksText = "No tasks yet. Press t to add one."

// TasksState holds what the task section needs to render.
type TasksState struct {
	Tasks  []tracker.Task
	Cursor int
	Width  int

	// Offset is the index of the first task shown when the list scrolls.
	Offset int

	// Visible limits how many tasks are listed; 0 lists all of them.
	// Scroll indicators are drawn around a limited list.
	Visible int
}

// SectionHeadingHeight returns the number of lines a section heading
// occupies, margin and rule included.
func SectionHeadingHeight(s *styles.Styles) int {
	return lipgloss.Height(s.Section.Render("Tasks"))
}

// RenderTasks renders the task section heading and the checkbox list.
func RenderTasks(s *styles.Styles, state TasksState) string {
	done := 0
	for _, t := range state.Tasks {
		if t.Completed {
			done++
		}
	}

	var b strings.Builder
	b.WriteString(s.Section.Render(fmt.Sprintf("Tasks (%d/%d done)", done, len(state.Tasks))))
	b.WriteString("\n")

	if len(state.Tasks) == 0 {
		b.WriteString(s.EmptyState.Render(EmptyTasksText))
		return b.String()
	}

	start, end := 0, len(state.Tasks)
	if state.Visible > 0 && state.Visible < len(state.Tasks) {
		start = max(0, min(state.Offset, len(state.Tasks)-state.Visible))
		end = start + state.Visible
	}

	lines := make([]string, 0, end-start+2)
	if start > 0 {
		lines = append(lines, s.EmptyState.Render(fmt.Sprintf("%s %d more above", ScrollUpMarker, start)))
	}
	for i := start; i < end; i++ {
		lines = append(lines, truncate(renderTask(s, state.Tasks[i], i == state.Cursor), state.Width))
	}
	if remaining := len(state.Tasks) - end; remaining > 0 {
		lines = append(lines, s.EmptyState.Render(fmt.Sprintf("%s %d more below", ScrollDownMarker, remaining)))
	}
	b.WriteString(strings.Join(lines, "\n"))
	return b.String()
}

func renderTask(s *styles.Styles, t tracker.Task, selected bool) string {
	cursor := " "
	if selected {
		cursor = s.Cursor.Render(CursorMarker)
	}

	if t.Completed {
		return cursor + " " + s.CheckDone.Render(CheckDone) + " " + s.TaskDone.Render(t.Title)
	}
	return cursor + " " + s.CheckOpen.Render(CheckOpen) + " " + s.TaskOpen.Render(t.Title)
}
