package tui

import (
	"strings"

	"github.com/Iron-Ham/tally/internal/tui/styles"
	"github.com/Iron-Ham/tally/internal/tui/view"
	"github.com/charmbracelet/lipgloss"
)

// defaultWidth is used before the first WindowSizeMsg arrives.
const defaultWidth = 80

// frame holds every section except the task list and the notes.
type frame struct {
	header string
	bottom []string // toasts, error line, help bar, footer
}

func (f frame) lines() int {
	n := lipgloss.Height(f.header)
	for _, s := range f.bottom {
		n += lipgloss.Height(s)
	}
	return n
}

func (m Model) renderWidth() int {
	if m.width <= 0 {
		return defaultWidth
	}
	return m.width
}

func (m Model) renderFrame(width int) frame {
	s := m.styles
	f := frame{header: view.RenderHeader(s, m.tracker.Achievements(), width)}
	var errLine string
	if m.errorMessage != "" {
		errLine = s.Cursor.Render("error: ") + m.errorMessage
	}
	help := view.RenderHelpBar(s, view.HelpBarState{
		Entries:  m.keymap.HelpEntries(),
		Expanded: m.showHelp,
		Width:    width,
	})
	footer := view.RenderFooter(s, width)

	toasts := m.Toasts()
	if m.height > 0 {
		used := lipgloss.Height(f.header) + lipgloss.Height(help) + lipgloss.Height(footer)
		if errLine != "" {
			used += lipgloss.Height(errLine)
		}
		budget := m.height - used - minBodyLines(view.SectionHeadingHeight(s))
		toasts = newestToastsWithin(s, toasts, width, budget)
	}

	if rendered := view.RenderToasts(s, toasts, width); rendered != "" {
		f.bottom = append(f.bottom, rendered)
	}
	if errLine != "" {
		f.bottom = append(f.bottom, errLine)
	}
	f.bottom = append(f.bottom, help, footer)
	return f
}

// minBodyLines is the room kept for the task and note sections before
// any toast is shown: both headings, a few tasks and one line of notes.
func minBodyLines(headingLines int) int {
	return 2*headingLines + MinTaskLines + 1
}

// newestToastsWithin returns the most recent toasts whose stack fits in
// budget lines, oldest first. Toasts left out are still live and show up
// once there is room or the newer ones expire.
func newestToastsWithin(s *styles.Styles, toasts []view.Toast, width, budget int) []view.Toast {
	start := len(toasts)
	used := 0
	for start > 0 {
		h := lipgloss.Height(view.RenderToasts(s, toasts[start-1:start], width))
		if used+h > budget {
			break
		}
		used += h
		start--
	}
	return toasts[start:]
}

// layout fits the task list and the notes into the rows the frame leaves
// free. Before the terminal height is known nothing is limited.
func (m Model) layout(f frame, width int) bodyLayout {
	if m.height <= 0 {
		return bodyLayout{}
	}
	heading := view.SectionHeadingHeight(m.styles)
	notesHeight := lipgloss.Height(view.RenderNotes(m.styles, m.tracker.Notes(), width, 0)) - heading
	taskRows, noteLines := CalculateBodyLayout(m.height-f.lines(), heading, len(m.tracker.Tasks()), notesHeight)
	return bodyLayout{taskRows: taskRows, noteLines: noteLines}
}

// ensureCursorVisible moves the task scroll offset so the cursor is on
// screen under the current layout.
func (m *Model) ensureCursorVisible() {
	width := m.renderWidth()
	lay := m.layout(m.renderFrame(width), width)
	m.taskOffset = scrollWindow(m.taskOffset, m.cursor, lay.taskRows, len(m.tracker.Tasks()))
}

// render composes the screen from the view sections, top to bottom. The
// result never has more lines than the terminal, and anything cut is cut
// from the bottom so the header stays visible.
func (m Model) render() string {
	width := m.renderWidth()
	f := m.renderFrame(width)
	lay := m.layout(f, width)
	tasks := m.tracker.Tasks()

	sections := []string{
		f.header,
		view.RenderTasks(m.styles, view.TasksState{
			Tasks:   tasks,
			Cursor:  m.cursor,
			Width:   width,
			Offset:  scrollWindow(m.taskOffset, m.cursor, lay.taskRows, len(tasks)),
			Visible: lay.taskRows,
		}),
		view.RenderNotes(m.styles, m.tracker.Notes(), width, lay.noteLines),
	}
	sections = append(sections, f.bottom...)
	return clampHeight(strings.Join(sections, "\n"), m.height)
}

// clampHeight keeps the first height lines of s; height <= 0 keeps all.
func clampHeight(s string, height int) string {
	if height <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	if len(lines) <= height {
		return s
	}
	return strings.Join(lines[:height], "\n")
}
