package view

import (
	"fmt"
	"strings"

	"github.com/Iron-Ham/tally/internal/tracker"
	"github.com/Iron-Ham/tally/internal/tui/styles"
	"github.com/Iron-Ham/tally/internal/util"
	"github.com/charmbracelet/lipgloss"
)

// EmptyNotesText is shown when no note has been added yet.
const EmptyNotesText = "No notes yet. Press n to add one."

// notesPerRow is how many note boxes share a row.
const notesPerRow = 3

// minNoteWidth is the narrowest inner width a note box shrinks to.
const minNoteWidth = 8

// RenderNotes renders the notes section as rows of bordered boxes.
// maxLines bounds the lines below the heading; 0 means unbounded. Rows
// that do not fit are replaced by a count of the notes left out.
func RenderNotes(s *styles.Styles, notes []tracker.Note, width, maxLines int) string {
	var b strings.Builder
	b.WriteString(s.Section.Render("Notes (" + util.Count(len(notes), "note", "notes") + ")"))
	b.WriteString("\n")

	if len(notes) == 0 {
		b.WriteString(s.EmptyState.Render(EmptyNotesText))
		return b.String()
	}

	boxWidth := noteBoxWidth(s, width)
	rows := make([]string, 0, (len(notes)+notesPerRow-1)/notesPerRow)
	for start := 0; start < len(notes); start += notesPerRow {
		end := min(start+notesPerRow, len(notes))
		boxes := make([]string, 0, end-start)
		for _, n := range notes[start:end] {
			content := util.TruncateANSI(n.Content, boxWidth)
			boxes = append(boxes, s.NoteBox.Width(boxWidth+s.NoteBox.GetHorizontalPadding()).Render(content))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, boxes...))
	}

	if maxLines > 0 {
		rows = fitNoteRows(s, rows, len(notes), maxLines)
	}
	b.WriteString(clampLines(lipgloss.JoinVertical(lipgloss.Left, rows...), width))
	return b.String()
}

// fitNoteRows keeps the leading rows that fit in maxLines. When rows are
// dropped, one line is reserved for a count of the hidden notes.
func fitNoteRows(s *styles.Styles, rows []string, total, maxLines int) []string {
	used := 0
	for _, row := range rows {
		used += lipgloss.Height(row)
	}
	if used <= maxLines {
		return rows
	}

	kept, used := 0, 0
	for _, row := range rows {
		h := lipgloss.Height(row)
		if used+h > maxLines-1 {
			break
		}
		used += h
		kept++
	}
	hidden := total - kept*notesPerRow
	return append(rows[:kept:kept], s.EmptyState.Render(
		fmt.Sprintf("%s %s", ScrollDownMarker, util.Count(hidden, "more note", "more notes"))))
}

// noteBoxWidth returns the content width of each note box so that a full
// row fits in width.
func noteBoxWidth(s *styles.Styles, width int) int {
	if width <= 0 {
		return minNoteWidth * 2
	}
	w := width/notesPerRow - s.NoteBox.GetHorizontalFrameSize()
	return max(w, minNoteWidth)
}
