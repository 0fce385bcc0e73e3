package tui

// Layout constants for the body of the screen, the part between the
// header and the toasts/help bar/footer.
const (
	// ScrollIndicatorLines reserves room for the "more above" and "more
	// below" lines around a scrolled task list.
	ScrollIndicatorLines = 2

	// MinTaskLines is the smallest share of the body the task list gets
	// when tasks and notes do not both fit.
	MinTaskLines = 3
)

// bodyLayout is the result of fitting tasks and notes into the body.
// Zero values mean "no limit".
type bodyLayout struct {
	taskRows  int // tasks listed at once
	noteLines int // lines for note boxes below the notes heading
}

// CalculateBodyLayout splits bodyHeight lines between the task list and
// the notes. headingLines is the height of one section heading, taskCount
// the number of tasks and notesHeight the full height of the note boxes.
// Notes never take more than half of what is left after the headings, so
// the task under the cursor stays on screen.
func CalculateBodyLayout(bodyHeight, headingLines, taskCount, notesHeight int) (taskRows, noteLines int) {
	taskNeed := max(taskCount, 1) // the empty-list hint takes one line
	avail := bodyHeight - 2*headingLines
	if taskNeed+notesHeight <= avail {
		return 0, 0
	}

	notesShare := max(min(notesHeight, avail/2), 1)
	taskLines := max(avail-notesShare, MinTaskLines)
	if taskCount <= taskLines {
		return 0, max(avail-taskNeed, 1)
	}
	return max(taskLines-ScrollIndicatorLines, 1), max(avail-taskLines, 1)
}

// scrollWindow returns the offset of the first visible task so that the
// cursor is inside a window of visible rows. offset is the previous value;
// the window moves only as far as needed.
func scrollWindow(offset, cursor, visible, total int) int {
	if visible <= 0 || total <= visible {
		return 0
	}
	if cursor < offset {
		offset = cursor
	}
	if cursor >= offset+visible {
		offset = cursor - visible + 1
	}
	return max(0, min(offset, total-visible))
}
