package view

import (
	"github.com/Iron-Ham/tally/internal/tui/styles"
	"github.com/charmbracelet/lipgloss"
)

// Toast is a single on-screen unlock notification.
type Toast struct {
	Title       string
	Description string
}

// RenderToasts renders active toasts stacked vertically, oldest first.
// Returns an empty string when there is nothing to show.
func RenderToasts(s *styles.Styles, toasts []Toast, width int) string {
	if len(toasts) == 0 {
		return ""
	}

	inner := 0
	if width > 0 {
		inner = width - s.Toast.GetHorizontalFrameSize()
	}

	rendered := make([]string, 0, len(toasts))
	for _, t := range toasts {
		body := lipgloss.JoinVertical(lipgloss.Left,
			s.ToastTitle.Render(t.Title),
			t.Description,
		)
		if inner > 0 {
			body = clampLines(body, inner)
		}
		rendered = append(rendered, s.Toast.Render(body))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rendered...)
}
