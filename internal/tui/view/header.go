package view

import (
	"fmt"
	"strings"

	"github.com/Iron-Ham/tally/internal/tracker"
	"github.com/Iron-Ham/tally/internal/tui/styles"
	"github.com/Iron-Ham/tally/internal/util"
	"github.com/charmbracelet/lipgloss"
)

// AppTitle is shown at the top of the screen.
const AppTitle = "Achievement Tracker"

// Badge markers for unlocked and locked achievements.
const (
	BadgeUnlockedIcon = "★"
	BadgeLockedIcon   = "☆"
)

// RenderHeader renders the title line and the achievement badges.
func RenderHeader(s *styles.Styles, state tracker.AchievementState, width int) string {
	rules := tracker.Rules()
	progress := fmt.Sprintf("%d/%d unlocked", state.Count(), len(rules))
	title := s.Title.Render(AppTitle) + "  " + s.EmptyState.Render(progress)

	badges := make([]string, 0, len(rules))
	for _, r := range rules {
		badges = append(badges, renderBadge(s, r, state.Has(r.Achievement)))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		truncate(title, width),
		clampLines(lipgloss.JoinHorizontal(lipgloss.Top, badges...), width),
	)
}

func renderBadge(s *styles.Styles, r tracker.Rule, unlocked bool) string {
	if unlocked {
		return s.BadgeUnlocked.Render(BadgeUnlockedIcon + " " + r.Name)
	}
	return s.BadgeLocked.Render(BadgeLockedIcon + " " + r.Name)
}

// truncate is util.TruncateANSI with width <= 0 meaning unbounded.
func truncate(line string, width int) string {
	if width <= 0 {
		return line
	}
	return util.TruncateANSI(line, width)
}

// clampLines truncates every line of a multi-line block to width.
func clampLines(block string, width int) string {
	if width <= 0 {
		return block
	}
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		lines[i] = util.TruncateANSI(line, width)
	}
	return strings.Join(lines, "\n")
}
