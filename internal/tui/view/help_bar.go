package view

import (
	"strings"

	"github.com/Iron-Ham/tally/internal/tui/keymap"
	"github.com/Iron-Ham/tally/internal/tui/styles"
)

// HelpHint is shown in place of the help bar when help is hidden.
const HelpHint = "? help  q quit"

// HelpBarState holds the state needed to render the help bar.
type HelpBarState struct {
	// Entries are the key bindings to list, usually Keymap.HelpEntries.
	Entries []keymap.HelpEntry

	// Expanded shows every binding instead of the short hint.
	Expanded bool

	// Width is the available width for the bar.
	Width int
}

// RenderHelpBar renders the key binding bar.
func RenderHelpBar(s *styles.Styles, state HelpBarState) string {
	if !state.Expanded {
		return s.HelpBar.Render(truncate(HelpHint, state.Width))
	}

	parts := make([]string, 0, len(state.Entries))
	for _, e := range state.Entries {
		parts = append(parts, s.HelpKey.Render(strings.Join(e.Keys, "/"))+" "+e.Description)
	}
	return s.HelpBar.Render(truncate(strings.Join(parts, "  "), state.Width))
}
