package styles

import (
	"slices"

	"github.com/charmbracelet/lipgloss"
)

// ThemeName identifies a built-in color theme.
type ThemeName string

const (
	ThemeDefault ThemeName = "default"
	ThemeDracula ThemeName = "dracula"
	ThemeNord    ThemeName = "nord"
)

// BuiltinThemes returns the names of all built-in themes.
func BuiltinThemes() []string {
	return []string{string(ThemeDefault), string(ThemeDracula), string(ThemeNord)}
}

// IsValidTheme reports whether name is a built-in theme.
func IsValidTheme(name string) bool {
	return slices.Contains(BuiltinThemes(), name)
}

// ColorPalette defines the color scheme for a theme.
type ColorPalette struct {
	// Primary accent (titles, cursor)
	Primary lipgloss.Color
	// Secondary accent (completed checkboxes, help keys)
	Secondary lipgloss.Color
	// Achievement badge and toast accent
	Gold lipgloss.Color
	// De-emphasized text and locked badges
	Muted lipgloss.Color
	// Panel and toast background
	Surface lipgloss.Color
	// Primary text
	Text lipgloss.Color
	// Panel borders
	Border lipgloss.Color
}

// DefaultPalette returns the purple/green dark palette.
func DefaultPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#A78BFA"), // Purple (violet-400)
		Secondary: lipgloss.Color("#10B981"), // Green
		Gold:      lipgloss.Color("#FBBF24"), // Amber-400
		Muted:     lipgloss.Color("#9CA3AF"), // Gray
		Surface:   lipgloss.Color("#1F2937"), // Dark surface
		Text:      lipgloss.Color("#F9FAFB"), // Light text
		Border:    lipgloss.Color("#6B7280"), // Gray-500
	}
}

// DraculaPalette returns the Dracula palette.
func DraculaPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#BD93F9"), // Dracula purple
		Secondary: lipgloss.Color("#50FA7B"), // Dracula green
		Gold:      lipgloss.Color("#F1FA8C"), // Dracula yellow
		Muted:     lipgloss.Color("#6272A4"), // Dracula comment
		Surface:   lipgloss.Color("#282A36"), // Dracula background
		Text:      lipgloss.Color("#F8F8F2"), // Dracula foreground
		Border:    lipgloss.Color("#44475A"), // Dracula selection
	}
}

// NordPalette returns the Nord palette.
func NordPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#88C0D0"), // Nord frost (cyan)
		Secondary: lipgloss.Color("#A3BE8C"), // Nord aurora green
		Gold:      lipgloss.Color("#EBCB8B"), // Nord aurora yellow
		Muted:     lipgloss.Color("#4C566A"), // Nord polar night 3
		Surface:   lipgloss.Color("#2E3440"), // Nord polar night 0
		Text:      lipgloss.Color("#ECEFF4"), // Nord snow storm 2
		Border:    lipgloss.Color("#434C5E"), // Nord polar night 2
	}
}

// GetPalette returns the palette for name, or the default palette for
// unknown names.
func GetPalette(name ThemeName) *ColorPalette {
	switch name {
	case ThemeDracula:
		return DraculaPalette()
	case ThemeNord:
		return NordPalette()
	default:
		return DefaultPalette()
	}
}
