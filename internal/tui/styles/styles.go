// Package styles holds the lipgloss styles for the tally TUI, built from a
// themeable color palette.
package styles

import "github.com/charmbracelet/lipgloss"

// Styles is the full set of styles the TUI renders with.
type Styles struct {
	Palette *ColorPalette

	Title   lipgloss.Style
	Section lipgloss.Style

	BadgeUnlocked lipgloss.Style
	BadgeLocked   lipgloss.Style

	TaskOpen   lipgloss.Style
	TaskDone   lipgloss.Style
	Cursor     lipgloss.Style
	CheckOpen  lipgloss.Style
	CheckDone  lipgloss.Style
	EmptyState lipgloss.Style

	NoteBox lipgloss.Style

	Toast      lipgloss.Style
	ToastTitle lipgloss.Style

	HelpBar lipgloss.Style
	HelpKey lipgloss.Style
	Footer  lipgloss.Style
}

// New builds the styles for the named theme. Unknown names get the
// default theme.
func New(theme string) *Styles {
	return FromPalette(GetPalette(ThemeName(theme)))
}

// FromPalette builds styles from an explicit palette.
func FromPalette(p *ColorPalette) *Styles {
	badge := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		MarginRight(1)

	return &Styles{
		Palette: p,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary),
		Section: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Text).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(p.Border).
			MarginTop(1),

		BadgeUnlocked: badge.
			Bold(true).
			Foreground(p.Gold).
			BorderForeground(p.Gold),
		BadgeLocked: badge.
			Faint(true).
			Foreground(p.Muted).
			BorderForeground(p.Border),

		TaskOpen: lipgloss.NewStyle().Foreground(p.Text),
		TaskDone: lipgloss.NewStyle().
			Strikethrough(true).
			Foreground(p.Muted),
		Cursor: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary),
		CheckOpen: lipgloss.NewStyle().Foreground(p.Border),
		CheckDone: lipgloss.NewStyle().Foreground(p.Secondary),
		EmptyState: lipgloss.NewStyle().
			Italic(true).
			Foreground(p.Muted),

		NoteBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(0, 1),

		Toast: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(p.Gold).
			Background(p.Surface).
			Foreground(p.Text).
			Padding(0, 2),
		ToastTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Gold),

		HelpBar: lipgloss.NewStyle().
			Foreground(p.Muted).
			MarginTop(1),
		HelpKey: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Secondary),
		Footer: lipgloss.NewStyle().
			Foreground(p.Muted).
			Italic(true).
			MarginTop(1),
	}
}
