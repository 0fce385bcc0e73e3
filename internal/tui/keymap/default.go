package keymap

import tea "github.com/charmbracelet/bubbletea"

// DefaultKeymap returns the tally key bindings.
func DefaultKeymap() *Keymap {
	return &Keymap{
		Name: "default",
		Bindings: []KeyBinding{
			// Tracker
			{KeyType: tea.KeyRunes, Rune: 't', Command: CmdAddTask, Description: "add task", Category: "Tracker"},
			{KeyType: tea.KeyRunes, Rune: 'a', Command: CmdAddTask, Description: "add task", Category: "Tracker"},
			{KeyType: tea.KeyRunes, Rune: 'n', Command: CmdAddNote, Description: "add note", Category: "Tracker"},
			{KeyType: tea.KeySpace, Command: CmdToggleTask, Description: "toggle", Category: "Tracker"},
			{KeyType: tea.KeyEnter, Command: CmdToggleTask, Description: "toggle", Category: "Tracker"},
			{KeyType: tea.KeyRunes, Rune: 'x', Command: CmdToggleTask, Description: "toggle", Category: "Tracker"},

			// Navigation
			{KeyType: tea.KeyRunes, Rune: 'j', Command: CmdCursorDown, Description: "down", Category: "Navigation"},
			{KeyType: tea.KeyDown, Command: CmdCursorDown, Description: "down", Category: "Navigation"},
			{KeyType: tea.KeyRunes, Rune: 'k', Command: CmdCursorUp, Description: "up", Category: "Navigation"},
			{KeyType: tea.KeyUp, Command: CmdCursorUp, Description: "up", Category: "Navigation"},

			// Application
			{KeyType: tea.KeyRunes, Rune: '?', Command: CmdToggleHelp, Description: "help", Category: "Application"},
			{KeyType: tea.KeyRunes, Rune: 'q', Command: CmdQuit, Description: "quit", Category: "Application"},
			{KeyType: tea.KeyCtrlC, Command: CmdQuit, Description: "quit", Category: "Application"},
		},
	}
}
