// Package keymap declares the TUI key bindings and resolves key presses
// into named commands.
package keymap

import tea "github.com/charmbracelet/bubbletea"

// Command represents a named action that can be triggered by a key binding.
type Command string

const (
	// Tracker mutations
	CmdAddTask    Command = "add_task"
	CmdAddNote    Command = "add_note"
	CmdToggleTask Command = "toggle_task"

	// Navigation
	CmdCursorUp   Command = "cursor_up"
	CmdCursorDown Command = "cursor_down"

	// View
	CmdToggleHelp Command = "toggle_help"

	// Exit
	CmdQuit Command = "quit"
)

// KeyBinding represents a single key binding configuration.
type KeyBinding struct {
	// KeyType is the key for this binding. For rune keys use tea.KeyRunes
	// and set Rune.
	KeyType tea.KeyType

	// Rune is the character for rune-based keys.
	Rune rune

	// Command is the action to execute when this binding is triggered.
	Command Command

	// Description is a human-readable description for help display.
	Description string

	// Category groups related bindings together in help display.
	Category string
}

// Matches checks if a tea.KeyMsg matches this binding.
func (kb KeyBinding) Matches(msg tea.KeyMsg) bool {
	if msg.Alt {
		return false
	}

	if kb.KeyType != tea.KeyRunes {
		return msg.Type == kb.KeyType
	}

	if msg.Type != tea.KeyRunes || len(msg.Runes) == 0 {
		return false
	}
	return msg.Runes[0] == kb.Rune
}

// String returns a human-readable representation of the key binding.
func (kb KeyBinding) String() string {
	if kb.KeyType == tea.KeySpace {
		return "space"
	}
	if kb.KeyType != tea.KeyRunes {
		return kb.KeyType.String()
	}
	return string(kb.Rune)
}

// Keymap is an ordered set of key bindings.
type Keymap struct {
	Name     string
	Bindings []KeyBinding
}

// GetBinding looks up the command bound to msg.
func (km *Keymap) GetBinding(msg tea.KeyMsg) (Command, bool) {
	for _, binding := range km.Bindings {
		if binding.Matches(msg) {
			return binding.Command, true
		}
	}
	return "", false
}

// GetBindingsForCommand returns all bindings that trigger cmd, in
// declaration order.
func (km *Keymap) GetBindingsForCommand(cmd Command) []KeyBinding {
	var result []KeyBinding
	for _, binding := range km.Bindings {
		if binding.Command == cmd {
			result = append(result, binding)
		}
	}
	return result
}

// GetCategories returns the unique categories in declaration order.
func (km *Keymap) GetCategories() []string {
	seen := make(map[string]bool)
	var categories []string
	for _, binding := range km.Bindings {
		if binding.Category != "" && !seen[binding.Category] {
			seen[binding.Category] = true
			categories = append(categories, binding.Category)
		}
	}
	return categories
}

// HelpEntry is one line of the help bar: every key for a command joined
// together, plus its description.
type HelpEntry struct {
	Keys        []string
	Description string
}

// HelpEntries collapses bindings by command, keeping the first-seen order.
func (km *Keymap) HelpEntries() []HelpEntry {
	index := make(map[Command]int)
	var entries []HelpEntry
	for _, binding := range km.Bindings {
		if i, ok := index[binding.Command]; ok {
			entries[i].Keys = append(entries[i].Keys, binding.String())
			continue
		}
		index[binding.Command] = len(entries)
		entries = append(entries, HelpEntry{
			Keys:        []string{binding.String()},
			Description: binding.Description,
		})
	}
	return entries
}
