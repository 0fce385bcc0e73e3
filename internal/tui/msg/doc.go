// Package msg defines the messages the tally TUI exchanges with bubbletea
// and the command factories that produce them.
//
// Factories are pure: they return tea.Cmd values and never touch model
// state, so they can be tested by invoking the command directly.
package msg
