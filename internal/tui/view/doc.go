// Package view renders the sections of the tally screen.
//
// Each function takes a [styles.Styles] and the slice of state it draws,
// and returns a string that fits within the given width. The functions
// hold no state of their own, so the TUI model composes them directly
// in its View method.
//
// # Sections
//
//   - [RenderHeader]: title plus one badge per achievement, bright when
//     unlocked and faint otherwise
//   - [RenderTasks]: checkbox list with a cursor; completed tasks are
//     struck through, and a long list scrolls within a window
//   - [RenderNotes]: read-only note boxes, cut to a line budget
//   - [RenderToasts]: the stack of active unlock notifications
//   - [RenderHelpBar]: key bindings, or a short hint when help is hidden
//   - [RenderFooter]: the closing encouragement line
package view
