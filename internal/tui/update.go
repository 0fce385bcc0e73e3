package tui

import (
	"github.com/Iron-Ham/tally/internal/tui/keymap"
	tuimsg "github.com/Iron-Ham/tally/internal/tui/msg"
	tea "github.com/charmbracelet/bubbletea"
)

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m, cmd := m.update(msg)
	// Tasks, toasts and the window size all change how many rows the task
	// list gets, so the scroll offset is rechecked after every message.
	m.ensureCursorVisible()
	return m, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKeypress(msg)

	case tuimsg.ToastExpiredMsg:
		m.removeToast(msg.ID)
		return m, nil

	case tuimsg.ConfigReloadedMsg:
		if msg.Config != nil {
			m.applyConfig(msg.Config)
			m.errorMessage = ""
			m.logger.Info("config reloaded", "theme", m.theme)
		}
		return m, nil

	case tuimsg.ErrMsg:
		if msg.Err != nil {
			m.errorMessage = msg.Err.Error()
			m.logger.Warn("tui error", "error", msg.Err.Error())
		}
		return m, nil
	}

	return m, nil
}

// handleKeypress resolves a key to a command and executes it.
// Unbound keys are ignored.
func (m Model) handleKeypress(msg tea.KeyMsg) (Model, tea.Cmd) {
	cmd, ok := m.keymap.GetBinding(msg)
	if !ok {
		return m, nil
	}

	switch cmd {
	case keymap.CmdAddTask:
		task := m.tracker.AddTask()
		m.logger.Debug("task added from tui", "task_id", task.ID)
	case keymap.CmdAddNote:
		note := m.tracker.AddNote()
		m.logger.Debug("note added from tui", "note_id", note.ID)
	case keymap.CmdToggleTask:
		task, ok := m.selectedTask()
		if !ok {
			return m, nil
		}
		m.tracker.ToggleTask(task.ID)
	case keymap.CmdCursorDown:
		if m.cursor < len(m.tracker.Tasks())-1 {
			m.cursor++
		}
		return m, nil
	case keymap.CmdCursorUp:
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case keymap.CmdToggleHelp:
		m.showHelp = !m.showHelp
		return m, nil
	case keymap.CmdQuit:
		m.quitting = true
		return m, tea.Quit
	default:
		return m, nil
	}

	show := m.showUnlocks()
	return m, show
}

// showUnlocks turns pending unlock notifications into toasts and schedules
// their expiry.
func (m *Model) showUnlocks() tea.Cmd {
	pending := m.inbox.drain()
	if len(pending) == 0 {
		return nil
	}

	cmds := make([]tea.Cmd, 0, len(pending)+1)
	for _, t := range pending {
		m.nextToastID++
		m.toasts = append(m.toasts, activeToast{id: m.nextToastID, toast: t})
		cmds = append(cmds, tuimsg.ExpireToast(m.nextToastID, m.toastDuration))
	}
	if m.bell {
		cmds = append(cmds, tuimsg.RingBell(m.bellOut))
	}
	return tea.Batch(cmds...)
}

func (m *Model) removeToast(id int) {
	kept := m.toasts[:0:0]
	for _, t := range m.toasts {
		if t.id != id {
			kept = append(kept, t)
		}
	}
	m.toasts = kept
}

// View renders the UI
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.render()
}
