package msg

import (
	"io"
	"time"

	"github.com/Iron-Ham/tally/internal/config"
	tea "github.com/charmbracelet/bubbletea"
)

// ExpireToast returns a command that sends a ToastExpiredMsg for id after d.
func ExpireToast(id int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ToastExpiredMsg{ID: id}
	})
}

// RingBell returns a command that writes a terminal bell character to w.
// Writing directly works even when bubbletea is in alt-screen mode.
func RingBell(w io.Writer) tea.Cmd {
	return func() tea.Msg {
		_, _ = w.Write([]byte{'\a'})
		return nil
	}
}

// ReloadConfig returns a command that wraps cfg in a ConfigReloadedMsg,
// or an ErrMsg when loading failed.
func ReloadConfig(cfg *config.Config, err error) tea.Cmd {
	return func() tea.Msg {
		if err != nil {
			return ErrMsg{Err: err}
		}
		return ConfigReloadedMsg{Config: cfg}
	}
}
