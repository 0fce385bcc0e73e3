package msg

import "github.com/Iron-Ham/tally/internal/config"

// ToastExpiredMsg is sent when a toast's display time has elapsed.
type ToastExpiredMsg struct {
	ID int
}

// ConfigReloadedMsg carries a freshly loaded configuration after the
// config file changed on disk.
type ConfigReloadedMsg struct {
	Config *config.Config
}

// ErrMsg wraps an error to be displayed in the UI.
type ErrMsg struct {
	Err error
}
