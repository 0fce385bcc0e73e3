package tui

import (
	"io"
	"os"
	"time"

	"github.com/Iron-Ham/tally/internal/config"
	"github.com/Iron-Ham/tally/internal/event"
	"github.com/Iron-Ham/tally/internal/logging"
	"github.com/Iron-Ham/tally/internal/tracker"
	"github.com/Iron-Ham/tally/internal/tui/keymap"
	"github.com/Iron-Ham/tally/internal/tui/styles"
	"github.com/Iron-Ham/tally/internal/tui/view"
)

// Options configures a Model.
type Options struct {
	Tracker *tracker.Tracker
	Bus     *event.Bus
	Config  *config.Config // Defaults to config.Get()
	Logger  *logging.Logger

	// Bell receives the terminal bell character. Defaults to os.Stdout.
	Bell io.Writer
}

// unlockInbox collects unlock notifications published while a key is
// being handled. It is shared by every copy of the Model.
type unlockInbox struct {
	pending []view.Toast
}

func (in *unlockInbox) drain() []view.Toast {
	out := in.pending
	in.pending = nil
	return out
}

// activeToast is a toast on screen, keyed so its expiry can find it.
type activeToast struct {
	id    int
	toast view.Toast
}

// Model holds the TUI application state
type Model struct {
	// Core components
	tracker        *tracker.Tracker
	bus            *event.Bus
	subscriptionID string
	inbox          *unlockInbox
	keymap         *keymap.Keymap
	logger         *logging.Logger
	bellOut        io.Writer

	// Settings, replaced on config reload
	styles        *styles.Styles
	theme         string
	toastDuration time.Duration
	bell          bool

	// UI state
	width        int
	height       int
	cursor       int
	taskOffset   int // first task row shown when the list scrolls
	showHelp     bool
	quitting     bool
	errorMessage string
	toasts       []activeToast
	nextToastID  int
}

// NewModel creates a new TUI model and subscribes it to unlock
// notifications on opts.Bus. Call Close to unsubscribe.
func NewModel(opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Get()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NopLogger()
	}
	bellOut := opts.Bell
	if bellOut == nil {
		bellOut = os.Stdout
	}
	bus := opts.Bus
	if bus == nil {
		bus = event.NewBus(logger)
	}
	tr := opts.Tracker
	if tr == nil {
		tr = tracker.New(tracker.WithPublisher(bus), tracker.WithLogger(logger))
	}

	m := Model{
		tracker: tr,
		bus:     bus,
		inbox:   &unlockInbox{},
		keymap:  keymap.DefaultKeymap(),
		logger:  logger.WithComponent("tui"),
		bellOut: bellOut,
	}
	m.applyConfig(cfg)

	inbox := m.inbox
	m.subscriptionID = bus.Subscribe(event.TypeAchievementUnlocked, func(e event.Event) {
		unlocked, ok := e.(event.AchievementUnlockedEvent)
		if !ok {
			return
		}
		inbox.pending = append(inbox.pending, view.Toast{
			Title:       unlocked.Title,
			Description: unlocked.Description,
		})
	})
	return m
}

// Close unsubscribes the model from the event bus.
func (m Model) Close() {
	m.bus.Unsubscribe(m.subscriptionID)
}

// applyConfig replaces the settings that can change while running.
func (m *Model) applyConfig(cfg *config.Config) {
	m.theme = cfg.TUI.Theme
	m.styles = styles.New(cfg.TUI.Theme)
	m.showHelp = cfg.TUI.ShowHelp
	m.toastDuration = cfg.Notifications.ToastDuration()
	m.bell = cfg.Notifications.Bell
}

// Cursor returns the index of the selected task.
func (m Model) Cursor() int {
	return m.cursor
}

// Toasts returns the toasts currently on screen, oldest first.
func (m Model) Toasts() []view.Toast {
	out := make([]view.Toast, len(m.toasts))
	for i, t := range m.toasts {
		out[i] = t.toast
	}
	return out
}

// ShowHelp reports whether the full help bar is displayed.
func (m Model) ShowHelp() bool {
	return m.showHelp
}

// Theme returns the active theme name.
func (m Model) Theme() string {
	return m.theme
}

// Tracker returns the tracker the model drives.
func (m Model) Tracker() *tracker.Tracker {
	return m.tracker
}

// selectedTask returns the task under the cursor.
func (m Model) selectedTask() (tracker.Task, bool) {
	tasks := m.tracker.Tasks()
	if m.cursor < 0 || m.cursor >= len(tasks) {
		return tracker.Task{}, false
	}
	return tasks[m.cursor], true
}
