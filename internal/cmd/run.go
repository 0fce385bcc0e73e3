package cmd

import (
	"os"

	"github.com/Iron-Ham/tally/internal/config"
	"github.com/Iron-Ham/tally/internal/errors"
	"github.com/Iron-Ham/tally/internal/event"
	"github.com/Iron-Ham/tally/internal/logging"
	"github.com/Iron-Ham/tally/internal/tracker"
	"github.com/Iron-Ham/tally/internal/tui"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the interactive tracker",
	Long: `Open the interactive tracker in the terminal.

Keys:
  t, a          add a task
  n             add a note
  space, enter  toggle the selected task
  j/k, arrows   move the selection
  ?             show or hide help
  q, ctrl+c     quit

Edits to the config file are applied while the tracker is open.`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.ErrNotATerminal
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Close() }()

	bus := event.NewBus(logger)
	tr := tracker.New(
		tracker.WithIDGenerator(tracker.NewIDGenerator(cfg.IDs.Strategy)),
		tracker.WithPublisher(bus),
		tracker.WithLogger(logger),
	)

	app := tui.New(tui.Options{
		Tracker: tr,
		Bus:     bus,
		Config:  cfg,
		Logger:  logger,
	})
	watchConfig(app, logger)

	logger.Info("tracker opened", "theme", cfg.TUI.Theme, "id_strategy", cfg.IDs.Strategy)
	err = app.Run()
	logger.Info("tracker closed",
		"tasks", len(tr.Tasks()),
		"notes", tr.NoteCount(),
		"achievements", tr.Achievements().Count(),
	)
	return err
}

// configReloader receives configuration reloads.
type configReloader interface {
	Reload(cfg *config.Config, err error)
}

// watchConfig re-reads the config file whenever it is written and hands
// the result to r. Does nothing when no config file is in use.
func watchConfig(r configReloader, logger *logging.Logger) {
	if viper.ConfigFileUsed() == "" {
		return
	}

	viper.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		logger.Debug("config file changed", "file", e.Name, "op", e.Op.String())
		r.Reload(loadConfig())
	})
	viper.WatchConfig()
}
