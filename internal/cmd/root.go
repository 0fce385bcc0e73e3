// Package cmd defines the tally command line.
package cmd

import (
	"fmt"

	"github.com/Iron-Ham/tally/internal/config"
	"github.com/Iron-Ham/tally/internal/errors"
	"github.com/Iron-Ham/tally/internal/logging"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "tally",
	Short: "Track tasks and notes, unlock achievements",
	Long: `Tally is a terminal tracker for tasks and notes. Completing tasks and
writing notes unlocks achievements along the way.

Run without a subcommand to open the interactive tracker.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runTUI,
}

var (
	// cfgFile is the --config flag value.
	cfgFile string

	// configErr holds the error from reading the config file, if any. It is
	// reported by the first command that needs the configuration.
	configErr error
)

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is $HOME/.config/tally/config.yaml)")
}

func initConfig() {
	configErr = config.Init(cfgFile)
}

// loadConfig returns the validated configuration, wrapping any problem in
// a ConfigError that names the file in use.
func loadConfig() (*config.Config, error) {
	if configErr != nil {
		return nil, errors.NewConfigError(cfgFile, configErr)
	}

	cfg, err := config.Load()
	if err != nil {
		var verrs config.ValidationErrors
		if errors.As(err, &verrs) {
			return nil, errors.NewConfigError(viper.ConfigFileUsed(), errors.ErrInvalidConfig).
				WithDetails(verrs.Messages()...)
		}
		return nil, errors.NewConfigError(viper.ConfigFileUsed(), err)
	}
	return cfg, nil
}

// newLogger builds the session logger described by cfg. Logging is off
// unless enabled, in which case entries go to <dir>/tally.log tagged with
// a fresh session id.
func newLogger(cfg *config.Config) (*logging.Logger, error) {
	if !cfg.Logging.Enabled {
		return logging.NopLogger(), nil
	}

	logger, err := logging.NewLogger(cfg.Logging.ResolveDir(), cfg.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to start logging: %w", err)
	}
	return logger.WithSession(uuid.NewString()), nil
}
