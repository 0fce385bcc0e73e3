// Package config loads, validates and persists tally settings through viper.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete tally configuration
type Config struct {
	TUI           TUIConfig          `mapstructure:"tui" yaml:"tui"`
	Notifications NotificationConfig `mapstructure:"notifications" yaml:"notifications"`
	IDs           IDConfig           `mapstructure:"ids" yaml:"ids"`
	Logging       LoggingConfig      `mapstructure:"logging" yaml:"logging"`
}

// TUIConfig controls the terminal UI
type TUIConfig struct {
	// Theme is the color theme (default: "default")
	// Options: "default", "dracula", "nord"
	Theme string `mapstructure:"theme" yaml:"theme"`
	// ShowHelp shows the key binding bar at the bottom of the screen
	ShowHelp bool `mapstructure:"show_help" yaml:"show_help"`
}

// NotificationConfig controls how achievement unlocks are announced
type NotificationConfig struct {
	// ToastDurationMs is how long an unlock toast stays on screen
	ToastDurationMs int `mapstructure:"toast_duration_ms" yaml:"toast_duration_ms"`
	// Bell rings the terminal bell on every unlock
	Bell bool `mapstructure:"bell" yaml:"bell"`
}

// IDConfig controls how task and note ids are generated
type IDConfig struct {
	// Strategy is "counter" (task-1, note-1, ...) or "uuid"
	Strategy string `mapstructure:"strategy" yaml:"strategy"`
}

// LoggingConfig controls the debug log
type LoggingConfig struct {
	// Enabled writes a JSON debug log to Dir
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
	// Level is the minimum level written: debug, info, warn, error
	Level string `mapstructure:"level" yaml:"level"`
	// Dir is where tally.log is written. Empty means <config dir>/logs.
	Dir string `mapstructure:"dir" yaml:"dir"`
}

// ToastDuration returns the toast lifetime as a time.Duration
func (c *NotificationConfig) ToastDuration() time.Duration {
	return time.Duration(c.ToastDurationMs) * time.Millisecond
}

// ResolveDir returns the log directory, falling back to <config dir>/logs.
func (c *LoggingConfig) ResolveDir() string {
	if c.Dir != "" {
		return c.Dir
	}
	return filepath.Join(ConfigDir(), "logs")
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		TUI: TUIConfig{
			Theme:    "default",
			ShowHelp: true,
		},
		Notifications: NotificationConfig{
			ToastDurationMs: 3000,
			Bell:            false,
		},
		IDs: IDConfig{
			Strategy: "counter",
		},
		Logging: LoggingConfig{
			Enabled: false, // The TUI owns the terminal, so logs only go to a file when asked
			Level:   "info",
			Dir:     "",
		},
	}
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("tui.theme", defaults.TUI.Theme)
	viper.SetDefault("tui.show_help", defaults.TUI.ShowHelp)

	viper.SetDefault("notifications.toast_duration_ms", defaults.Notifications.ToastDurationMs)
	viper.SetDefault("notifications.bell", defaults.Notifications.Bell)

	viper.SetDefault("ids.strategy", defaults.IDs.Strategy)

	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.dir", defaults.Logging.Dir)
}

// Init points viper at the config file and environment. An explicit
// cfgFile wins over the search path; a missing file is not an error.
func Init(cfgFile string) error {
	SetDefaults()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(ConfigDir())
		viper.AddConfigPath(".")
	}

	viper.SetEnvPrefix("TALLY")
	// e.g., TALLY_NOTIFICATIONS_BELL for notifications.bell
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok && cfgFile == "" {
			return nil
		}
		return err
	}
	return nil
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration (convenience function)
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "tally")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".tally"
	}
	return filepath.Join(home, ".config", "tally")
}

// ConfigFile returns the path to the default config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
