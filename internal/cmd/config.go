package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Iron-Ham/tally/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or modify tally configuration",
	Long: `View or modify tally configuration.

Without arguments, displays the current configuration.
Use subcommands to modify settings or create a config file.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration as YAML",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value in the user's config file.

Keys use dot notation, e.g.:
  tally config set tui.theme dracula
  tally config set notifications.bell true

Valid keys:
  tui.theme                        - Color theme (default, dracula, nord)
  tui.show_help                    - Show the key binding bar (true/false)
  notifications.toast_duration_ms  - How long unlock toasts stay on screen
  notifications.bell               - Ring the terminal bell on unlock (true/false)
  ids.strategy                     - Id scheme (counter, uuid)
  logging.enabled                  - Write a debug log (true/false)
  logging.level                    - Minimum log level (debug, info, warn, error)
  logging.dir                      - Log directory`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file",
	Long:  `Create a default config file at ~/.config/tally/config.yaml with all available options.`,
	RunE:  runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file path",
	RunE:  runConfigPath,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
}

// configKeyTypes lists the settable keys and how their values are parsed.
var configKeyTypes = map[string]string{
	"tui.theme":                       "string",
	"tui.show_help":                   "bool",
	"notifications.toast_duration_ms": "int",
	"notifications.bell":              "bool",
	"ids.strategy":                    "string",
	"logging.enabled":                 "bool",
	"logging.level":                   "string",
	"logging.dir":                     "string",
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if used := viper.ConfigFileUsed(); used != "" {
		fmt.Fprintf(out, "# Config file: %s\n", used)
	} else {
		fmt.Fprintln(out, "# Config file: (none - using defaults)")
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	_, err = out.Write(data)
	return err
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key := args[0]
	value := args[1]

	keyType, ok := configKeyTypes[key]
	if !ok {
		return fmt.Errorf("unknown configuration key: %s\nRun 'tally config set --help' to see valid keys", key)
	}

	var typedValue any
	switch keyType {
	case "bool":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid value for %s: expected true or false", key)
		}
		typedValue = b
	case "int":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid value for %s: expected integer", key)
		}
		typedValue = n
	default:
		typedValue = value
	}

	previous := viper.Get(key)
	viper.Set(key, typedValue)

	// Reject values the validator would refuse on the next start
	if _, err := loadConfig(); err != nil {
		viper.Set(key, previous)
		return err
	}

	configDir := config.ConfigDir()
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		configFile = config.ConfigFile()
	}
	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Set %s = %v\n", key, typedValue)
	fmt.Fprintf(out, "Config saved to %s\n", configFile)
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	configDir := config.ConfigDir()
	configFile := config.ConfigFile()

	if _, err := os.Stat(configFile); err == nil {
		return fmt.Errorf("config file already exists at %s\nUse 'tally config set' to modify values", configFile)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config.Default())
	if err != nil {
		return fmt.Errorf("failed to encode default config: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("# Tally configuration\n")
	sb.WriteString("#\n")
	sb.WriteString("# tui.theme: " + strings.Join(config.ValidThemes(), ", ") + "\n")
	sb.WriteString("# ids.strategy: " + strings.Join(config.ValidIDStrategies(), ", ") + "\n")
	sb.WriteString("# logging.level: " + strings.Join(config.ValidLogLevels(), ", ") + "\n\n")
	sb.Write(data)

	if err := os.WriteFile(configFile, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created config file at %s\n", configFile)
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if used := viper.ConfigFileUsed(); used != "" {
		fmt.Fprintln(out, used)
		return nil
	}
	fmt.Fprintf(out, "%s (not created yet)\n", config.ConfigFile())
	return nil
}
