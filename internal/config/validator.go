package config

import (
	"fmt"
	"slices"
	"strings"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "tui.theme")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// Messages returns each error's text, one per entry.
func (e ValidationErrors) Messages() []string {
	out := make([]string, len(e))
	for i, err := range e {
		out[i] = err.Error()
	}
	return out
}

// ValidThemes returns the list of valid TUI themes
func ValidThemes() []string {
	return []string{"default", "dracula", "nord"}
}

// ValidIDStrategies returns the list of valid id strategies
func ValidIDStrategies() []string {
	return []string{"counter", "uuid"}
}

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// Toast duration bounds in milliseconds
const (
	MinToastDurationMs = 500
	MaxToastDurationMs = 60_000
)

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateTUI()...)
	errors = append(errors, c.validateNotifications()...)
	errors = append(errors, c.validateIDs()...)
	errors = append(errors, c.validateLogging()...)

	return errors
}

func (c *Config) validateTUI() []ValidationError {
	var errors []ValidationError

	if c.TUI.Theme != "" && !slices.Contains(ValidThemes(), c.TUI.Theme) {
		errors = append(errors, ValidationError{
			Field:   "tui.theme",
			Value:   c.TUI.Theme,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidThemes(), ", ")),
		})
	}

	return errors
}

func (c *Config) validateNotifications() []ValidationError {
	var errors []ValidationError

	if c.Notifications.ToastDurationMs < MinToastDurationMs {
		errors = append(errors, ValidationError{
			Field:   "notifications.toast_duration_ms",
			Value:   c.Notifications.ToastDurationMs,
			Message: fmt.Sprintf("must be at least %dms", MinToastDurationMs),
		})
	}
	if c.Notifications.ToastDurationMs > MaxToastDurationMs {
		errors = append(errors, ValidationError{
			Field:   "notifications.toast_duration_ms",
			Value:   c.Notifications.ToastDurationMs,
			Message: fmt.Sprintf("exceeds maximum of %dms", MaxToastDurationMs),
		})
	}

	return errors
}

func (c *Config) validateIDs() []ValidationError {
	var errors []ValidationError

	if !slices.Contains(ValidIDStrategies(), c.IDs.Strategy) {
		errors = append(errors, ValidationError{
			Field:   "ids.strategy",
			Value:   c.IDs.Strategy,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidIDStrategies(), ", ")),
		})
	}

	return errors
}

func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	if c.Logging.Level != "" && !slices.Contains(ValidLogLevels(), strings.ToLower(c.Logging.Level)) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	return errors
}
