// Package errors provides the error definitions shared by tally's outer
// shell: replay step failures, configuration problems and terminal
// detection. The tracker core itself never fails.
//
// # Usage
//
//	err := errors.NewStepError(3, "flip", errors.ErrUnknownOperation)
//
//	if errors.Is(err, errors.ErrUnknownOperation) { ... }
//
//	var stepErr *errors.StepError
//	if errors.As(err, &stepErr) { ... }
//
//	if errors.IsUserFacing(err) { fmt.Fprintln(os.Stderr, err) }
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Re-export standard library functions for convenience.
// This allows callers to import only this package for all error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// -----------------------------------------------------------------------------
// Sentinel Errors
// -----------------------------------------------------------------------------

var (
	// ErrNotATerminal indicates the TUI was started without a terminal on stdout.
	ErrNotATerminal = New("stdout is not a terminal")
	// ErrUnknownOperation indicates a replay step names an operation that does not exist.
	ErrUnknownOperation = New("unknown operation")
	// ErrInvalidStep indicates a replay step is missing required fields.
	ErrInvalidStep = New("invalid step")
	// ErrInvalidConfig indicates the configuration failed validation.
	ErrInvalidConfig = New("invalid configuration")
)

// -----------------------------------------------------------------------------
// StepError
// -----------------------------------------------------------------------------

// StepError reports a replay step that could not be applied.
type StepError struct {
	Index int    // 1-based position in the step list
	Op    string // Operation name as written in the file
	Err   error  // Underlying cause
}

// NewStepError creates a StepError.
func NewStepError(index int, op string, err error) *StepError {
	return &StepError{Index: index, Op: op, Err: err}
}

func (e *StepError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("step %d: %v", e.Index, e.Err)
	}
	return fmt.Sprintf("step %d (%s): %v", e.Index, e.Op, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// -----------------------------------------------------------------------------
// ConfigError
// -----------------------------------------------------------------------------

// ConfigError reports a configuration that could not be loaded or validated.
type ConfigError struct {
	Path    string   // Config file in use, if any
	Details []string // Individual validation messages
	Err     error
}

// NewConfigError creates a ConfigError.
func NewConfigError(path string, err error) *ConfigError {
	return &ConfigError{Path: path, Err: err}
}

// WithDetails attaches individual validation messages.
func (e *ConfigError) WithDetails(details ...string) *ConfigError {
	e.Details = append(e.Details, details...)
	return e
}

func (e *ConfigError) Error() string {
	var sb strings.Builder
	sb.WriteString("config")
	if e.Path != "" {
		sb.WriteString(" ")
		sb.WriteString(e.Path)
	}
	sb.WriteString(": ")
	sb.WriteString(e.Err.Error())
	for _, d := range e.Details {
		sb.WriteString("\n  - ")
		sb.WriteString(d)
	}
	return sb.String()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// -----------------------------------------------------------------------------
// Classification
// -----------------------------------------------------------------------------

// IsUserFacing reports whether err is meant to be shown to the user as-is
// rather than treated as an internal failure.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}

	var stepErr *StepError
	var configErr *ConfigError
	if As(err, &stepErr) || As(err, &configErr) {
		return true
	}
	return Is(err, ErrNotATerminal)
}
