// Package logging provides structured logging for tally sessions.
//
// The package wraps Go's log/slog with a JSON handler. Loggers carry
// persistent attributes (session, component) that are attached to every
// entry, which keeps a session's debug log filterable after the fact.
//
// # Basic Usage
//
//	logger, err := logging.NewLogger("/path/to/logs", "INFO")
//	if err != nil {
//	    return err
//	}
//	defer logger.Close()
//
//	logger.WithComponent("tracker").Info("achievement unlocked", "achievement", "task_master")
//
// Output:
//
//	{"time":"...","level":"INFO","msg":"achievement unlocked","component":"tracker","achievement":"task_master"}
//
// When the directory is empty the logger writes to stderr. The TUI never
// does this because the alternate screen owns the terminal; it uses
// [NopLogger] when file logging is disabled.
//
// # Log Levels
//
//   - [LevelDebug]: every tracker mutation
//   - [LevelInfo]: achievement unlocks, startup and shutdown (default)
//   - [LevelWarn]: recoverable problems such as a bad config reload
//   - [LevelError]: failures that end a command
//
// Use [ValidLevels] to list the accepted strings and [ParseLevel] to
// normalize user input.
package logging
