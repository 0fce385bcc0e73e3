// Package tui runs the interactive tally screen on bubbletea.
package tui

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/Iron-Ham/tally/internal/config"
	tuimsg "github.com/Iron-Ham/tally/internal/tui/msg"
	tea "github.com/charmbracelet/bubbletea"
)

// App wraps the Bubbletea program
type App struct {
	program *tea.Program
	model   Model
}

// New creates a new TUI application
func New(opts Options) *App {
	model := NewModel(opts)
	return &App{
		model:   model,
		program: tea.NewProgram(model, tea.WithAltScreen()),
	}
}

// Run starts the TUI application and blocks until the user quits.
func (a *App) Run() error {
	defer a.model.Close()

	// Quit cleanly on termination signals so the alt screen is restored
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	go func() {
		if _, ok := <-sigChan; ok {
			a.program.Send(tea.Quit())
		}
	}()

	_, err := a.program.Run()

	signal.Stop(sigChan)
	close(sigChan)

	return err
}

// Reload delivers a reloaded configuration, or the error that prevented
// loading it, to the running program. Safe to call from any goroutine.
func (a *App) Reload(cfg *config.Config, err error) {
	a.program.Send(tuimsg.ReloadConfig(cfg, err)())
}
