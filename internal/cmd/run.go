package cmd

import (
	"fmt"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"forja/internal/logging"
	"forja/internal/ui"
)

// RunCmd starts the interactive dashboard.
type RunCmd struct {
	ErrorClearDelay int `help:"Seconds before error messages are cleared" default:"10"`
}

func (r *RunCmd) Run(cli *CLI) error {
	delay := r.ErrorClearDelay
	if delay == 10 && cli.settings != nil && cli.settings.ErrorClearDelay != nil {
		delay = *cli.settings.ErrorClearDelay
	}

	logging.Logger.Info("starting dashboard",
		slog.String("backend_url", cli.BackendURL),
		slog.Int("error_clear_delay", delay))

	model := ui.NewModel(
		cli.Container.Submission,
		cli.Container.Previews,
		time.Duration(delay)*time.Second,
	)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run dashboard: %w", err)
	}

	return nil
}
