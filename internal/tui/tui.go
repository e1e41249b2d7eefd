// Package tui implements the terminal front end: a Bubble Tea program with
// three screens (sign-in, account creation, account viewer) driven entirely
// by coordinator events.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jfarabee/signon/internal/logger"
	"github.com/jfarabee/signon/internal/service"
)

type TUI struct {
	coordinator *service.Coordinator
	log         *logger.Logger
}

func New(coordinator *service.Coordinator, log *logger.Logger) *TUI {
	return &TUI{coordinator: coordinator, log: log}
}

// Run blocks until the user quits or the program fails.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.coordinator)

	t.log.Info().Msg("starting terminal ui")
	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	t.log.Info().Msg("terminal ui exited")
	return nil
}
