package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/alpha/pkg/app"
	teaui "tableflip.dev/alpha/pkg/tui/app"
)

type UI struct {
	Service *app.Service
}

func (u *UI) Do(ctx context.Context) error {
	p := tea.NewProgram(teaui.New(u.Service), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
