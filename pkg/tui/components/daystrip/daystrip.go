// Package daystrip renders the horizontal scroller of days around the
// selected date.
package daystrip

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/alpha/pkg/calendar"
	"tableflip.dev/alpha/pkg/holiday"
	"tableflip.dev/alpha/pkg/tui/events"
	"tableflip.dev/alpha/pkg/tui/theme"
)

// Model shows a window of the day strip centered on the selection.
type Model struct {
	selected time.Time
	reg      *holiday.Registry
	theme    theme.Theme
	width    int
}

func New(selected time.Time, reg *holiday.Registry, th theme.Theme) *Model {
	return &Model{selected: selected, reg: reg, theme: th, width: 80}
}

// SetSelected repositions the strip.
func (m *Model) SetSelected(t time.Time) { m.selected = t }

// SetTheme swaps the color scheme.
func (m *Model) SetTheme(th theme.Theme) { m.theme = th }

// SetWidth bounds how many day cells are visible.
func (m *Model) SetWidth(w int) {
	if w > 0 {
		m.width = w
	}
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "left", "h":
			return m, selectCmd(m.selected.AddDate(0, 0, -1))
		case "right", "l":
			return m, selectCmd(m.selected.AddDate(0, 0, 1))
		case "t":
			return m, selectCmd(time.Now())
		}
	}
	return m, nil
}

func selectCmd(t time.Time) tea.Cmd {
	return func() tea.Msg { return events.DaySelectedMsg{Date: t} }
}

func (m *Model) View() string {
	entries := calendar.Strip(m.selected, m.reg)

	// Each cell is ~6 columns wide; show what fits, selection centered.
	visible := m.width / 6
	if visible < 3 {
		visible = 3
	}
	half := visible / 2
	start := calendar.StripRadius - half
	if start < 0 {
		start = 0
	}
	end := start + visible
	if end > len(entries) {
		end = len(entries)
	}

	var cells []string
	for _, e := range entries[start:end] {
		style := m.theme.DayCell
		if e.Selected {
			style = m.theme.DaySelected
		} else if e.Sunday || e.Holiday != "" {
			style = m.theme.Sunday
		}
		cells = append(cells, style.Render(lipgloss.JoinVertical(lipgloss.Center,
			e.Weekday,
			padDay(e.Day),
		)))
	}
	strip := lipgloss.JoinHorizontal(lipgloss.Top, cells...)

	sel := entries[calendar.StripRadius]
	header := m.theme.Header.Render(m.selected.Format("January 2, 2006"))
	if sel.Holiday != "" {
		header += "  " + m.theme.Holiday.Render(sel.Holiday)
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, strip)
}

func padDay(d int) string {
	return fmt.Sprintf("%2d", d)
}
