// Package monthgrid renders the month calendar with cursor navigation.
package monthgrid

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/alpha/pkg/calendar"
	"tableflip.dev/alpha/pkg/dates"
	"tableflip.dev/alpha/pkg/holiday"
	"tableflip.dev/alpha/pkg/tui/events"
	"tableflip.dev/alpha/pkg/tui/theme"
)

// Model is the month view. The cursor tracks a day number in the anchored
// month; enter selects it and the parent switches back to day view.
type Model struct {
	anchor time.Time
	cursor int // day of month
	reg    *holiday.Registry
	theme  theme.Theme
}

func New(anchor time.Time, reg *holiday.Registry, th theme.Theme) *Model {
	return &Model{anchor: calendar.FirstOfMonth(anchor), cursor: 1, reg: reg, theme: th}
}

// SetAnchor moves the grid to another month, clamping the cursor.
func (m *Model) SetAnchor(anchor time.Time) {
	m.anchor = calendar.FirstOfMonth(anchor)
	m.clampCursor()
}

// SetCursor positions the cursor on a day of the month.
func (m *Model) SetCursor(day int) {
	m.cursor = day
	m.clampCursor()
}

// SetTheme swaps the color scheme.
func (m *Model) SetTheme(th theme.Theme) { m.theme = th }

// Anchor exposes the current month for header rendering.
func (m *Model) Anchor() time.Time { return m.anchor }

func (m *Model) clampCursor() {
	days := calendar.DaysIn(m.anchor)
	if m.cursor < 1 {
		m.cursor = 1
	}
	if m.cursor > days {
		m.cursor = days
	}
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "left", "h":
			m.cursor--
			m.clampCursor()
		case "right", "l":
			m.cursor++
			m.clampCursor()
		case "up", "k":
			m.cursor -= 7
			m.clampCursor()
		case "down", "j":
			m.cursor += 7
			m.clampCursor()
		case "n", "pgdown":
			m.SetAnchor(calendar.AddMonths(m.anchor, 1))
		case "p", "pgup":
			m.SetAnchor(calendar.AddMonths(m.anchor, -1))
		case "enter":
			picked := m.anchor.AddDate(0, 0, m.cursor-1)
			return m, func() tea.Msg { return events.DaySelectedMsg{Date: picked} }
		}
	}
	return m, nil
}

func (m *Model) View() string {
	var lines []string
	lines = append(lines, m.theme.Header.Render(m.anchor.Format("January 2006")))

	var head []string
	for w := time.Sunday; w <= time.Saturday; w++ {
		head = append(head, m.theme.Help.Render(dates.Abbrev(w)[:2]))
	}
	lines = append(lines, strings.Join(head, " "))

	var row []string
	flush := func() {
		if len(row) > 0 {
			lines = append(lines, strings.Join(row, " "))
			row = nil
		}
	}
	for _, cell := range calendar.MonthGrid(m.anchor, m.reg) {
		if cell.Blank() {
			row = append(row, "  ")
		} else {
			style := m.theme.DayCell.Padding(0)
			if cell.Sunday || cell.Holiday != "" {
				style = m.theme.Sunday
			}
			if cell.Day == m.cursor {
				style = m.theme.DaySelected.Padding(0)
			}
			row = append(row, style.Render(fmt.Sprintf("%2d", cell.Day)))
		}
		if len(row) == 7 {
			flush()
		}
	}
	flush()

	if m.reg != nil {
		if label, ok := m.reg.Lookup(dates.ToDayKey(m.anchor.AddDate(0, 0, m.cursor-1))); ok {
			lines = append(lines, m.theme.Holiday.Render(label))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
