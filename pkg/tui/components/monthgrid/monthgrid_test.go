package monthgrid

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/alpha/pkg/tui/events"
	"tableflip.dev/alpha/pkg/tui/theme"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestEnterSelectsCursorDay(t *testing.T) {
	m := New(day(2026, time.March, 1), nil, theme.New(false))
	m.SetCursor(15)

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("expected a selection command")
	}
	msg, ok := cmd().(events.DaySelectedMsg)
	if !ok {
		t.Fatalf("expected DaySelectedMsg, got %T", cmd())
	}
	if !msg.Date.Equal(day(2026, time.March, 15)) {
		t.Errorf("expected March 15, got %v", msg.Date)
	}
}

func TestCursorClampsToMonthEdges(t *testing.T) {
	m := New(day(2026, time.February, 1), nil, theme.New(false))

	m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if got := cmd().(events.DaySelectedMsg).Date.Day(); got != 1 {
		t.Errorf("cursor should clamp at 1, got %d", got)
	}

	m.SetCursor(28)
	m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd = m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if got := cmd().(events.DaySelectedMsg).Date.Day(); got != 28 {
		t.Errorf("cursor should clamp at 28, got %d", got)
	}
}

func TestMonthPagingClampsCursor(t *testing.T) {
	m := New(day(2026, time.January, 1), nil, theme.New(false))
	m.SetCursor(31)

	m.Update(tea.KeyPressMsg{Text: "n", Code: 'n'})
	if m.Anchor().Month() != time.February {
		t.Fatalf("expected February, got %v", m.Anchor().Month())
	}
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if got := cmd().(events.DaySelectedMsg).Date.Day(); got != 28 {
		t.Errorf("cursor should clamp to 28 in February, got %d", got)
	}

	m.Update(tea.KeyPressMsg{Text: "p", Code: 'p'})
	if m.Anchor().Month() != time.January {
		t.Fatalf("expected January after paging back, got %v", m.Anchor().Month())
	}
}

func TestPagingWrapsYear(t *testing.T) {
	m := New(day(2026, time.December, 5), nil, theme.New(false))
	m.Update(tea.KeyPressMsg{Text: "n", Code: 'n'})
	if m.Anchor().Year() != 2027 || m.Anchor().Month() != time.January {
		t.Errorf("expected January 2027, got %v", m.Anchor())
	}
}
