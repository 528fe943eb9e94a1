package daystrip

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/alpha/pkg/tui/events"
	"tableflip.dev/alpha/pkg/tui/theme"
)

func TestArrowKeysShiftOneDay(t *testing.T) {
	base := time.Date(2026, time.March, 3, 0, 0, 0, 0, time.Local)
	m := New(base, nil, theme.New(false))

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if cmd == nil {
		t.Fatalf("expected a selection command")
	}
	if got := cmd().(events.DaySelectedMsg).Date; !got.Equal(base.AddDate(0, 0, 1)) {
		t.Errorf("right should select the next day, got %v", got)
	}

	_, cmd = m.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	if got := cmd().(events.DaySelectedMsg).Date; !got.Equal(base.AddDate(0, 0, -1)) {
		t.Errorf("left should select the previous day, got %v", got)
	}
}

func TestTodayShortcut(t *testing.T) {
	base := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.Local)
	m := New(base, nil, theme.New(false))

	_, cmd := m.Update(tea.KeyPressMsg{Text: "t", Code: 't'})
	if cmd == nil {
		t.Fatalf("expected a selection command")
	}
	got := cmd().(events.DaySelectedMsg).Date
	if time.Since(got) > time.Minute {
		t.Errorf("'t' should jump to now, got %v", got)
	}
}

func TestViewShowsSelection(t *testing.T) {
	base := time.Date(2026, time.November, 8, 0, 0, 0, 0, time.Local)
	m := New(base, nil, theme.New(false))
	m.SetWidth(40)
	if m.View() == "" {
		t.Fatalf("expected a rendered strip")
	}
}
