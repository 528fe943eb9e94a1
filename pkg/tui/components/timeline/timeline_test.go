package timeline

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/alpha/pkg/mission"
	"tableflip.dev/alpha/pkg/schedule"
	"tableflip.dev/alpha/pkg/tui/events"
	"tableflip.dev/alpha/pkg/tui/theme"
)

func seededStore(t *testing.T) *schedule.Store {
	t.Helper()
	s := schedule.New()
	if err := s.Seed(schedule.DemoMissions("1")...); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return s
}

func TestEnterTogglesHighlightedTask(t *testing.T) {
	s := seededStore(t)
	m := New(s.ToggleStatus, theme.New(false))
	m.SetMissions(s.All())

	sel, ok := m.Selected()
	if !ok {
		t.Fatalf("expected a selection")
	}
	before := sel.Status

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("expected a store-changed command")
	}
	if _, ok := cmd().(events.StoreChangedMsg); !ok {
		t.Fatalf("expected StoreChangedMsg")
	}
	after, _ := s.Get(sel.ID)
	if after.Status == before {
		t.Errorf("status did not flip")
	}
}

func TestCursorStaysInBounds(t *testing.T) {
	m := New(nil, theme.New(false))
	m.SetMissions([]mission.Mission{{ID: "1", Title: "only"}})

	m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if sel, ok := m.Selected(); !ok || sel.ID != "1" {
		t.Fatalf("cursor escaped a single-item list")
	}
}

func TestEmptyTimelineHint(t *testing.T) {
	m := New(nil, theme.New(false))
	m.SetMissions(nil)
	if m.View() == "" {
		t.Fatalf("expected an empty-state hint")
	}
	if _, ok := m.Selected(); ok {
		t.Fatalf("no selection expected on empty list")
	}
}
