package teaui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/alpha/pkg/app"
	"tableflip.dev/alpha/pkg/gateway"
	"tableflip.dev/alpha/pkg/logger"
	"tableflip.dev/alpha/pkg/tui/session"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	svc, err := app.NewDemo(gateway.Static{}, gateway.StaticLocator{Lat: 12.9716, Lng: 77.5946}, logger.New("error"))
	if err != nil {
		t.Fatalf("demo service: %v", err)
	}
	return New(svc)
}

func TestTabCyclesScreens(t *testing.T) {
	m := newTestModel(t)
	if m.sess.Tab() != session.TabTimeline {
		t.Fatalf("expected the timeline tab first")
	}
	m.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	if m.sess.Tab() != session.TabActivity {
		t.Errorf("tab should advance to activity, got %v", m.sess.Tab())
	}
	for i := 1; i < session.TabCount; i++ {
		m.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	}
	if m.sess.Tab() != session.TabTimeline {
		t.Errorf("tab should wrap back to timeline, got %v", m.sess.Tab())
	}
}

func TestAddOverlayOpensAndCloses(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.KeyPressMsg{Text: "a", Code: 'a'})
	if m.overlay == nil || m.overlayKind != overlayAddMission {
		t.Fatalf("'a' should open the add-task overlay")
	}
	// The close command runs in the program loop; feed its message back in as
	// the runtime would.
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatalf("escape should produce a close command")
	}
	m.Update(cmd())
	if m.overlay != nil {
		t.Errorf("escape should dismiss the overlay")
	}
}

func TestMonthToggleKeepsSelection(t *testing.T) {
	m := newTestModel(t)
	before := m.sess.SelectedDate()
	m.Update(tea.KeyPressMsg{Text: "m", Code: 'm'})
	if m.sess.ViewType() != session.ViewMonth {
		t.Fatalf("'m' should switch to month view")
	}
	m.Update(tea.KeyPressMsg{Text: "m", Code: 'm'})
	if m.sess.ViewType() != session.ViewDay {
		t.Fatalf("'m' should switch back to day view")
	}
	if !m.sess.SelectedDate().Equal(before) {
		t.Errorf("view toggling must not move the selected date")
	}
}

func TestChildSwitchRefreshesTimeline(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.KeyPressMsg{Text: "2", Code: '2'})
	if m.svc.Roster.SelectedIndex() != 1 {
		t.Fatalf("'2' should select the second child")
	}
	if _, ok := m.tl.Selected(); ok {
		t.Errorf("second child has no seeded tasks today")
	}
}

func TestViewRendersTabBar(t *testing.T) {
	m := newTestModel(t)
	v := m.View()
	if !strings.Contains(v, "Timeline") {
		t.Errorf("expected the tab bar in the view")
	}
}
