// Package timeline lists one day's tasks with a cursor; enter toggles the
// highlighted task's status.
package timeline

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/alpha/pkg/mission"
	"tableflip.dev/alpha/pkg/tui/events"
	"tableflip.dev/alpha/pkg/tui/theme"
)

// ToggleFunc flips a task's status in the store.
type ToggleFunc func(id string) bool

// Model renders the day's missions.
type Model struct {
	missions []mission.Mission
	cursor   int
	toggle   ToggleFunc
	theme    theme.Theme
}

func New(toggle ToggleFunc, th theme.Theme) *Model {
	return &Model{toggle: toggle, theme: th}
}

// SetMissions replaces the visible tasks, clamping the cursor.
func (m *Model) SetMissions(missions []mission.Mission) {
	m.missions = missions
	if m.cursor >= len(missions) {
		m.cursor = len(missions) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// SetTheme swaps the color scheme.
func (m *Model) SetTheme(th theme.Theme) { m.theme = th }

// Selected returns the highlighted mission.
func (m *Model) Selected() (mission.Mission, bool) {
	if len(m.missions) == 0 {
		return mission.Mission{}, false
	}
	return m.missions[m.cursor], true
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.missions)-1 {
				m.cursor++
			}
		case "enter", " ":
			if sel, ok := m.Selected(); ok && m.toggle != nil {
				m.toggle(sel.ID)
				return m, func() tea.Msg { return events.StoreChangedMsg{} }
			}
		}
	}
	return m, nil
}

func (m *Model) View() string {
	if len(m.missions) == 0 {
		return m.theme.Help.Render("No tasks scheduled. Press 'a' to add one.")
	}

	var lines []string
	for i, t := range m.missions {
		style := m.theme.TaskPending
		mark := "○"
		if t.Completed() {
			style = m.theme.TaskDone
			mark = "●"
		}
		line := style.Render(fmt.Sprintf("%s %s %s  %s", mark, t.Time, t.Icon, t.Title))
		if t.Description != "" {
			line += "\n" + m.theme.Help.Render("    "+t.Description)
		}
		if i == m.cursor {
			line = m.theme.Cursor.Render("> ") + line
		} else {
			line = "  " + line
		}
		lines = append(lines, line)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
