// Package staffpane lists the household staff.
package staffpane

import (
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/alpha/pkg/staff"
	"tableflip.dev/alpha/pkg/tui/theme"
)

// Model is the staff directory pane.
type Model struct {
	members []staff.Member
	cursor  int
	theme   theme.Theme
}

func New(members []staff.Member, th theme.Theme) *Model {
	return &Model{members: members, theme: th}
}

// SetTheme swaps the color scheme.
func (m *Model) SetTheme(th theme.Theme) { m.theme = th }

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
			if m.cursor < len(m.members)-1 {
				m.cursor++
			}
		}
	}
	return m, nil
}

func (m *Model) View() string {
	var lines []string
	lines = append(lines, m.theme.Header.Render("Household Staff"), "")
	for i, s := range m.members {
		name := m.theme.TaskPending.Render(s.Name)
		if i == m.cursor {
			name = m.theme.Cursor.Render("> ") + m.theme.Header.Render(s.Name)
		} else {
			name = "  " + name
		}
		lines = append(lines, name,
			m.theme.Help.Render("    "+s.Role+" · "+s.Status))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
