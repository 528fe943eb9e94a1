// Package activity is the nearby-activities pane: a grounded search plus the
// daily goal bar.
package activity

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/alpha/pkg/gateway"
	"tableflip.dev/alpha/pkg/tui/events"
	"tableflip.dev/alpha/pkg/tui/theme"
)

// SearchFunc runs the grounded search. A nil result means it failed; the
// error means location is unavailable.
type SearchFunc func(ctx context.Context, query string) (*gateway.NearbyResult, error)

// Model is the activity pane.
type Model struct {
	search SearchFunc
	theme  theme.Theme

	input   textinput.Model
	result  *gateway.NearbyResult
	status  string
	loading bool
	width   int

	// Daily goal progress, completed vs total tasks.
	done, total int
}

func New(search SearchFunc, th theme.Theme) *Model {
	ti := textinput.New()
	ti.Placeholder = "Find activities nearby, e.g. swim classes"
	ti.CharLimit = 120
	ti.Prompt = "? "
	ti.Focus()

	return &Model{search: search, theme: th, input: ti, width: 80}
}

// SetTheme swaps the color scheme.
func (m *Model) SetTheme(th theme.Theme) { m.theme = th }

// SetWidth bounds text wrapping.
func (m *Model) SetWidth(w int) {
	if w > 0 {
		m.width = w
		m.input.SetWidth(w - 4)
	}
}

// SetProgress feeds the goal bar from the day's task counts.
func (m *Model) SetProgress(done, total int) {
	m.done, m.total = done, total
}

// Loading reports whether a search is outstanding.
func (m *Model) Loading() bool { return m.loading }

func (m *Model) Init() tea.Cmd {
	return m.input.Focus()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case events.NearbyMsg:
		m.loading = false
		m.result = msg.Result
		m.status = msg.Err
		if m.result == nil && m.status == "" {
			m.status = "Search failed. Try again later."
		}
		return m, nil
	case tea.KeyPressMsg:
		if m.loading {
			return m, nil
		}
		if msg.String() == "enter" {
			query := strings.TrimSpace(m.input.Value())
			if query == "" {
				return m, nil
			}
			m.loading = true
			m.status = ""
			search := m.search
			return m, func() tea.Msg {
				result, err := search(context.Background(), query)
				if err != nil {
					return events.NearbyMsg{Err: err.Error()}
				}
				return events.NearbyMsg{Result: result}
			}
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) View() string {
	var lines []string
	lines = append(lines, m.theme.Header.Render("Activity"), "")
	lines = append(lines, m.goalBar(), "")

	if m.loading {
		lines = append(lines, m.theme.Loading.Render("Searching nearby…"))
	} else {
		lines = append(lines, m.input.View())
	}

	wrapTo := m.width - 2
	if wrapTo < 20 {
		wrapTo = 20
	}
	if m.status != "" {
		lines = append(lines, "", m.theme.Error.Render(m.status))
	}
	if m.result != nil {
		lines = append(lines, "", wordwrap.String(m.result.Text, wrapTo))
		for _, link := range m.result.Links {
			lines = append(lines, m.theme.Help.Render(link))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// goalBar renders today's completion as a gradient bar.
func (m *Model) goalBar() string {
	const segments = 20
	filled := 0
	if m.total > 0 {
		filled = segments * m.done / m.total
	}
	colors := theme.GoalGradient(segments)

	var b strings.Builder
	for i := 0; i < segments; i++ {
		if i < filled {
			b.WriteString(lipgloss.NewStyle().Foreground(colors[i]).Render("█"))
		} else {
			b.WriteString(m.theme.Help.Render("░"))
		}
	}
	label := m.theme.Help.Render(" today's goal")
	return b.String() + label
}
