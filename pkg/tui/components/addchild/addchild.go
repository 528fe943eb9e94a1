// Package addchild is the overlay form for adding a child profile.
package addchild

import (
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/alpha/pkg/child"
	"tableflip.dev/alpha/pkg/tui/events"
	"tableflip.dev/alpha/pkg/tui/theme"
)

type focusField int

const (
	fieldName focusField = iota
	fieldDOB
	fieldGender
	fieldCount
)

// AddFunc appends to the roster and selects the new child.
type AddFunc func(c child.Child) (child.Child, error)

// Model is the add-child overlay.
type Model struct {
	add   AddFunc
	theme theme.Theme

	focus focusField

	nameInput textinput.Model
	dobInput  textinput.Model

	genders     []child.Gender
	genderIndex int

	errorMsg string
}

func New(add AddFunc, th theme.Theme) *Model {
	ni := textinput.New()
	ni.Placeholder = "Child's name"
	ni.CharLimit = 60
	ni.Prompt = ""
	ni.Focus()

	di := textinput.New()
	di.Placeholder = "YYYY-MM-DD"
	di.CharLimit = 10
	di.Prompt = ""

	return &Model{
		add:       add,
		theme:     th,
		nameInput: ni,
		dobInput:  di,
		genders:   []child.Gender{child.GenderBoy, child.GenderGirl, child.GenderOther},
	}
}

// SetTheme swaps the color scheme.
func (m *Model) SetTheme(th theme.Theme) { m.theme = th }

func (m *Model) Init() tea.Cmd {
	return m.nameInput.Focus()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return events.CloseOverlayMsg{} }
		case "tab", "shift+tab":
			delta := 1
			if msg.String() == "shift+tab" {
				delta = -1
			}
			m.focus = focusField((int(m.focus) + delta + int(fieldCount)) % int(fieldCount))
			m.errorMsg = ""
			return m, m.updateInputFocus()
		case "enter":
			return m, m.submit()
		case "up", "down":
			if m.focus == fieldGender {
				delta := 1
				if msg.String() == "up" {
					delta = -1
				}
				n := len(m.genders)
				m.genderIndex = (m.genderIndex + delta + n) % n
				return m, nil
			}
		}
		var cmd tea.Cmd
		switch m.focus {
		case fieldName:
			m.nameInput, cmd = m.nameInput.Update(msg)
		case fieldDOB:
			m.dobInput, cmd = m.dobInput.Update(msg)
		}
		return m, cmd
	}
	return m, nil
}

func (m *Model) updateInputFocus() tea.Cmd {
	m.nameInput.Blur()
	m.dobInput.Blur()
	switch m.focus {
	case fieldName:
		return m.nameInput.Focus()
	case fieldDOB:
		return m.dobInput.Focus()
	}
	return nil
}

func (m *Model) submit() tea.Cmd {
	c := child.Child{
		Name:        strings.TrimSpace(m.nameInput.Value()),
		DateOfBirth: strings.TrimSpace(m.dobInput.Value()),
		Gender:      m.genders[m.genderIndex],
	}
	added, err := m.add(c)
	if err != nil {
		m.errorMsg = err.Error()
		return nil
	}
	return func() tea.Msg { return events.ChildAddedMsg{ID: added.ID} }
}

func (m *Model) View() string {
	label := func(f focusField, s string) string {
		if m.focus == f {
			return m.theme.Cursor.Render("> " + s)
		}
		return "  " + s
	}

	gender := string(m.genders[m.genderIndex])
	genderView := m.theme.DayCell.Render(gender)
	if m.focus == fieldGender {
		genderView = m.theme.DaySelected.Render("‹ " + gender + " ›")
	}

	lines := []string{
		m.theme.Header.Render("Add Child"),
		"",
		label(fieldName, "Name:   ") + m.nameInput.View(),
		label(fieldDOB, "Born:   ") + m.dobInput.View(),
		label(fieldGender, "Gender: ") + genderView,
		"",
	}
	if m.errorMsg != "" {
		lines = append(lines, m.theme.Error.Render(m.errorMsg))
	}
	lines = append(lines, m.theme.Help.Render("tab: next field · enter: save · esc: cancel"))

	return m.theme.Frame.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
