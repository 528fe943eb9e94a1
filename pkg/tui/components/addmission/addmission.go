// Package addmission is the overlay form for scheduling a task. The time is
// chosen with three discrete pickers over fixed option lists; the title gates
// submission.
package addmission

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/alpha/pkg/dates"
	"tableflip.dev/alpha/pkg/mission"
	"tableflip.dev/alpha/pkg/tui/events"
	"tableflip.dev/alpha/pkg/tui/theme"
)

type focusField int

const (
	fieldTitle focusField = iota
	fieldDescription
	fieldHour
	fieldMinute
	fieldPeriod
	fieldCategory
	fieldCount
)

// AddFunc stores the mission and returns it with defaults filled.
type AddFunc func(partial mission.Mission) (mission.Mission, error)

// Model is the add-task overlay.
type Model struct {
	add   AddFunc
	theme theme.Theme

	focus focusField

	titleInput textinput.Model
	descInput  textinput.Model

	hours   []string
	minutes []string
	periods []string

	hourIndex   int
	minuteIndex int
	periodIndex int

	categories    []mission.Category
	categoryIndex int

	errorMsg string
}

// New builds the form seeded from the given time slot.
func New(add AddFunc, seed dates.ClockTime, th theme.Theme) *Model {
	ti := textinput.New()
	ti.Placeholder = "What needs doing?"
	ti.CharLimit = 120
	ti.Prompt = ""
	ti.Focus()

	di := textinput.New()
	di.Placeholder = "Alpha Task"
	di.CharLimit = 240
	di.Prompt = ""

	m := &Model{
		add:        add,
		theme:      th,
		titleInput: ti,
		descInput:  di,
		hours:      dates.PickerHours(),
		minutes:    dates.PickerMinutes(),
		periods:    dates.PickerPeriods(),
		categories: mission.AllCategories(),
	}
	m.seedPickers(seed)
	return m
}

// seedPickers positions the three pickers on the slot, snapping the minute to
// the nearest five.
func (m *Model) seedPickers(seed dates.ClockTime) {
	total := seed.Minutes()
	if total < 0 {
		total = dates.DefaultClock.Minutes()
	}
	hour24 := total / 60
	minute := total % 60

	m.periodIndex = 0
	if hour24 >= 12 {
		m.periodIndex = 1
	}
	hour12 := hour24 % 12
	if hour12 == 0 {
		hour12 = 12
	}
	m.hourIndex = hour12 - 1

	m.minuteIndex = (minute + 2) / 5
	if m.minuteIndex >= len(m.minutes) {
		m.minuteIndex = len(m.minutes) - 1
	}
}

// Time combines the pickers into the canonical slot string.
func (m *Model) Time() dates.ClockTime {
	return dates.ClockTime(fmt.Sprintf("%s:%s %s",
		m.hours[m.hourIndex], m.minutes[m.minuteIndex], m.periods[m.periodIndex]))
}

// CanSubmit reports whether the title gate is satisfied.
func (m *Model) CanSubmit() bool {
	return strings.TrimSpace(m.titleInput.Value()) != ""
}

// SetTheme swaps the color scheme.
func (m *Model) SetTheme(th theme.Theme) { m.theme = th }

func (m *Model) Init() tea.Cmd {
	return m.titleInput.Focus()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return events.CloseOverlayMsg{} }
		case "tab":
			m.advanceFocus(1)
			return m, m.updateInputFocus()
		case "shift+tab":
			m.advanceFocus(-1)
			return m, m.updateInputFocus()
		case "enter":
			return m, m.submit()
		case "up", "down":
			if m.focus >= fieldHour {
				delta := 1
				if msg.String() == "up" {
					delta = -1
				}
				m.adjustPicker(delta)
				return m, nil
			}
		}
		return m, m.updateFocusedInput(msg)
	}
	return m, nil
}

func (m *Model) submit() tea.Cmd {
	if !m.CanSubmit() {
		m.errorMsg = "A title is required."
		return nil
	}
	partial := mission.Mission{
		Title:       strings.TrimSpace(m.titleInput.Value()),
		Description: strings.TrimSpace(m.descInput.Value()),
		Time:        m.Time(),
		Category:    m.categories[m.categoryIndex],
	}
	added, err := m.add(partial)
	if err != nil {
		m.errorMsg = err.Error()
		return nil
	}
	return func() tea.Msg { return events.MissionAddedMsg{Mission: added} }
}

func (m *Model) advanceFocus(delta int) {
	m.focus = focusField((int(m.focus) + delta + int(fieldCount)) % int(fieldCount))
	m.errorMsg = ""
}

func (m *Model) adjustPicker(delta int) {
	switch m.focus {
	case fieldHour:
		m.hourIndex = wrap(m.hourIndex+delta, len(m.hours))
	case fieldMinute:
		m.minuteIndex = wrap(m.minuteIndex+delta, len(m.minutes))
	case fieldPeriod:
		m.periodIndex = wrap(m.periodIndex+delta, len(m.periods))
	case fieldCategory:
		m.categoryIndex = wrap(m.categoryIndex+delta, len(m.categories))
	}
}

func wrap(i, n int) int {
	return (i + n) % n
}

func (m *Model) updateInputFocus() tea.Cmd {
	m.titleInput.Blur()
	m.descInput.Blur()
	switch m.focus {
	case fieldTitle:
		return m.titleInput.Focus()
	case fieldDescription:
		return m.descInput.Focus()
	}
	return nil
}

func (m *Model) updateFocusedInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.focus {
	case fieldTitle:
		m.titleInput, cmd = m.titleInput.Update(msg)
	case fieldDescription:
		m.descInput, cmd = m.descInput.Update(msg)
	}
	return cmd
}

func (m *Model) View() string {
	label := func(f focusField, s string) string {
		if m.focus == f {
			return m.theme.Cursor.Render("> " + s)
		}
		return "  " + s
	}

	cat := m.categories[m.categoryIndex]
	lines := []string{
		m.theme.Header.Render("Add Task"),
		"",
		label(fieldTitle, "Title:       ") + m.titleInput.View(),
		label(fieldDescription, "Description: ") + m.descInput.View(),
		label(fieldHour, "Hour:   ") + m.pickerView(m.hours[m.hourIndex], m.focus == fieldHour),
		label(fieldMinute, "Minute: ") + m.pickerView(m.minutes[m.minuteIndex], m.focus == fieldMinute),
		label(fieldPeriod, "Period: ") + m.pickerView(m.periods[m.periodIndex], m.focus == fieldPeriod),
		label(fieldCategory, "Category: ") + m.pickerView(fmt.Sprintf("%s %s", cat.Icon(), cat), m.focus == fieldCategory),
		"",
	}
	if m.errorMsg != "" {
		lines = append(lines, m.theme.Error.Render(m.errorMsg))
	}
	hint := "tab: next field · up/down: change · enter: save · esc: cancel"
	if !m.CanSubmit() {
		hint = "enter a title to enable saving · esc: cancel"
	}
	lines = append(lines, m.theme.Help.Render(hint))

	return m.theme.Frame.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m *Model) pickerView(value string, focused bool) string {
	if focused {
		return m.theme.DaySelected.Render("‹ " + value + " ›")
	}
	return m.theme.DayCell.Render(value)
}
