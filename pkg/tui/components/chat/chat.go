// Package chat is the AlphaBot conversation pane. One request is in flight
// at a time; the input is disabled while waiting.
package chat

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

// Presets are one-keystroke starter prompts, as on the original chat screen.
var Presets = []string{
	"Draft a note to my nanny about tomorrow's schedule",
	"Suggest indoor activities for a rainy day",
	"How do I handle a picky eater?",
}

type message struct {
	fromUser bool
	text     string
}

// ChatFunc asks the gateway; it never returns an error.
type ChatFunc func(ctx context.Context, prompt string) gateway.ChatReply

// Model is the chat pane.
type Model struct {
	chat  ChatFunc
	theme theme.Theme

	input   textinput.Model
	history []message
	loading bool
	width   int
}

func New(chat ChatFunc, th theme.Theme) *Model {
	ti := textinput.New()
	ti.Placeholder = "Ask AlphaBot anything…"
	ti.CharLimit = 500
	ti.Prompt = "> "
	ti.Focus()

	return &Model{chat: chat, theme: th, input: ti, width: 80}
}

// SetTheme swaps the color scheme.
func (m *Model) SetTheme(th theme.Theme) { m.theme = th }

// SetWidth bounds reply wrapping.
func (m *Model) SetWidth(w int) {
	if w > 0 {
		m.width = w
		m.input.SetWidth(w - 4)
	}
}

// Loading reports whether a request is outstanding.
func (m *Model) Loading() bool { return m.loading }

func (m *Model) Init() tea.Cmd {
	return m.input.Focus()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case events.ChatReplyMsg:
		m.loading = false
		m.history = append(m.history, message{text: msg.Reply.Text})
		return m, nil
	case tea.KeyPressMsg:
		if m.loading {
			return m, nil
		}
		switch msg.String() {
		case "enter":
			return m, m.send(m.input.Value())
		case "1", "2", "3":
			if m.input.Value() == "" {
				idx := int(msg.String()[0] - '1')
				return m, m.send(Presets[idx])
			}
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) send(prompt string) tea.Cmd {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return nil
	}
	m.history = append(m.history, message{fromUser: true, text: prompt})
	m.input.SetValue("")
	m.loading = true
	chat := m.chat
	return func() tea.Msg {
		return events.ChatReplyMsg{Reply: chat(context.Background(), prompt)}
	}
}

func (m *Model) View() string {
	var lines []string
	lines = append(lines, m.theme.Header.Render("AlphaBot"))

	if len(m.history) == 0 {
		lines = append(lines, "", m.theme.Help.Render("Try a preset:"))
		for i, p := range Presets {
			lines = append(lines, m.theme.Help.Render("  "+string(rune('1'+i))+". "+p))
		}
	}

	wrapTo := m.width - 4
	if wrapTo < 20 {
		wrapTo = 20
	}
	for _, msg := range m.history {
		body := wordwrap.String(msg.text, wrapTo)
		if msg.fromUser {
			lines = append(lines, "", m.theme.Cursor.Render("You: ")+body)
		} else {
			lines = append(lines, "", m.theme.TaskPending.Render(body))
		}
	}

	if m.loading {
		lines = append(lines, "", m.theme.Loading.Render("AlphaBot is thinking…"))
	} else {
		lines = append(lines, "", m.input.View())
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
