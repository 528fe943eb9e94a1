package chat

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/alpha/pkg/gateway"
	"tableflip.dev/alpha/pkg/tui/events"
	"tableflip.dev/alpha/pkg/tui/theme"
)

func echo(asked *string) ChatFunc {
	return func(_ context.Context, prompt string) gateway.ChatReply {
		if asked != nil {
			*asked = prompt
		}
		return gateway.ChatReply{Text: "echo: " + prompt}
	}
}

func TestPresetKeySendsPrompt(t *testing.T) {
	var asked string
	m := New(echo(&asked), theme.New(false))

	_, cmd := m.Update(tea.KeyPressMsg{Text: "2", Code: '2'})
	if cmd == nil {
		t.Fatalf("expected a chat command")
	}
	if !m.Loading() {
		t.Fatalf("sending should mark the pane as loading")
	}

	msg, ok := cmd().(events.ChatReplyMsg)
	if !ok {
		t.Fatalf("expected ChatReplyMsg, got %T", cmd())
	}
	if asked != Presets[1] {
		t.Errorf("expected preset %q, got %q", Presets[1], asked)
	}
	if !strings.Contains(msg.Reply.Text, Presets[1]) {
		t.Errorf("reply did not carry the echo")
	}
}

func TestInputIgnoredWhileLoading(t *testing.T) {
	m := New(echo(nil), theme.New(false))
	m.Update(tea.KeyPressMsg{Text: "1", Code: '1'})
	if !m.Loading() {
		t.Fatalf("expected loading state")
	}

	_, cmd := m.Update(tea.KeyPressMsg{Text: "2", Code: '2'})
	if cmd != nil {
		t.Fatalf("keys must be ignored while a request is in flight")
	}

	m.Update(events.ChatReplyMsg{Reply: gateway.ChatReply{Text: "done"}})
	if m.Loading() {
		t.Fatalf("reply should clear the loading state")
	}
}

func TestEmptyInputDoesNotSend(t *testing.T) {
	m := New(echo(nil), theme.New(false))
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Fatalf("blank prompt must not be sent")
	}
	if m.Loading() {
		t.Fatalf("no request should be in flight")
	}
}

func TestTypedPromptIsSent(t *testing.T) {
	var asked string
	m := New(echo(&asked), theme.New(false))

	for _, r := range "hi" {
		m.Update(tea.KeyPressMsg{Text: string(r), Code: r})
	}
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("expected a chat command")
	}
	cmd()
	if asked != "hi" {
		t.Errorf("expected prompt %q, got %q", "hi", asked)
	}
}
