package guidepane

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/alpha/pkg/guide"
	"tableflip.dev/alpha/pkg/tui/events"
	"tableflip.dev/alpha/pkg/tui/theme"
)

func newPane(calls *int) *Model {
	search := func(_ context.Context, query string) []guide.Article {
		return guide.FilterLocal(guide.Library(), query)
	}
	summarize := func(_ context.Context, a guide.Article) string {
		if calls != nil {
			*calls++
		}
		return "summary of " + a.ID
	}
	return New(guide.Library(), search, summarize, theme.New(false))
}

func TestSummarizeCachesPerArticle(t *testing.T) {
	calls := 0
	m := newPane(&calls)

	_, cmd := m.Update(tea.KeyPressMsg{Text: "s", Code: 's'})
	if cmd == nil {
		t.Fatalf("expected a summarize command")
	}
	if !m.Loading() {
		t.Fatalf("summarize should mark the pane as loading")
	}
	msg, ok := cmd().(events.SummaryMsg)
	if !ok {
		t.Fatalf("expected SummaryMsg, got %T", cmd())
	}
	m.Update(msg)
	if m.Loading() {
		t.Fatalf("summary delivery should clear loading")
	}

	_, cmd = m.Update(tea.KeyPressMsg{Text: "s", Code: 's'})
	if cmd != nil {
		t.Fatalf("second summarize of the same article should hit the cache")
	}
	if calls != 1 {
		t.Errorf("expected one gateway call, got %d", calls)
	}
}

func TestSearchReplacesArticles(t *testing.T) {
	m := newPane(nil)
	m.Update(tea.KeyPressMsg{Text: "j", Code: 'j'})

	m.Update(tea.KeyPressMsg{Text: "/", Code: '/'})
	for _, r := range "sleep" {
		m.Update(tea.KeyPressMsg{Text: string(r), Code: r})
	}
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("expected a search command")
	}
	msg, ok := cmd().(events.GuideResultsMsg)
	if !ok {
		t.Fatalf("expected GuideResultsMsg, got %T", cmd())
	}
	if msg.Query != "sleep" {
		t.Errorf("expected query %q, got %q", "sleep", msg.Query)
	}
	m.Update(msg)

	if len(m.articles) != 1 || m.articles[0].ID != "1" {
		t.Errorf("expected the safe-sleep article, got %+v", m.articles)
	}
	if m.cursor != 0 {
		t.Errorf("cursor should reset after new results")
	}
}

func TestBlankSearchIsIgnored(t *testing.T) {
	m := newPane(nil)
	m.Update(tea.KeyPressMsg{Text: "/", Code: '/'})
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Fatalf("blank query must not trigger a search")
	}
	if m.Loading() {
		t.Fatalf("no request should be in flight")
	}
}
