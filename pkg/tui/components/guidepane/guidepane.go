// Package guidepane lists the parenting guide, with remote search and
// per-article AI summaries.
package guidepane

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/alpha/pkg/guide"
	"tableflip.dev/alpha/pkg/tui/events"
	"tableflip.dev/alpha/pkg/tui/theme"
)

// SearchFunc fetches articles for a query; never nil results.
type SearchFunc func(ctx context.Context, query string) []guide.Article

// SummarizeFunc condenses an article; never errors.
type SummarizeFunc func(ctx context.Context, a guide.Article) string

// Model is the guide pane.
type Model struct {
	search    SearchFunc
	summarize SummarizeFunc
	theme     theme.Theme

	articles  []guide.Article
	cursor    int
	searching bool
	input     textinput.Model

	summaries map[string]string
	loading   bool
	width     int
}

func New(initial []guide.Article, search SearchFunc, summarize SummarizeFunc, th theme.Theme) *Model {
	ti := textinput.New()
	ti.Placeholder = "Search expert guidance…"
	ti.CharLimit = 120
	ti.Prompt = "/ "

	return &Model{
		search:    search,
		summarize: summarize,
		theme:     th,
		articles:  initial,
		input:     ti,
		summaries: map[string]string{},
		width:     80,
	}
}

// SetTheme swaps the color scheme.
func (m *Model) SetTheme(th theme.Theme) { m.theme = th }

// SetWidth bounds text wrapping.
func (m *Model) SetWidth(w int) {
	if w > 0 {
		m.width = w
	}
}

// Loading reports whether a gateway request is outstanding.
func (m *Model) Loading() bool { return m.loading }

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case events.GuideResultsMsg:
		m.loading = false
		m.articles = msg.Articles
		m.cursor = 0
		return m, nil
	case events.SummaryMsg:
		m.loading = false
		m.summaries[msg.ArticleID] = msg.Text
		return m, nil
	case tea.KeyPressMsg:
		if m.loading {
			return m, nil
		}
		if m.searching {
			switch msg.String() {
			case "enter":
				query := strings.TrimSpace(m.input.Value())
				m.searching = false
				m.input.Blur()
				if query == "" {
					return m, nil
				}
				m.loading = true
				search := m.search
				return m, func() tea.Msg {
					return events.GuideResultsMsg{
						Query:    query,
						Articles: search(context.Background(), query),
					}
				}
			case "esc":
				m.searching = false
				m.input.Blur()
				return m, nil
			}
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.articles)-1 {
				m.cursor++
			}
		case "/":
			m.searching = true
			m.input.SetValue("")
			return m, m.input.Focus()
		case "s", "enter":
			if m.cursor < len(m.articles) {
				a := m.articles[m.cursor]
				if _, done := m.summaries[a.ID]; done {
					return m, nil
				}
				m.loading = true
				summarize := m.summarize
				return m, func() tea.Msg {
					return events.SummaryMsg{
						ArticleID: a.ID,
						Text:      summarize(context.Background(), a),
					}
				}
			}
		}
	}
	return m, nil
}

func (m *Model) View() string {
	var lines []string
	lines = append(lines, m.theme.Header.Render("Parenting Guide"))

	if m.searching {
		lines = append(lines, m.input.View(), "")
	}

	wrapTo := m.width - 6
	if wrapTo < 20 {
		wrapTo = 20
	}
	for i, a := range m.articles {
		title := m.theme.TaskPending.Render(a.Title)
		if i == m.cursor {
			title = m.theme.Cursor.Render("> ") + m.theme.Header.Render(a.Title)
		} else {
			title = "  " + title
		}
		lines = append(lines, title,
			m.theme.Help.Render("    "+a.Category+" · "+a.Source))
		if i == m.cursor {
			lines = append(lines, m.theme.Help.Render(wordwrap.String("    "+a.Summary, wrapTo)))
			if summary, ok := m.summaries[a.ID]; ok {
				lines = append(lines, "",
					m.theme.Holiday.Render("    AI Summary"),
					m.theme.TaskPending.Render(wordwrap.String("    "+summary, wrapTo)))
			}
		}
	}

	if m.loading {
		lines = append(lines, "", m.theme.Loading.Render("Asking the experts…"))
	} else {
		lines = append(lines, "", m.theme.Help.Render("s: summarize · /: search · j/k: move"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
