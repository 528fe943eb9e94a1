// Package teaui hosts the Bubble Tea program for the alpha TUI.
package teaui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/alpha/pkg/app"
	"tableflip.dev/alpha/pkg/child"
	"tableflip.dev/alpha/pkg/dates"
	"tableflip.dev/alpha/pkg/mission"
	"tableflip.dev/alpha/pkg/schedule"
	"tableflip.dev/alpha/pkg/tui/components/activity"
	"tableflip.dev/alpha/pkg/tui/components/addchild"
	"tableflip.dev/alpha/pkg/tui/components/addmission"
	"tableflip.dev/alpha/pkg/tui/components/chat"
	"tableflip.dev/alpha/pkg/tui/components/daystrip"
	"tableflip.dev/alpha/pkg/tui/components/guidepane"
	"tableflip.dev/alpha/pkg/tui/components/monthgrid"
	"tableflip.dev/alpha/pkg/tui/components/staffpane"
	"tableflip.dev/alpha/pkg/tui/components/timeline"
	"tableflip.dev/alpha/pkg/tui/events"
	"tableflip.dev/alpha/pkg/tui/session"
	"tableflip.dev/alpha/pkg/tui/theme"
)

type overlayKind int

const (
	overlayNone overlayKind = iota
	overlayAddMission
	overlayAddChild
)

// Model is the top-level TUI state: session, tab components, and at most one
// overlay.
type Model struct {
	svc  *app.Service
	ctx  context.Context
	sess *session.Session
	th   theme.Theme

	strip *daystrip.Model
	month *monthgrid.Model
	tl    *timeline.Model
	chatm *chat.Model
	act   *activity.Model
	guide *guidepane.Model
	staff *staffpane.Model

	overlay     tea.Model
	overlayKind overlayKind

	width  int
	height int
}

// New builds the UI over the shared service.
func New(svc *app.Service) *Model {
	th := theme.Default()
	sess := session.New()

	m := &Model{
		svc:   svc,
		ctx:   context.Background(),
		sess:  sess,
		th:    th,
		strip: daystrip.New(sess.SelectedDate(), svc.Holidays, th),
		month: monthgrid.New(sess.MonthAnchor(), svc.Holidays, th),
		tl:    timeline.New(svc.Missions.ToggleStatus, th),
		chatm: chat.New(svc.Chat, th),
		act:   activity.New(svc.FindNearby, th),
		guide: guidepane.New(svc.Guide(context.Background()), svc.SearchGuide, svc.Summarize, th),
		staff: staffpane.New(svc.Staff(context.Background()), th),
	}
	m.refreshTimeline()
	return m
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.chatm.Init(),
		m.act.Init(),
		watchStore(m.svc.Missions.Events()),
	)
}

func watchStore(ch <-chan schedule.Event) tea.Cmd {
	return func() tea.Msg {
		<-ch
		return events.StoreChangedMsg{}
	}
}

func (m *Model) refreshTimeline() {
	missions := m.svc.Timeline(m.ctx, m.sess.SelectedDay())
	m.tl.SetMissions(missions)

	done := 0
	for _, t := range missions {
		if t.Completed() {
			done++
		}
	}
	m.act.SetProgress(done, len(missions))
}

func (m *Model) setTheme(th theme.Theme) {
	m.th = th
	m.strip.SetTheme(th)
	m.month.SetTheme(th)
	m.tl.SetTheme(th)
	m.chatm.SetTheme(th)
	m.act.SetTheme(th)
	m.guide.SetTheme(th)
	m.staff.SetTheme(th)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.strip.SetWidth(msg.Width)
		m.chatm.SetWidth(msg.Width)
		m.act.SetWidth(msg.Width)
		m.guide.SetWidth(msg.Width)
		return m, nil

	case events.DaySelectedMsg:
		m.sess.SelectDay(msg.Date)
		m.strip.SetSelected(msg.Date)
		m.refreshTimeline()
		return m, nil

	case events.MissionAddedMsg, events.ChildAddedMsg, events.CloseOverlayMsg:
		m.overlay = nil
		m.overlayKind = overlayNone
		m.refreshTimeline()
		return m, nil

	case events.StoreChangedMsg:
		m.refreshTimeline()
		return m, watchStore(m.svc.Missions.Events())

	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}

	return m.route(msg)
}

func (m *Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.overlay != nil {
		var cmd tea.Cmd
		m.overlay, cmd = m.overlay.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "tab":
		m.sess.NextTab()
		return m, nil
	case "shift+tab":
		m.sess.PrevTab()
		return m, nil
	case "ctrl+d":
		m.sess.ToggleDarkMode()
		m.setTheme(theme.New(m.sess.DarkMode()))
		return m, nil
	}

	if m.sess.Tab() == session.TabTimeline {
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "a":
			form := addmission.New(m.addMission, timelineSeed(m.tl), m.th)
			m.overlay = form
			m.overlayKind = overlayAddMission
			return m, form.Init()
		case "c":
			if m.svc.Roster.Len() < child.MaxChildren {
				form := addchild.New(m.svc.Roster.Add, m.th)
				m.overlay = form
				m.overlayKind = overlayAddChild
				return m, form.Init()
			}
			return m, nil
		case "m":
			m.sess.ToggleView()
			if m.sess.ViewType() == session.ViewMonth {
				m.month.SetAnchor(m.sess.MonthAnchor())
				m.month.SetCursor(m.sess.SelectedDate().Day())
			}
			return m, nil
		case "1", "2", "3", "4", "5":
			idx := int(msg.String()[0] - '1')
			if err := m.svc.Roster.Select(idx); err == nil {
				m.refreshTimeline()
			}
			return m, nil
		}
	}
	if m.sess.Tab() == session.TabStaff && msg.String() == "q" {
		return m, tea.Quit
	}

	return m.route(msg)
}

// route forwards a message to the component that owns the visible pane.
func (m *Model) route(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.sess.Tab() {
	case session.TabTimeline:
		if m.sess.ViewType() == session.ViewMonth {
			var mm tea.Model
			mm, cmd = m.month.Update(msg)
			if month, ok := mm.(*monthgrid.Model); ok {
				m.month = month
			}
		} else {
			if _, c := m.strip.Update(msg); c != nil {
				return m, c
			}
			_, cmd = m.tl.Update(msg)
		}
	case session.TabActivity:
		_, cmd = m.act.Update(msg)
	case session.TabChat:
		_, cmd = m.chatm.Update(msg)
	case session.TabStaff:
		_, cmd = m.staff.Update(msg)
	case session.TabGuide:
		_, cmd = m.guide.Update(msg)
	}
	return m, cmd
}

func (m *Model) addMission(partial mission.Mission) (mission.Mission, error) {
	partial.Date = m.sess.SelectedDay()
	return m.svc.AddMission(m.ctx, partial)
}

// timelineSeed picks the form's starting slot from the highlighted task so a
// new entry lands near the user's focus.
func timelineSeed(tl *timeline.Model) dates.ClockTime {
	if sel, ok := tl.Selected(); ok {
		return sel.Time
	}
	return dates.DefaultClock
}

func (m *Model) View() string {
	if m.overlay != nil {
		if v, ok := m.overlay.(interface{ View() string }); ok {
			return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, v.View())
		}
	}

	var body string
	switch m.sess.Tab() {
	case session.TabTimeline:
		body = m.timelineView()
	case session.TabActivity:
		body = m.act.View()
	case session.TabChat:
		body = m.chatm.View()
	case session.TabStaff:
		body = m.staff.View()
	case session.TabGuide:
		body = m.guide.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.tabBar(),
		"",
		body,
		"",
		m.footer(),
	)
}

func (m *Model) tabBar() string {
	var tabs []string
	for i := 0; i < session.TabCount; i++ {
		t := session.Tab(i)
		style := m.th.Tab
		if t == m.sess.Tab() {
			style = m.th.TabActive
		}
		tabs = append(tabs, style.Render(t.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m *Model) childBar() string {
	var chips []string
	for i, c := range m.svc.Roster.Children() {
		style := m.th.Tab
		if i == m.svc.Roster.SelectedIndex() {
			style = m.th.TabActive
		}
		chips = append(chips, style.Render(fmt.Sprintf("%d %s", i+1, c.Name)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, chips...)
}

func (m *Model) timelineView() string {
	var cal string
	if m.sess.ViewType() == session.ViewMonth {
		cal = m.month.View()
	} else {
		cal = m.strip.View()
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.childBar(),
		"",
		cal,
		"",
		m.tl.View(),
	)
}

func (m *Model) footer() string {
	hints := []string{"tab: screens", "ctrl+d: dark mode", "ctrl+c: quit"}
	if m.sess.Tab() == session.TabTimeline {
		hints = append([]string{"a: add task", "c: add child", "m: month", "1-5: child"}, hints...)
	}
	return m.th.Help.Render(strings.Join(hints, " · "))
}
