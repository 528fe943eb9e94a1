// Package session holds the navigation state shared across the TUI: which
// tab is visible, which child and day are selected, and whether the calendar
// shows the day strip or the month grid.
package session

import (
	"time"

	"tableflip.dev/alpha/pkg/calendar"
	"tableflip.dev/alpha/pkg/dates"
)

// Tab identifies a top-level screen.
type Tab int

const (
	TabTimeline Tab = iota
	TabActivity
	TabChat
	TabStaff
	TabGuide
)

var tabNames = [...]string{"Timeline", "Activity", "Chat", "Staff", "Guide"}

func (t Tab) String() string {
	if int(t) < len(tabNames) {
		return tabNames[t]
	}
	return "Unknown"
}

// TabCount is the number of top-level screens.
const TabCount = len(tabNames)

// ViewType selects the calendar presentation on the timeline tab.
type ViewType int

const (
	ViewDay ViewType = iota
	ViewMonth
)

// Session is the mutable navigation state. It is owned by the top-level
// model; components receive it read-only via snapshots.
type Session struct {
	tab          Tab
	selectedDate time.Time
	viewType     ViewType
	monthAnchor  time.Time
	darkMode     bool
}

// New starts on the timeline tab with today selected in day view.
func New() *Session {
	now := time.Now()
	return &Session{
		tab:          TabTimeline,
		selectedDate: now,
		monthAnchor:  calendar.FirstOfMonth(now),
	}
}

func (s *Session) Tab() Tab                 { return s.tab }
func (s *Session) SelectedDate() time.Time  { return s.selectedDate }
func (s *Session) SelectedDay() dates.DayKey { return dates.ToDayKey(s.selectedDate) }
func (s *Session) ViewType() ViewType       { return s.viewType }
func (s *Session) MonthAnchor() time.Time   { return s.monthAnchor }
func (s *Session) DarkMode() bool           { return s.darkMode }

// SetTab switches screens.
func (s *Session) SetTab(t Tab) {
	if t >= 0 && int(t) < TabCount {
		s.tab = t
	}
}

// NextTab cycles forward through the screens.
func (s *Session) NextTab() {
	s.tab = Tab((int(s.tab) + 1) % TabCount)
}

// PrevTab cycles backward through the screens.
func (s *Session) PrevTab() {
	s.tab = Tab((int(s.tab) + TabCount - 1) % TabCount)
}

// ShiftDay moves the selected date by delta days, staying in day view.
func (s *Session) ShiftDay(delta int) {
	s.selectedDate = s.selectedDate.AddDate(0, 0, delta)
	s.monthAnchor = calendar.FirstOfMonth(s.selectedDate)
}

// SelectDay picks an explicit date and returns to day view.
func (s *Session) SelectDay(t time.Time) {
	s.selectedDate = t
	s.monthAnchor = calendar.FirstOfMonth(t)
	s.viewType = ViewDay
}

// ToggleView flips between day strip and month grid. The selected date is
// preserved either way; the month view opens on the selected date's month.
func (s *Session) ToggleView() {
	if s.viewType == ViewDay {
		s.viewType = ViewMonth
		s.monthAnchor = calendar.FirstOfMonth(s.selectedDate)
	} else {
		s.viewType = ViewDay
	}
}

// ShiftMonth moves the month anchor without touching the selected date.
func (s *Session) ShiftMonth(delta int) {
	s.monthAnchor = calendar.AddMonths(s.monthAnchor, delta)
}

// ToggleDarkMode flips the color scheme.
func (s *Session) ToggleDarkMode() {
	s.darkMode = !s.darkMode
}
