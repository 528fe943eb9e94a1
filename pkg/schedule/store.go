// Package schedule provides the in-memory timeline store. Entries live for
// the process lifetime only; there is no persistence layer.
package schedule

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"tableflip.dev/alpha/pkg/dates"
	"tableflip.dev/alpha/pkg/mission"
)

// EventType describes a store change notification.
type EventType int

const (
	// EventAdded indicates a mission was inserted.
	EventAdded EventType = iota
	// EventToggled indicates a mission status flipped.
	EventToggled
)

// Event is emitted on mutation so views can re-filter.
type Event struct {
	Type EventType
	ID   string
}

// Store holds missions ordered ascending by clock time. All mutations are
// synchronous and atomic from the caller's perspective.
type Store struct {
	mu       sync.RWMutex
	missions []mission.Mission
	lastID   int64

	eventCh chan Event
}

// New creates an empty store.
func New() *Store {
	return &Store{eventCh: make(chan Event, 64)}
}

// Events exposes the mutation event channel. Events are dropped rather than
// blocking when no one drains the channel.
func (s *Store) Events() <-chan Event {
	return s.eventCh
}

// Add fills unset fields with defaults, assigns a fresh unique id, inserts
// and re-sorts. The created mission is returned.
func (s *Store) Add(partial mission.Mission) (mission.Mission, error) {
	m := partial
	if m.Date == "" {
		m.Date = dates.Today()
	}
	if m.Time == "" {
		m.Time = dates.DefaultClock
	}
	if strings.TrimSpace(m.Title) == "" {
		m.Title = "New Activity"
	}
	if strings.TrimSpace(m.Description) == "" {
		m.Description = "Alpha Task"
	}
	if m.Category == "" {
		m.Category = mission.CategoryPlay
	}
	if m.Icon == "" {
		m.Icon = mission.DefaultIcon
	}
	if m.Repeat == "" {
		m.Repeat = mission.RepeatOnce
	}
	m.Status = mission.StatusPending

	if err := m.Validate(); err != nil {
		return mission.Mission{}, err
	}

	s.mu.Lock()
	m.ID = s.nextIDLocked()
	s.missions = append(s.missions, m)
	s.sortLocked()
	s.mu.Unlock()

	s.emit(Event{Type: EventAdded, ID: m.ID})
	return m, nil
}

// ToggleStatus flips pending and completed for the matching id. An absent id
// is a silent no-op; the bool reports whether anything changed.
func (s *Store) ToggleStatus(id string) bool {
	s.mu.Lock()
	changed := false
	for i := range s.missions {
		if s.missions[i].ID == id {
			s.missions[i].Status = s.missions[i].Status.Toggle()
			changed = true
			break
		}
	}
	s.mu.Unlock()

	if changed {
		s.emit(Event{Type: EventToggled, ID: id})
	}
	return changed
}

// Filter returns missions matching both child and day, preserving store
// order. Repeat declarations are not expanded: an entry matches only its
// stored date.
func (s *Store) Filter(childID string, day dates.DayKey) []mission.Mission {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []mission.Mission
	for _, m := range s.missions {
		if m.ChildID == childID && m.Date == day {
			out = append(out, m)
		}
	}
	return out
}

// Get finds a mission by id.
func (s *Store) Get(id string) (mission.Mission, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.missions {
		if m.ID == id {
			return m, true
		}
	}
	return mission.Mission{}, false
}

// All returns a copy of every mission in store order.
func (s *Store) All() []mission.Mission {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]mission.Mission(nil), s.missions...)
}

// Len reports the number of stored missions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.missions)
}

// Seed inserts prebuilt missions, keeping their ids, and sorts once.
// Invalid entries are rejected wholesale.
func (s *Store) Seed(items ...mission.Mission) error {
	for _, m := range items {
		if err := m.Validate(); err != nil {
			return fmt.Errorf("schedule: seed %q: %w", m.ID, err)
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	seen := make(map[string]bool, len(s.missions)+len(items))
	for _, m := range s.missions {
		seen[m.ID] = true
	}
	for _, m := range items {
		if m.ID == "" || seen[m.ID] {
			m.ID = s.nextIDLocked()
		}
		seen[m.ID] = true
		s.missions = append(s.missions, m)
	}
	s.sortLocked()
	return nil
}

// nextIDLocked produces a timestamp-based id, bumped monotonically so rapid
// inserts never collide.
func (s *Store) nextIDLocked() string {
	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return fmt.Sprintf("%d", id)
}

// sortLocked orders ascending by clock time. The comparator is chronological
// (minutes since midnight), not lexicographic, so noon and the AM/PM boundary
// order correctly. Insertion order is preserved for equal slots.
func (s *Store) sortLocked() {
	sort.SliceStable(s.missions, func(i, j int) bool {
		return s.missions[i].Time.Less(s.missions[j].Time)
	})
}

func (s *Store) emit(ev Event) {
	select {
	case s.eventCh <- ev:
	default:
	}
}
