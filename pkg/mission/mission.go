// Package mission defines the schedule entry type and its enumerations.
// "Mission" is the product term for a timeline item.
package mission

import (
	"errors"
	"strings"
	"time"

	"tableflip.dev/alpha/pkg/dates"
)

// Status of a mission. Transitions only between the two values.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// Toggle flips pending and completed.
func (s Status) Toggle() Status {
	if s == StatusCompleted {
		return StatusPending
	}
	return StatusCompleted
}

// Category groups missions for icon and filter purposes.
type Category string

const (
	CategoryMeds   Category = "meds"
	CategoryFood   Category = "food"
	CategoryPlay   Category = "play"
	CategorySchool Category = "school"
	CategorySleep  Category = "sleep"
)

// AllCategories returns the supported categories in display order.
func AllCategories() []Category {
	return []Category{CategoryMeds, CategoryFood, CategoryPlay, CategorySchool, CategorySleep}
}

// ParseCategory maps a string to a Category, defaulting to play.
func ParseCategory(raw string) Category {
	switch Category(strings.ToLower(strings.TrimSpace(raw))) {
	case CategoryMeds:
		return CategoryMeds
	case CategoryFood:
		return CategoryFood
	case CategorySchool:
		return CategorySchool
	case CategorySleep:
		return CategorySleep
	default:
		return CategoryPlay
	}
}

// DefaultIcon is assigned when no glyph is chosen.
const DefaultIcon = "✨"

// Icon returns the default glyph for the category.
func (c Category) Icon() string {
	switch c {
	case CategoryMeds:
		return "💊"
	case CategoryFood:
		return "🥘"
	case CategorySchool:
		return "🚌"
	case CategorySleep:
		return "😴"
	case CategoryPlay:
		return "🛝"
	default:
		return DefaultIcon
	}
}

// Repeat declares intended repetition. The declaration is carried and shown
// but occurrences are not materialized onto other days.
type Repeat string

const (
	RepeatOnce   Repeat = "once"
	RepeatDaily  Repeat = "daily"
	RepeatCustom Repeat = "custom"
)

// ParseRepeat maps a string to a Repeat, defaulting to once.
func ParseRepeat(raw string) Repeat {
	switch Repeat(strings.ToLower(strings.TrimSpace(raw))) {
	case RepeatDaily:
		return RepeatDaily
	case RepeatCustom:
		return RepeatCustom
	default:
		return RepeatOnce
	}
}

var (
	ErrBadDate     = errors.New("mission: date is not a valid day key")
	ErrBadTime     = errors.New("mission: time is not a valid clock slot")
	ErrCustomDays  = errors.New("mission: custom repeat requires at least one weekday")
	ErrTitleNeeded = errors.New("mission: title is required")
)

// Mission is one scheduled entry for a child on a single concrete day.
type Mission struct {
	ID          string          `json:"id"`
	ChildID     string          `json:"childId"`
	Date        dates.DayKey    `json:"date"`
	Time        dates.ClockTime `json:"time"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Status      Status          `json:"status"`
	Icon        string          `json:"icon"`
	Category    Category        `json:"category"`
	Repeat      Repeat          `json:"repeatType"`
	RepeatDays  []time.Weekday  `json:"repeatDays,omitempty"`
}

// Completed reports whether the mission is done.
func (m Mission) Completed() bool { return m.Status == StatusCompleted }

// Validate checks the invariants that must hold for any stored mission.
func (m Mission) Validate() error {
	if strings.TrimSpace(m.Title) == "" {
		return ErrTitleNeeded
	}
	if !m.Date.Valid() {
		return ErrBadDate
	}
	if _, err := dates.ParseClock(string(m.Time)); err != nil {
		return ErrBadTime
	}
	if m.Repeat == RepeatCustom && len(m.RepeatDays) == 0 {
		return ErrCustomDays
	}
	return nil
}

// RepeatsOn reports whether the declared repetition covers the weekday.
func (m Mission) RepeatsOn(w time.Weekday) bool {
	switch m.Repeat {
	case RepeatDaily:
		return true
	case RepeatCustom:
		for _, d := range m.RepeatDays {
			if d == w {
				return true
			}
		}
	}
	return false
}
