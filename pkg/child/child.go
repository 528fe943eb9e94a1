// Package child holds the child profiles and the active-child selection that
// gates which schedule entries are visible.
package child

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Gender of a child profile.
type Gender string

const (
	GenderBoy   Gender = "boy"
	GenderGirl  Gender = "girl"
	GenderOther Gender = "other"
)

// ParseGender converts a string to a Gender, defaulting unknown values to
// GenderOther.
func ParseGender(raw string) Gender {
	switch Gender(strings.ToLower(strings.TrimSpace(raw))) {
	case GenderBoy:
		return GenderBoy
	case GenderGirl:
		return GenderGirl
	default:
		return GenderOther
	}
}

// Child is a profile created during onboarding or via the add-child action.
// The avatar reference is fixed at creation.
type Child struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DateOfBirth string `json:"dob"`
	Gender      Gender `json:"gender"`
	Avatar      string `json:"avatar"`
}

// MaxChildren caps the roster. The cap is enforced here rather than in the
// presentation layer so every caller shares the invariant.
const MaxChildren = 5

var (
	ErrRosterFull  = errors.New("child: roster is full")
	ErrNameEmpty   = errors.New("child: name is required")
	ErrOutOfRange  = errors.New("child: index out of range")
	ErrEmptyRoster = errors.New("child: roster is empty")
)

// Roster is the ordered child list plus the active selection.
type Roster struct {
	children []Child
	selected int
}

// NewRoster seeds a roster and selects the first child.
func NewRoster(children ...Child) *Roster {
	r := &Roster{}
	r.children = append(r.children, children...)
	return r
}

// Add appends a new profile and immediately selects it. Missing fields other
// than the name are defaulted.
func (r *Roster) Add(c Child) (Child, error) {
	if strings.TrimSpace(c.Name) == "" {
		return Child{}, ErrNameEmpty
	}
	if len(r.children) >= MaxChildren {
		return Child{}, ErrRosterFull
	}
	if c.ID == "" {
		c.ID = fmt.Sprintf("%d", time.Now().UnixMilli())
	}
	if c.Gender == "" {
		c.Gender = GenderBoy
	}
	if c.Avatar == "" {
		c.Avatar = fmt.Sprintf("https://picsum.photos/seed/%s/200/200", c.Name)
	}
	r.selected = len(r.children)
	r.children = append(r.children, c)
	return c, nil
}

// Select makes the child at index the active one.
func (r *Roster) Select(index int) error {
	if index < 0 || index >= len(r.children) {
		return ErrOutOfRange
	}
	r.selected = index
	return nil
}

// SelectedIndex returns the active index.
func (r *Roster) SelectedIndex() int { return r.selected }

// Selected returns the active child.
func (r *Roster) Selected() (Child, error) {
	if len(r.children) == 0 {
		return Child{}, ErrEmptyRoster
	}
	return r.children[r.selected], nil
}

// SelectedID returns the active child's id, or fallback when the roster is
// empty.
func (r *Roster) SelectedID(fallback string) string {
	if c, err := r.Selected(); err == nil {
		return c.ID
	}
	return fallback
}

// Children returns a copy of the roster in order.
func (r *Roster) Children() []Child {
	return append([]Child(nil), r.children...)
}

// Len reports the roster size.
func (r *Roster) Len() int { return len(r.children) }

// ByID finds a child by id.
func (r *Roster) ByID(id string) (Child, bool) {
	for _, c := range r.children {
		if c.ID == id {
			return c, true
		}
	}
	return Child{}, false
}
