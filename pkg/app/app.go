// Package app provides the high-level operations shared by the CLI verbs and
// the TUI. It wraps the schedule store, child roster, holiday registry, and
// the AI gateway so UIs never touch them directly.
package app

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"tableflip.dev/alpha/pkg/child"
	"tableflip.dev/alpha/pkg/dates"
	"tableflip.dev/alpha/pkg/gateway"
	"tableflip.dev/alpha/pkg/guide"
	"tableflip.dev/alpha/pkg/holiday"
	"tableflip.dev/alpha/pkg/mission"
	"tableflip.dev/alpha/pkg/notify"
	"tableflip.dev/alpha/pkg/schedule"
	"tableflip.dev/alpha/pkg/staff"
)

// Service wires the stores and the gateway together.
type Service struct {
	Missions *schedule.Store
	Roster   *child.Roster
	Holidays *holiday.Registry
	AI       gateway.Gateway
	Locator  gateway.Locator
	Log      *logrus.Logger
}

var (
	ErrNotFound   = errors.New("app: task not found")
	ErrNoLocation = errors.New("app: location unavailable, enable it to search nearby")
)

// NewDemo builds a service seeded with the demonstration data: two children
// and today's timeline for the first.
func NewDemo(ai gateway.Gateway, loc gateway.Locator, log *logrus.Logger) (*Service, error) {
	s := &Service{
		Missions: schedule.New(),
		Roster:   &child.Roster{},
		Holidays: holiday.Default(),
		AI:       ai,
		Locator:  loc,
		Log:      log,
	}
	if _, err := s.Roster.Add(child.Child{ID: "1", Name: "Arya", DateOfBirth: "2022-06-14", Gender: child.GenderGirl}); err != nil {
		return nil, err
	}
	if _, err := s.Roster.Add(child.Child{ID: "2", Name: "Kabir", DateOfBirth: "2024-01-30", Gender: child.GenderBoy}); err != nil {
		return nil, err
	}
	s.Roster.Select(0)
	if err := s.Missions.Seed(schedule.DemoMissions("1")...); err != nil {
		return nil, err
	}
	return s, nil
}

// Timeline lists the selected child's missions for the day.
func (s *Service) Timeline(ctx context.Context, day dates.DayKey) []mission.Mission {
	return s.Missions.Filter(s.Roster.SelectedID("1"), day)
}

// AddMission schedules a task for the selected child, filling defaults.
func (s *Service) AddMission(ctx context.Context, partial mission.Mission) (mission.Mission, error) {
	if partial.ChildID == "" {
		partial.ChildID = s.Roster.SelectedID("1")
	}
	return s.Missions.Add(partial)
}

// Complete flips a task's status.
func (s *Service) Complete(ctx context.Context, id string) error {
	if !s.Missions.ToggleStatus(id) {
		return ErrNotFound
	}
	return nil
}

// AddChild appends to the roster and selects the new child.
func (s *Service) AddChild(ctx context.Context, c child.Child) (child.Child, error) {
	return s.Roster.Add(c)
}

// HolidayFor returns the holiday label for a day, if any.
func (s *Service) HolidayFor(day dates.DayKey) string {
	label, _ := s.Holidays.Lookup(day)
	return label
}

// Guide returns the local article library.
func (s *Service) Guide(ctx context.Context) []guide.Article {
	return guide.Library()
}

// SearchGuide asks the gateway for expert articles, falling back to the
// locally filtered library when the search fails.
func (s *Service) SearchGuide(ctx context.Context, query string) []guide.Article {
	if results := s.AI.SearchGuide(ctx, query); results != nil {
		return results
	}
	return guide.FilterLocal(guide.Library(), query)
}

// Summarize condenses an article via the gateway.
func (s *Service) Summarize(ctx context.Context, a guide.Article) string {
	return s.AI.Summarize(ctx, a.Title, a.FullContent)
}

// Chat answers a parenting prompt via the gateway.
func (s *Service) Chat(ctx context.Context, prompt string) gateway.ChatReply {
	return s.AI.Chat(ctx, prompt)
}

// FindNearby runs a grounded activity search at the configured location.
func (s *Service) FindNearby(ctx context.Context, query string) (*gateway.NearbyResult, error) {
	lat, lng, err := s.Locator.Locate(ctx)
	if err != nil {
		return nil, ErrNoLocation
	}
	return s.AI.FindNearby(ctx, lat, lng, query), nil
}

// Staff returns the household staff directory.
func (s *Service) Staff(ctx context.Context) []staff.Member {
	return staff.Roster()
}

// Notifications returns the feed grouped relative to now.
func (s *Service) Notifications(ctx context.Context) []notify.Notification {
	return notify.Feed(time.Now())
}
