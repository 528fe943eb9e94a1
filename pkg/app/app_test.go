package app

import (
	"context"
	"errors"
	"testing"

	"tableflip.dev/alpha/pkg/dates"
	"tableflip.dev/alpha/pkg/gateway"
	"tableflip.dev/alpha/pkg/logger"
	"tableflip.dev/alpha/pkg/mission"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	s, err := NewDemo(gateway.Static{}, gateway.StaticLocator{Lat: 12.9, Lng: 77.5}, logger.New("error"))
	if err != nil {
		t.Fatalf("demo service: %v", err)
	}
	return s
}

func TestDemoSeedsTimelineForFirstChild(t *testing.T) {
	s := newTestService(t)
	s.Roster.Select(0)
	got := s.Timeline(context.Background(), dates.Today())
	if len(got) != 5 {
		t.Fatalf("expected 5 seeded tasks, got %d", len(got))
	}
}

func TestTimelineFollowsSelectedChild(t *testing.T) {
	s := newTestService(t)
	s.Roster.Select(1)
	if got := s.Timeline(context.Background(), dates.Today()); len(got) != 0 {
		t.Fatalf("second child should have no tasks, got %d", len(got))
	}
}

func TestAddMissionUsesSelectedChild(t *testing.T) {
	s := newTestService(t)
	s.Roster.Select(1)
	m, err := s.AddMission(context.Background(), mission.Mission{Title: "Nap"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if m.ChildID != "2" {
		t.Errorf("expected task for selected child 2, got %s", m.ChildID)
	}
}

func TestCompleteUnknownID(t *testing.T) {
	s := newTestService(t)
	if err := s.Complete(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSearchGuideFallsBackToLibrary(t *testing.T) {
	s := newTestService(t)
	got := s.SearchGuide(context.Background(), "sleep")
	if len(got) != 1 || got[0].Title != "Safe Sleep and SIDS Prevention" {
		t.Fatalf("expected local library fallback, got %v", got)
	}
}

func TestFindNearbyLocationError(t *testing.T) {
	s := newTestService(t)
	s.Locator = failingLocator{}
	if _, err := s.FindNearby(context.Background(), "parks"); !errors.Is(err, ErrNoLocation) {
		t.Fatalf("expected ErrNoLocation, got %v", err)
	}
}

type failingLocator struct{}

func (failingLocator) Locate(context.Context) (float64, float64, error) {
	return 0, 0, errors.New("gps off")
}
