package mission

import (
	"errors"
	"testing"
	"time"
)

func TestStatusToggle(t *testing.T) {
	if StatusPending.Toggle() != StatusCompleted {
		t.Errorf("pending should toggle to completed")
	}
	if StatusCompleted.Toggle() != StatusPending {
		t.Errorf("completed should toggle to pending")
	}
	if got := StatusPending.Toggle().Toggle(); got != StatusPending {
		t.Errorf("double toggle should restore pending, got %s", got)
	}
}

func TestCategoryIcons(t *testing.T) {
	for _, c := range AllCategories() {
		if c.Icon() == "" {
			t.Errorf("category %s has no icon", c)
		}
	}
	if Category("unknown").Icon() != DefaultIcon {
		t.Errorf("unknown category should fall back to the default glyph")
	}
}

func TestParseCategoryDefaultsToPlay(t *testing.T) {
	if got := ParseCategory("MEDS"); got != CategoryMeds {
		t.Errorf("expected meds, got %s", got)
	}
	if got := ParseCategory("whatever"); got != CategoryPlay {
		t.Errorf("expected play default, got %s", got)
	}
}

func TestValidate(t *testing.T) {
	base := Mission{
		ID:      "1",
		ChildID: "1",
		Date:    "2026-03-03",
		Time:    "07:45 PM",
		Title:   "Bath",
		Status:  StatusPending,
		Repeat:  RepeatOnce,
	}
	if err := base.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bad := base
	bad.Title = " "
	if err := bad.Validate(); !errors.Is(err, ErrTitleNeeded) {
		t.Errorf("expected ErrTitleNeeded, got %v", err)
	}

	bad = base
	bad.Date = "2026-13-40"
	if err := bad.Validate(); !errors.Is(err, ErrBadDate) {
		t.Errorf("expected ErrBadDate, got %v", err)
	}

	bad = base
	bad.Time = "7:45 PM"
	if err := bad.Validate(); !errors.Is(err, ErrBadTime) {
		t.Errorf("expected ErrBadTime, got %v", err)
	}

	bad = base
	bad.Repeat = RepeatCustom
	if err := bad.Validate(); !errors.Is(err, ErrCustomDays) {
		t.Errorf("expected ErrCustomDays, got %v", err)
	}
	bad.RepeatDays = []time.Weekday{time.Monday}
	if err := bad.Validate(); err != nil {
		t.Errorf("custom repeat with days should validate, got %v", err)
	}
}

func TestRepeatsOn(t *testing.T) {
	weekdays := Mission{Repeat: RepeatCustom, RepeatDays: []time.Weekday{time.Monday, time.Friday}}
	if !weekdays.RepeatsOn(time.Monday) || weekdays.RepeatsOn(time.Sunday) {
		t.Errorf("custom repeat weekday match is wrong")
	}
	daily := Mission{Repeat: RepeatDaily}
	if !daily.RepeatsOn(time.Sunday) {
		t.Errorf("daily repeat should cover every weekday")
	}
	once := Mission{Repeat: RepeatOnce}
	if once.RepeatsOn(time.Monday) {
		t.Errorf("once should not repeat")
	}
}
