package calendar

import (
	"testing"
	"time"

	"tableflip.dev/alpha/pkg/holiday"
)

func TestStripWindow(t *testing.T) {
	selected := time.Date(2026, time.March, 3, 0, 0, 0, 0, time.Local)
	entries := Strip(selected, holiday.Default())

	if len(entries) != 121 {
		t.Fatalf("expected 121 entries, got %d", len(entries))
	}
	if entries[0].Key != "2026-01-02" {
		t.Errorf("expected window to open 60 days back, got %s", entries[0].Key)
	}
	if entries[120].Key != "2026-05-02" {
		t.Errorf("expected window to close 60 days ahead, got %s", entries[120].Key)
	}
	mid := entries[60]
	if mid.Key != "2026-03-03" || !mid.Selected {
		t.Errorf("expected selected day in the middle, got %+v", mid)
	}
	if mid.Holiday != "Holi" {
		t.Errorf("expected Holi annotation, got %q", mid.Holiday)
	}
	if mid.Weekday != "TUE" || mid.Day != 3 {
		t.Errorf("unexpected labels: %+v", mid)
	}
	for _, e := range entries {
		if e.Sunday != (e.Weekday == "SUN") {
			t.Fatalf("sunday flag disagrees with weekday for %s", e.Key)
		}
	}
}

func TestMonthGridLeadingBlanks(t *testing.T) {
	tests := []struct {
		name   string
		anchor time.Time
		blanks int
		days   int
	}{
		{
			// April 2026 has 30 days and starts on a Wednesday.
			name:   "thirty day month starting Wednesday",
			anchor: time.Date(2026, time.April, 1, 0, 0, 0, 0, time.Local),
			blanks: 3,
			days:   30,
		},
		{
			// February 2026 starts on a Sunday, so no padding at all.
			name:   "month starting Sunday",
			anchor: time.Date(2026, time.February, 1, 0, 0, 0, 0, time.Local),
			blanks: 0,
			days:   28,
		},
		{
			name:   "leap February",
			anchor: time.Date(2028, time.February, 15, 0, 0, 0, 0, time.Local),
			blanks: 2,
			days:   29,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cells := MonthGrid(tt.anchor, nil)
			if len(cells) != tt.blanks+tt.days {
				t.Fatalf("expected %d cells, got %d", tt.blanks+tt.days, len(cells))
			}
			for i := 0; i < tt.blanks; i++ {
				if !cells[i].Blank() {
					t.Fatalf("cell %d should be blank", i)
				}
			}
			for i := tt.blanks; i < len(cells); i++ {
				if cells[i].Blank() {
					t.Fatalf("cell %d should be a day", i)
				}
				if want := i - tt.blanks + 1; cells[i].Day != want {
					t.Fatalf("cell %d: expected day %d, got %d", i, want, cells[i].Day)
				}
			}
		})
	}
}

func TestMonthGridMarksSundaysAndHolidays(t *testing.T) {
	anchor := time.Date(2026, time.November, 1, 0, 0, 0, 0, time.Local)
	cells := MonthGrid(anchor, holiday.Default())
	var diwali *Cell
	for i := range cells {
		c := &cells[i]
		if c.Key == "2026-11-08" {
			diwali = c
		}
	}
	if diwali == nil || diwali.Holiday != "Diwali" {
		t.Fatalf("expected Diwali cell, got %+v", diwali)
	}
	if !diwali.Sunday {
		t.Errorf("2026-11-08 is a Sunday")
	}
}

func TestAddMonthsWrapsYears(t *testing.T) {
	dec := time.Date(2026, time.December, 25, 0, 0, 0, 0, time.Local)
	next := AddMonths(dec, 1)
	if next.Year() != 2027 || next.Month() != time.January || next.Day() != 1 {
		t.Errorf("expected 2027-01-01, got %v", next)
	}
	jan := time.Date(2026, time.January, 31, 0, 0, 0, 0, time.Local)
	prev := AddMonths(jan, -1)
	if prev.Year() != 2025 || prev.Month() != time.December || prev.Day() != 1 {
		t.Errorf("expected 2025-12-01, got %v", prev)
	}
}

func TestDaysIn(t *testing.T) {
	tests := []struct {
		anchor time.Time
		want   int
	}{
		{time.Date(2026, time.April, 10, 0, 0, 0, 0, time.Local), 30},
		{time.Date(2026, time.February, 1, 0, 0, 0, 0, time.Local), 28},
		{time.Date(2028, time.February, 1, 0, 0, 0, 0, time.Local), 29},
		{time.Date(2026, time.December, 31, 0, 0, 0, 0, time.Local), 31},
	}
	for _, tt := range tests {
		if got := DaysIn(tt.anchor); got != tt.want {
			t.Errorf("DaysIn(%v) = %d, want %d", tt.anchor, got, tt.want)
		}
	}
}
