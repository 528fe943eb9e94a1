package calendar

import (
	"time"

	"tableflip.dev/alpha/pkg/dates"
	"tableflip.dev/alpha/pkg/holiday"
)

// Cell is one slot in the 7-column month grid. Blank cells pad the first week
// so day 1 lands under its weekday column; they carry Day == 0.
type Cell struct {
	Key     dates.DayKey
	Day     int
	Sunday  bool
	Holiday string
}

// Blank reports whether the cell is a leading pad slot.
func (c Cell) Blank() bool { return c.Day == 0 }

// FirstOfMonth normalizes t to midnight on the first day of its month.
func FirstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// AddMonths steps the anchor by delta whole months, keeping it pinned to the
// first of the month so short months cannot skid the anchor forward.
func AddMonths(anchor time.Time, delta int) time.Time {
	return FirstOfMonth(anchor).AddDate(0, delta, 0)
}

// DaysIn returns the number of days in the anchor's month.
func DaysIn(anchor time.Time) int {
	first := FirstOfMonth(anchor)
	return first.AddDate(0, 1, -1).Day()
}

// MonthGrid lays the anchor's month out as a flat cell list: one blank per
// weekday preceding the first, then one cell per day. The caller renders it
// seven columns wide; no trailing padding is added.
func MonthGrid(anchor time.Time, reg *holiday.Registry) []Cell {
	first := FirstOfMonth(anchor)
	days := DaysIn(anchor)

	cells := make([]Cell, 0, int(first.Weekday())+days)
	for i := 0; i < int(first.Weekday()); i++ {
		cells = append(cells, Cell{})
	}
	for day := 1; day <= days; day++ {
		d := first.AddDate(0, 0, day-1)
		c := Cell{
			Key:    dates.ToDayKey(d),
			Day:    day,
			Sunday: d.Weekday() == time.Sunday,
		}
		if reg != nil {
			c.Holiday, _ = reg.Lookup(c.Key)
		}
		cells = append(cells, c)
	}
	return cells
}
