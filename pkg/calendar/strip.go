// Package calendar derives the day-strip and month-grid structures the
// schedule views render. All arithmetic uses time.AddDate so month and year
// boundaries wrap correctly.
package calendar

import (
	"time"

	"tableflip.dev/alpha/pkg/dates"
	"tableflip.dev/alpha/pkg/holiday"
)

// StripRadius is how many days the horizontal day strip extends on either
// side of the selected date.
const StripRadius = 60

// StripEntry is one day in the horizontal strip.
type StripEntry struct {
	Key      dates.DayKey
	Weekday  string
	Day      int
	Sunday   bool
	Holiday  string
	Selected bool
}

// Strip returns the window of days centered on selected, annotated with
// weekday labels and holiday names from the registry. The result always has
// 2*StripRadius+1 entries with the selected day in the middle.
func Strip(selected time.Time, reg *holiday.Registry) []StripEntry {
	entries := make([]StripEntry, 0, 2*StripRadius+1)
	for offset := -StripRadius; offset <= StripRadius; offset++ {
		d := selected.AddDate(0, 0, offset)
		e := StripEntry{
			Key:      dates.ToDayKey(d),
			Weekday:  dates.Abbrev(d.Weekday()),
			Day:      d.Day(),
			Sunday:   d.Weekday() == time.Sunday,
			Selected: offset == 0,
		}
		if reg != nil {
			e.Holiday, _ = reg.Lookup(e.Key)
		}
		entries = append(entries, e)
	}
	return entries
}
