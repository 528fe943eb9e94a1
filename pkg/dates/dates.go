// Package dates defines the canonical day key and 12-hour clock slot used to
// key and order schedule entries.
package dates

import (
	"fmt"
	"time"
)

const layoutISO = "2006-01-02"

// DayKey is a calendar day in the local timezone, formatted YYYY-MM-DD. It is
// the equality key for all date filtering.
type DayKey string

// ToDayKey formats t using its own calendar fields, never the UTC shift.
func ToDayKey(t time.Time) DayKey {
	return DayKey(t.Format(layoutISO))
}

// Today returns the day key for the current local date.
func Today() DayKey {
	return ToDayKey(time.Now())
}

// Time reconstructs the midnight instant for the key in local time.
func (k DayKey) Time() (time.Time, error) {
	t, err := time.ParseInLocation(layoutISO, string(k), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("dates: parse day key %q: %w", k, err)
	}
	return t, nil
}

// Valid reports whether k is a well-formed calendar day.
func (k DayKey) Valid() bool {
	_, err := k.Time()
	return err == nil
}

func (k DayKey) String() string { return string(k) }

var dayAbbrevs = [7]string{"SUN", "MON", "TUE", "WED", "THU", "FRI", "SAT"}

// Abbrev returns the three-letter uppercase weekday label for strip and grid
// headers.
func Abbrev(w time.Weekday) string {
	return dayAbbrevs[int(w)%7]
}
