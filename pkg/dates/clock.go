package dates

import (
	"fmt"
	"time"
)

const layoutClock = "03:04 PM"

// ClockTime is a 12-hour time slot in the canonical zero-padded
// "hh:mm AM/PM" form. The zero padding makes lexicographic order agree with
// chronological order within a period, but callers must still compare through
// Minutes so "12:00 PM" never sorts after "01:00 PM".
type ClockTime string

// DefaultClock is the slot assigned when an entry is added without a time.
const DefaultClock ClockTime = "09:00 AM"

// ParseClock validates s and returns it in canonical form.
func ParseClock(s string) (ClockTime, error) {
	t, err := time.Parse(layoutClock, s)
	if err != nil {
		return "", fmt.Errorf("dates: parse clock %q: %w", s, err)
	}
	return ClockTime(t.Format(layoutClock)), nil
}

// ClockOf builds the canonical slot from picker parts. Hour is 1-12, minute
// 0-59, period "AM" or "PM".
func ClockOf(hour, minute int, period string) ClockTime {
	return ClockTime(fmt.Sprintf("%02d:%02d %s", hour, minute, period))
}

// Minutes converts the slot to minutes since local midnight, applying the
// AM/PM offset. Malformed values order first.
func (c ClockTime) Minutes() int {
	t, err := time.Parse(layoutClock, string(c))
	if err != nil {
		return -1
	}
	return t.Hour()*60 + t.Minute()
}

// Less orders slots chronologically.
func (c ClockTime) Less(o ClockTime) bool {
	return c.Minutes() < o.Minutes()
}

func (c ClockTime) String() string { return string(c) }

// PickerHours lists the hour column of the time picker, zero-padded 01-12.
func PickerHours() []string {
	out := make([]string, 12)
	for i := range out {
		out[i] = fmt.Sprintf("%02d", i+1)
	}
	return out
}

// PickerMinutes lists the minute column in steps of five, 00-55.
func PickerMinutes() []string {
	out := make([]string, 12)
	for i := range out {
		out[i] = fmt.Sprintf("%02d", i*5)
	}
	return out
}

// PickerPeriods lists the meridiem column.
func PickerPeriods() []string {
	return []string{"AM", "PM"}
}
