// Package notify models the activity notification feed.
package notify

import "time"

// Type classifies a notification for icon and color selection.
type Type string

const (
	TypeCompleted Type = "completed"
	TypeAlert     Type = "alert"
	TypeCommunity Type = "community"
)

// Notification is one entry in the feed.
type Notification struct {
	ID        string    `json:"id"`
	Type      Type      `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Group     string    `json:"group"`
}

// GroupFor buckets a timestamp relative to now into the feed's display
// groups. Anything before yesterday falls into Earlier.
func GroupFor(ts, now time.Time) string {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch {
	case !ts.Before(today):
		return "Today"
	case !ts.Before(today.AddDate(0, 0, -1)):
		return "Yesterday"
	default:
		return "Earlier"
	}
}

// Feed returns the demonstration notifications, grouped relative to now.
func Feed(now time.Time) []Notification {
	items := []Notification{
		{
			ID: "1", Type: TypeCompleted, Title: "Task Completed",
			Message:   "Sunita Didi gave evening medicine to Arya.",
			Timestamp: now.Add(-10 * time.Minute),
		},
		{
			ID: "2", Type: TypeAlert, Title: "Alert",
			Message:   "Flu vaccination for Kabir is overdue by 2 days.",
			Timestamp: now.Add(-2 * time.Hour),
		},
		{
			ID: "3", Type: TypeCommunity, Title: "Community",
			Message:   "Nisha replied to your post about Preschools.",
			Timestamp: now.AddDate(0, 0, -1),
		},
	}
	for i := range items {
		items[i].Group = GroupFor(items[i].Timestamp, now)
	}
	return items
}
