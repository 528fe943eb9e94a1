package notify

import (
	"testing"
	"time"
)

func TestGroupFor(t *testing.T) {
	now := time.Date(2026, time.March, 3, 15, 0, 0, 0, time.Local)
	tests := []struct {
		ts   time.Time
		want string
	}{
		{now.Add(-10 * time.Minute), "Today"},
		{time.Date(2026, time.March, 3, 0, 0, 0, 0, time.Local), "Today"},
		{time.Date(2026, time.March, 2, 23, 59, 0, 0, time.Local), "Yesterday"},
		{time.Date(2026, time.March, 2, 0, 0, 0, 0, time.Local), "Yesterday"},
		{time.Date(2026, time.March, 1, 12, 0, 0, 0, time.Local), "Earlier"},
	}
	for _, tt := range tests {
		if got := GroupFor(tt.ts, now); got != tt.want {
			t.Errorf("GroupFor(%v) = %q, want %q", tt.ts, got, tt.want)
		}
	}
}

func TestFeedGrouping(t *testing.T) {
	now := time.Date(2026, time.March, 3, 15, 0, 0, 0, time.Local)
	feed := Feed(now)
	if len(feed) != 3 {
		t.Fatalf("expected 3 notifications, got %d", len(feed))
	}
	if feed[0].Group != "Today" || feed[1].Group != "Today" {
		t.Errorf("expected first two in Today, got %q %q", feed[0].Group, feed[1].Group)
	}
	if feed[2].Group != "Yesterday" {
		t.Errorf("expected community entry in Yesterday, got %q", feed[2].Group)
	}
}
