// Package events defines the typed messages components exchange through the
// Bubble Tea update loop.
package events

import (
	"time"

	"tableflip.dev/alpha/pkg/gateway"
	"tableflip.dev/alpha/pkg/guide"
	"tableflip.dev/alpha/pkg/mission"
)

// DaySelectedMsg reports a date chosen in the strip or month grid.
type DaySelectedMsg struct {
	Date time.Time
}

// MissionAddedMsg reports a successful add from the overlay form.
type MissionAddedMsg struct {
	Mission mission.Mission
}

// ChildAddedMsg reports a new child profile from the overlay form.
type ChildAddedMsg struct {
	ID string
}

// CloseOverlayMsg dismisses the active overlay without a result.
type CloseOverlayMsg struct{}

// ChatReplyMsg carries the gateway's answer back to the chat pane.
type ChatReplyMsg struct {
	Reply gateway.ChatReply
}

// SummaryMsg carries an article summary back to the guide pane.
type SummaryMsg struct {
	ArticleID string
	Text      string
}

// GuideResultsMsg carries guide search results. Articles is never nil; a
// failed remote search already fell back to the local library.
type GuideResultsMsg struct {
	Query    string
	Articles []guide.Article
}

// NearbyMsg carries a grounded activity search result. A nil Result with an
// empty Err means the search failed; Err set means location was unavailable.
type NearbyMsg struct {
	Result *gateway.NearbyResult
	Err    string
}

// StoreChangedMsg signals that the schedule store mutated outside the TUI.
type StoreChangedMsg struct{}
