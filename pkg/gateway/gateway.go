// Package gateway is the boundary to the Gemini API. Nothing past this
// package ever sees a transport or model error: chat and summarize degrade to
// fixed fallback strings, nearby and guide searches degrade to nil.
package gateway

import (
	"context"

	"tableflip.dev/alpha/pkg/guide"
)

// Fallback strings returned when a request fails. Callers compare against
// these rather than handling errors.
const (
	ChatFallback      = "I encountered an error. Let's try again?"
	SummarizeEmpty    = "Could not summarize this article."
	SummarizeFallback = "Error generating AI summary."
)

// ChatReply is the assistant's answer to a chat prompt. Text is always
// non-empty; on failure it carries ChatFallback.
type ChatReply struct {
	Text string
}

// NearbyResult is the grounded answer to a location query.
type NearbyResult struct {
	Text  string
	Links []string
}

// Gateway answers AI requests. Implementations must not return errors;
// failures surface as the documented fallback values.
type Gateway interface {
	// Chat answers a freeform parenting prompt.
	Chat(ctx context.Context, prompt string) ChatReply
	// Summarize condenses an article into an actionable brief.
	Summarize(ctx context.Context, title, content string) string
	// FindNearby suggests child-friendly activities near a location. A nil
	// result means the search failed.
	FindNearby(ctx context.Context, lat, lng float64, query string) *NearbyResult
	// SearchGuide fetches expert articles for a topic. A nil slice means the
	// search failed.
	SearchGuide(ctx context.Context, query string) []guide.Article
}

// Locator supplies the coordinates FindNearby needs. An error means location
// is unavailable and the caller should block the search with a prompt to
// enable it.
type Locator interface {
	Locate(ctx context.Context) (lat, lng float64, err error)
}

// StaticLocator returns fixed coordinates from configuration.
type StaticLocator struct {
	Lat, Lng float64
}

func (s StaticLocator) Locate(context.Context) (float64, float64, error) {
	return s.Lat, s.Lng, nil
}
