package gateway

import (
	"context"

	"tableflip.dev/alpha/pkg/guide"
)

// Static is the offline gateway used when no API key is configured. Chat and
// summarize answer from canned text; the grounded searches report failure so
// callers fall back to local data.
type Static struct{}

func (Static) Chat(context.Context, string) ChatReply {
	return ChatReply{Text: "I'm running in offline mode. Add an API key to chat with AlphaBot."}
}

func (Static) Summarize(_ context.Context, _ string, content string) string {
	if content == "" {
		return SummarizeEmpty
	}
	return "Offline summary is unavailable. The full article is shown below."
}

func (Static) FindNearby(context.Context, float64, float64, string) *NearbyResult {
	return nil
}

func (Static) SearchGuide(context.Context, string) []guide.Article {
	return nil
}
