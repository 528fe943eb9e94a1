package gateway

import (
	"context"
	"testing"
)

func TestStaticNeverFailsChat(t *testing.T) {
	var g Gateway = Static{}
	reply := g.Chat(context.Background(), "help")
	if reply.Text == "" {
		t.Fatalf("chat must always return text")
	}
}

func TestStaticSearchesReportFailure(t *testing.T) {
	var g Gateway = Static{}
	if got := g.FindNearby(context.Background(), 12.9, 77.5, "parks"); got != nil {
		t.Errorf("expected nil nearby result offline, got %+v", got)
	}
	if got := g.SearchGuide(context.Background(), "sleep"); got != nil {
		t.Errorf("expected nil guide results offline, got %v", got)
	}
}

func TestStaticLocator(t *testing.T) {
	lat, lng, err := StaticLocator{Lat: 12.9716, Lng: 77.5946}.Locate(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lat != 12.9716 || lng != 77.5946 {
		t.Errorf("unexpected coordinates %v %v", lat, lng)
	}
}

func TestDecodeArticles(t *testing.T) {
	good := `[{"id":"1","title":"T","summary":"S","category":"C","source":"AAP","fullContent":"F","sourceUrl":"https://aap.org"}]`
	articles, err := decodeArticles(good)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(articles) != 1 || articles[0].Title != "T" {
		t.Fatalf("unexpected decode %+v", articles)
	}

	bad := []string{
		`not json`,
		`{"id":"1"}`,
		`[{"id":"1","title":"T"}]`,
		`[{"title":"T","summary":"S","category":"C","source":"AAP","fullContent":"F"}]`,
	}
	for _, payload := range bad {
		if _, err := decodeArticles(payload); err == nil {
			t.Errorf("expected error for %q", payload)
		}
	}
}
