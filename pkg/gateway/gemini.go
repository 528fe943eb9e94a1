package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"google.golang.org/genai"

	"tableflip.dev/alpha/pkg/guide"
)

const chatSystemInstruction = `You are 'AlphaBot', a highly intelligent AI parenting assistant for Indian single parents.

Your goal is to simplify the user's life by:
1. Drafting professional or personal notes.
2. Providing advice on domestic help management.
3. Suggesting local activities.
4. Answering general parenting questions with empathy and expertise.

Keep responses concise, professional, and actionable. Use common Indian cultural contexts where appropriate.`

const summarizeSystemInstruction = "You are an expert pediatric consultant who distills long medical/parenting articles into short, actionable summaries for busy parents."

// Gemini implements Gateway against the Gemini API.
type Gemini struct {
	client *genai.Client
	model  string
	log    *logrus.Logger
}

// NewGemini dials the API. The returned error is the only one this package
// ever exposes; after construction all failures become fallback values.
func NewGemini(ctx context.Context, apiKey, model string, log *logrus.Logger) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gateway: api key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("gateway: create client: %w", err)
	}
	if model == "" {
		model = "gemini-2.5-flash"
	}
	return &Gemini{client: client, model: model, log: log}, nil
}

func (g *Gemini) Chat(ctx context.Context, prompt string) ChatReply {
	resp, err := g.client.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)},
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(chatSystemInstruction, genai.RoleUser),
			Temperature:       genai.Ptr(float32(0.7)),
		})
	if err != nil {
		g.log.WithError(err).Warn("chat request failed")
		return ChatReply{Text: ChatFallback}
	}
	text := resp.Text()
	if text == "" {
		return ChatReply{Text: ChatFallback}
	}
	return ChatReply{Text: text}
}

func (g *Gemini) Summarize(ctx context.Context, title, content string) string {
	prompt := fmt.Sprintf(`Please summarize this parenting article titled %q.
Provide the following:
1. THE CORE MESSAGE (1 sentence)
2. KEY TAKEAWAYS (3 bullet points)
3. ALPHA ACTION (One immediate thing a busy parent should do today based on this)

Article Content: %s`, title, content)

	resp, err := g.client.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)},
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(summarizeSystemInstruction, genai.RoleUser),
			Temperature:       genai.Ptr(float32(0.5)),
		})
	if err != nil {
		g.log.WithError(err).Warn("summarize request failed")
		return SummarizeFallback
	}
	if text := resp.Text(); text != "" {
		return text
	}
	return SummarizeEmpty
}

func (g *Gemini) FindNearby(ctx context.Context, lat, lng float64, query string) *NearbyResult {
	prompt := fmt.Sprintf("Find 4 top-rated child-friendly activities or classes for %q near my location. Include name, type, and a short reason why it is great for busy single parents.", query)

	resp, err := g.client.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)},
		&genai.GenerateContentConfig{
			Tools: []*genai.Tool{{GoogleMaps: &genai.GoogleMaps{}}},
			ToolConfig: &genai.ToolConfig{
				RetrievalConfig: &genai.RetrievalConfig{
					LatLng: &genai.LatLng{Latitude: genai.Ptr(lat), Longitude: genai.Ptr(lng)},
				},
			},
		})
	if err != nil {
		g.log.WithError(err).Warn("nearby search failed")
		return nil
	}

	var links []string
	if len(resp.Candidates) > 0 && resp.Candidates[0].GroundingMetadata != nil {
		for _, chunk := range resp.Candidates[0].GroundingMetadata.GroundingChunks {
			if chunk.Maps != nil && chunk.Maps.URI != "" {
				links = append(links, chunk.Maps.URI)
			}
		}
	}
	return &NearbyResult{Text: resp.Text(), Links: links}
}

var guideSchema = &genai.Schema{
	Type: genai.TypeArray,
	Items: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"id":          {Type: genai.TypeString},
			"title":       {Type: genai.TypeString},
			"summary":     {Type: genai.TypeString},
			"category":    {Type: genai.TypeString},
			"source":      {Type: genai.TypeString},
			"sourceUrl":   {Type: genai.TypeString},
			"fullContent": {Type: genai.TypeString},
		},
		Required: []string{"id", "title", "summary", "category", "source", "fullContent"},
	},
}

func (g *Gemini) SearchGuide(ctx context.Context, query string) []guide.Article {
	prompt := fmt.Sprintf(`Find 5 high-quality, expert articles or advice summaries related to: %s.
Include medical guidelines (AAP, WHO), parenting tips, or activity ideas.`, query)

	resp, err := g.client.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)},
		&genai.GenerateContentConfig{
			Tools:            []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
			ResponseMIMEType: "application/json",
			ResponseSchema:   guideSchema,
		})
	if err != nil {
		g.log.WithError(err).Warn("guide search failed")
		return nil
	}
	articles, err := decodeArticles(resp.Text())
	if err != nil {
		g.log.WithError(err).Warn("guide search returned malformed payload")
		return nil
	}
	return articles
}

// decodeArticles parses and validates the model's JSON payload. Any missing
// required field fails the whole batch; partial results are worse than the
// local library.
func decodeArticles(payload string) ([]guide.Article, error) {
	var articles []guide.Article
	if err := json.Unmarshal([]byte(strings.TrimSpace(payload)), &articles); err != nil {
		return nil, fmt.Errorf("gateway: decode articles: %w", err)
	}
	for i, a := range articles {
		if a.ID == "" || a.Title == "" || a.Summary == "" ||
			a.Category == "" || a.Source == "" || a.FullContent == "" {
			return nil, fmt.Errorf("gateway: article %d missing required fields", i)
		}
	}
	return articles, nil
}
