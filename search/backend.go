package search

import (
	"context"
	"fmt"
	"os"

	"google.golang.org/api/customsearch/v1"
	"google.golang.org/api/option"
)

// Item is a raw search result before trust ordering is applied. Fields the
// backend omits stay empty.
type Item struct {
	Title   string
	Link    string
	Snippet string
}

// Backend abstracts a web search provider returning result items for a
// query expression.
type Backend interface {
	Search(ctx context.Context, expression string, num int64) ([]Item, error)
}

// GoogleCSE implements Backend on top of the Google Programmable Search
// Engine (Custom Search JSON API).
type GoogleCSE struct {
	service  *customsearch.Service
	engineID string
}

// NewGoogleCSE creates a search backend for the given API key and search
// engine ID.
func NewGoogleCSE(ctx context.Context, apiKey, engineID string) (*GoogleCSE, error) {
	if apiKey == "" || engineID == "" {
		return nil, fmt.Errorf("google search requires an API key and engine ID")
	}

	service, err := customsearch.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("unable to create customsearch service: %w", err)
	}

	return &GoogleCSE{service: service, engineID: engineID}, nil
}

// NewGoogleCSEFromEnv creates a backend from GOOGLE_API_KEY and
// GOOGLE_SEARCH_ENGINE_ID.
func NewGoogleCSEFromEnv(ctx context.Context) (*GoogleCSE, error) {
	return NewGoogleCSE(ctx, os.Getenv("GOOGLE_API_KEY"), os.Getenv("GOOGLE_SEARCH_ENGINE_ID"))
}

// Search runs one query against the Custom Search API.
func (g *GoogleCSE) Search(ctx context.Context, expression string, num int64) ([]Item, error) {
	resp, err := g.service.Cse.List().
		Cx(g.engineID).
		Q(expression).
		Num(num).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("custom search call failed: %w", err)
	}

	items := make([]Item, 0, len(resp.Items))
	for _, it := range resp.Items {
		if it == nil {
			continue
		}
		items = append(items, Item{
			Title:   it.Title,
			Link:    it.Link,
			Snippet: it.Snippet,
		})
	}
	return items, nil
}
