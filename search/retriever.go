package search

import (
	"context"
	"log"
	"sort"
	"strings"

	"medassist/config"
	"medassist/types"
)

// Retrieval carries the outcome of one snippet search. A backend failure
// leaves Snippets empty and records the cause in Err; nil Err with empty
// Snippets means the query legitimately matched nothing. Callers render
// both the same way today ("no sources") but can tell them apart.
type Retrieval struct {
	Snippets []types.SourceSnippet
	Err      error
}

// RetrieverConfig holds the retrieval policy knobs.
type RetrieverConfig struct {
	// TrustedSites are the domain restriction terms ORed into the expression
	TrustedSites []string
	// PreferredMarker promotes results whose link contains it
	PreferredMarker string
	// MaxResults bounds the snippet list regardless of backend behaviour
	MaxResults int
}

// DefaultRetrieverConfig returns the built-in trusted-domain policy.
func DefaultRetrieverConfig() RetrieverConfig {
	return RetrieverConfig{
		TrustedSites:    config.TrustedSites,
		PreferredMarker: config.PreferredSourceMarker,
		MaxResults:      config.MaxSnippets,
	}
}

// Retriever turns an augmented query into a bounded, trust-ordered snippet
// list. External failures degrade to an empty list; the answer pipeline
// treats "no sources" as a first-class state rather than an error.
type Retriever struct {
	backend Backend
	cache   *SnippetCache
	config  RetrieverConfig
}

// NewRetriever creates a Retriever. cache may be nil to disable caching.
func NewRetriever(backend Backend, cache *SnippetCache, cfg RetrieverConfig) *Retriever {
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = config.MaxSnippets
	}
	return &Retriever{backend: backend, cache: cache, config: cfg}
}

// Retrieve runs one domain-restricted search for the query. The backend is
// called exactly once; there is no retry.
func (r *Retriever) Retrieve(ctx context.Context, query string) Retrieval {
	if r.cache != nil {
		if snippets, ok := r.cache.Get(ctx, query); ok {
			return Retrieval{Snippets: snippets}
		}
	}

	items, err := r.backend.Search(ctx, r.buildExpression(query), int64(r.config.MaxResults))
	if err != nil {
		log.Printf("snippet search failed, returning empty results: %v", err)
		return Retrieval{Snippets: []types.SourceSnippet{}, Err: err}
	}

	snippets := r.order(items)

	if r.cache != nil && len(snippets) > 0 {
		r.cache.Put(ctx, query, snippets)
	}

	return Retrieval{Snippets: snippets}
}

// buildExpression ANDs the query with the ORed trusted-domain restrictions.
func (r *Retriever) buildExpression(query string) string {
	if len(r.config.TrustedSites) == 0 {
		return query
	}
	return query + " (" + strings.Join(r.config.TrustedSites, " OR ") + ")"
}

// order applies the trust policy: results whose link contains the preferred
// marker come first, relative order preserved within each partition, then
// the list is truncated to the configured cap. The backend is asked to cap
// results too, but is not trusted to honor it.
func (r *Retriever) order(items []Item) []types.SourceSnippet {
	snippets := make([]types.SourceSnippet, 0, len(items))
	for _, it := range items {
		snippets = append(snippets, types.SourceSnippet{
			Title:   it.Title,
			URL:     it.Link,
			Excerpt: it.Snippet,
		})
	}

	if r.config.PreferredMarker != "" {
		sort.SliceStable(snippets, func(i, j int) bool {
			return strings.Contains(snippets[i].URL, r.config.PreferredMarker) &&
				!strings.Contains(snippets[j].URL, r.config.PreferredMarker)
		})
	}

	if len(snippets) > r.config.MaxResults {
		snippets = snippets[:r.config.MaxResults]
	}
	return snippets
}
