// Package handlers provides application-level entry points that wrap the
// domain services for the CLI.
package handlers

import (
	"context"

	"github.com/ersonp/dex-core/internal/domain/entities"
	"github.com/ersonp/dex-core/internal/domain/services"
)

// SearchHandler handles exact, prefix and random searches.
type SearchHandler struct {
	searchService *services.SearchService
}

// NewSearchHandler creates a new search handler.
func NewSearchHandler(searchService *services.SearchService) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
	}
}

// SearchResult contains the result of a search after the type filter.
type SearchResult struct {
	Query     string
	Creatures []entities.Creature
	// Unfiltered is the number of results before the type filter was applied.
	Unfiltered int
}

// Filtered reports whether the type filter hid some results.
func (r *SearchResult) Filtered() bool {
	return r.Unfiltered > len(r.Creatures)
}

func newSearchResult(query string, results []entities.Creature, tags entities.TagSet) *SearchResult {
	return &SearchResult{
		Query:      query,
		Creatures:  services.ApplyTypeFilter(results, tags),
		Unfiltered: len(results),
	}
}

// HandleExact looks up a creature by id or name.
func (h *SearchHandler) HandleExact(ctx context.Context, key string, tags entities.TagSet) *SearchResult {
	return newSearchResult(key, h.searchService.SearchByExactKey(ctx, key), tags)
}

// HandlePrefix resolves creatures whose name starts with prefix. The name
// index is loaded on first use.
func (h *SearchHandler) HandlePrefix(ctx context.Context, prefix string, limit int, tags entities.TagSet) (*SearchResult, error) {
	if err := h.EnsureIndex(ctx); err != nil {
		return nil, err
	}
	return newSearchResult(prefix, h.searchService.SearchByPrefix(ctx, prefix, limit), tags), nil
}

// HandleRandom resolves n random creatures.
func (h *SearchHandler) HandleRandom(ctx context.Context, n int, tags entities.TagSet) *SearchResult {
	return newSearchResult("", h.searchService.SampleRandom(ctx, n), tags)
}

// EnsureIndex loads the name index if it has not been loaded yet.
func (h *SearchHandler) EnsureIndex(ctx context.Context) error {
	if h.searchService.IndexSize() > 0 {
		return nil
	}
	_, err := h.searchService.LoadIndex(ctx)
	return err
}
