package handlers

import (
	"context"

	"github.com/ersonp/dex-core/internal/domain/entities"
	"github.com/ersonp/dex-core/internal/domain/services"
)

// CompareHandler resolves two creatures and compares them.
type CompareHandler struct {
	searchService *services.SearchService
}

// NewCompareHandler creates a new compare handler.
func NewCompareHandler(searchService *services.SearchService) *CompareHandler {
	return &CompareHandler{
		searchService: searchService,
	}
}

// CompareResult contains a comparison, or the keys that could not be resolved.
// Comparison is nil unless both sides resolved.
type CompareResult struct {
	Comparison *entities.Comparison
	Missing    []string
}

// Handle resolves both keys concurrently and compares the creatures.
func (h *CompareHandler) Handle(ctx context.Context, keyA, keyB string) *CompareResult {
	keyA, keyB = entities.NormalizeKey(keyA), entities.NormalizeKey(keyB)
	resolved := h.searchService.Resolve(ctx, []string{keyA, keyB})

	a, okA := find(resolved, keyA)
	b, okB := find(resolved, keyB)

	result := &CompareResult{}
	if !okA {
		result.Missing = append(result.Missing, keyA)
	}
	if !okB {
		result.Missing = append(result.Missing, keyB)
	}
	if okA && okB {
		cmp := services.Compare(a, b)
		result.Comparison = &cmp
	}
	return result
}

// HandleRandom compares two distinct random creatures. If fewer than two
// resolve, Comparison is nil.
func (h *CompareHandler) HandleRandom(ctx context.Context) *CompareResult {
	drawn := h.searchService.SampleRandom(ctx, 2)
	if len(drawn) < 2 {
		return &CompareResult{Missing: []string{"random"}}
	}
	cmp := services.Compare(drawn[0], drawn[1])
	return &CompareResult{Comparison: &cmp}
}

func find(creatures []entities.Creature, key string) (entities.Creature, bool) {
	for _, c := range creatures {
		if c.MatchesKey(key) {
			return c, true
		}
	}
	return entities.Creature{}, false
}
