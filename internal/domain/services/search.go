package services

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/ersonp/dex-core/internal/domain/entities"
	"github.com/ersonp/dex-core/internal/domain/ports"
)

// Defaults for search operations.
const (
	DefaultPrefixLimit    = 12
	DefaultRandomCount    = 12
	DefaultMaxID          = 1010
	DefaultMaxConcurrency = 8
)

// VariantPolicy controls whether an exact-key search also resolves the other
// varieties of the matched species.
type VariantPolicy string

// Variant policies.
const (
	VariantsNone VariantPolicy = "none"
	VariantsAll  VariantPolicy = "all"
)

// ParseVariantPolicy validates a policy name. Empty means none.
func ParseVariantPolicy(s string) (VariantPolicy, error) {
	switch p := VariantPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case "", VariantsNone:
		return VariantsNone, nil
	case VariantsAll:
		return p, nil
	default:
		return "", fmt.Errorf("unknown variant policy %q (valid: none, all)", s)
	}
}

// SearchOptions configures a SearchService.
type SearchOptions struct {
	VariantPolicy  VariantPolicy
	MaxConcurrency int
	MaxID          int
	// Rand is the random source for sampling. Nil uses a randomly seeded one.
	Rand *rand.Rand
}

// SearchService resolves queries against the creature source.
type SearchService struct {
	resolver
	opts SearchOptions

	mu    sync.Mutex
	index []string
	rng   *rand.Rand
}

// NewSearchService creates a new search service.
func NewSearchService(source ports.CreatureSource, opts SearchOptions, logger *zap.Logger) *SearchService {
	if opts.MaxConcurrency <= 0 {
		opts.MaxConcurrency = DefaultMaxConcurrency
	}
	if opts.MaxID <= 0 {
		opts.MaxID = DefaultMaxID
	}
	if opts.VariantPolicy == "" {
		opts.VariantPolicy = VariantsNone
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return &SearchService{
		resolver: resolver{
			source:         source,
			maxConcurrency: opts.MaxConcurrency,
			logger:         logger,
		},
		opts: opts,
		rng:  rng,
	}
}

// SearchByExactKey looks up a creature by numeric id or name slug.
// Not-found and transport failures both yield an empty result.
func (s *SearchService) SearchByExactKey(ctx context.Context, key string) []entities.Creature {
	key = entities.NormalizeKey(key)
	if key == "" {
		return []entities.Creature{}
	}

	c, ok := s.resolveOne(ctx, key)
	if !ok {
		return []entities.Creature{}
	}

	if s.opts.VariantPolicy != VariantsAll || c.SpeciesURL == "" {
		return []entities.Creature{*c}
	}
	return s.resolveVarieties(ctx, *c)
}

// resolveVarieties expands a creature into every variety of its species, in
// species order. The already-fetched creature is reused rather than fetched again.
func (s *SearchService) resolveVarieties(ctx context.Context, c entities.Creature) []entities.Creature {
	species, err := s.source.FetchSpecies(ctx, c.SpeciesURL)
	if err != nil {
		s.logger.Warn("fetching species for varieties", zap.String("creature", c.Name), zap.Error(err))
		return []entities.Creature{c}
	}
	if len(species.Varieties) <= 1 {
		return []entities.Creature{c}
	}

	var others []string
	for _, v := range species.Varieties {
		if v.Name != c.Name {
			others = append(others, v.Name)
		}
	}
	fetched := s.resolveAll(ctx, "varieties", others)
	byName := make(map[string]entities.Creature, len(fetched)+1)
	byName[c.Name] = c
	for _, f := range fetched {
		byName[f.Name] = f
	}

	out := make([]entities.Creature, 0, len(byName))
	seen := make(map[string]bool, len(byName))
	for _, v := range species.Varieties {
		if f, ok := byName[v.Name]; ok && !seen[v.Name] {
			seen[v.Name] = true
			out = append(out, f)
		}
	}
	if !seen[c.Name] {
		out = append([]entities.Creature{c}, out...)
	}
	return out
}

// LoadIndex fetches the full name index from the source, replacing any
// previously loaded index. On failure the current index is kept.
func (s *SearchService) LoadIndex(ctx context.Context) (int, error) {
	names, err := s.source.ListNames(ctx)
	if err != nil {
		return 0, fmt.Errorf("loading name index: %w", err)
	}
	s.SetIndex(names)
	return len(names), nil
}

// SetIndex installs a pre-loaded name index.
func (s *SearchService) SetIndex(names []string) {
	index := make([]string, 0, len(names))
	for _, n := range names {
		if n = entities.NormalizeKey(n); n != "" {
			index = append(index, n)
		}
	}

	s.mu.Lock()
	s.index = index
	s.mu.Unlock()
}

// IndexSize returns the number of names in the loaded index.
func (s *SearchService) IndexSize() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.index)
}

// MatchPrefix returns up to limit index names starting with prefix, in index order.
func (s *SearchService) MatchPrefix(prefix string, limit int) []string {
	prefix = entities.NormalizeKey(prefix)
	if prefix == "" {
		return nil
	}
	if limit <= 0 {
		limit = DefaultPrefixLimit
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var matches []string
	for _, name := range s.index {
		if strings.HasPrefix(name, prefix) {
			matches = append(matches, name)
			if len(matches) == limit {
				break
			}
		}
	}
	return matches
}

// SearchByPrefix resolves up to limit creatures whose name starts with prefix.
// Results keep index order regardless of which fetch completes first, and
// failed fetches are dropped rather than failing the whole search.
func (s *SearchService) SearchByPrefix(ctx context.Context, prefix string, limit int) []entities.Creature {
	return s.resolveAll(ctx, "prefix", s.MatchPrefix(prefix, limit))
}

// Resolve fetches the given keys concurrently, dropping the ones that fail.
// Results keep the order of keys.
func (s *SearchService) Resolve(ctx context.Context, keys []string) []entities.Creature {
	normalized := make([]string, 0, len(keys))
	for _, k := range keys {
		if k = entities.NormalizeKey(k); k != "" {
			normalized = append(normalized, k)
		}
	}
	return s.resolveAll(ctx, "resolve", normalized)
}

// SampleRandom resolves n distinct creatures drawn uniformly from the id space.
func (s *SearchService) SampleRandom(ctx context.Context, n int) []entities.Creature {
	ids := s.drawIDs(n)
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = strconv.Itoa(id)
	}
	return s.resolveAll(ctx, "random", keys)
}

// drawIDs returns n distinct ids in [1, MaxID] using a sparse partial
// Fisher-Yates shuffle.
func (s *SearchService) drawIDs(n int) []int {
	space := s.opts.MaxID
	if n > space {
		n = space
	}
	if n <= 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	swapped := make(map[int]int, n)
	at := func(i int) int {
		if v, ok := swapped[i]; ok {
			return v
		}
		return i
	}

	ids := make([]int, n)
	for i := 0; i < n; i++ {
		j := i + s.rng.IntN(space-i)
		vi, vj := at(i), at(j)
		swapped[i], swapped[j] = vj, vi
		ids[i] = vj + 1
	}
	return ids
}

// ApplyTypeFilter returns the results whose types intersect tags.
// An empty tag set returns results unchanged.
func ApplyTypeFilter(results []entities.Creature, tags entities.TagSet) []entities.Creature {
	if tags.IsEmpty() {
		return results
	}
	filtered := make([]entities.Creature, 0, len(results))
	for _, c := range results {
		if c.HasAnyType(tags) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}
