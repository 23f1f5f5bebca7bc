package services

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/ersonp/dex-core/internal/domain/entities"
	"github.com/ersonp/dex-core/internal/domain/mocks"
)

func newTestSearch(source *mocks.CreatureSource, opts SearchOptions) *SearchService {
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(1, 2))
	}
	return NewSearchService(source, opts, zap.NewNop())
}

func TestSearchService_SearchByExactKey(t *testing.T) {
	pikachu := entities.Creature{
		ID:    25,
		Name:  "pikachu",
		Types: []entities.TypeTag{entities.TypeElectric},
		Stats: entities.Stats{entities.StatHP: 35, entities.StatSpeed: 90},
	}
	source := mocks.NewCreatureSource(pikachu)
	source.FetchErrs["missingno"] = errors.New("connection reset")
	svc := newTestSearch(source, SearchOptions{})

	tests := []struct {
		name      string
		key       string
		wantNames []string
	}{
		{name: "numeric id", key: "25", wantNames: []string{"pikachu"}},
		{name: "name slug", key: "pikachu", wantNames: []string{"pikachu"}},
		{name: "mixed case and spaces", key: "  PiKachu ", wantNames: []string{"pikachu"}},
		{name: "not found is empty", key: "agumon", wantNames: []string{}},
		{name: "transport failure is empty", key: "missingno", wantNames: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := svc.SearchByExactKey(context.Background(), tt.key)
			assert.Equal(t, tt.wantNames, names(result))
		})
	}
}

func TestSearchService_SearchByExactKey_EmptyQueryDispatchesNothing(t *testing.T) {
	source := mocks.NewCreatureSource(creature(25, "pikachu"))
	svc := newTestSearch(source, SearchOptions{})

	for _, q := range []string{"", "   ", "\t\n"} {
		assert.Empty(t, svc.SearchByExactKey(context.Background(), q))
	}
	assert.Empty(t, source.Fetched())
}

func TestSearchService_SearchByExactKey_Varieties(t *testing.T) {
	venusaur := creature(3, "venusaur", entities.TypeGrass, entities.TypePoison)
	mega := creature(10033, "venusaur-mega", entities.TypeGrass, entities.TypePoison)
	gmax := creature(10195, "venusaur-gmax", entities.TypeGrass, entities.TypePoison)
	mega.SpeciesURL = venusaur.SpeciesURL
	gmax.SpeciesURL = venusaur.SpeciesURL

	newSource := func() *mocks.CreatureSource {
		source := mocks.NewCreatureSource(venusaur, mega, gmax)
		source.Species[venusaur.SpeciesURL] = entities.Species{
			Name: "venusaur",
			Varieties: []entities.Variety{
				{Name: "venusaur", IsDefault: true},
				{Name: "venusaur-mega"},
				{Name: "venusaur-gmax"},
			},
		}
		return source
	}

	t.Run("none policy returns only the match", func(t *testing.T) {
		source := newSource()
		svc := newTestSearch(source, SearchOptions{VariantPolicy: VariantsNone})

		result := svc.SearchByExactKey(context.Background(), "venusaur")
		assert.Equal(t, []string{"venusaur"}, names(result))
		assert.Zero(t, source.SpeciesFetches)
	})

	t.Run("all policy resolves every variety in species order", func(t *testing.T) {
		source := newSource()
		svc := newTestSearch(source, SearchOptions{VariantPolicy: VariantsAll})

		result := svc.SearchByExactKey(context.Background(), "venusaur-gmax")
		assert.Equal(t, []string{"venusaur", "venusaur-mega", "venusaur-gmax"}, names(result))
		assert.Len(t, source.Fetched(), 3, "the queried variety is not fetched twice")
	})

	t.Run("species failure degrades to the match", func(t *testing.T) {
		source := newSource()
		source.SpeciesErr = errors.New("timeout")
		svc := newTestSearch(source, SearchOptions{VariantPolicy: VariantsAll})

		result := svc.SearchByExactKey(context.Background(), "venusaur")
		assert.Equal(t, []string{"venusaur"}, names(result))
	})

	t.Run("failed variety is dropped", func(t *testing.T) {
		source := newSource()
		source.FetchErrs["venusaur-mega"] = errors.New("502 bad gateway")
		svc := newTestSearch(source, SearchOptions{VariantPolicy: VariantsAll})

		result := svc.SearchByExactKey(context.Background(), "venusaur")
		assert.Equal(t, []string{"venusaur", "venusaur-gmax"}, names(result))
	})
}

func TestSearchService_SearchByPrefix_KeepsDispatchOrder(t *testing.T) {
	defer goleak.VerifyNone(t)

	source := mocks.NewCreatureSource(
		creature(25, "pikachu", entities.TypeElectric),
		creature(16, "pidgey", entities.TypeNormal, entities.TypeFlying),
		creature(221, "piloswine", entities.TypeIce, entities.TypeGround),
		creature(1, "bulbasaur", entities.TypeGrass),
	)
	// pikachu resolves last over the "network".
	source.Delays["pikachu"] = 30 * time.Millisecond
	source.Delays["pidgey"] = time.Millisecond
	svc := newTestSearch(source, SearchOptions{})
	svc.SetIndex([]string{"pikachu", "pidgey", "bulbasaur", "piloswine"})

	result := svc.SearchByPrefix(context.Background(), "pi", 12)

	if diff := cmp.Diff([]string{"pikachu", "pidgey", "piloswine"}, names(result)); diff != "" {
		t.Errorf("SearchByPrefix() mismatch (-want +got):\n%s", diff)
	}
}

func TestSearchService_SearchByPrefix(t *testing.T) {
	source := mocks.NewCreatureSource(
		creature(25, "pikachu"),
		creature(16, "pidgey"),
		creature(221, "piloswine"),
		creature(1, "bulbasaur"),
	)
	source.FetchErrs["pidgey"] = errors.New("connection refused")
	svc := newTestSearch(source, SearchOptions{})
	svc.SetIndex([]string{"Pikachu", "pidgey", "bulbasaur", "piloswine", ""})

	tests := []struct {
		name      string
		prefix    string
		limit     int
		wantNames []string
	}{
		{name: "partial failure keeps the rest", prefix: "pi", limit: 12, wantNames: []string{"pikachu", "piloswine"}},
		{name: "case insensitive", prefix: "PI", limit: 12, wantNames: []string{"pikachu", "piloswine"}},
		{name: "limit bounds candidates", prefix: "pi", limit: 1, wantNames: []string{"pikachu"}},
		{name: "zero matches is empty", prefix: "zz", limit: 12, wantNames: []string{}},
		{name: "whitespace query is empty", prefix: "  ", limit: 12, wantNames: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := svc.SearchByPrefix(context.Background(), tt.prefix, tt.limit)
			assert.Equal(t, tt.wantNames, names(result))
		})
	}
}

func TestSearchService_MatchPrefix_DefaultLimit(t *testing.T) {
	svc := newTestSearch(mocks.NewCreatureSource(), SearchOptions{})
	index := make([]string, 20)
	for i := range index {
		index[i] = "pi" + string(rune('a'+i))
	}
	svc.SetIndex(index)

	assert.Len(t, svc.MatchPrefix("pi", 0), DefaultPrefixLimit)
}

func TestSearchService_LoadIndex(t *testing.T) {
	source := mocks.NewCreatureSource(creature(25, "pikachu"), creature(26, "raichu"))
	svc := newTestSearch(source, SearchOptions{})

	n, err := svc.LoadIndex(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 2, svc.IndexSize())

	source.NamesErr = errors.New("offline")
	_, err = svc.LoadIndex(context.Background())
	require.Error(t, err)
	assert.Equal(t, 2, svc.IndexSize(), "failed reload keeps the old index")
}

func TestSearchService_SampleRandom(t *testing.T) {
	defer goleak.VerifyNone(t)

	source := mocks.NewCreatureSource()
	for id := 1; id <= 20; id++ {
		source.Add(creature(id, "mon-"+string(rune('a'+id-1))))
	}
	svc := newTestSearch(source, SearchOptions{MaxID: 20})

	t.Run("one failure of twelve returns eleven", func(t *testing.T) {
		ids := newTestSearch(source, SearchOptions{MaxID: 20}).drawIDs(12)
		source.FetchErrs[itoa(ids[3])] = errors.New("500 internal server error")
		defer delete(source.FetchErrs, itoa(ids[3]))

		result := svc.SampleRandom(context.Background(), 12)
		assert.Len(t, result, 11)
		for i, c := range result {
			assert.NotZero(t, c.ID, "result %d should be a real creature", i)
		}
	})

	t.Run("ids are distinct", func(t *testing.T) {
		result := svc.SampleRandom(context.Background(), 20)
		seen := make(map[int]bool)
		for _, c := range result {
			assert.False(t, seen[c.ID], "duplicate id %d", c.ID)
			seen[c.ID] = true
		}
		assert.Len(t, seen, 20)
	})

	t.Run("count clamped to id space", func(t *testing.T) {
		assert.Len(t, svc.drawIDs(50), 20)
	})

	t.Run("non-positive count is empty", func(t *testing.T) {
		assert.Empty(t, svc.SampleRandom(context.Background(), 0))
	})
}

func TestSearchService_SampleRandom_KeepsDispatchOrder(t *testing.T) {
	source := mocks.NewCreatureSource()
	for id := 1; id <= 10; id++ {
		source.Add(creature(id, "mon-"+itoa(id)))
	}
	svc := newTestSearch(source, SearchOptions{MaxID: 10})
	// Same seed, same draw.
	ids := newTestSearch(source, SearchOptions{MaxID: 10}).drawIDs(5)
	source.Delays[itoa(ids[0])] = 20 * time.Millisecond

	result := svc.SampleRandom(context.Background(), 5)

	got := make([]int, len(result))
	for i, c := range result {
		got[i] = c.ID
	}
	assert.Equal(t, ids, got)
}

func TestDrawIDs_Range(t *testing.T) {
	svc := newTestSearch(mocks.NewCreatureSource(), SearchOptions{MaxID: 1010})
	for range 50 {
		for _, id := range svc.drawIDs(12) {
			assert.GreaterOrEqual(t, id, 1)
			assert.LessOrEqual(t, id, 1010)
		}
	}
}

func TestApplyTypeFilter(t *testing.T) {
	results := []entities.Creature{
		creature(6, "charizard", entities.TypeFire, entities.TypeFlying),
		creature(7, "squirtle", entities.TypeWater),
		creature(16, "pidgey", entities.TypeNormal, entities.TypeFlying),
	}

	tests := []struct {
		name      string
		tags      entities.TagSet
		wantNames []string
	}{
		{name: "empty set is identity", tags: entities.NewTagSet(), wantNames: []string{"charizard", "squirtle", "pidgey"}},
		{name: "nil set is identity", tags: nil, wantNames: []string{"charizard", "squirtle", "pidgey"}},
		{name: "single tag", tags: entities.NewTagSet(entities.TypeFlying), wantNames: []string{"charizard", "pidgey"}},
		{name: "union of tags", tags: entities.NewTagSet(entities.TypeWater, entities.TypeFire), wantNames: []string{"charizard", "squirtle"}},
		{name: "no match", tags: entities.NewTagSet(entities.TypeDragon), wantNames: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantNames, names(ApplyTypeFilter(results, tt.tags)))
		})
	}
}

func TestParseVariantPolicy(t *testing.T) {
	p, err := ParseVariantPolicy("")
	require.NoError(t, err)
	assert.Equal(t, VariantsNone, p)

	p, err = ParseVariantPolicy("ALL")
	require.NoError(t, err)
	assert.Equal(t, VariantsAll, p)

	_, err = ParseVariantPolicy("some")
	require.Error(t, err)
}
