package handlers

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/dex-core/internal/domain/entities"
	"github.com/ersonp/dex-core/internal/domain/mocks"
)

func TestSearchHandler_HandleExact(t *testing.T) {
	handler := NewSearchHandler(newTestSearch(mocks.NewCreatureSource(pikachu), 0))

	result := handler.HandleExact(t.Context(), "25", nil)
	assert.Equal(t, "25", result.Query)
	assert.Equal(t, []string{"pikachu"}, names(result.Creatures))
	assert.Equal(t, 1, result.Unfiltered)
	assert.False(t, result.Filtered())
}

func TestSearchHandler_HandleExact_TypeFilter(t *testing.T) {
	handler := NewSearchHandler(newTestSearch(mocks.NewCreatureSource(pikachu), 0))

	result := handler.HandleExact(t.Context(), "pikachu", entities.NewTagSet(entities.TypeFire))
	assert.Empty(t, result.Creatures)
	assert.Equal(t, 1, result.Unfiltered)
	assert.True(t, result.Filtered())
}

func TestSearchHandler_HandlePrefix(t *testing.T) {
	source := mocks.NewCreatureSource(pikachu, bulbasaur, pidgey)
	handler := NewSearchHandler(newTestSearch(source, 0))

	result, err := handler.HandlePrefix(t.Context(), "pi", 0, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"pikachu", "pidgey"}, names(result.Creatures))

	result, err = handler.HandlePrefix(t.Context(), "pi", 0, entities.NewTagSet(entities.TypeFlying))
	require.NoError(t, err)
	assert.Equal(t, []string{"pidgey"}, names(result.Creatures))
	assert.Equal(t, 2, result.Unfiltered)
}

func TestSearchHandler_HandlePrefix_IndexFailure(t *testing.T) {
	source := mocks.NewCreatureSource(pikachu)
	source.NamesErr = errors.New("connection refused")
	handler := NewSearchHandler(newTestSearch(source, 0))

	_, err := handler.HandlePrefix(t.Context(), "pi", 0, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading name index")
}

func TestSearchHandler_EnsureIndex_LoadsOnce(t *testing.T) {
	source := mocks.NewCreatureSource(pikachu)
	handler := NewSearchHandler(newTestSearch(source, 0))

	require.NoError(t, handler.EnsureIndex(t.Context()))
	source.NamesErr = errors.New("should not be called again")
	require.NoError(t, handler.EnsureIndex(t.Context()))
}

func TestSearchHandler_HandleRandom(t *testing.T) {
	source := mocks.NewCreatureSource(bulbasaur, charmander)
	handler := NewSearchHandler(newTestSearch(source, 4))

	// Ids 2 and 3 are not served, so only the two known creatures come back.
	result := handler.HandleRandom(t.Context(), 4, nil)
	assert.ElementsMatch(t, []string{"bulbasaur", "charmander"}, names(result.Creatures))
	assert.Len(t, source.Fetched(), 4)
}
