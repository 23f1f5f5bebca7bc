package handlers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ersonp/dex-core/internal/domain/mocks"
	"github.com/ersonp/dex-core/internal/domain/services"
)

func newTestFavorites(t *testing.T) (*FavoritesHandler, *mocks.CreatureSource, *mocks.KeyValueStore) {
	t.Helper()
	source := mocks.NewCreatureSource(bulbasaur, charmander, pikachu)
	kv := mocks.NewKeyValueStore()
	store := services.NewFavoritesStore(kv, "", zap.NewNop())
	store.Initialize(t.Context())
	return NewFavoritesHandler(store, newTestSearch(source, 0)), source, kv
}

func TestFavoritesHandler_Add(t *testing.T) {
	handler, _, kv := newTestFavorites(t)

	result := handler.Add(t.Context(), " Pikachu ")
	require.NotNil(t, result.Creature)
	assert.Equal(t, "pikachu", result.Key)
	assert.True(t, result.Changed)
	assert.True(t, result.Favorite)
	assert.Equal(t, 1, kv.SetCallCount)

	result = handler.Add(t.Context(), "25")
	assert.False(t, result.Changed)
	assert.True(t, result.Favorite)
	assert.Equal(t, 1, kv.SetCallCount)
	assert.Equal(t, []string{"pikachu"}, names(handler.List()))
}

func TestFavoritesHandler_Add_Unresolved(t *testing.T) {
	handler, _, kv := newTestFavorites(t)

	result := handler.Add(t.Context(), "agumon")
	assert.Nil(t, result.Creature)
	assert.False(t, result.Changed)
	assert.Empty(t, handler.List())
	assert.Zero(t, kv.SetCallCount)
}

func TestFavoritesHandler_Remove_MatchesSavedWithoutFetch(t *testing.T) {
	handler, source, _ := newTestFavorites(t)
	handler.Add(t.Context(), "pikachu")
	fetched := len(source.Fetched())

	result := handler.Remove(t.Context(), "25")
	assert.True(t, result.Changed)
	assert.False(t, result.Favorite)
	assert.Empty(t, handler.List())
	assert.Len(t, source.Fetched(), fetched)
}

func TestFavoritesHandler_Remove_ReportsRemovedState(t *testing.T) {
	handler, _, _ := newTestFavorites(t)
	handler.Add(t.Context(), "pikachu")
	handler.Add(t.Context(), "bulbasaur")

	result := handler.Remove(t.Context(), "Pikachu")
	require.NotNil(t, result.Creature)
	assert.True(t, result.Changed)
	assert.False(t, result.Favorite)
	assert.False(t, handler.IsFavorite(result.Creature.ID))
	assert.Len(t, handler.List(), 1)
}

func TestFavoritesHandler_Remove_NotSaved(t *testing.T) {
	handler, _, kv := newTestFavorites(t)

	result := handler.Remove(t.Context(), "bulbasaur")
	require.NotNil(t, result.Creature)
	assert.False(t, result.Changed)
	assert.Zero(t, kv.SetCallCount)
}

func TestFavoritesHandler_Toggle(t *testing.T) {
	handler, _, _ := newTestFavorites(t)

	result := handler.Toggle(t.Context(), "charmander")
	assert.True(t, result.Favorite)
	assert.Equal(t, []string{"charmander"}, names(handler.List()))

	result = handler.Toggle(t.Context(), "charmander")
	assert.False(t, result.Favorite)
	assert.Empty(t, handler.List())
}

func TestFavoritesHandler_Import(t *testing.T) {
	handler, _, kv := newTestFavorites(t)
	handler.Add(t.Context(), "bulbasaur")

	tmpDir := t.TempDir()
	jsonFile := filepath.Join(tmpDir, "favorites.json")
	content := `["pikachu", 4, {"id": 25}, "bulbasaur", "agumon", {}]`
	require.NoError(t, os.WriteFile(jsonFile, []byte(content), 0644))

	result, err := handler.Import(t.Context(), jsonFile, ImportOptions{})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Imported)
	// {"id": 25} duplicates pikachu; bulbasaur is already saved.
	assert.Equal(t, 2, result.Skipped)
	require.Len(t, result.Errors, 2)
	assert.Equal(t, 6, result.Errors[0].LineNum)
	assert.Equal(t, "agumon", result.Errors[1].Key)
	assert.Equal(t, []string{"bulbasaur", "pikachu", "charmander"}, names(handler.List()))
	assert.Equal(t, 3, kv.SetCallCount)
}

func TestFavoritesHandler_Import_DryRun(t *testing.T) {
	handler, _, kv := newTestFavorites(t)

	tmpDir := t.TempDir()
	csvFile := filepath.Join(tmpDir, "favorites.csv")
	require.NoError(t, os.WriteFile(csvFile, []byte("name\npikachu\ncharmander\n"), 0644))

	result, err := handler.Import(t.Context(), csvFile, ImportOptions{DryRun: true})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Imported)
	assert.Empty(t, handler.List())
	assert.Zero(t, kv.SetCallCount)
}

func TestFavoritesHandler_Import_Errors(t *testing.T) {
	handler, _, _ := newTestFavorites(t)
	tmpDir := t.TempDir()

	_, err := handler.Import(t.Context(), filepath.Join(tmpDir, "favorites.txt"), ImportOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")

	_, err = handler.Import(t.Context(), filepath.Join(tmpDir, "missing.json"), ImportOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening file")

	bad := filepath.Join(tmpDir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("not json"), 0644))
	_, err = handler.Import(t.Context(), bad, ImportOptions{Format: "json"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing file")
}
