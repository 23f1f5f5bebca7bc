package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/ersonp/dex-core/internal/domain/entities"
	"github.com/ersonp/dex-core/internal/domain/services"
	"github.com/ersonp/dex-core/internal/infrastructure/parsers"
)

// FavoritesHandler handles favorites mutations addressed by id or name.
type FavoritesHandler struct {
	store         *services.FavoritesStore
	searchService *services.SearchService
}

// NewFavoritesHandler creates a new favorites handler.
func NewFavoritesHandler(store *services.FavoritesStore, searchService *services.SearchService) *FavoritesHandler {
	return &FavoritesHandler{
		store:         store,
		searchService: searchService,
	}
}

// FavoriteResult describes the effect of a single mutation.
// Creature is nil when the key could not be resolved.
type FavoriteResult struct {
	Key      string
	Creature *entities.Creature
	Changed  bool
	Favorite bool
}

// List returns the saved favorites in insertion order.
func (h *FavoritesHandler) List() []entities.Creature {
	return h.store.List()
}

// IsFavorite reports whether a creature with the id is saved.
func (h *FavoritesHandler) IsFavorite(id int) bool {
	return h.store.IsFavorite(id)
}

// Add saves the creature named by key.
func (h *FavoritesHandler) Add(ctx context.Context, key string) *FavoriteResult {
	result, c := h.lookup(ctx, key)
	if c == nil {
		return result
	}
	result.Changed = h.store.Add(ctx, *c)
	result.Favorite = true
	return result
}

// Remove drops the creature named by key. Saved favorites are matched
// locally before the source is consulted.
func (h *FavoritesHandler) Remove(ctx context.Context, key string) *FavoriteResult {
	result, c := h.lookup(ctx, key)
	if c == nil {
		return result
	}
	result.Changed = h.store.Remove(ctx, c.ID)
	result.Favorite = false
	return result
}

// Toggle flips the favorite state of the creature named by key.
func (h *FavoritesHandler) Toggle(ctx context.Context, key string) *FavoriteResult {
	result, c := h.lookup(ctx, key)
	if c == nil {
		return result
	}
	result.Favorite = h.store.Toggle(ctx, *c)
	result.Changed = true
	return result
}

// lookup resolves key against the saved list first, then the source.
func (h *FavoritesHandler) lookup(ctx context.Context, key string) (*FavoriteResult, *entities.Creature) {
	key = entities.NormalizeKey(key)
	result := &FavoriteResult{Key: key}
	if key == "" {
		return result, nil
	}

	if c, ok := find(h.store.List(), key); ok {
		result.Creature = &c
		result.Favorite = true
		return result, &c
	}

	c, ok := find(h.searchService.Resolve(ctx, []string{key}), key)
	if !ok {
		return result, nil
	}
	result.Creature = &c
	return result, &c
}

// ImportOptions controls import behavior.
type ImportOptions struct {
	Format string // "json", "csv", or "auto"
	DryRun bool   // Resolve without saving
}

// ImportError describes an entry that could not be imported.
type ImportError struct {
	LineNum int
	Key     string
	Message string
}

// ImportResult contains the result of an import operation.
type ImportResult struct {
	Imported int
	Skipped  int
	Errors   []ImportError
}

// Import reads entries from a file, resolves them and adds them to favorites
// in file order. Entries that are already saved are skipped.
func (h *FavoritesHandler) Import(ctx context.Context, filePath string, opts ImportOptions) (*ImportResult, error) {
	var parser parsers.Parser
	if opts.Format == "" || opts.Format == "auto" {
		parser = parsers.ForFile(filePath)
	} else {
		parser = parsers.ForFormat(opts.Format)
	}

	if parser == nil {
		return nil, fmt.Errorf("unsupported format for file: %s", filePath)
	}

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	rawEntries, err := parser.Parse(file)
	if err != nil {
		return nil, fmt.Errorf("parsing file: %w", err)
	}

	return h.importEntries(ctx, rawEntries, opts), nil
}

func (h *FavoritesHandler) importEntries(ctx context.Context, rawEntries []parsers.RawEntry, opts ImportOptions) *ImportResult {
	result := &ImportResult{}
	saved := h.store.List()

	pending := make([]parsers.RawEntry, 0, len(rawEntries))
	keys := make([]string, 0, len(rawEntries))
	seen := make(map[string]bool, len(rawEntries))
	for _, e := range rawEntries {
		key := e.Key()
		switch {
		case key == "":
			result.Errors = append(result.Errors, ImportError{LineNum: e.LineNum, Message: "entry has neither id nor name"})
		case seen[key]:
			result.Skipped++
		default:
			seen[key] = true
			if _, ok := find(saved, key); ok {
				result.Skipped++
				continue
			}
			pending = append(pending, e)
			keys = append(keys, key)
		}
	}

	resolved := h.searchService.Resolve(ctx, keys)
	dryRunIDs := make(map[int]bool)
	for _, e := range pending {
		c, ok := find(resolved, e.Key())
		if !ok {
			result.Errors = append(result.Errors, ImportError{LineNum: e.LineNum, Key: e.Key(), Message: "not found"})
			continue
		}
		if opts.DryRun {
			if h.store.IsFavorite(c.ID) || dryRunIDs[c.ID] {
				result.Skipped++
			} else {
				dryRunIDs[c.ID] = true
				result.Imported++
			}
			continue
		}
		// Name and id entries can point at the same creature.
		if h.store.Add(ctx, c) {
			result.Imported++
		} else {
			result.Skipped++
		}
	}

	return result
}
