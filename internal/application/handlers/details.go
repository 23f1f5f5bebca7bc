package handlers

import (
	"context"

	"github.com/ersonp/dex-core/internal/domain/services"
)

// DetailsHandler handles the detail view of a single creature.
type DetailsHandler struct {
	detailsService *services.DetailsService
	favorites      *services.FavoritesStore
}

// NewDetailsHandler creates a new details handler.
func NewDetailsHandler(detailsService *services.DetailsService, favorites *services.FavoritesStore) *DetailsHandler {
	return &DetailsHandler{
		detailsService: detailsService,
		favorites:      favorites,
	}
}

// DetailsResult contains the creature details and its favorite state.
type DetailsResult struct {
	Key      string
	Details  *services.CreatureDetails
	Favorite bool
}

// Found reports whether the creature was resolved.
func (r *DetailsResult) Found() bool {
	return r.Details != nil
}

// Handle describes the creature named by key.
func (h *DetailsHandler) Handle(ctx context.Context, key string) *DetailsResult {
	result := &DetailsResult{
		Key:     key,
		Details: h.detailsService.Describe(ctx, key),
	}
	if result.Details != nil && h.favorites != nil {
		result.Favorite = h.favorites.IsFavorite(result.Details.Creature.ID)
	}
	return result
}
