package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/ersonp/dex-core/internal/domain/entities"
	"github.com/ersonp/dex-core/internal/domain/ports"
)

// CreatureDetails is a creature together with its species data.
// Species is nil when it could not be fetched.
type CreatureDetails struct {
	Creature entities.Creature `json:"creature"`
	Species  *entities.Species `json:"species,omitempty"`
}

// DetailsService resolves a creature and its species description.
type DetailsService struct {
	resolver
}

// NewDetailsService creates a new details service.
func NewDetailsService(source ports.CreatureSource, logger *zap.Logger) *DetailsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DetailsService{
		resolver: resolver{source: source, logger: logger},
	}
}

// Describe fetches the creature by key, then its species. It returns nil when
// the creature cannot be resolved; a species failure only drops the species.
func (s *DetailsService) Describe(ctx context.Context, key string) *CreatureDetails {
	key = entities.NormalizeKey(key)
	if key == "" {
		return nil
	}

	c, ok := s.resolveOne(ctx, key)
	if !ok {
		return nil
	}

	details := &CreatureDetails{Creature: *c}
	if c.SpeciesURL == "" {
		return details
	}

	species, err := s.source.FetchSpecies(ctx, c.SpeciesURL)
	if err != nil {
		s.logger.Warn("fetching species", zap.String("creature", c.Name), zap.Error(err))
		return details
	}
	details.Species = species
	return details
}
