// Package ports defines interfaces for external service communication.
package ports

import (
	"context"
	"errors"

	"github.com/ersonp/dex-core/internal/domain/entities"
)

// ErrNotFound is returned (possibly wrapped) when the requested record does
// not exist. Callers treat it as an empty result, not a failure.
var ErrNotFound = errors.New("not found")

// CreatureSource defines the interface for the remote creature data source.
type CreatureSource interface {
	// FetchCreature retrieves a creature by numeric id or name slug.
	FetchCreature(ctx context.Context, key string) (*entities.Creature, error)

	// FetchSpecies retrieves species data from the URL embedded in a creature.
	FetchSpecies(ctx context.Context, url string) (*entities.Species, error)

	// ListNames returns every known creature slug in source order.
	ListNames(ctx context.Context) ([]string, error)
}
