// Package mocks provides mock implementations for testing.
package mocks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ersonp/dex-core/internal/domain/entities"
	"github.com/ersonp/dex-core/internal/domain/ports"
)

// CreatureSource is a mock implementation of ports.CreatureSource.
// It is safe for concurrent use.
type CreatureSource struct {
	// Creatures is keyed by both id and name.
	Creatures map[string]entities.Creature
	Species   map[string]entities.Species
	Names     []string

	// Errors for specific keys (transport failures).
	FetchErrs map[string]error
	// Delays for specific keys, to force out-of-order completion.
	Delays     map[string]time.Duration
	SpeciesErr error
	NamesErr   error

	mu             sync.Mutex
	FetchedKeys    []string
	SpeciesFetches int
}

// NewCreatureSource creates a source serving the given creatures by id and name.
func NewCreatureSource(creatures ...entities.Creature) *CreatureSource {
	m := &CreatureSource{
		Creatures: make(map[string]entities.Creature),
		Species:   make(map[string]entities.Species),
		FetchErrs: make(map[string]error),
		Delays:    make(map[string]time.Duration),
	}
	for _, c := range creatures {
		m.Add(c)
	}
	return m
}

// Add registers a creature under its id and name.
func (m *CreatureSource) Add(c entities.Creature) {
	m.Creatures[fmt.Sprint(c.ID)] = c
	m.Creatures[c.Name] = c
	m.Names = append(m.Names, c.Name)
}

// FetchCreature returns the configured creature, error or ErrNotFound.
func (m *CreatureSource) FetchCreature(ctx context.Context, key string) (*entities.Creature, error) {
	m.mu.Lock()
	m.FetchedKeys = append(m.FetchedKeys, key)
	m.mu.Unlock()

	if d := m.Delays[key]; d > 0 {
		select {
		case <-time.After(d):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if err := m.FetchErrs[key]; err != nil {
		return nil, err
	}
	c, ok := m.Creatures[key]
	if !ok {
		return nil, fmt.Errorf("creature %q: %w", key, ports.ErrNotFound)
	}
	return &c, nil
}

// FetchSpecies returns the configured species for the URL.
func (m *CreatureSource) FetchSpecies(_ context.Context, url string) (*entities.Species, error) {
	m.mu.Lock()
	m.SpeciesFetches++
	m.mu.Unlock()

	if m.SpeciesErr != nil {
		return nil, m.SpeciesErr
	}
	s, ok := m.Species[url]
	if !ok {
		return nil, fmt.Errorf("species %q: %w", url, ports.ErrNotFound)
	}
	return &s, nil
}

// ListNames returns the configured name index.
func (m *CreatureSource) ListNames(_ context.Context) ([]string, error) {
	if m.NamesErr != nil {
		return nil, m.NamesErr
	}
	return m.Names, nil
}

// Fetched returns a copy of the keys requested so far.
func (m *CreatureSource) Fetched() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.FetchedKeys...)
}
