// Package entities contains core domain data structures.
package entities

import (
	"strconv"
	"strings"
)

// Creature is a single record fetched from the creature source.
// It is treated as immutable once fetched.
type Creature struct {
	ID             int       `json:"id"`
	Name           string    `json:"name"`
	Types          []TypeTag `json:"types"`
	Stats          Stats     `json:"stats"`
	Height         int       `json:"height"` // decimetres
	Weight         int       `json:"weight"` // hectograms
	ArtworkURL     string    `json:"artwork_url,omitempty"`
	BaseExperience int       `json:"base_experience,omitempty"`
	SpeciesURL     string    `json:"species_url,omitempty"`
	Abilities      []Ability `json:"abilities,omitempty"`
}

// Ability is a named ability of a creature.
type Ability struct {
	Name     string `json:"name"`
	IsHidden bool   `json:"is_hidden"`
}

// HasArtwork reports whether the creature carries an artwork URL.
// A missing artwork is a valid state and renders a placeholder.
func (c Creature) HasArtwork() bool {
	return c.ArtworkURL != ""
}

// HasAnyType reports whether any of the creature's types is in the set.
func (c Creature) HasAnyType(set TagSet) bool {
	for _, t := range c.Types {
		if set.Contains(t) {
			return true
		}
	}
	return false
}

// HeightMeters converts the source height (decimetres) to metres.
func (c Creature) HeightMeters() float64 {
	return float64(c.Height) / 10
}

// WeightKilograms converts the source weight (hectograms) to kilograms.
func (c Creature) WeightKilograms() float64 {
	return float64(c.Weight) / 10
}

// NormalizeKey converts a user-entered id or name into the form the source
// expects: trimmed and lowercase, with numeric ids in canonical form ("025"
// becomes "25").
func NormalizeKey(key string) string {
	key = strings.ToLower(strings.TrimSpace(key))
	if n, err := strconv.Atoi(key); err == nil {
		return strconv.Itoa(n)
	}
	return key
}

// IsNumericKey reports whether the key is a positive numeric id.
func IsNumericKey(key string) bool {
	n, err := strconv.Atoi(key)
	return err == nil && n > 0
}

// MatchesKey reports whether a normalized key names this creature,
// either by slug or by numeric id.
func (c Creature) MatchesKey(key string) bool {
	if key == "" {
		return false
	}
	return key == c.Name || key == strconv.Itoa(c.ID)
}
