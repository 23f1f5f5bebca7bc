package entities

import (
	"fmt"
	"strings"
)

// TypeTag is one of the closed set of elemental types.
type TypeTag string

// Known type tags.
const (
	TypeNormal   TypeTag = "normal"
	TypeFire     TypeTag = "fire"
	TypeWater    TypeTag = "water"
	TypeElectric TypeTag = "electric"
	TypeGrass    TypeTag = "grass"
	TypeIce      TypeTag = "ice"
	TypeFighting TypeTag = "fighting"
	TypePoison   TypeTag = "poison"
	TypeGround   TypeTag = "ground"
	TypeFlying   TypeTag = "flying"
	TypePsychic  TypeTag = "psychic"
	TypeBug      TypeTag = "bug"
	TypeRock     TypeTag = "rock"
	TypeGhost    TypeTag = "ghost"
	TypeDragon   TypeTag = "dragon"
	TypeDark     TypeTag = "dark"
	TypeSteel    TypeTag = "steel"
	TypeFairy    TypeTag = "fairy"
)

// AllTypeTags lists the vocabulary in display order.
var AllTypeTags = []TypeTag{
	TypeNormal, TypeFire, TypeWater, TypeElectric, TypeGrass, TypeIce,
	TypeFighting, TypePoison, TypeGround, TypeFlying, TypePsychic, TypeBug,
	TypeRock, TypeGhost, TypeDragon, TypeDark, TypeSteel, TypeFairy,
}

// IsKnown reports whether the tag belongs to the vocabulary.
func (t TypeTag) IsKnown() bool {
	for _, known := range AllTypeTags {
		if t == known {
			return true
		}
	}
	return false
}

// ParseTypeTag validates a user-supplied tag name.
func ParseTypeTag(s string) (TypeTag, error) {
	t := TypeTag(strings.ToLower(strings.TrimSpace(s)))
	if !t.IsKnown() {
		return "", fmt.Errorf("unknown type %q", s)
	}
	return t, nil
}

// TagSet is a user-selected set of type tags. An empty set places no
// restriction on results.
type TagSet map[TypeTag]struct{}

// NewTagSet builds a set from the given tags.
func NewTagSet(tags ...TypeTag) TagSet {
	set := make(TagSet, len(tags))
	for _, t := range tags {
		set[t] = struct{}{}
	}
	return set
}

// ParseTagSet validates every name and builds a set.
func ParseTagSet(names []string) (TagSet, error) {
	set := make(TagSet, len(names))
	for _, n := range names {
		t, err := ParseTypeTag(n)
		if err != nil {
			return nil, err
		}
		set[t] = struct{}{}
	}
	return set, nil
}

// Contains reports whether the tag is in the set.
func (s TagSet) Contains(t TypeTag) bool {
	_, ok := s[t]
	return ok
}

// IsEmpty reports whether the set selects nothing.
func (s TagSet) IsEmpty() bool {
	return len(s) == 0
}
