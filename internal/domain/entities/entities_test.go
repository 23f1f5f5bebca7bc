package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeTag_IsKnown(t *testing.T) {
	tests := []struct {
		name     string
		tag      TypeTag
		expected bool
	}{
		{name: "electric is known", tag: TypeElectric, expected: true},
		{name: "fairy is known", tag: TypeFairy, expected: true},
		{name: "shadow is not known", tag: TypeTag("shadow"), expected: false},
		{name: "empty is not known", tag: TypeTag(""), expected: false},
		{name: "uppercase is not known", tag: TypeTag("FIRE"), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.tag.IsKnown())
		})
	}
}

func TestAllTypeTags_Vocabulary(t *testing.T) {
	assert.Len(t, AllTypeTags, 18)
	assert.Len(t, DefaultTypeTags, len(AllTypeTags))
	for i, info := range DefaultTypeTags {
		assert.Equal(t, AllTypeTags[i], info.Tag)
		assert.NotEmpty(t, info.Description)
	}
}

func TestParseTagSet(t *testing.T) {
	t.Run("normalizes case and whitespace", func(t *testing.T) {
		set, err := ParseTagSet([]string{" Fire", "WATER"})
		require.NoError(t, err)
		assert.True(t, set.Contains(TypeFire))
		assert.True(t, set.Contains(TypeWater))
		assert.False(t, set.Contains(TypeGrass))
	})

	t.Run("rejects unknown tag", func(t *testing.T) {
		_, err := ParseTagSet([]string{"fire", "cosmic"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cosmic")
	})

	t.Run("empty input is empty set", func(t *testing.T) {
		set, err := ParseTagSet(nil)
		require.NoError(t, err)
		assert.True(t, set.IsEmpty())
	})
}

func TestCreature_HasAnyType(t *testing.T) {
	c := Creature{ID: 6, Name: "charizard", Types: []TypeTag{TypeFire, TypeFlying}}

	assert.True(t, c.HasAnyType(NewTagSet(TypeFlying)))
	assert.True(t, c.HasAnyType(NewTagSet(TypeWater, TypeFire)))
	assert.False(t, c.HasAnyType(NewTagSet(TypeWater)))
	assert.False(t, c.HasAnyType(NewTagSet()))
}

func TestCreature_Units(t *testing.T) {
	c := Creature{Height: 4, Weight: 60}

	assert.InDelta(t, 0.4, c.HeightMeters(), 1e-9)
	assert.InDelta(t, 6.0, c.WeightKilograms(), 1e-9)
	assert.False(t, c.HasArtwork())
}

func TestStats_Total(t *testing.T) {
	s := Stats{
		StatHP:             35,
		StatAttack:         55,
		StatDefense:        40,
		StatSpecialAttack:  50,
		StatSpecialDefense: 50,
		StatSpeed:          90,
	}
	assert.Equal(t, 320, s.Total())
	assert.Equal(t, 0, Stats{}.Total())
	assert.Equal(t, 0, s.Get(StatKey("accuracy")))
}

func TestNormalizeKey(t *testing.T) {
	assert.Equal(t, "pikachu", NormalizeKey("  Pikachu "))
	assert.Equal(t, "25", NormalizeKey("25"))
	assert.Equal(t, "25", NormalizeKey(" 025 "))
	assert.Equal(t, "1", NormalizeKey("0001"))
	assert.Equal(t, "0", NormalizeKey("000"))
	assert.True(t, IsNumericKey("25"))
	assert.False(t, IsNumericKey("0"))
	assert.False(t, IsNumericKey("pikachu"))
}

func TestCleanFlavorText(t *testing.T) {
	raw := "When several of\nthese POKéMON\fgather, their\nelectricity could\nbuild and cause\nlightning storms."
	assert.Equal(t,
		"When several of these POKéMON gather, their electricity could build and cause lightning storms.",
		CleanFlavorText(raw))
}

func TestCreature_MatchesKey(t *testing.T) {
	c := Creature{ID: 25, Name: "pikachu"}

	assert.True(t, c.MatchesKey("pikachu"))
	assert.True(t, c.MatchesKey("25"))
	assert.False(t, c.MatchesKey("pika"))
	assert.False(t, c.MatchesKey("025"))
	assert.True(t, c.MatchesKey(NormalizeKey("025")))
	assert.False(t, c.MatchesKey(""))
}
