package pokeapi

import (
	"sort"

	"github.com/ersonp/dex-core/internal/domain/entities"
)

// Wire records mirror the subset of the PokeAPI JSON that is used.

type namedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type rawNamedPage struct {
	Count   int             `json:"count"`
	Results []namedResource `json:"results"`
}

type rawCreature struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Height         int    `json:"height"`
	Weight         int    `json:"weight"`
	BaseExperience *int   `json:"base_experience"`
	Types          []struct {
		Slot int           `json:"slot"`
		Type namedResource `json:"type"`
	} `json:"types"`
	Stats []struct {
		BaseStat int           `json:"base_stat"`
		Stat     namedResource `json:"stat"`
	} `json:"stats"`
	Sprites struct {
		FrontDefault *string `json:"front_default"`
		Other        struct {
			OfficialArtwork struct {
				FrontDefault *string `json:"front_default"`
			} `json:"official-artwork"`
		} `json:"other"`
	} `json:"sprites"`
	Species   namedResource `json:"species"`
	Abilities []struct {
		Ability  namedResource `json:"ability"`
		IsHidden bool          `json:"is_hidden"`
		Slot     int           `json:"slot"`
	} `json:"abilities"`
}

func (r rawCreature) toEntity() entities.Creature {
	c := entities.Creature{
		ID:         r.ID,
		Name:       r.Name,
		Height:     r.Height,
		Weight:     r.Weight,
		SpeciesURL: r.Species.URL,
		Stats:      make(entities.Stats, len(entities.AllStatKeys)),
	}
	if r.BaseExperience != nil {
		c.BaseExperience = *r.BaseExperience
	}

	types := r.Types
	sort.SliceStable(types, func(i, j int) bool { return types[i].Slot < types[j].Slot })
	for _, t := range types {
		c.Types = append(c.Types, entities.TypeTag(t.Type.Name))
	}

	for _, s := range r.Stats {
		if k := entities.StatKey(s.Stat.Name); k.IsKnown() {
			c.Stats[k] = s.BaseStat
		}
	}

	switch {
	case r.Sprites.Other.OfficialArtwork.FrontDefault != nil:
		c.ArtworkURL = *r.Sprites.Other.OfficialArtwork.FrontDefault
	case r.Sprites.FrontDefault != nil:
		c.ArtworkURL = *r.Sprites.FrontDefault
	}

	for _, a := range r.Abilities {
		c.Abilities = append(c.Abilities, entities.Ability{Name: a.Ability.Name, IsHidden: a.IsHidden})
	}
	return c
}

type rawSpecies struct {
	Name              string `json:"name"`
	FlavorTextEntries []struct {
		FlavorText string        `json:"flavor_text"`
		Language   namedResource `json:"language"`
	} `json:"flavor_text_entries"`
	Genera []struct {
		Genus    string        `json:"genus"`
		Language namedResource `json:"language"`
	} `json:"genera"`
	EvolutionChain *struct {
		URL string `json:"url"`
	} `json:"evolution_chain"`
	Varieties []struct {
		IsDefault bool          `json:"is_default"`
		Pokemon   namedResource `json:"pokemon"`
	} `json:"varieties"`
}

// descriptionLanguage is the flavor-text language shown to users.
const descriptionLanguage = "en"

func (r rawSpecies) toEntity() entities.Species {
	s := entities.Species{Name: r.Name}

	for _, e := range r.FlavorTextEntries {
		if e.Language.Name == descriptionLanguage {
			s.Description = entities.CleanFlavorText(e.FlavorText)
			break
		}
	}
	for _, g := range r.Genera {
		if g.Language.Name == descriptionLanguage {
			s.Genus = g.Genus
			break
		}
	}
	if r.EvolutionChain != nil {
		s.EvolutionChainURL = r.EvolutionChain.URL
	}
	for _, v := range r.Varieties {
		s.Varieties = append(s.Varieties, entities.Variety{Name: v.Pokemon.Name, IsDefault: v.IsDefault})
	}
	return s
}
