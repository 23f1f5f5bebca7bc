package services

import (
	"fmt"

	"github.com/ersonp/dex-core/internal/domain/entities"
)

func creature(id int, name string, types ...entities.TypeTag) entities.Creature {
	return entities.Creature{
		ID:    id,
		Name:  name,
		Types: types,
		Stats: entities.Stats{
			entities.StatHP:             id,
			entities.StatAttack:         10,
			entities.StatDefense:        10,
			entities.StatSpecialAttack:  10,
			entities.StatSpecialDefense: 10,
			entities.StatSpeed:          10,
		},
		SpeciesURL: fmt.Sprintf("https://pokeapi.co/api/v2/pokemon-species/%d/", id),
	}
}

func names(cs []entities.Creature) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Name
	}
	return out
}

func itoa(i int) string {
	return fmt.Sprint(i)
}
