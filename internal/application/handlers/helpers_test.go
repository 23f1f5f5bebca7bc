package handlers

import (
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/ersonp/dex-core/internal/domain/entities"
	"github.com/ersonp/dex-core/internal/domain/mocks"
	"github.com/ersonp/dex-core/internal/domain/services"
)

var (
	bulbasaur = entities.Creature{
		ID: 1, Name: "bulbasaur",
		Types: []entities.TypeTag{entities.TypeGrass, entities.TypePoison},
		Stats: entities.Stats{entities.StatHP: 45, entities.StatAttack: 49, entities.StatDefense: 49,
			entities.StatSpecialAttack: 65, entities.StatSpecialDefense: 65, entities.StatSpeed: 45},
	}
	charmander = entities.Creature{
		ID: 4, Name: "charmander",
		Types: []entities.TypeTag{entities.TypeFire},
		Stats: entities.Stats{entities.StatHP: 39, entities.StatAttack: 52, entities.StatDefense: 43,
			entities.StatSpecialAttack: 60, entities.StatSpecialDefense: 50, entities.StatSpeed: 65},
	}
	pikachu = entities.Creature{
		ID: 25, Name: "pikachu",
		Types: []entities.TypeTag{entities.TypeElectric},
		Stats: entities.Stats{entities.StatHP: 35, entities.StatAttack: 55, entities.StatDefense: 40,
			entities.StatSpecialAttack: 50, entities.StatSpecialDefense: 50, entities.StatSpeed: 90},
	}
	pidgey = entities.Creature{
		ID: 16, Name: "pidgey",
		Types: []entities.TypeTag{entities.TypeNormal, entities.TypeFlying},
	}
)

func newTestSearch(source *mocks.CreatureSource, maxID int) *services.SearchService {
	return services.NewSearchService(source, services.SearchOptions{
		MaxID: maxID,
		Rand:  rand.New(rand.NewPCG(1, 2)),
	}, zap.NewNop())
}

func names(cs []entities.Creature) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Name
	}
	return out
}
