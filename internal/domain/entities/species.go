package entities

import "strings"

// Species holds descriptive data shared by every variety of a creature.
type Species struct {
	Name              string    `json:"name"`
	Description       string    `json:"description"`
	Genus             string    `json:"genus,omitempty"`
	EvolutionChainURL string    `json:"evolution_chain_url,omitempty"`
	Varieties         []Variety `json:"varieties,omitempty"`
}

// Variety is one form of a species, addressable by name.
type Variety struct {
	Name      string `json:"name"`
	IsDefault bool   `json:"is_default"`
}

// CleanFlavorText collapses the control characters the source embeds in
// flavor text (form feeds, soft line breaks) into single spaces.
func CleanFlavorText(s string) string {
	s = strings.NewReplacer("\f", " ", "\n", " ", "\r", " ", "\u00ad", "").Replace(s)
	return strings.Join(strings.Fields(s), " ")
}
