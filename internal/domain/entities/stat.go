package entities

// StatKey names one of the six base stats.
type StatKey string

// Base stat keys, in the order the source reports them.
const (
	StatHP             StatKey = "hp"
	StatAttack         StatKey = "attack"
	StatDefense        StatKey = "defense"
	StatSpecialAttack  StatKey = "special-attack"
	StatSpecialDefense StatKey = "special-defense"
	StatSpeed          StatKey = "speed"
)

// AllStatKeys lists every stat key in canonical order.
var AllStatKeys = []StatKey{
	StatHP,
	StatAttack,
	StatDefense,
	StatSpecialAttack,
	StatSpecialDefense,
	StatSpeed,
}

// IsKnown reports whether the key is one of the six base stats.
func (k StatKey) IsKnown() bool {
	for _, known := range AllStatKeys {
		if k == known {
			return true
		}
	}
	return false
}

// Stats maps each stat key to its base value.
type Stats map[StatKey]int

// Get returns the value for the key, or 0 when the source omitted it.
func (s Stats) Get(k StatKey) int {
	return s[k]
}

// Total sums the six base stats.
func (s Stats) Total() int {
	total := 0
	for _, k := range AllStatKeys {
		total += s[k]
	}
	return total
}
