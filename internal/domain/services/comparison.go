package services

import "github.com/ersonp/dex-core/internal/domain/entities"

// CompareStats compares every base stat of a against b, in canonical order.
func CompareStats(a, b entities.Creature) []entities.StatComparison {
	out := make([]entities.StatComparison, 0, len(entities.AllStatKeys))
	for _, k := range entities.AllStatKeys {
		av, bv := a.Stats.Get(k), b.Stats.Get(k)
		out = append(out, entities.StatComparison{
			Key:     k,
			A:       av,
			B:       bv,
			Delta:   av - bv,
			Outcome: compareInts(av, bv),
		})
	}
	return out
}

func compareInts(a, b int) entities.StatOutcome {
	switch {
	case a > b:
		return entities.OutcomeHigher
	case a < b:
		return entities.OutcomeLower
	default:
		return entities.OutcomeEqual
	}
}

// TotalStats sums the six base stats of a creature.
func TotalStats(c entities.Creature) int {
	return c.Stats.Total()
}

// DecideWinner picks the creature with the larger stat total.
func DecideWinner(a, b entities.Creature) entities.Winner {
	switch compareInts(TotalStats(a), TotalStats(b)) {
	case entities.OutcomeHigher:
		return entities.WinnerA
	case entities.OutcomeLower:
		return entities.WinnerB
	default:
		return entities.WinnerTie
	}
}

// Compare builds the full side-by-side comparison.
func Compare(a, b entities.Creature) entities.Comparison {
	return entities.Comparison{
		A:      a,
		B:      b,
		Stats:  CompareStats(a, b),
		TotalA: TotalStats(a),
		TotalB: TotalStats(b),
		Winner: DecideWinner(a, b),
	}
}
