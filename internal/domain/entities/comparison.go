package entities

// StatOutcome is the result of comparing one stat of A against B,
// from A's point of view.
type StatOutcome string

// Stat outcomes. Equal is distinct from both sides.
const (
	OutcomeHigher StatOutcome = "higher"
	OutcomeLower  StatOutcome = "lower"
	OutcomeEqual  StatOutcome = "equal"
)

// Winner names the side with the larger stat total.
type Winner string

// Winners. A tie is an explicit outcome.
const (
	WinnerA   Winner = "a"
	WinnerB   Winner = "b"
	WinnerTie Winner = "tie"
)

// StatComparison holds the outcome for a single stat.
type StatComparison struct {
	Key     StatKey     `json:"key"`
	A       int         `json:"a"`
	B       int         `json:"b"`
	Delta   int         `json:"delta"`
	Outcome StatOutcome `json:"outcome"`
}

// Comparison is the full side-by-side result for two creatures.
type Comparison struct {
	A      Creature         `json:"a"`
	B      Creature         `json:"b"`
	Stats  []StatComparison `json:"stats"`
	TotalA int              `json:"total_a"`
	TotalB int              `json:"total_b"`
	Winner Winner           `json:"winner"`
}
