package earley

import "fmt"

// Item is an Earley state `(rule, dot-position, origin)`: a hypothesis
// that the rule identified by RuleSerial is being matched starting at
// input position Origin, with Dot symbols of its RHS already seen.
// Equality for deduplication purposes is exactly this triple, which is
// why all three fields are exported plain values — itemset dedups
// structurally via a content hash over exactly these fields.
type Item struct {
	RuleSerial int
	Dot        int
	Origin     int
}

func (it Item) String() string {
	return fmt.Sprintf("(rule#%d, dot=%d, origin=%d)", it.RuleSerial, it.Dot, it.Origin)
}
