package grammar

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'unigram.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("unigram.grammar")
}

// Grammar is an immutable, indexed set of rules: { start, rules, nonterminals,
// nullables }. Build one with New; a Grammar and the rule feature graphs it
// holds are read-only from then on — the parser only ever deep-clones them.
type Grammar struct {
	Start         string
	rulesBySymbol map[string][]*Rule
	order         []*Rule
	nonterminals  map[string]bool
	nullables     map[string]bool
}

// New validates and indexes a non-empty rule list into a Grammar. Start is
// the LHS of the first rule. Construction fails if the list is empty or if
// any RHS names a nonterminal that is not the LHS of some rule.
func New(rules ...*Rule) (*Grammar, error) {
	if len(rules) == 0 {
		return nil, fmt.Errorf("grammar: rule list must not be empty")
	}
	g := &Grammar{
		Start:         rules[0].LHS,
		rulesBySymbol: make(map[string][]*Rule),
		nonterminals:  make(map[string]bool),
	}
	for i, r := range rules {
		r.Serial = i
		g.rulesBySymbol[r.LHS] = append(g.rulesBySymbol[r.LHS], r)
		g.nonterminals[r.LHS] = true
		g.order = append(g.order, r)
	}
	for _, r := range g.order {
		for _, p := range r.RHS {
			if !p.IsTerminal() && !g.nonterminals[p.Nonterminal] {
				return nil, fmt.Errorf("grammar: %q is used on a right-hand side but is never a rule's left-hand side", p.Nonterminal)
			}
		}
	}
	g.nullables = computeNullables(g.order)
	tracer().Debugf("grammar built: start=%s, %d rules, nullables=%v", g.Start, len(g.order), g.nullables)
	return g, nil
}

// computeNullables is the fixed-point closure from spec §4.2: start with
// the empty set, repeatedly add any LHS whose rule has an empty RHS or
// whose RHS is entirely nullable nonterminals, until nothing changes.
func computeNullables(rules []*Rule) map[string]bool {
	nullable := make(map[string]bool)
	for {
		changed := false
		for _, r := range rules {
			if nullable[r.LHS] {
				continue
			}
			allNullable := true
			for _, p := range r.RHS {
				if p.IsTerminal() || !nullable[p.Nonterminal] {
					allNullable = false
					break
				}
			}
			if allNullable {
				nullable[r.LHS] = true
				changed = true
			}
		}
		if !changed {
			return nullable
		}
	}
}

// Rules returns every rule whose LHS is symbol, in authoring order.
func (g *Grammar) Rules(symbol string) []*Rule {
	return g.rulesBySymbol[symbol]
}

// Rule returns the rule with the given serial number, as assigned by New
// in authoring order.
func (g *Grammar) Rule(serial int) *Rule {
	return g.order[serial]
}

// RuleCount returns the number of rules in the grammar.
func (g *Grammar) RuleCount() int {
	return len(g.order)
}

// IsNonterminal reports whether symbol is the LHS of some rule.
func (g *Grammar) IsNonterminal(symbol string) bool {
	return g.nonterminals[symbol]
}

// IsNullable reports whether symbol can derive the empty string.
func (g *Grammar) IsNullable(symbol string) bool {
	return g.nullables[symbol]
}

// EachSymbol calls fn once for every nonterminal in the grammar.
func (g *Grammar) EachSymbol(fn func(symbol string)) {
	for s := range g.nonterminals {
		fn(s)
	}
}
