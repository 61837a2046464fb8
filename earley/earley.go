package earley

import (
	"strings"

	"github.com/kalandra/unigram/grammar"
	"github.com/kalandra/unigram/internal/itemset"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'unigram.earley'.
func tracer() tracing.Trace {
	return tracing.Select("unigram.earley")
}

// Chart is the result of a recognizer run: a sequence of item sets
// C[0..=N], one per input position, plus enough context (the grammar, the
// token count) for a forest builder to reorganize it by origin.
type Chart struct {
	Grammar *grammar.Grammar
	N       int
	States  []*itemset.Set
}

// Accepted reports whether the chart contains a completed start item
// spanning the whole input, i.e. whether the input was recognized.
func (c *Chart) Accepted() bool {
	found := false
	c.States[c.N].Each(func(e interface{}) {
		item := e.(Item)
		rule := c.Grammar.Rule(item.RuleSerial)
		if item.Origin == 0 && item.Dot == len(rule.RHS) && rule.LHS == c.Grammar.Start {
			found = true
		}
	})
	return found
}

// Parser recognizes token sequences against a fixed grammar, producing a
// Chart. A Parser has no mutable state between calls; Parse allocates all
// of its working state fresh.
type Parser struct {
	g *grammar.Grammar
}

// NewParser creates a recognizer for g.
func NewParser(g *grammar.Grammar) *Parser {
	return &Parser{g: g}
}

// Lexeme is the minimal surface a scanned token must expose: its
// case-folded surface form, for matching against terminal productions.
type Lexeme interface {
	Lexeme() string
}

// Parse runs the Earley recognizer over tokens and returns the resulting
// chart. Parse never fails: exhaustion of input before completion, or
// tokens that match no terminal, simply yield a chart with no accepting
// item, which downstream components turn into an empty result list.
func (p *Parser) Parse(tokens []Lexeme) *Chart {
	n := len(tokens)
	states := make([]*itemset.Set, n+1)
	for i := range states {
		states[i] = itemset.New(0)
	}
	for _, r := range p.g.Rules(p.g.Start) {
		states[0].Add(Item{RuleSerial: r.Serial, Dot: 0, Origin: 0})
	}
	for k := 0; k <= n; k++ {
		S := states[k]
		S.IterateOnce()
		for S.Next() {
			item := S.Item().(Item)
			rule := p.g.Rule(item.RuleSerial)
			if item.Dot == len(rule.RHS) {
				p.complete(states, S, item, rule)
				continue
			}
			prod := rule.RHS[item.Dot]
			if prod.IsTerminal() {
				p.scan(states, k, n, tokens, item, prod)
			} else {
				p.predict(S, item, prod, k)
			}
		}
		dumpState(k, S)
	}
	return &Chart{Grammar: p.g, N: n, States: states}
}

// scan: if [A→…•a…, j] is in Si and a == xi+1, add [A→…a•…, j] to Si+1.
func (p *Parser) scan(states []*itemset.Set, k, n int, tokens []Lexeme, item Item, prod grammar.Production) {
	if k >= n {
		return
	}
	if strings.ToLower(tokens[k].Lexeme()) == prod.Terminal {
		states[k+1].Add(Item{RuleSerial: item.RuleSerial, Dot: item.Dot + 1, Origin: item.Origin})
	}
}

// predict: if [A→…•B…, j] is in Si, add [B→•α, i] to Si for every rule
// B→α. If B is nullable, also add the advanced form of the triggering
// item — the Aycock–Horspool repair, without which an epsilon production
// for B would never get a chance to complete.
func (p *Parser) predict(S *itemset.Set, item Item, prod grammar.Production, k int) {
	for _, r := range p.g.Rules(prod.Nonterminal) {
		S.Add(Item{RuleSerial: r.Serial, Dot: 0, Origin: k})
	}
	if p.g.IsNullable(prod.Nonterminal) {
		S.Add(item.Advance())
	}
}

// complete: if [A→…•, j] is in Si, add [B→…A•…, k] to Si for every item
// [B→…•A…, k] in Sj.
func (p *Parser) complete(states []*itemset.Set, S *itemset.Set, item Item, rule *grammar.Rule) {
	A := rule.LHS
	Sj := states[item.Origin]
	waiting := Sj.Copy().Subset(func(e interface{}) bool {
		jtem := e.(Item)
		jrule := p.g.Rule(jtem.RuleSerial)
		return jtem.Dot < len(jrule.RHS) && !jrule.RHS[jtem.Dot].IsTerminal() && jrule.RHS[jtem.Dot].Nonterminal == A
	})
	waiting.Each(func(e interface{}) {
		jtem := e.(Item)
		S.Add(jtem.Advance())
	})
}

// Advance returns the item with its dot moved one position to the right.
func (it Item) Advance() Item {
	return Item{RuleSerial: it.RuleSerial, Dot: it.Dot + 1, Origin: it.Origin}
}

func dumpState(k int, S *itemset.Set) {
	tracer().Debugf("state %d: %d item(s)", k, S.Size())
}
