package forest

import (
	"fmt"
	"strings"

	"github.com/kalandra/unigram/grammar"
)

// Tree is a syntax tree node: either a leaf holding one input word, or a
// branch headed by the rule that licensed it, with one child per
// right-hand-side position.
type Tree struct {
	IsLeaf   bool
	Word     string
	Rule     *grammar.Rule
	Children []*Tree
	Span     [2]int
}

func leaf(word string, at int) *Tree {
	return &Tree{IsLeaf: true, Word: word, Span: [2]int{at, at + 1}}
}

func (t *Tree) String() string {
	if t.IsLeaf {
		return fmt.Sprintf("(%d..%d: %s)", t.Span[0], t.Span[1], t.Word)
	}
	parts := make([]string, len(t.Children))
	for i, c := range t.Children {
		parts[i] = c.String()
	}
	return fmt.Sprintf("(%d..%d: %s %s)", t.Span[0], t.Span[1], t.Rule.LHS, strings.Join(parts, " "))
}

func subtreeIsComplete(t *Tree) bool {
	if t.IsLeaf {
		return true
	}
	return len(t.Children) == len(t.Rule.RHS)
}

// extendOut returns every sequence of (possibly still-unfilled) children
// matching rule.RHS[prodIdx:] over the span [searchStart, searchEnd). See
// the package doc for why this, rather than independently choosing a
// completed item per position, is what keeps ambiguous grammars from
// producing spurious derivations.
func (f *Forest) extendOut(rule *grammar.Rule, prodIdx, searchStart, searchEnd int) [][]*Tree {
	if prodIdx == len(rule.RHS) && searchStart == searchEnd {
		return [][]*Tree{{}}
	}
	if prodIdx == len(rule.RHS) {
		return nil
	}

	prod := rule.RHS[prodIdx]
	var out [][]*Tree
	if prod.IsTerminal() {
		if searchStart >= searchEnd {
			return nil
		}
		head := leaf(prod.Terminal, searchStart)
		for _, seq := range f.extendOut(rule, prodIdx+1, searchStart+1, searchEnd) {
			out = append(out, prepend(head, seq))
		}
		return out
	}

	for _, item := range f.ByOrigin[searchStart] {
		if item.End > searchEnd {
			continue
		}
		itemRule := f.Grammar.Rule(item.RuleSerial)
		if itemRule.LHS != prod.Nonterminal {
			continue
		}
		head := &Tree{Rule: itemRule, Span: [2]int{item.Start, item.End}}
		for _, seq := range f.extendOut(rule, prodIdx+1, item.End, searchEnd) {
			out = append(out, prepend(head, seq))
		}
	}
	return out
}

func prepend(head *Tree, tail []*Tree) []*Tree {
	seq := make([]*Tree, 0, len(tail)+1)
	seq = append(seq, head)
	seq = append(seq, tail...)
	return seq
}

// makeTrees recursively resolves a possibly-unfilled branch (a
// constituent with zero children, produced by a seed or by extendOut)
// into every fully-filled tree it describes.
func (f *Forest) makeTrees(t *Tree) []*Tree {
	if subtreeIsComplete(t) {
		return []*Tree{t}
	}
	childSeqs := f.extendOut(t.Rule, 0, t.Span[0], t.Span[1])
	var out []*Tree
	for _, children := range childSeqs {
		childSets := make([][]*Tree, len(children))
		for i, c := range children {
			childSets[i] = f.makeTrees(c)
		}
		for _, combo := range combinations(childSets) {
			out = append(out, &Tree{Rule: t.Rule, Span: t.Span, Children: combo})
		}
	}
	return out
}

// combinations returns the cartesian product of sets, i.e. every sequence
// obtained by picking one element from each set in order.
func combinations(sets [][]*Tree) [][]*Tree {
	if len(sets) == 0 {
		return [][]*Tree{{}}
	}
	rest := combinations(sets[1:])
	var out [][]*Tree
	for _, first := range sets[0] {
		for _, r := range rest {
			out = append(out, prepend(first, r))
		}
	}
	return out
}

// Trees enumerates every derivation: every forest item spanning the whole
// input and headed by the grammar's start symbol, fully resolved via
// makeTrees. Accepts empty input iff the start symbol is nullable, since
// that is exactly when a zero-width start item spanning [0, 0) exists.
func (f *Forest) Trees() []*Tree {
	var out []*Tree
	if len(f.ByOrigin) == 0 {
		return out
	}
	for _, item := range f.ByOrigin[0] {
		if item.End != f.N {
			continue
		}
		rule := f.Grammar.Rule(item.RuleSerial)
		if rule.LHS != f.Grammar.Start {
			continue
		}
		seed := &Tree{Rule: rule, Span: [2]int{item.Start, item.End}}
		out = append(out, f.makeTrees(seed)...)
	}
	return out
}
