package grammar

import (
	"fmt"
	"strings"

	"github.com/kalandra/unigram/fnode"
)

// FeatureSpec is an authored feature, as it would appear in a bracketed
// annotation on a symbol: `path: value`. The value is one of the four
// surface forms: an explicit **top**, a bare atom, a bare tag reference
// (Tag set, Atom empty, Top false — unifies with whatever else shares the
// tag), or a tagged atom (both set).
type FeatureSpec struct {
	Path string
	Tag  string
	Atom string
	Top  bool
}

func (f FeatureSpec) toFnode(g *fnode.Graph) fnode.Feature {
	var val fnode.NodeID
	if f.Atom != "" {
		val = g.NewAtom(f.Atom)
	} else {
		val = g.NewTop()
	}
	return fnode.Feature{Path: f.Path, Tag: f.Tag, Value: val}
}

// Production is one right-hand-side element of a Rule: either a terminal
// (lower-cased word the scanner must have produced) or a nonterminal
// (naming another rule's LHS), optionally annotated with features that
// constrain what that child's feature structure must unify to.
type Production struct {
	Terminal    string
	Nonterminal string
	Features    []FeatureSpec
}

// Term builds a terminal production. Per the surface syntax, terminals may
// not carry feature brackets; matching is by lower-cased string equality.
func Term(word string) Production {
	return Production{Terminal: strings.ToLower(word)}
}

// NonTerm builds a nonterminal production, optionally constrained by
// features that will be adopted under this position's child-i edge.
func NonTerm(symbol string, features ...FeatureSpec) Production {
	return Production{Nonterminal: symbol, Features: features}
}

// IsTerminal reports whether p is a terminal production.
func (p Production) IsTerminal() bool {
	return p.Nonterminal == ""
}

// Rule is `{ lhs, features, rhs }`: a single production of lhs, together
// with the feature skeleton built by adopting the authored features of
// lhs itself and of every RHS position.
type Rule struct {
	Serial   int
	LHS      string
	RHS      []Production
	Graph    *fnode.Graph
	Features fnode.NodeID
}

// NewRule builds a rule `lhs[lhsFeatures] -> rhs...`, performing rule
// feature adoption: each RHS nonterminal's authored features are re-pathed
// under child-i, and each RHS terminal contributes a synthetic
// child-i.word binding so that callers can read the surface token back
// off the feature structure.
func NewRule(lhs string, lhsFeatures []FeatureSpec, rhs ...Production) (*Rule, error) {
	g := fnode.NewGraph()
	var all []fnode.Feature
	for _, f := range lhsFeatures {
		all = append(all, f.toFnode(g))
	}
	for i, p := range rhs {
		prefix := fmt.Sprintf("child-%d.", i)
		if p.IsTerminal() {
			all = append(all, fnode.Feature{
				Path:  prefix + "word",
				Value: g.NewAtom(p.Terminal),
			})
			continue
		}
		for _, f := range p.Features {
			spec := f
			spec.Path = prefix + spec.Path
			all = append(all, spec.toFnode(g))
		}
	}
	root, err := g.NewFromFeatures(all)
	if err != nil {
		return nil, fmt.Errorf("grammar: rule for %s: %w", lhs, err)
	}
	return &Rule{LHS: lhs, RHS: rhs, Graph: g, Features: root}, nil
}

func (r *Rule) String() string {
	parts := make([]string, len(r.RHS))
	for i, p := range r.RHS {
		if p.IsTerminal() {
			parts[i] = p.Terminal
		} else {
			parts[i] = p.Nonterminal
		}
	}
	if len(parts) == 0 {
		return fmt.Sprintf("%s -> ε", r.LHS)
	}
	return fmt.Sprintf("%s -> %s", r.LHS, strings.Join(parts, " "))
}
