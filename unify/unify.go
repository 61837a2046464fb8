package unify

import (
	"fmt"

	"github.com/kalandra/unigram/earley"
	"github.com/kalandra/unigram/fnode"
	"github.com/kalandra/unigram/forest"
	"github.com/kalandra/unigram/grammar"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'unigram.unify'.
func tracer() tracing.Trace {
	return tracing.Select("unigram.unify")
}

// BareTree is a forest.Tree stripped of its rule handles: a plain
// constituent tree, safe to compare or print without dragging a feature
// graph along.
type BareTree struct {
	IsLeaf   bool
	Word     string
	Symbol   string
	Children []BareTree
	Span     [2]int
}

func (t BareTree) String() string {
	if t.IsLeaf {
		return fmt.Sprintf("(%d..%d: %s)", t.Span[0], t.Span[1], t.Word)
	}
	s := fmt.Sprintf("(%d..%d: %s", t.Span[0], t.Span[1], t.Symbol)
	for _, c := range t.Children {
		s += " " + c.String()
	}
	return s + ")"
}

// Result is one surviving derivation: its bare tree, together with the
// feature graph produced by unifying every rule along the way, and the
// id of that graph's root.
type Result struct {
	Tree  BareTree
	Graph *fnode.Graph
	Root  fnode.NodeID
}

// Tree resolves a single forest.Tree into its bare shape and feature
// graph, unifying bottom-up. It fails, discarding the whole derivation,
// as soon as any child's contribution cannot be unified into its
// parent's rule skeleton.
func Tree(t *forest.Tree) (BareTree, *fnode.Graph, fnode.NodeID, error) {
	if t.IsLeaf {
		g := fnode.NewGraph()
		top := g.NewTop()
		return BareTree{IsLeaf: true, Word: t.Word, Span: t.Span}, g, top, nil
	}

	g := fnode.NewGraph()
	root := g.CloneFrom(t.Rule.Graph, t.Rule.Features)

	bareChildren := make([]BareTree, len(t.Children))
	for i, child := range t.Children {
		bareChild, childGraph, childRoot, err := Tree(child)
		if err != nil {
			return BareTree{}, nil, 0, err
		}
		bareChildren[i] = bareChild

		imported := g.CloneFrom(childGraph, childRoot)
		wrapper, err := g.NewWithEdges([]fnode.Edge{
			{Label: fmt.Sprintf("child-%d", i), Value: imported},
		})
		if err != nil {
			return BareTree{}, nil, 0, err
		}
		if err := g.Unify(root, wrapper); err != nil {
			tracer().Debugf("derivation for %s dropped: child %d failed to unify: %v", t.Rule.LHS, i, err)
			return BareTree{}, nil, 0, err
		}
	}

	bare := BareTree{Symbol: t.Rule.LHS, Children: bareChildren, Span: t.Span}
	return bare, g, root, nil
}

// Parse runs the full pipeline: recognize, build the forest, enumerate
// candidate derivations, and unify each one. Candidates whose features
// fail to unify are dropped rather than surfaced, since a unification
// failure is an ordinary outcome of ambiguity, not an error condition.
func Parse(g *grammar.Grammar, tokens []earley.Lexeme) []Result {
	chart := earley.NewParser(g).Parse(tokens)
	f := forest.Build(chart)
	candidates := f.Trees()
	tracer().Debugf("forest produced %d candidate derivation(s)", len(candidates))

	results := make([]Result, 0, len(candidates))
	for _, c := range candidates {
		bare, wg, root, err := Tree(c)
		if err != nil {
			continue
		}
		results = append(results, Result{Tree: bare, Graph: wg, Root: root})
	}
	tracer().Debugf("%d derivation(s) survived unification", len(results))
	return results
}
