package unify

import (
	"testing"

	"github.com/kalandra/unigram/earley"
	"github.com/kalandra/unigram/fnode"
	"github.com/kalandra/unigram/grammar"
)

type word string

func (w word) Lexeme() string { return string(w) }

func words(ws ...string) []earley.Lexeme {
	out := make([]earley.Lexeme, len(ws))
	for i, w := range ws {
		out[i] = word(w)
	}
	return out
}

func atom(path, a string) grammar.FeatureSpec {
	return grammar.FeatureSpec{Path: path, Atom: a}
}

func tag(path, t string) grammar.FeatureSpec {
	return grammar.FeatureSpec{Path: path, Tag: t}
}

func mustRuleF(t *testing.T, lhs string, lhsFeatures []grammar.FeatureSpec, rhs ...grammar.Production) *grammar.Rule {
	t.Helper()
	r, err := grammar.NewRule(lhs, lhsFeatures, rhs...)
	if err != nil {
		t.Fatalf("NewRule(%s) failed: %v", lhs, err)
	}
	return r
}

// atPath walks a dotted path of edge labels from root, dereferencing at
// each step, and fails the test if any segment is missing.
func atPath(t *testing.T, g *fnode.Graph, root fnode.NodeID, labels ...string) fnode.NodeID {
	t.Helper()
	n := root
	for _, label := range labels {
		edges := g.Edges(n)
		next, ok := edges[label]
		if !ok {
			t.Fatalf("no edge %q from node (have %v)", label, edges)
		}
		n = next
	}
	return g.Dereference(n)
}

func TestAgreementGrammarBindsSharedNumber(t *testing.T) {
	g, err := grammar.New(
		mustRuleF(t, "S", nil, grammar.NonTerm("N", atom("case", "nom"), tag("num", "1")), grammar.NonTerm("IV", tag("num", "1"))),
		mustRuleF(t, "N", []grammar.FeatureSpec{atom("num", "sg"), atom("case", "nom"), atom("pron", "he")}, grammar.Term("he")),
		mustRuleF(t, "IV", []grammar.FeatureSpec{atom("num", "sg"), atom("tense", "nonpast")}, grammar.Term("falls")),
	)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	results := Parse(g, words("he", "falls"))
	if len(results) != 1 {
		t.Fatalf("expected exactly 1 tree, got %d", len(results))
	}

	r := results[0]
	numFromSubject := atPath(t, r.Graph, r.Root, "child-0", "num")
	numFromVerb := atPath(t, r.Graph, r.Root, "child-1", "num")
	if numFromSubject != numFromVerb {
		t.Fatalf("child-0.num and child-1.num should be the same node after unification, got %v vs %v", numFromSubject, numFromVerb)
	}
	if r.Graph.Kind(numFromSubject) != fnode.KindAtom || r.Graph.Atom(numFromSubject) != "sg" {
		t.Fatalf("expected the shared num node to resolve to atom sg, got kind=%v", r.Graph.Kind(numFromSubject))
	}
}

func TestAgreementGrammarRejectsNumberMismatch(t *testing.T) {
	g, err := grammar.New(
		mustRuleF(t, "S", nil, grammar.NonTerm("N", atom("case", "nom"), tag("num", "1")), grammar.NonTerm("IV", tag("num", "1"))),
		mustRuleF(t, "N", []grammar.FeatureSpec{atom("num", "sg"), atom("case", "nom"), atom("pron", "he")}, grammar.Term("he")),
		mustRuleF(t, "IV", []grammar.FeatureSpec{atom("num", "pl")}, grammar.Term("fall")),
	)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	results := Parse(g, words("he", "fall"))
	if len(results) != 0 {
		t.Fatalf("expected 0 trees on number mismatch, got %d", len(results))
	}
}

// reflexiveGrammar builds `S -> N[case:nom, pron:#1] TV N[case:acc,
// needs_pron:#1]` with a small pronoun lexicon, mirroring the binding
// test used throughout the source material this system was distilled
// from.
func reflexiveGrammar(t *testing.T) *grammar.Grammar {
	t.Helper()
	g, err := grammar.New(
		mustRuleF(t, "S", nil,
			grammar.NonTerm("N", atom("case", "nom"), tag("pron", "1")),
			grammar.NonTerm("TV"),
			grammar.NonTerm("N", atom("case", "acc"), tag("needs_pron", "1")),
		),
		mustRuleF(t, "TV", nil, grammar.Term("likes")),
		mustRuleF(t, "N", []grammar.FeatureSpec{atom("case", "nom"), atom("pron", "she")}, grammar.Term("she")),
		mustRuleF(t, "N", []grammar.FeatureSpec{atom("case", "nom"), atom("pron", "he")}, grammar.Term("he")),
		mustRuleF(t, "N", []grammar.FeatureSpec{atom("case", "acc"), atom("pron", "he")}, grammar.Term("him")),
		mustRuleF(t, "N", []grammar.FeatureSpec{atom("case", "acc"), atom("pron", "ref"), atom("needs_pron", "he")}, grammar.Term("himself")),
	)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return g
}

func TestReflexiveBinding(t *testing.T) {
	cases := []struct {
		sentence []string
		want     int
	}{
		{[]string{"he", "likes", "himself"}, 1},
		{[]string{"she", "likes", "himself"}, 0},
		{[]string{"he", "likes", "him"}, 1},
		{[]string{"himself", "likes", "him"}, 0},
	}
	g := reflexiveGrammar(t)
	for _, c := range cases {
		results := Parse(g, words(c.sentence...))
		if len(results) != c.want {
			t.Errorf("%v: expected %d trees, got %d", c.sentence, c.want, len(results))
		}
	}
}

// clausalGrammar adds a clausal-verb rule recursing on S itself, so that
// an inner clause's reflexive must bind within that clause and cannot
// reach up into the outer one.
func clausalGrammar(t *testing.T) *grammar.Grammar {
	t.Helper()
	g, err := grammar.New(
		mustRuleF(t, "S", nil,
			grammar.NonTerm("N", atom("case", "nom"), tag("pron", "1")),
			grammar.NonTerm("TV"),
			grammar.NonTerm("N", atom("case", "acc"), tag("needs_pron", "1")),
		),
		mustRuleF(t, "S", nil,
			grammar.NonTerm("N", atom("case", "nom")),
			grammar.NonTerm("CV"),
			grammar.NonTerm("Comp"),
			grammar.NonTerm("S"),
		),
		mustRuleF(t, "TV", nil, grammar.Term("likes")),
		mustRuleF(t, "CV", nil, grammar.Term("said")),
		mustRuleF(t, "Comp", nil, grammar.Term("that")),
		mustRuleF(t, "N", []grammar.FeatureSpec{atom("case", "nom"), atom("pron", "he")}, grammar.Term("he")),
		mustRuleF(t, "N", []grammar.FeatureSpec{atom("case", "nom"), atom("pron", "she")}, grammar.Term("she")),
		mustRuleF(t, "N", []grammar.FeatureSpec{atom("case", "acc"), atom("pron", "ref"), atom("needs_pron", "she")}, grammar.Term("herself")),
		mustRuleF(t, "N", []grammar.FeatureSpec{atom("case", "acc"), atom("pron", "ref"), atom("needs_pron", "he")}, grammar.Term("himself")),
	)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return g
}

func TestReflexivesDoNotCrossClauses(t *testing.T) {
	g := clausalGrammar(t)

	bound := Parse(g, words("he", "said", "that", "she", "likes", "herself"))
	if len(bound) != 1 {
		t.Fatalf("expected 1 tree when the inner reflexive binds within its own clause, got %d", len(bound))
	}

	unbound := Parse(g, words("he", "said", "that", "she", "likes", "himself"))
	if len(unbound) != 0 {
		t.Fatalf("expected 0 trees when the inner reflexive would need to bind across the clause boundary, got %d", len(unbound))
	}
}
