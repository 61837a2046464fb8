package fnode

import "testing"

func TestUnifyTopIsIdentity(t *testing.T) {
	g := NewGraph()
	atom := g.NewAtom("sg")
	top := g.NewTop()
	if err := g.Unify(top, atom); err != nil {
		t.Fatalf("unify(top, atom) failed: %v", err)
	}
	got := g.Serialize(top)
	want := g.Serialize(atom)
	if !got.Equal(want) {
		t.Fatalf("serialize mismatch after unifying with top")
	}
}

func TestUnifySymmetric(t *testing.T) {
	mk := func() (*Graph, NodeID, NodeID) {
		g := NewGraph()
		e1, _ := g.NewWithEdges([]Edge{{Label: "case", Value: g.NewAtom("nom")}})
		e2, _ := g.NewWithEdges([]Edge{{Label: "num", Value: g.NewAtom("sg")}})
		return g, e1, e2
	}

	g1, a1, b1 := mk()
	if err := g1.Unify(a1, b1); err != nil {
		t.Fatalf("unify(a,b) failed: %v", err)
	}
	g2, a2, b2 := mk()
	if err := g2.Unify(b2, a2); err != nil {
		t.Fatalf("unify(b,a) failed: %v", err)
	}
	if !g1.Serialize(a1).Equal(g2.Serialize(a2)) {
		t.Fatalf("unify(a,b) and unify(b,a) produced different serializations")
	}
}

func TestUnifyIdempotent(t *testing.T) {
	g := NewGraph()
	a := g.NewAtom("x")
	b := g.NewAtom("x")
	if err := g.Unify(a, b); err != nil {
		t.Fatalf("first unify failed: %v", err)
	}
	before := g.Serialize(a)
	if err := g.Unify(a, b); err != nil {
		t.Fatalf("second unify should be a no-op success, got: %v", err)
	}
	if !before.Equal(g.Serialize(a)) {
		t.Fatalf("second unify changed the serialization")
	}
}

func TestUnifyAtomClash(t *testing.T) {
	g := NewGraph()
	a := g.NewAtom("sg")
	b := g.NewAtom("pl")
	if err := g.Unify(a, b); err == nil {
		t.Fatalf("expected atom clash, got success")
	}
}

func TestUnifyKindClash(t *testing.T) {
	g := NewGraph()
	a := g.NewAtom("sg")
	b := g.NewEdged()
	if err := g.Unify(a, b); err == nil {
		t.Fatalf("expected kind clash, got success")
	}
}

func TestDeepClonePreservesSharing(t *testing.T) {
	g := NewGraph()
	shared := g.NewAtom("sg")
	root, err := g.NewWithEdges([]Edge{
		{Label: "a", Value: shared},
		{Label: "b", Value: g.NewEdged()},
	})
	if err != nil {
		t.Fatalf("construction failed: %v", err)
	}
	// link b.c to the same shared node
	bID := g.Edges(root)["b"]
	if err := g.pushEdge(bID, "c", shared); err != nil {
		t.Fatalf("pushEdge failed: %v", err)
	}

	clone := g.DeepClone(root)
	if !g.Serialize(clone).Equal(g.Serialize(root)) {
		t.Fatalf("clone does not serialize the same as the original")
	}

	cloneEdges := g.Edges(clone)
	cloneB := g.Edges(cloneEdges["b"])
	if cloneEdges["a"] != cloneB["c"] {
		t.Fatalf("deep clone did not preserve structure sharing")
	}
}

func TestNewFromFeaturesTagReentrancy(t *testing.T) {
	g := NewGraph()
	sg := g.NewAtom("sg")
	top := g.NewTop()
	root, err := g.NewFromFeatures([]Feature{
		{Path: "child-0.num", Tag: "1", Value: sg},
		{Path: "child-1.num", Tag: "1", Value: top},
	})
	if err != nil {
		t.Fatalf("NewFromFeatures failed: %v", err)
	}
	edges := g.Edges(root)
	n0 := g.Edges(edges["child-0"])["num"]
	n1 := g.Edges(edges["child-1"])["num"]
	if g.Dereference(n0) != g.Dereference(n1) {
		t.Fatalf("tagged features were not unified into the same representative")
	}
}

func TestSerializeStripsTop(t *testing.T) {
	g := NewGraph()
	root, err := g.NewWithEdges([]Edge{
		{Label: "a", Value: g.NewTop()},
		{Label: "b", Value: g.NewAtom("x")},
	})
	if err != nil {
		t.Fatalf("construction failed: %v", err)
	}
	s := g.Serialize(root)
	if _, ok := s.Edges()["a"]; ok {
		t.Fatalf("Top edge 'a' should have been stripped")
	}
	if !s.Edges()["b"].Equal(g.Serialize(g.NewAtom("x"))) {
		t.Fatalf("non-Top edge 'b' lost its content")
	}
}

func TestSerializeOmitsAllTopEdged(t *testing.T) {
	g := NewGraph()
	allTop, err := g.NewWithEdges([]Edge{{Label: "a", Value: g.NewTop()}})
	if err != nil {
		t.Fatalf("construction failed: %v", err)
	}
	if g.Serialize(allTop) != nil {
		t.Fatalf("an edged node whose edges are all Top must serialize to nil")
	}
}
