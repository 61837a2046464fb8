package fnode

// Serialized is a snapshot of a feature structure with Top edges stripped,
// used for observable equality checks: two structures that unify to the
// "same" information serialize to equal trees, independent of which
// representative unification happened to pick and independent of edge-map
// iteration order.
type Serialized struct {
	atom    string
	edges   map[string]*Serialized
	isAtom  bool
	cyclic  bool
}

// IsAtom reports whether this node serialized to an atomic leaf.
func (s *Serialized) IsAtom() bool {
	return s != nil && s.isAtom
}

// Atom returns the atomic value; valid only if IsAtom() is true.
func (s *Serialized) Atom() string {
	return s.atom
}

// Edges returns the (non-Top) edges of an edged node; nil for a leaf or a
// node that serialized away entirely.
func (s *Serialized) Edges() map[string]*Serialized {
	if s == nil {
		return nil
	}
	return s.edges
}

// Serialize produces a Top-stripped snapshot of the structure rooted at n.
// A node that is Top, or an edged node all of whose edges serialize away,
// itself serializes to nil (is "omitted").
func (g *Graph) Serialize(n NodeID) *Serialized {
	memo := map[NodeID]*Serialized{}
	inProgress := map[NodeID]bool{}
	return g.serializeRec(n, memo, inProgress)
}

func (g *Graph) serializeRec(n NodeID, memo map[NodeID]*Serialized, inProgress map[NodeID]bool) *Serialized {
	n = g.Dereference(n)
	if s, ok := memo[n]; ok {
		return s
	}
	if inProgress[n] {
		// Genuine cycle through Edged nodes: break the recursion. Practical
		// grammars never produce these; pathological ones must not hang.
		return &Serialized{cyclic: true}
	}
	nd := g.at(n)
	switch nd.kind {
	case KindTop:
		memo[n] = nil
		return nil
	case KindAtom:
		s := &Serialized{isAtom: true, atom: nd.atom}
		memo[n] = s
		return s
	case KindEdged:
		inProgress[n] = true
		edges := make(map[string]*Serialized, len(nd.edges))
		for label, v := range nd.edges {
			if child := g.serializeRec(v, memo, inProgress); child != nil {
				edges[label] = child
			}
		}
		delete(inProgress, n)
		var s *Serialized
		if len(edges) > 0 {
			s = &Serialized{edges: edges}
		}
		memo[n] = s
		return s
	default:
		panic("fnode: dereferenced node must not be Forwarded")
	}
}

// Equal reports whether two serialized trees carry the same non-Top
// content, comparing edge sets without regard to iteration order.
func (s *Serialized) Equal(other *Serialized) bool {
	if s == nil || other == nil {
		return s == nil && other == nil
	}
	if s.cyclic || other.cyclic {
		return s.cyclic == other.cyclic
	}
	if s.isAtom != other.isAtom {
		return false
	}
	if s.isAtom {
		return s.atom == other.atom
	}
	if len(s.edges) != len(other.edges) {
		return false
	}
	for label, v := range s.edges {
		ov, ok := other.edges[label]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}
