package fnode

import "errors"

// ErrUnificationAtomClash is returned when two atoms with different string
// values are unified.
var ErrUnificationAtomClash = errors.New("fnode: unification failure, atom clash")

// ErrUnificationKindClash is returned when unification is attempted between
// nodes of incompatible kind, e.g. an atom and an edged node.
var ErrUnificationKindClash = errors.New("fnode: unification failure, kind clash")
