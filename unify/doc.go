/*
Package unify turns a forest.Tree derivation into a bare syntax tree plus
the feature graph that results from unifying every rule's feature
skeleton with its children's resolved graphs, bottom-up.

A terminal leaf contributes nothing but a fresh Top node: it constrains
nothing on its own, only through the child-i.word binding its parent's
rule skeleton already carries. A branch deep-clones its rule's feature
graph (never mutating the shared Rule.Graph template), then for each
child imports that child's already-resolved graph via fnode.Graph.CloneFrom,
wraps the import under a one-edge {child-i: ...} node, and unifies that
wrapper into the clone. Any unification failure anywhere in the branch
discards the whole derivation: Tree returns an error and Parse silently
drops that candidate, exactly as if the grammar had never licensed it.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package unify
