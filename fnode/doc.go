/*
Package fnode implements feature structures: rooted, possibly reentrant
graphs of labelled edges and atomic leaves, together with destructive
unification and deep cloning.

A structure lives inside a Graph, an arena of nodes addressed by NodeID.
Using an arena instead of shared-ownership cells with interior mutability
makes node identity a plain integer, so equality, hashing and the
memoization tables that deep clone and unification need fall out for free,
and reentrant (cyclic) structures cannot leak or dangle.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fnode
