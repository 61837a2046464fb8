/*
Package forest reorganizes an earley.Chart by origin and enumerates its
derivation trees.

The naive approach — enumerate every completed item and independently
cross-product a child for each right-hand-side position — produces
spurious derivations on ambiguous grammars: the classic `S -> x | S S` on
"x x x" yields two real trees, but naive cross-producting fabricates two
more. extendOut avoids this by threading the span partition through the
child choices: each candidate sequence of children is built by walking
the rule's productions left to right, consuming a contiguous,
non-overlapping slice of the span at each step, so a parent's span is
always exactly the union of its children's spans by construction, never
by coincidence.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package forest
