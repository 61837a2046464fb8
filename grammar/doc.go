/*
Package grammar models a context-free backbone whose nonterminals carry
feature structures: symbols, productions, rules, and the grammar that
indexes them.

A Rule owns its own fnode.Graph: features authored on its right-hand-side
symbols are relocated under child-i edges ("rule feature adoption"), so
that the whole rule's constraints live in a single feature skeleton that
gets deep-cloned once per candidate derivation.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grammar
