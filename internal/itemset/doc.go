/*
Package itemset provides a destructively growable, order-preserving set.

Add grows a Set in place (Copy and Subset return new sets and leave the
receiver unchanged), and — unlike a Go map range, whose behavior is
unspecified if the map is mutated mid-range — a Set may be grown while it
is being iterated: IterateOnce/Next walk by
index, so items Added during iteration are visited too. This is exactly
the "list acts as a work queue" shape an Earley recognizer needs for its
per-position item sets (see package earley).

Values stored in a Set are deduplicated structurally via a content hash
(github.com/cnf/structhash), not by Go identity, so values should be
plain structs with exported fields.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package itemset
