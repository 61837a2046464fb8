/*
Package earley implements an Earley chart recognizer over a grammar.Grammar,
including the Aycock–Horspool repair for nullable symbols: without it, an
epsilon production that could complete a nullable nonterminal is never
attempted, because no new token arrives to trigger its completion.

Earley parsing handles arbitrary (possibly ambiguous, possibly
left-recursive) context-free grammars without the restrictions a
recursive-descent or LR parser would impose, at the cost of speed the
core does not need: sentences here are short and the backbone is small.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package earley
