/*
Package unigram is a unification-grammar parsing toolbox.

It combines a feature-structure graph engine, an Earley chart parser with
nullable-symbol support, and a parse-forest tree enumerator, so that a host
application can parse a sentence against a hand-written unification grammar
and receive back every syntactically and grammatically valid derivation.
Package structure is as follows:

■ fnode: Package fnode implements feature structures (graphs of atoms,
edged nodes and forwarding pointers) together with destructive unification
and deep cloning.

■ grammar: Package grammar defines symbols, productions, rules and grammars,
including nullable-symbol analysis and rule feature adoption.

■ earley: Package earley implements an Earley chart recognizer, including
the Aycock–Horspool repair for nullable symbols.

■ forest: Package forest turns a recognizer's chart into a shared forest and
enumerates its derivation trees without producing spurious duplicates.

■ scanner: Package scanner and its subpackage lexmach provide tokenizers to
feed the parser.

■ unify: Package unify filters a forest's derivations through feature
unification and reports the surviving parses.

The base package contains data types used throughout the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package unigram
