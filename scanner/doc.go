/*
Package scanner defines an interface for tokenizers to be used with
package earley, plus a default implementation backed by the standard
library's text/scanner.

A sub-package, lexmach, adapts github.com/timtadh/lexmachine to the same
Tokenizer interface for grammars that need more than whitespace-delimited
words — e.g. lexicon entries that themselves contain punctuation.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner
