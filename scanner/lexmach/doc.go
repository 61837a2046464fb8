/*
Package lexmach adapts github.com/timtadh/lexmachine as a scanner.Tokenizer,
for grammars whose lexicon needs more than text/scanner's identifier rules
can express — e.g. words containing apostrophes.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexmach
