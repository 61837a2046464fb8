package unigram

import "fmt"

// --- A general purpose interface for tokens --------------------------------

// TokType categorizes a Token. The package defines only EOFToken; a
// scanner decides what the concrete word token categories of a grammar are.
type TokType int

// EOFToken is the token type a Tokenizer returns once the input is
// exhausted. Grammars never mention it as a terminal.
const EOFToken TokType = -1

// Token is produced by a scanner and consumed by the Earley recognizer.
// A terminal symbol of a grammar matches a token by comparing lexemes
// (case-folded), not by TokType — TokType only distinguishes word tokens
// from the end-of-input marker.
//
// An example word token:
//
//	TokType = WordToken
//	Lexeme  = "dog"
//	Value   = nil
//	Span    = (4…7)
type Token interface {
	TokType() TokType
	Lexeme() string
	Value() interface{}
	Span() Span
}

// TokenRetriever fetches the token that starts at a given input position.
type TokenRetriever func(uint64) Token

// --- Spans ------------------------------------------------------------

// Span captures a run of input positions. For every terminal and
// non-terminal, a chart item or syntax tree tracks which input positions it
// covers. A span denotes a start position and the position just behind the
// end, so Len() == 0 marks an empty (nullable) span.
type Span [2]uint64 // (x…y)

// From returns the start position of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end position of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y).
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

// IsNull reports whether the span is the zero span.
func (s Span) IsNull() bool {
	return s == Span{}
}

// Extend grows s to also cover other.
func (s Span) Extend(other Span) Span {
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
