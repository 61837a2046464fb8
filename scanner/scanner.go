package scanner

import (
	"io"
	"strings"
	"text/scanner"

	"github.com/kalandra/unigram"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'unigram.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("unigram.scanner")
}

// WordToken is the only token type this package's default tokenizer
// produces for actual input; unigram.EOFToken marks exhaustion.
const WordToken unigram.TokType = 1

// Tokenizer is the scanner interface consumed by earley.Parser via the
// earley.Lexeme projection: anything producing a stream of unigram.Token
// values.
type Tokenizer interface {
	NextToken() unigram.Token
	SetErrorHandler(func(error))
}

// Default error reporting function for scanners.
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// WordTokenizer is a Tokenizer backed by text/scanner, splitting input on
// whitespace and returning each run of non-space runes lower-cased as a
// word token. It is the simplest tokenizer that satisfies a
// unification-grammar lexicon: terminal matching is by lower-cased
// string equality, so case folding happens once here rather than at
// every match site.
type WordTokenizer struct {
	scanner.Scanner
	Error func(error)
}

var _ Tokenizer = (*WordTokenizer)(nil)

// NewWordTokenizer creates a tokenizer over input, identified by
// sourceID for error messages.
func NewWordTokenizer(sourceID string, input io.Reader) *WordTokenizer {
	t := &WordTokenizer{Error: logError}
	t.Init(input)
	t.Filename = sourceID
	t.Mode = scanner.ScanIdents | scanner.ScanStrings
	t.Whitespace = 1<<'\t' | 1<<'\n' | 1<<'\r' | 1<<' '
	t.IsIdentRune = func(ch rune, i int) bool {
		return ch != scanner.EOF && t.Whitespace&(1<<uint(ch)) == 0
	}
	return t
}

// SetErrorHandler sets an error handler for the scanner.
func (t *WordTokenizer) SetErrorHandler(h func(error)) {
	if h == nil {
		t.Error = logError
		return
	}
	t.Error = h
}

// NextToken is part of the Tokenizer interface.
func (t *WordTokenizer) NextToken() unigram.Token {
	r := t.Scan()
	if r == scanner.EOF {
		tracer().Debugf("WordTokenizer reached end of input")
		return Token{kind: unigram.EOFToken}
	}
	lexeme := strings.ToLower(t.TokenText())
	return Token{
		kind:   WordToken,
		lexeme: lexeme,
		span:   unigram.Span{uint64(t.Position.Offset), uint64(t.Pos().Offset)},
	}
}

// Token is an unsophisticated unigram.Token implementation shared by
// WordTokenizer and the lexmachine-backed tokenizer in sub-package
// lexmach.
type Token struct {
	kind   unigram.TokType
	lexeme string
	val    interface{}
	span   unigram.Span
}

// MakeToken builds a Token, useful for adapters in sibling packages.
func MakeToken(typ unigram.TokType, lexeme string, span unigram.Span) Token {
	return Token{kind: typ, lexeme: lexeme, span: span}
}

func (t Token) TokType() unigram.TokType { return t.kind }
func (t Token) Value() interface{}       { return t.val }
func (t Token) Lexeme() string           { return t.lexeme }
func (t Token) Span() unigram.Span       { return t.span }

// Token's Lexeme method satisfies earley.Lexeme structurally; package
// scanner does not import package earley.
