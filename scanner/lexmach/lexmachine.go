package lexmach

import (
	"strings"

	"github.com/kalandra/unigram"
	"github.com/kalandra/unigram/scanner"
	"github.com/npillmayer/schuko/tracing"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// tracer traces with key 'unigram.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("unigram.scanner")
}

// word matches a maximal run of letters and apostrophes, e.g. "don't".
const word = `[a-zA-Z][a-zA-Z']*`

// NewWordLexer builds a lexmachine-based word tokenizer: every run of
// letters (and apostrophes) becomes a lower-cased scanner.WordToken;
// whitespace and the punctuation marks .,;:!? are skipped. Any other
// character is reported to the Tokenizer's error handler and passed over.
func NewWordLexer() (*lexmachine.Lexer, error) {
	lexer := lexmachine.NewLexer()
	lexer.Add([]byte(word), tokenAction)
	lexer.Add([]byte(`( |\t|\n|\r)+`), skipAction)
	lexer.Add([]byte(`[.,;:!?]`), skipAction)
	if err := lexer.Compile(); err != nil {
		tracer().Errorf("error compiling word lexer DFA: %v", err)
		return nil, err
	}
	return lexer, nil
}

func tokenAction(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
	return s.Token(int(scanner.WordToken), strings.ToLower(string(m.Bytes)), m), nil
}

func skipAction(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
	return nil, nil
}

// Tokenizer wraps a compiled lexmachine.Scanner in the scanner.Tokenizer
// interface.
type Tokenizer struct {
	scanner *lexmachine.Scanner
	Error   func(error)
}

var _ scanner.Tokenizer = (*Tokenizer)(nil)

// NewTokenizer creates a Tokenizer scanning input with lexer.
func NewTokenizer(lexer *lexmachine.Lexer, input string) (*Tokenizer, error) {
	s, err := lexer.Scanner([]byte(input))
	if err != nil {
		return nil, err
	}
	return &Tokenizer{scanner: s, Error: logError}, nil
}

func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// SetErrorHandler sets an error handler for the scanner.
func (tk *Tokenizer) SetErrorHandler(h func(error)) {
	if h == nil {
		tk.Error = logError
		return
	}
	tk.Error = h
}

// NextToken is part of the scanner.Tokenizer interface.
func (tk *Tokenizer) NextToken() unigram.Token {
	tok, err, eof := tk.scanner.Next()
	for err != nil {
		tk.Error(err)
		if ui, is := err.(*machines.UnconsumedInput); is {
			tk.scanner.TC = ui.FailTC
		}
		tok, err, eof = tk.scanner.Next()
	}
	if eof {
		return scanner.MakeToken(unigram.EOFToken, "", unigram.Span{})
	}
	t := tok.(*lexmachine.Token)
	return scanner.MakeToken(
		scanner.WordToken,
		string(t.Lexeme),
		unigram.Span{uint64(t.StartColumn), uint64(t.EndColumn)},
	)
}
