package scanner

import (
	"strings"
	"testing"

	"github.com/kalandra/unigram"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestWordTokenizerLowercasesWords(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unigram.scanner")
	defer teardown()

	tok := NewWordTokenizer("test", strings.NewReader("He Likes Himself"))
	var got []string
	for {
		token := tok.NextToken()
		if token.TokType() == unigram.EOFToken {
			break
		}
		got = append(got, token.Lexeme())
	}
	want := []string{"he", "likes", "himself"}
	if len(got) != len(want) {
		t.Fatalf("expected %d tokens, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: want %q, got %q", i, want[i], got[i])
		}
	}
}

func TestWordTokenizerSpans(t *testing.T) {
	tok := NewWordTokenizer("test", strings.NewReader("he falls"))
	first := tok.NextToken()
	if first.Lexeme() != "he" || first.Span().From() != 0 {
		t.Fatalf("unexpected first token: %+v", first)
	}
	second := tok.NextToken()
	if second.Lexeme() != "falls" || second.Span().From() != 3 {
		t.Fatalf("unexpected second token: %+v", second)
	}
}
