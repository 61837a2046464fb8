package forest

import (
	"fmt"

	"github.com/kalandra/unigram/earley"
	"github.com/kalandra/unigram/grammar"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'unigram.forest'.
func tracer() tracing.Trace {
	return tracing.Select("unigram.forest")
}

// Item is a completed rule covering [Start, End): a forest item,
// reorganized (unlike a chart item) by its span's start rather than by
// the chart position at which it was discovered.
type Item struct {
	RuleSerial int
	Start      int
	End        int
}

func (it Item) String() string {
	return fmt.Sprintf("%d..%d", it.Start, it.End)
}

// Forest is a chart's completed items, bucketed by origin. ByOrigin has
// N+1 buckets (origins 0..N inclusive) so that a zero-width completion at
// the very end of the input — a nullable symbol finishing exactly at
// position N — has somewhere to live; a forest sized to N buckets alone
// cannot represent that case.
type Forest struct {
	Grammar  *grammar.Grammar
	N        int
	ByOrigin [][]Item
}

// Build reorganizes chart into a Forest: every completed chart item
// becomes a forest Item bucketed under its origin; items whose dot has
// not reached the end of their rule's RHS are discarded, since they
// cannot contribute to any derivation.
func Build(chart *earley.Chart) *Forest {
	byOrigin := make([][]Item, chart.N+1)
	for k := 0; k <= chart.N; k++ {
		chart.States[k].Each(func(e interface{}) {
			it := e.(earley.Item)
			rule := chart.Grammar.Rule(it.RuleSerial)
			if it.Dot == len(rule.RHS) {
				byOrigin[it.Origin] = append(byOrigin[it.Origin], Item{
					RuleSerial: it.RuleSerial,
					Start:      it.Origin,
					End:        k,
				})
			}
		})
	}
	tracer().Debugf("forest built: %d origin buckets", len(byOrigin))
	return &Forest{Grammar: chart.Grammar, N: chart.N, ByOrigin: byOrigin}
}
