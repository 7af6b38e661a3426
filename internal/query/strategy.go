package query

import (
	"fmt"
	"strings"
	"time"
)

// maxStrategies caps how many strategies one question can produce.
const maxStrategies = 6

// Strategy type identifiers. The first strategy is always the verbatim
// question; the last (when it fits) is the keyword fallback.
const (
	StrategyOriginal     = "original"
	StrategyFinancialSEC = "financial-sec"
	StrategyInternalDocs = "internal-docs"
	StrategyMarket       = "market-positioning"
	StrategyFallback     = "broad-fallback"
)

// intentQueries maps each intent to a canned retrieval phrasing.
var intentQueries = map[Intent]string{
	IntentManagementCommentary: "management commentary prepared remarks earnings call",
	IntentFinancialPerformance: "quarterly financial results revenue and earnings performance",
	IntentStrategy:             "long term strategy growth initiatives and priorities",
	IntentCompetitive:          "competitive positioning versus industry peers",
	IntentRisks:                "risk factors headwinds and uncertainties",
}

var fallbackStopwords = map[string]struct{}{
	"about": {}, "after": {}, "also": {}, "been": {}, "before": {},
	"could": {}, "did": {}, "does": {}, "from": {}, "have": {}, "how": {},
	"tell": {}, "that": {}, "the": {}, "their": {}, "there": {},
	"this": {}, "were": {}, "what": {}, "when": {}, "where": {},
	"which": {}, "will": {}, "with": {}, "would": {}, "your": {},
}

// Generator expands a question into an ordered sequence of retrieval
// strategies. It is a pure function of (question, analysis) apart from the
// clock, which only feeds the synthesized latest-quarter phrase.
type Generator struct {
	now func() time.Time
}

// NewGenerator creates a strategy generator.
func NewGenerator() *Generator {
	return &Generator{now: time.Now}
}

// Generate builds between 1 and maxStrategies strategies in a fixed
// construction order. The sequence is truncated to the first maxStrategies
// entries in generation order; later per-intent strategies can be dropped
// when earlier steps already filled all slots.
func (g *Generator) Generate(question string, analysis Analysis) []SearchStrategy {
	strategies := []SearchStrategy{
		{Type: StrategyOriginal, Query: question, Weight: 1.0},
	}

	if analysis.IsFinancial {
		var q string
		if analysis.Period == PeriodLatest || analysis.Period == PeriodQ1 {
			q = fmt.Sprintf("financial results for the three months ended March %d", g.now().Year())
		} else {
			q = question + " quarterly report 10-Q 10-K SEC filing financial statements"
		}
		strategies = append(strategies, SearchStrategy{
			Type:       StrategyFinancialSEC,
			Query:      q,
			Weight:     0.8,
			SourceHint: HintSEC,
		})
	}

	if analysis.NeedsInternal {
		var q string
		if analysis.HasIntent(IntentManagementCommentary) || analysis.NeedsForwardLooking {
			q = "earnings call transcript management commentary guidance outlook " + question
		} else {
			q = "internal analysis management discussion " + question
		}
		strategies = append(strategies, SearchStrategy{
			Type:       StrategyInternalDocs,
			Query:      q,
			Weight:     0.9,
			SourceHint: HintInternal,
		})
	}

	if analysis.HasIntent(IntentCompetitive) || analysis.HasIntent(IntentStrategy) {
		strategies = append(strategies, SearchStrategy{
			Type:       StrategyMarket,
			Query:      "market positioning competitive landscape industry analysis " + question,
			Weight:     0.7,
			SourceHint: HintWeb,
		})
	}

	// One canned query per detected intent, in detection order.
	for _, intent := range analysis.Intents {
		q, ok := intentQueries[intent]
		if !ok {
			q = question
		}
		strategies = append(strategies, SearchStrategy{
			Type:   "intent-" + string(intent),
			Query:  q,
			Weight: 0.6,
		})
	}

	strategies = append(strategies, SearchStrategy{
		Type:   StrategyFallback,
		Query:  broadFallbackQuery(question),
		Weight: 0.5,
	})

	if len(strategies) > maxStrategies {
		strategies = strategies[:maxStrategies]
	}

	return strategies
}

// broadFallbackQuery reduces a question to its first four significant
// keywords: lower-cased, stop-words and short words removed.
func broadFallbackQuery(question string) string {
	words := strings.Fields(strings.ToLower(question))
	keywords := make([]string, 0, 4)
	for _, word := range words {
		if len(word) <= 3 {
			continue
		}
		if _, isStop := fallbackStopwords[word]; isStop {
			continue
		}
		keywords = append(keywords, word)
		if len(keywords) == 4 {
			break
		}
	}
	return strings.Join(keywords, " ")
}
