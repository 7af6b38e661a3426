package query

import "strings"

// intentOrder fixes the category iteration order so detection order (and
// therefore per-intent strategy order) is deterministic.
var intentOrder = []Intent{
	IntentManagementCommentary,
	IntentFinancialPerformance,
	IntentStrategy,
	IntentCompetitive,
	IntentRisks,
}

// intentPatterns maps each intent to its trigger phrases. Matching is
// case-insensitive substring containment against the lower-cased question.
var intentPatterns = map[Intent][]string{
	IntentManagementCommentary: {
		"management", "ceo", "cfo", "executive", "leadership",
		"commentary", "remarks", "said", "earnings call", "guidance",
	},
	IntentFinancialPerformance: {
		"revenue", "earnings", "profit", "margin", "income",
		"eps", "cash flow", "sales", "ebitda", "growth",
	},
	IntentStrategy: {
		"strategy", "strategic", "roadmap", "initiative",
		"expansion", "long term", "priorities",
	},
	IntentCompetitive: {
		"competitor", "competition", "competitive", "market share",
		"versus", "peers", "rival", "industry",
	},
	IntentRisks: {
		"risk", "threat", "challenge", "headwind",
		"uncertainty", "litigation", "regulatory",
	},
}

// periodBucket pairs a time period with its trigger terms. Buckets are
// checked in declaration order and the first match wins.
type periodBucket struct {
	period TimePeriod
	terms  []string
}

var periodBuckets = []periodBucket{
	{PeriodLatest, []string{"latest", "most recent", "current quarter", "this quarter"}},
	{PeriodQ1, []string{"q1", "first quarter"}},
	{PeriodQ2, []string{"q2", "second quarter"}},
	{PeriodQ3, []string{"q3", "third quarter"}},
	{PeriodQ4, []string{"q4", "fourth quarter"}},
	{PeriodAnnual, []string{"annual", "fiscal year", "full year", "yearly", "10-k"}},
}

// Flag term lists are independent of the intent tables: a flag can be true
// even when no intent matched.
var (
	financialTerms = []string{
		"revenue", "earnings", "profit", "margin", "income", "eps",
		"cash flow", "sales", "ebitda", "financial", "balance sheet",
		"quarter", "guidance",
	}
	internalTerms = []string{
		"management", "internal", "earnings call", "transcript",
		"guidance", "outlook", "commentary", "said", "team",
	}
	forwardLookingTerms = []string{
		"guidance", "outlook", "forecast", "expect", "projection",
		"future", "next quarter", "next year", "target",
	}
)

// confidencePerMatch is the additive weight each matched pattern contributes.
const confidencePerMatch = 0.1

// Analyze classifies a question into intents, a time period, and boolean
// retrieval flags. It is total: any string (including empty) yields a valid
// Analysis and no error path exists.
func Analyze(question string) Analysis {
	lower := strings.ToLower(question)

	analysis := Analysis{}

	for _, intent := range intentOrder {
		matches := 0
		for _, pattern := range intentPatterns[intent] {
			if strings.Contains(lower, pattern) {
				matches++
			}
		}
		if matches > 0 {
			analysis.Intents = append(analysis.Intents, intent)
			analysis.Confidence += confidencePerMatch * float64(matches)
		}
	}

	// First-match-wins over the fixed bucket order; ties between buckets
	// resolve to the earlier bucket.
	for _, bucket := range periodBuckets {
		if containsAny(lower, bucket.terms) {
			analysis.Period = bucket.period
			break
		}
	}

	analysis.IsFinancial = containsAny(lower, financialTerms)
	analysis.NeedsInternal = containsAny(lower, internalTerms)
	analysis.NeedsForwardLooking = containsAny(lower, forwardLookingTerms)

	return analysis
}

func containsAny(text string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}
