package query

// Intent is a question category from the closed classification vocabulary.
type Intent string

const (
	IntentManagementCommentary Intent = "management-commentary"
	IntentFinancialPerformance Intent = "financial-performance"
	IntentStrategy             Intent = "strategy"
	IntentCompetitive          Intent = "competitive"
	IntentRisks                Intent = "risks"
)

// TimePeriod identifies the reporting period a question refers to.
type TimePeriod string

const (
	PeriodNone   TimePeriod = ""
	PeriodLatest TimePeriod = "latest"
	PeriodQ1     TimePeriod = "q1"
	PeriodQ2     TimePeriod = "q2"
	PeriodQ3     TimePeriod = "q3"
	PeriodQ4     TimePeriod = "q4"
	PeriodAnnual TimePeriod = "annual"
)

// Analysis is the immutable result of classifying a question.
// Confidence is an unbounded additive pattern-match score, not a probability.
type Analysis struct {
	Intents             []Intent
	Period              TimePeriod
	IsFinancial         bool
	NeedsInternal       bool
	NeedsForwardLooking bool
	Confidence          float64
}

// HasIntent reports whether the analysis detected the given intent.
func (a Analysis) HasIntent(intent Intent) bool {
	for _, i := range a.Intents {
		if i == intent {
			return true
		}
	}
	return false
}

// SourceHint biases a strategy toward a provenance bucket.
type SourceHint string

const (
	HintNone     SourceHint = ""
	HintSEC      SourceHint = "sec"
	HintInternal SourceHint = "internal"
	HintWeb      SourceHint = "web"
)

// SearchStrategy is one alternate phrasing of the user's question used to
// diversify retrieval.
type SearchStrategy struct {
	Type       string
	Query      string
	Weight     float64
	SourceHint SourceHint
}

// Match is a scored chunk returned by the executor, tagged with the
// strategy that produced it for traceability.
type Match struct {
	ID             string
	Score          float32
	Meta           map[string]any
	StrategyType   string
	StrategyWeight float64
	SourceQuery    string
}

// metaString reads a string field from match metadata, tolerating absence.
func (m Match) metaString(key string) string {
	if m.Meta == nil {
		return ""
	}
	if s, ok := m.Meta[key].(string); ok {
		return s
	}
	return ""
}
