package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyze_EmptyQuestion(t *testing.T) {
	for _, question := range []string{"", "   ", "\t\n"} {
		analysis := Analyze(question)

		assert.Empty(t, analysis.Intents)
		assert.Equal(t, PeriodNone, analysis.Period)
		assert.False(t, analysis.IsFinancial)
		assert.False(t, analysis.NeedsInternal)
		assert.False(t, analysis.NeedsForwardLooking)
		assert.Zero(t, analysis.Confidence)
	}
}

func TestAnalyze_NoDuplicateIntents(t *testing.T) {
	// Every pattern list plus repeated triggers; each intent may appear once.
	question := "management management commentary revenue revenue earnings strategy strategy competitor competitor risk risk"
	analysis := Analyze(question)

	seen := make(map[Intent]bool)
	for _, intent := range analysis.Intents {
		assert.False(t, seen[intent], "intent %s appears twice", intent)
		seen[intent] = true
	}
	assert.LessOrEqual(t, len(analysis.Intents), 5)
}

func TestAnalyze_IntentDetection(t *testing.T) {
	tests := []struct {
		name     string
		question string
		want     []Intent
	}{
		{
			name:     "financial performance",
			question: "What was revenue last quarter?",
			want:     []Intent{IntentFinancialPerformance},
		},
		{
			name:     "management commentary",
			question: "What did the CEO say about leadership changes?",
			want:     []Intent{IntentManagementCommentary},
		},
		{
			name:     "earnings call hits management and financial",
			question: "Summarize the earnings call",
			want:     []Intent{IntentManagementCommentary, IntentFinancialPerformance},
		},
		{
			name:     "competitive and strategy",
			question: "How does our strategy compare versus competitors?",
			want:     []Intent{IntentStrategy, IntentCompetitive},
		},
		{
			name:     "risks",
			question: "What regulatory headwinds does the company face?",
			want:     []Intent{IntentRisks},
		},
		{
			name:     "no intent",
			question: "hello there",
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analysis := Analyze(tt.question)
			assert.Equal(t, tt.want, analysis.Intents)
		})
	}
}

func TestAnalyze_ConfidenceAdditive(t *testing.T) {
	// Three financial-performance patterns: revenue, earnings, margin.
	analysis := Analyze("revenue earnings margin")
	assert.InDelta(t, 0.3, analysis.Confidence, 0.0001)

	// One match adds 0.1.
	single := Analyze("revenue")
	assert.InDelta(t, 0.1, single.Confidence, 0.0001)
}

func TestAnalyze_PeriodFirstMatchWins(t *testing.T) {
	// A question matching both q1 and annual must resolve to q1, the
	// earlier bucket in priority order.
	analysis := Analyze("How did Q1 compare to the fiscal year?")
	assert.Equal(t, PeriodQ1, analysis.Period)

	// latest outranks everything.
	latest := Analyze("the latest Q4 results for the fiscal year")
	assert.Equal(t, PeriodLatest, latest.Period)
}

func TestAnalyze_PeriodDetection(t *testing.T) {
	tests := []struct {
		question string
		want     TimePeriod
	}{
		{"What was revenue in Q3?", PeriodQ3},
		{"second quarter margins", PeriodQ2},
		{"full year outlook", PeriodAnnual},
		{"results from the 10-K", PeriodAnnual},
		{"how is the business doing", PeriodNone},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Analyze(tt.question).Period, "question: %s", tt.question)
	}
}

func TestAnalyze_Flags(t *testing.T) {
	analysis := Analyze("What did management say about guidance?")
	assert.True(t, analysis.NeedsInternal)
	assert.True(t, analysis.NeedsForwardLooking)

	financial := Analyze("What was revenue in Q3?")
	assert.True(t, financial.IsFinancial)
	assert.False(t, financial.NeedsInternal)

	// Flags are independent of intents: "balance sheet" is a financial
	// term but matches no intent pattern.
	flagOnly := Analyze("balance sheet")
	assert.True(t, flagOnly.IsFinancial)
	assert.Empty(t, flagOnly.Intents)
}
