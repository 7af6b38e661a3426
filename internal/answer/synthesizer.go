package answer

import (
	"context"
	"fmt"
	"strings"

	"investor-rag/internal/contextutil"
	"investor-rag/internal/llm"
	"investor-rag/internal/query"
)

// Confidence signals how well-grounded an answer is.
const (
	ConfidenceLow  = "low"
	ConfidenceHigh = "high"
)

const noResultsAnswer = "I couldn't find any information about that in the available documents for this company."

// Answer is the synthesized response for one question.
type Answer struct {
	Text       string   `json:"answer"`
	Sources    []string `json:"sources"`
	Confidence string   `json:"confidence"`
}

// Synthesizer formats retrieved chunks into a prompt and asks the completion
// gateway for a final answer.
type Synthesizer struct {
	completer llm.Completer
}

// NewSynthesizer creates an answer synthesizer.
func NewSynthesizer(completer llm.Completer) *Synthesizer {
	return &Synthesizer{completer: completer}
}

// Synthesize generates an answer from the balanced result set. Zero matches
// is a valid input and yields a low-confidence "no information found" answer
// without calling the completion gateway. A completion failure propagates;
// it is not retried.
func (s *Synthesizer) Synthesize(ctx context.Context, matches []query.Match, question, company string) (Answer, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if len(matches) == 0 {
		logger.InfoContext(ctx, "no matches to synthesize from", "company", company)
		return Answer{
			Text:       noResultsAnswer,
			Sources:    []string{},
			Confidence: ConfidenceLow,
		}, nil
	}

	var contextBuilder strings.Builder
	contextBuilder.WriteString("--- Context from company documents ---\n\n")

	sources := make([]string, 0, len(matches))
	seenSources := make(map[string]bool, len(matches))

	for _, m := range matches {
		label := sourceLabel(m)
		content := metaString(m, "content")

		if metaString(m, "sourceType") == "internal-document" {
			contextBuilder.WriteString(fmt.Sprintf("[Source: %s] (proprietary, may contain forward-looking statements)\n", label))
		} else {
			contextBuilder.WriteString(fmt.Sprintf("[Source: %s]\n", label))
		}
		contextBuilder.WriteString(content)
		contextBuilder.WriteString("\n\n")

		if !seenSources[label] {
			seenSources[label] = true
			sources = append(sources, label)
		}
	}

	contextBuilder.WriteString("--- End Context ---")

	prompt := fmt.Sprintf(
		"You are an investor-relations assistant for %s. Answer the question using only the "+
			"information in the context below. If the context doesn't contain enough information, "+
			"say so. Treat content marked proprietary as confidential company material.\n\n"+
			"Question: %s\n\n%s",
		company, question, contextBuilder.String(),
	)

	logger.InfoContext(ctx, "sending prompt to completion gateway",
		"company", company,
		"chunks", len(matches),
		"prompt_length", len(prompt),
	)

	text, err := s.completer.Complete(ctx, prompt, llm.ChatParams{
		MaxTokens:   700,
		Temperature: 0.3,
	})
	if err != nil {
		logger.ErrorContext(ctx, "completion failed", "error", err)
		return Answer{}, fmt.Errorf("failed to generate answer: %w", err)
	}

	return Answer{
		Text:       text,
		Sources:    sources,
		Confidence: ConfidenceHigh,
	}, nil
}

// sourceLabel derives a human-readable label for a match, preferring the
// explicit source label over the original filename.
func sourceLabel(m query.Match) string {
	if label := metaString(m, "source"); label != "" {
		return label
	}
	if filename := metaString(m, "originalFilename"); filename != "" {
		return filename
	}
	if sourceType := metaString(m, "sourceType"); sourceType != "" {
		return sourceType
	}
	return "Unknown source"
}

func metaString(m query.Match, key string) string {
	if m.Meta == nil {
		return ""
	}
	if s, ok := m.Meta[key].(string); ok {
		return s
	}
	return ""
}
