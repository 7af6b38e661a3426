package answer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"investor-rag/internal/llm"
	llm_mocks "investor-rag/internal/llm/mocks"
	"investor-rag/internal/query"
)

func TestSynthesize_NoMatches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// The completion gateway must not be called for an empty result set.
	completer := llm_mocks.NewMockCompleter(ctrl)
	s := NewSynthesizer(completer)

	answer, err := s.Synthesize(context.Background(), nil, "What was revenue?", "DEMO")
	if err != nil {
		t.Fatalf("Synthesize() unexpected error: %v", err)
	}

	if answer.Confidence != ConfidenceLow {
		t.Errorf("confidence = %q, want %q", answer.Confidence, ConfidenceLow)
	}
	if len(answer.Sources) != 0 {
		t.Errorf("expected no sources, got %v", answer.Sources)
	}
	if !strings.Contains(answer.Text, "couldn't find") {
		t.Errorf("expected a no-information answer, got %q", answer.Text)
	}
}

func TestSynthesize_BuildsContextAndSources(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	completer := llm_mocks.NewMockCompleter(ctrl)

	matches := []query.Match{
		{ID: "c1", Score: 0.9, Meta: map[string]any{
			"source":     "SEC Filing: 10-Q",
			"sourceType": "sec-filing",
			"content":    "Revenue: $2.5 billion",
		}},
		{ID: "c2", Score: 0.8, Meta: map[string]any{
			"source":     "Internal Document: earnings call",
			"sourceType": "internal-document",
			"content":    "We expect continued growth next quarter.",
		}},
		{ID: "c3", Score: 0.7, Meta: map[string]any{
			"source":     "SEC Filing: 10-Q",
			"sourceType": "sec-filing",
			"content":    "Operating margin improved.",
		}},
	}

	var gotPrompt string
	completer.EXPECT().
		Complete(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, prompt string, _ llm.ChatParams) (string, error) {
			gotPrompt = prompt
			return "Revenue was $2.5 billion.", nil
		})

	s := NewSynthesizer(completer)
	answer, err := s.Synthesize(context.Background(), matches, "What was revenue?", "DEMO")
	if err != nil {
		t.Fatalf("Synthesize() unexpected error: %v", err)
	}

	if answer.Confidence != ConfidenceHigh {
		t.Errorf("confidence = %q, want %q", answer.Confidence, ConfidenceHigh)
	}

	// Sources are deduplicated and ordered by first occurrence.
	wantSources := []string{"SEC Filing: 10-Q", "Internal Document: earnings call"}
	if len(answer.Sources) != len(wantSources) {
		t.Fatalf("sources = %v, want %v", answer.Sources, wantSources)
	}
	for i, want := range wantSources {
		if answer.Sources[i] != want {
			t.Errorf("sources[%d] = %q, want %q", i, answer.Sources[i], want)
		}
	}

	if !strings.Contains(gotPrompt, "Revenue: $2.5 billion") {
		t.Error("prompt missing chunk content")
	}
	if !strings.Contains(gotPrompt, "proprietary") {
		t.Error("internal-document content should be tagged proprietary")
	}
	if !strings.Contains(gotPrompt, "What was revenue?") {
		t.Error("prompt missing question")
	}
}

func TestSynthesize_CompletionFailurePropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	completer := llm_mocks.NewMockCompleter(ctrl)
	completer.EXPECT().
		Complete(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", llm.ErrCompletion)

	matches := []query.Match{
		{ID: "c1", Score: 0.9, Meta: map[string]any{"source": "SEC Filing: 10-Q", "content": "text"}},
	}

	s := NewSynthesizer(completer)
	_, err := s.Synthesize(context.Background(), matches, "question", "DEMO")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, llm.ErrCompletion) {
		t.Errorf("error should wrap ErrCompletion, got %v", err)
	}
}

func TestSourceLabel_Fallbacks(t *testing.T) {
	tests := []struct {
		name  string
		match query.Match
		want  string
	}{
		{
			name:  "explicit source label",
			match: query.Match{Meta: map[string]any{"source": "SEC Filing: 10-K"}},
			want:  "SEC Filing: 10-K",
		},
		{
			name:  "filename fallback",
			match: query.Match{Meta: map[string]any{"originalFilename": "board-deck.md"}},
			want:  "board-deck.md",
		},
		{
			name:  "source type fallback",
			match: query.Match{Meta: map[string]any{"sourceType": "web-content"}},
			want:  "web-content",
		},
		{
			name:  "no metadata",
			match: query.Match{},
			want:  "Unknown source",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sourceLabel(tt.match); got != tt.want {
				t.Errorf("sourceLabel() = %q, want %q", got, tt.want)
			}
		})
	}
}
