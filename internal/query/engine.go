package query

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_engine.go -package=mocks investor-rag/internal/query Engine

import (
	"context"
	"fmt"
	"log/slog"

	"investor-rag/internal/llm"
	"investor-rag/internal/vectorstore"
)

// fallbackTopK is the result count for the single-strategy basic search used
// when every expanded strategy fails.
const fallbackTopK = 6

// Engine turns one question into a ranked, source-balanced candidate set.
type Engine interface {
	// Retrieve analyzes the question, fans out retrieval strategies, and
	// returns the balanced result set for the given company scope.
	Retrieve(ctx context.Context, question, company string) (RetrievalResult, error)
}

// RetrievalResult is the engine's output handed to the answer synthesizer.
type RetrievalResult struct {
	Matches      []Match
	Analysis     Analysis
	Strategies   []SearchStrategy
	UsedFallback bool
}

// queryEngine implements Engine as a two-tier pipeline: the multi-strategy
// production path, with an explicit basic-search fallback when the whole
// production path fails.
type queryEngine struct {
	embedder   llm.Embedder
	store      vectorstore.VectorStore
	collection string
	generator  *Generator
	executor   *Executor
	logger     *slog.Logger
}

// NewEngine creates a query intelligence engine.
func NewEngine(embedder llm.Embedder, store vectorstore.VectorStore, collection string) Engine {
	return &queryEngine{
		embedder:   embedder,
		store:      store,
		collection: collection,
		generator:  NewGenerator(),
		executor:   NewExecutor(embedder, store, collection),
		logger:     slog.Default(),
	}
}

// Retrieve runs analyze → generate → execute → balance. When every strategy
// fails it falls back to a basic search on the verbatim question; if that
// also fails the error propagates. Zero matches with no failures is a valid
// outcome, not an error.
func (e *queryEngine) Retrieve(ctx context.Context, question, company string) (RetrievalResult, error) {
	analysis := Analyze(question)
	strategies := e.generator.Generate(question, analysis)

	e.logger.InfoContext(ctx, "retrieval started",
		"company", company,
		"intents", analysis.Intents,
		"period", analysis.Period,
		"strategies", len(strategies),
	)
	for _, s := range strategies {
		e.logger.DebugContext(ctx, "strategy generated",
			"type", s.Type, "weight", s.Weight, "hint", s.SourceHint, "query", s.Query)
	}

	matches, failed := e.executor.Execute(ctx, strategies, company)

	if failed == len(strategies) {
		e.logger.WarnContext(ctx, "all strategies failed, falling back to basic search",
			"company", company, "strategies", len(strategies))

		basic, err := e.basicSearch(ctx, question, company)
		if err != nil {
			return RetrievalResult{}, fmt.Errorf("basic search fallback failed: %w", err)
		}
		return RetrievalResult{
			Matches:      basic,
			Analysis:     analysis,
			Strategies:   strategies,
			UsedFallback: true,
		}, nil
	}

	balanced := Balance(matches, analysis)

	e.logger.InfoContext(ctx, "retrieval completed",
		"company", company,
		"raw_matches", len(matches),
		"balanced", len(balanced),
		"failed_strategies", failed,
	)

	return RetrievalResult{
		Matches:    balanced,
		Analysis:   analysis,
		Strategies: strategies,
	}, nil
}

// basicSearch is the single-strategy fallback: embed the verbatim question
// and query the store directly, with no source balancing.
func (e *queryEngine) basicSearch(ctx context.Context, question, company string) ([]Match, error) {
	vectors, err := e.embedder.EmbedTexts(ctx, []string{question})
	if err != nil {
		return nil, err
	}

	filter := map[string]any{"company": company}
	raw, err := e.store.Query(ctx, e.collection, vectors[0], filter, fallbackTopK)
	if err != nil {
		return nil, err
	}

	matches := make([]Match, 0, len(raw))
	for _, m := range raw {
		matches = append(matches, Match{
			ID:             m.ID,
			Score:          m.Score,
			Meta:           m.Meta,
			StrategyType:   "basic",
			StrategyWeight: 1.0,
			SourceQuery:    question,
		})
	}
	return matches, nil
}
