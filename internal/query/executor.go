package query

import (
	"context"
	"sync"

	"investor-rag/internal/contextutil"
	"investor-rag/internal/llm"
	"investor-rag/internal/vectorstore"
)

// perStrategyTopK is how many matches each strategy requests from the store.
const perStrategyTopK = 4

// Executor runs every strategy against the vector store and aggregates the
// tagged matches.
type Executor struct {
	embedder   llm.Embedder
	store      vectorstore.VectorStore
	collection string
}

// NewExecutor creates a multi-strategy executor.
func NewExecutor(embedder llm.Embedder, store vectorstore.VectorStore, collection string) *Executor {
	return &Executor{
		embedder:   embedder,
		store:      store,
		collection: collection,
	}
}

// Execute fans out one embed+query round trip per strategy and returns the
// flat aggregate of matches, each tagged with its originating strategy.
// A failure in one strategy is logged and contributes zero matches; it never
// aborts the other strategies. The returned failure count lets the caller
// detect total failure (failed == len(strategies)).
//
// All completions are collected before returning; the balancer never sees a
// partial result set.
func (e *Executor) Execute(ctx context.Context, strategies []SearchStrategy, company string) (matches []Match, failed int) {
	logger := contextutil.LoggerFromContext(ctx)

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)

	for _, strategy := range strategies {
		wg.Add(1)
		go func(strategy SearchStrategy) {
			defer wg.Done()

			results, err := e.runStrategy(ctx, strategy, company)
			if err != nil {
				logger.WarnContext(ctx, "strategy failed",
					"strategy", strategy.Type,
					"company", company,
					"error", err,
				)
				mu.Lock()
				failed++
				mu.Unlock()
				return
			}

			mu.Lock()
			matches = append(matches, results...)
			mu.Unlock()
		}(strategy)
	}

	wg.Wait()

	logger.InfoContext(ctx, "strategy execution completed",
		"strategies", len(strategies),
		"failed", failed,
		"matches", len(matches),
	)
	return matches, failed
}

// runStrategy embeds one strategy query and searches the store scoped to the
// company, tagging every match with the strategy that produced it.
func (e *Executor) runStrategy(ctx context.Context, strategy SearchStrategy, company string) ([]Match, error) {
	vectors, err := e.embedder.EmbedTexts(ctx, []string{strategy.Query})
	if err != nil {
		return nil, err
	}

	filter := map[string]any{"company": company}
	raw, err := e.store.Query(ctx, e.collection, vectors[0], filter, perStrategyTopK)
	if err != nil {
		return nil, err
	}

	results := make([]Match, 0, len(raw))
	for _, m := range raw {
		results = append(results, Match{
			ID:             m.ID,
			Score:          m.Score,
			Meta:           m.Meta,
			StrategyType:   strategy.Type,
			StrategyWeight: strategy.Weight,
			SourceQuery:    strategy.Query,
		})
	}
	return results, nil
}
