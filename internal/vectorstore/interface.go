package vectorstore

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_vector_store.go -package=mocks investor-rag/internal/vectorstore VectorStore

import (
	"context"
	"errors"
)

// ErrStore is returned on vector store connectivity or request failures.
var ErrStore = errors.New("vector store error")

// Record represents a stored vector with metadata.
type Record struct {
	ID   string
	Vec  []float32
	Meta map[string]any
}

// Match represents a scored result from a similarity query.
type Match struct {
	ID    string
	Score float32
	Meta  map[string]any
}

// CollectionStats contains summary information about a collection.
type CollectionStats struct {
	VectorSize       int
	TotalVectorCount int
	Status           string
}

// VectorStore defines the interface for vector storage operations.
// The only filter semantics the application relies on is equality on a
// single "company" field.
type VectorStore interface {
	// Upsert inserts or updates records in the collection.
	Upsert(ctx context.Context, collection string, records []Record) error

	// Query performs a similarity search with an optional equality filter.
	Query(ctx context.Context, collection string, vector []float32, filter map[string]any, topK int) ([]Match, error)

	// Delete removes records by their IDs.
	Delete(ctx context.Context, collection string, ids []string) error

	// CollectionExists checks if a collection exists.
	CollectionExists(ctx context.Context, collection string) (bool, error)

	// Stats returns summary information about a collection.
	Stats(ctx context.Context, collection string) (*CollectionStats, error)
}
