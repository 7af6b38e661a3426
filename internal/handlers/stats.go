package handlers

import (
	"net/http"

	"investor-rag/internal/storage"
	"investor-rag/internal/vectorstore"
)

// StatsHandler reports collection and catalog statistics.
type StatsHandler struct {
	store      vectorstore.VectorStore
	docs       storage.DocumentStore
	collection string
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(store vectorstore.VectorStore, docs storage.DocumentStore, collection string) *StatsHandler {
	return &StatsHandler{
		store:      store,
		docs:       docs,
		collection: collection,
	}
}

// StatsResponse summarizes the state of the index.
type StatsResponse struct {
	Documents  int             `json:"documents"`
	Collection CollectionStats `json:"collection"`
}

// CollectionStats mirrors the vector store's collection summary.
type CollectionStats struct {
	VectorSize       int    `json:"vectorSize"`
	TotalVectorCount int    `json:"totalVectorCount"`
	Status           string `json:"status"`
}

func (h *StatsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	docCount, err := h.docs.CountAll(ctx)
	if err != nil {
		writeServiceError(ctx, w, err, "Failed to count documents")
		return
	}

	stats, err := h.store.Stats(ctx, h.collection)
	if err != nil {
		writeServiceError(ctx, w, err, "Failed to read collection stats")
		return
	}

	writeJSON(w, http.StatusOK, StatsResponse{
		Documents: docCount,
		Collection: CollectionStats{
			VectorSize:       stats.VectorSize,
			TotalVectorCount: stats.TotalVectorCount,
			Status:           stats.Status,
		},
	})
}
