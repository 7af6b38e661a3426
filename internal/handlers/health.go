package handlers

import (
	"net/http"

	"investor-rag/internal/contextutil"
	"investor-rag/internal/vectorstore"
)

// HealthHandler reports service liveness and vector store reachability.
type HealthHandler struct {
	store      vectorstore.VectorStore
	collection string
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(store vectorstore.VectorStore, collection string) *HealthHandler {
	return &HealthHandler{store: store, collection: collection}
}

// HealthResponse describes the service health.
type HealthResponse struct {
	Status      string `json:"status"`
	VectorStore string `json:"vectorStore"`
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	resp := HealthResponse{Status: "ok", VectorStore: "ok"}

	exists, err := h.store.CollectionExists(ctx, h.collection)
	if err != nil {
		logger.WarnContext(ctx, "vector store health check failed", "error", err)
		resp.Status = "degraded"
		resp.VectorStore = "unreachable"
	} else if !exists {
		resp.Status = "degraded"
		resp.VectorStore = "collection missing"
	}

	writeJSON(w, http.StatusOK, resp)
}
