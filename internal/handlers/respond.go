package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"investor-rag/internal/contextutil"
	"investor-rag/internal/llm"
	"investor-rag/internal/vectorstore"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, ErrorResponse{Error: message})
}

// writeServiceError maps pipeline errors to HTTP status codes: vector store
// failures are 503, embedding and completion failures are 502, anything else
// is 500.
func writeServiceError(ctx context.Context, w http.ResponseWriter, err error, defaultMsg string) {
	logger := contextutil.LoggerFromContext(ctx)
	logger.ErrorContext(ctx, "request failed", "error", err)

	switch {
	case errors.Is(err, vectorstore.ErrStore):
		writeError(w, http.StatusServiceUnavailable, "Vector store unavailable")
	case errors.Is(err, llm.ErrEmbedding), errors.Is(err, llm.ErrCompletion):
		writeError(w, http.StatusBadGateway, "External service error")
	default:
		writeError(w, http.StatusInternalServerError, defaultMsg)
	}
}
