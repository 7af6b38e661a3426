package handlers

import (
	"encoding/json"
	"net/http"

	"investor-rag/internal/answer"
	"investor-rag/internal/contextutil"
	"investor-rag/internal/query"
)

// AskHandler handles investor Q&A requests.
type AskHandler struct {
	engine      query.Engine
	synthesizer *answer.Synthesizer
}

// NewAskHandler creates a new AskHandler.
func NewAskHandler(engine query.Engine, synthesizer *answer.Synthesizer) *AskHandler {
	return &AskHandler{
		engine:      engine,
		synthesizer: synthesizer,
	}
}

// AskRequest represents the HTTP request payload for questions.
type AskRequest struct {
	Question string `json:"question"`
	Company  string `json:"company"`
}

// ServeHTTP answers a natural-language question scoped to one company.
// The response carries the answer text, deduplicated source labels and a
// confidence indicator.
func (h *AskHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Question == "" {
		writeError(w, http.StatusBadRequest, "Question is required")
		return
	}
	if req.Company == "" {
		writeError(w, http.StatusBadRequest, "Company is required")
		return
	}

	result, err := h.engine.Retrieve(ctx, req.Question, req.Company)
	if err != nil {
		writeServiceError(ctx, w, err, "Failed to retrieve documents")
		return
	}

	ans, err := h.synthesizer.Synthesize(ctx, result.Matches, req.Question, req.Company)
	if err != nil {
		writeServiceError(ctx, w, err, "Failed to generate answer")
		return
	}

	// Fallback retrieval skips strategy expansion and balancing, so the
	// answer is less grounded than the production path's.
	if result.UsedFallback {
		ans.Confidence = answer.ConfidenceLow
	}

	writeJSON(w, http.StatusOK, ans)
}
