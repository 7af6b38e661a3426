package handlers

import (
	"encoding/json"
	"net/http"

	"investor-rag/internal/contextutil"
	"investor-rag/internal/ingest"
)

// IngestHandler handles document and URL ingestion requests.
type IngestHandler struct {
	pipeline *ingest.Pipeline
}

// NewIngestHandler creates a new IngestHandler.
func NewIngestHandler(pipeline *ingest.Pipeline) *IngestHandler {
	return &IngestHandler{pipeline: pipeline}
}

// IngestDocumentRequest represents the JSON document upload payload.
type IngestDocumentRequest struct {
	Company            string `json:"company"`
	Filename           string `json:"filename"`
	SourceType         string `json:"sourceType"`
	Source             string `json:"source,omitempty"`
	DocumentType       string `json:"documentType,omitempty"`
	Content            string `json:"content"`
	Markdown           bool   `json:"markdown,omitempty"`
	Incognito          bool   `json:"incognito,omitempty"`
	SellSideAnonymized bool   `json:"sellSideAnonymized,omitempty"`
}

// IngestURLRequest represents the URL ingestion payload.
type IngestURLRequest struct {
	Company string `json:"company"`
	URL     string `json:"url"`
}

// Document ingests a JSON document upload.
func (h *IngestHandler) Document(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req IngestDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Company == "" || req.Filename == "" || req.Content == "" {
		writeError(w, http.StatusBadRequest, "Company, filename and content are required")
		return
	}

	result, err := h.pipeline.IngestDocument(ctx, ingest.DocumentInput{
		Company:            req.Company,
		Filename:           req.Filename,
		SourceType:         req.SourceType,
		Source:             req.Source,
		DocumentType:       req.DocumentType,
		Content:            req.Content,
		Markdown:           req.Markdown,
		Incognito:          req.Incognito,
		SellSideAnonymized: req.SellSideAnonymized,
	})
	if err != nil {
		writeServiceError(ctx, w, err, "Failed to ingest document")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// URL fetches a web page and ingests its text content.
func (h *IngestHandler) URL(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req IngestURLRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Company == "" || req.URL == "" {
		writeError(w, http.StatusBadRequest, "Company and url are required")
		return
	}

	result, err := h.pipeline.IngestURL(ctx, req.Company, req.URL)
	if err != nil {
		writeServiceError(ctx, w, err, "Failed to ingest URL")
		return
	}

	writeJSON(w, http.StatusOK, result)
}
