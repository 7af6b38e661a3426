package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/mock/gomock"

	"investor-rag/internal/ingest"
	llm_mocks "investor-rag/internal/llm/mocks"
	"investor-rag/internal/storage"
	storage_mocks "investor-rag/internal/storage/mocks"
	vs_mocks "investor-rag/internal/vectorstore/mocks"
)

func newTestIngestHandler(t *testing.T) (*IngestHandler, *storage_mocks.MockDocumentStore, *llm_mocks.MockEmbedder, *vs_mocks.MockVectorStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	docs := storage_mocks.NewMockDocumentStore(ctrl)
	embedder := llm_mocks.NewMockEmbedder(ctrl)
	store := vs_mocks.NewMockVectorStore(ctrl)

	pipeline := ingest.NewPipeline(docs, embedder, store, "company-documents")
	return NewIngestHandler(pipeline), docs, embedder, store
}

func postJSON(t *testing.T, handlerFunc http.HandlerFunc, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal request: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handlerFunc(rec, req)
	return rec
}

func TestIngestHandler_Document(t *testing.T) {
	handler, docs, embedder, store := newTestIngestHandler(t)

	docs.EXPECT().
		GetByCompanyAndFilename(gomock.Any(), "DEMO", "q3.txt").
		Return(nil, storage.ErrNotFound)
	embedder.EXPECT().
		EmbedTexts(gomock.Any(), gomock.Any()).
		Return([][]float32{{0.1}}, nil)
	docs.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)
	docs.EXPECT().InsertChunkIDs(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	store.EXPECT().Upsert(gomock.Any(), "company-documents", gomock.Any()).Return(nil)

	rec := postJSON(t, handler.Document, "/api/ingest", IngestDocumentRequest{
		Company:    "DEMO",
		Filename:   "q3.txt",
		SourceType: "internal-document",
		Content:    "Revenue grew 12%.",
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", rec.Code, rec.Body.String())
	}

	var result ingest.Result
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if result.ChunkCount != 1 {
		t.Errorf("chunkCount = %d, want 1", result.ChunkCount)
	}
	if result.Skipped {
		t.Error("new document should not be skipped")
	}
}

func TestIngestHandler_Document_Validation(t *testing.T) {
	handler, _, _, _ := newTestIngestHandler(t)

	tests := []struct {
		name string
		req  IngestDocumentRequest
	}{
		{name: "missing company", req: IngestDocumentRequest{Filename: "a.txt", Content: "x"}},
		{name: "missing filename", req: IngestDocumentRequest{Company: "DEMO", Content: "x"}},
		{name: "missing content", req: IngestDocumentRequest{Company: "DEMO", Filename: "a.txt"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(t, handler.Document, "/api/ingest", tt.req)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestIngestHandler_Document_InvalidBody(t *testing.T) {
	handler, _, _, _ := newTestIngestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/ingest", bytes.NewReader([]byte("{")))
	rec := httptest.NewRecorder()
	handler.Document(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestIngestHandler_URL_Validation(t *testing.T) {
	handler, _, _, _ := newTestIngestHandler(t)

	tests := []struct {
		name string
		req  IngestURLRequest
	}{
		{name: "missing company", req: IngestURLRequest{URL: "http://example.com"}},
		{name: "missing url", req: IngestURLRequest{Company: "DEMO"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(t, handler.URL, "/api/ingest/url", tt.req)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}
