package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/mock/gomock"

	"investor-rag/internal/answer"
	"investor-rag/internal/ingest"
	llm_mocks "investor-rag/internal/llm/mocks"
	"investor-rag/internal/marketdata"
	query_mocks "investor-rag/internal/query/mocks"
	storage_mocks "investor-rag/internal/storage/mocks"
	vs_mocks "investor-rag/internal/vectorstore/mocks"
)

func newTestRouter(t *testing.T) (http.Handler, *vs_mocks.MockVectorStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	engine := query_mocks.NewMockEngine(ctrl)
	completer := llm_mocks.NewMockCompleter(ctrl)
	embedder := llm_mocks.NewMockEmbedder(ctrl)
	docs := storage_mocks.NewMockDocumentStore(ctrl)
	store := vs_mocks.NewMockVectorStore(ctrl)

	router := NewRouter(&Deps{
		Engine:      engine,
		Synthesizer: answer.NewSynthesizer(completer),
		Pipeline:    ingest.NewPipeline(docs, embedder, store, "company-documents"),
		MarketData:  marketdata.NewClient("http://localhost:1"),
		VectorStore: store,
		Documents:   docs,
		Collection:  "company-documents",
	})
	return router, store
}

func TestRouter_HealthRoute(t *testing.T) {
	router, store := newTestRouter(t)

	store.EXPECT().CollectionExists(gomock.Any(), "company-documents").Return(true, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("GET /api/health status = %d, want 200", rec.Code)
	}
}

func TestRouter_UnknownRoute(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/unknown", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("GET /api/unknown status = %d, want 404", rec.Code)
	}
}

func TestRouter_PreflightHandled(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/ask", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("OPTIONS /api/ask status = %d, want 204", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("preflight response missing CORS headers")
	}
}

func TestRouter_AskValidation(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/ask", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("POST /api/ask with empty body status = %d, want 400", rec.Code)
	}
}
