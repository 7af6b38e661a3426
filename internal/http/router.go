package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"investor-rag/internal/answer"
	"investor-rag/internal/handlers"
	"investor-rag/internal/ingest"
	"investor-rag/internal/marketdata"
	"investor-rag/internal/query"
	"investor-rag/internal/storage"
	"investor-rag/internal/vectorstore"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	Engine      query.Engine
	Synthesizer *answer.Synthesizer
	Pipeline    *ingest.Pipeline
	MarketData  *marketdata.Client
	VectorStore vectorstore.VectorStore
	Documents   storage.DocumentStore
	Collection  string
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	// Add chi middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(LoggerMiddleware)
	r.Use(CORS)

	askHandler := handlers.NewAskHandler(deps.Engine, deps.Synthesizer)
	ingestHandler := handlers.NewIngestHandler(deps.Pipeline)
	statsHandler := handlers.NewStatsHandler(deps.VectorStore, deps.Documents, deps.Collection)
	healthHandler := handlers.NewHealthHandler(deps.VectorStore, deps.Collection)
	marketHandler := handlers.NewMarketHandler(deps.MarketData)

	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodPost, "/ask", askHandler)
		r.Post("/ingest", ingestHandler.Document)
		r.Post("/ingest/url", ingestHandler.URL)
		r.Method(http.MethodGet, "/stats", statsHandler)
		r.Method(http.MethodGet, "/health", healthHandler)
		r.Get("/market/{ticker}", marketHandler.Metrics)
	})

	return r
}
