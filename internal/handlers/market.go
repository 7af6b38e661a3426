package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"investor-rag/internal/marketdata"
)

// MarketHandler serves cached competitive and valuation metrics.
type MarketHandler struct {
	client *marketdata.Client
}

// NewMarketHandler creates a new MarketHandler.
func NewMarketHandler(client *marketdata.Client) *MarketHandler {
	return &MarketHandler{client: client}
}

// Metrics returns the metric snapshot for the ticker in the URL. The metric
// kind defaults to "valuation" when the query parameter is absent.
func (h *MarketHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ticker := chi.URLParam(r, "ticker")
	if ticker == "" {
		writeError(w, http.StatusBadRequest, "Ticker is required")
		return
	}

	kind := r.URL.Query().Get("kind")
	if kind == "" {
		kind = "valuation"
	}

	data, err := h.client.Metrics(ctx, ticker, kind)
	if err != nil {
		writeServiceError(ctx, w, err, "Failed to fetch market data")
		return
	}

	writeJSON(w, http.StatusOK, data)
}
