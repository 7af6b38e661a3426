package marketdata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"
)

// cacheTTL bounds how stale a cached metric snapshot may be.
const cacheTTL = time.Hour

// Client fetches competitive and valuation metrics from an external market
// data service, with a read-through cache keyed by (ticker, metric kind).
// Concurrent lookups for the same key may fetch twice; the last writer wins.
type Client struct {
	baseURL    string
	httpClient *http.Client
	now        func() time.Time

	mu    sync.Mutex
	cache map[cacheKey]cacheEntry
}

type cacheKey struct {
	ticker string
	kind   string
}

type cacheEntry struct {
	data      map[string]any
	expiresAt time.Time
}

// NewClient creates a market data client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		now:   time.Now,
		cache: make(map[cacheKey]cacheEntry),
	}
}

// Metrics returns the metric snapshot for a ticker and metric kind
// (e.g. "valuation", "peers"). Fresh cached entries are served without a
// network call.
func (c *Client) Metrics(ctx context.Context, ticker, kind string) (map[string]any, error) {
	if ticker == "" || kind == "" {
		return nil, fmt.Errorf("ticker and metric kind are required")
	}

	key := cacheKey{ticker: ticker, kind: kind}

	c.mu.Lock()
	entry, ok := c.cache[key]
	c.mu.Unlock()
	if ok && c.now().Before(entry.expiresAt) {
		return entry.data, nil
	}

	data, err := c.fetch(ctx, ticker, kind)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.cache[key] = cacheEntry{data: data, expiresAt: c.now().Add(cacheTTL)}
	c.mu.Unlock()

	return data, nil
}

func (c *Client) fetch(ctx context.Context, ticker, kind string) (map[string]any, error) {
	reqURL := fmt.Sprintf("%s/v1/metrics/%s?kind=%s",
		c.baseURL, url.PathEscape(ticker), url.QueryEscape(kind))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create metrics request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch metrics for %s: %w", ticker, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("metrics request for %s returned status %d", ticker, resp.StatusCode)
	}

	var data map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode metrics response: %w", err)
	}

	return data, nil
}
