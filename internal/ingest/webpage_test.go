package ingest

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestWebPageFetcher_FetchText(t *testing.T) {
	page := `<html>
<head><title>IR Page</title><style>body { color: red; }</style></head>
<body>
<script>console.log("tracking");</script>
<h1>Investor Relations</h1>
<p>Revenue was $2.5 billion in the third quarter.</p>
<div>Guidance raised for the full year.</div>
</body>
</html>`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(page))
	}))
	defer server.Close()

	fetcher := NewWebPageFetcher()
	got, err := fetcher.FetchText(server.URL)
	if err != nil {
		t.Fatalf("FetchText() error = %v", err)
	}

	for _, want := range []string{"Investor Relations", "Revenue was $2.5 billion", "Guidance raised"} {
		if !strings.Contains(got, want) {
			t.Errorf("FetchText() missing %q in %q", want, got)
		}
	}
	for _, unwanted := range []string{"console.log", "color: red", "IR Page"} {
		if strings.Contains(got, unwanted) {
			t.Errorf("FetchText() should strip %q, got %q", unwanted, got)
		}
	}
}

func TestWebPageFetcher_FetchText_Non200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	fetcher := NewWebPageFetcher()
	if _, err := fetcher.FetchText(server.URL); err == nil {
		t.Error("FetchText() expected error for 404 response")
	}
}

func TestWebPageFetcher_FetchText_Unreachable(t *testing.T) {
	fetcher := NewWebPageFetcher()
	if _, err := fetcher.FetchText("http://127.0.0.1:1"); err == nil {
		t.Error("FetchText() expected error for unreachable host")
	}
}
