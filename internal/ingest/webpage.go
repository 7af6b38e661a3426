package ingest

import (
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"golang.org/x/net/html"
)

var whitespaceRe = regexp.MustCompile(`[\n\t\r\s\xA0]+`)

// WebPageFetcher downloads a web page and extracts its visible text.
type WebPageFetcher struct {
	client *http.Client
}

// NewWebPageFetcher creates a fetcher with a bounded request timeout.
func NewWebPageFetcher() *WebPageFetcher {
	return &WebPageFetcher{
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

// FetchText downloads the page at url and returns its visible text with
// whitespace collapsed. Script and style content is skipped.
func (f *WebPageFetcher) FetchText(url string) (string, error) {
	resp, err := f.client.Get(url)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status fetching %s: %d", url, resp.StatusCode)
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML from %s: %w", url, err)
	}

	text := extractVisibleText(doc)
	if text == "" {
		return "", fmt.Errorf("no text content extracted from %s", url)
	}
	return text, nil
}

// extractVisibleText walks the parsed document collecting text nodes,
// inserting newlines at block element boundaries.
func extractVisibleText(doc *html.Node) string {
	var b strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "head":
				return
			case "p", "div", "br", "li", "tr", "h1", "h2", "h3", "h4", "h5", "h6", "section", "article":
				b.WriteString("\n")
			}
		}
		if n.Type == html.TextNode {
			text := whitespaceRe.ReplaceAllString(n.Data, " ")
			if strings.TrimSpace(text) != "" {
				b.WriteString(text)
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)

	// Collapse runs of blank lines left by nested block elements.
	lines := strings.Split(b.String(), "\n")
	var kept []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}
