package ingest

import (
	"strings"
	"unicode/utf8"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

const (
	// chunkSize is the window size in runes (targets ~450 tokens for a
	// 512-token embedding model).
	chunkSize = 700

	// chunkOverlap carries trailing context into the next window so that
	// sentences cut at a boundary still retrieve.
	chunkOverlap = 100
)

// Chunker splits extracted document text into embedding-sized pieces using a
// fixed-size sliding window with boundary snapping. Markdown input is
// flattened to plain text first so that syntax markers do not pollute
// embeddings.
type Chunker struct {
	parser goldmark.Markdown
}

// NewChunker creates a new chunker.
func NewChunker() *Chunker {
	return &Chunker{
		parser: goldmark.New(
			goldmark.WithExtensions(extension.Table),
		),
	}
}

// Chunk splits text into windows of at most chunkSize runes. Window ends are
// snapped to the nearest boundary inside the window, preferring paragraph
// breaks, then newlines, then sentence ends. Consecutive windows overlap by
// up to chunkOverlap runes.
func (c *Chunker) Chunk(content string) []string {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil
	}

	runes := []rune(content)
	if len(runes) <= chunkSize {
		return []string{content}
	}

	var chunks []string
	start := 0

	for start < len(runes) {
		end := start + chunkSize
		if end >= len(runes) {
			tail := strings.TrimSpace(string(runes[start:]))
			if tail != "" {
				chunks = append(chunks, tail)
			}
			break
		}

		window := string(runes[start:end])
		splitPoint := end
		if boundary := strings.LastIndex(window, "\n\n"); boundary != -1 {
			splitPoint = start + utf8.RuneCountInString(window[:boundary]) + 2
		} else if boundary := strings.LastIndex(window, "\n"); boundary != -1 {
			splitPoint = start + utf8.RuneCountInString(window[:boundary]) + 1
		} else if boundary := strings.LastIndex(window, ". "); boundary != -1 {
			splitPoint = start + utf8.RuneCountInString(window[:boundary]) + 2
		}

		chunk := strings.TrimSpace(string(runes[start:splitPoint]))
		if chunk != "" {
			chunks = append(chunks, chunk)
		}

		// Slide back for overlap, but always make forward progress.
		next := splitPoint - chunkOverlap
		if next <= start {
			next = splitPoint
		}
		start = next
	}

	return chunks
}

// ChunkMarkdown flattens markdown to plain text and chunks the result.
func (c *Chunker) ChunkMarkdown(content []byte) []string {
	return c.Chunk(c.flatten(content))
}

// flatten renders a markdown document as plain text, dropping syntax markers
// and keeping block boundaries as newlines.
func (c *Chunker) flatten(content []byte) string {
	if len(content) == 0 {
		return ""
	}

	reader := text.NewReader(content)
	doc := c.parser.Parser().Parse(reader)

	var b strings.Builder

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Text:
			b.Write(node.Segment.Value(content))
			if node.SoftLineBreak() || node.HardLineBreak() {
				b.WriteString("\n")
			}
		case *ast.String:
			b.Write(node.Value)
		case *ast.CodeBlock:
			writeBlockBreak(&b)
			lines := node.Lines()
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				b.Write(seg.Value(content))
			}
		case *ast.FencedCodeBlock:
			writeBlockBreak(&b)
			lines := node.Lines()
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				b.Write(seg.Value(content))
			}
		case *ast.Heading, *ast.Paragraph, *ast.ListItem:
			writeBlockBreak(&b)
		default:
			// Table rows from the extension render one row per line.
			kindName := n.Kind().String()
			if kindName == "TableRow" || kindName == "TableHeader" {
				writeBlockBreak(&b)
			}
		}
		return ast.WalkContinue, nil
	})

	return strings.TrimSpace(b.String())
}

func writeBlockBreak(b *strings.Builder) {
	s := b.String()
	if len(s) > 0 && !strings.HasSuffix(s, "\n") {
		b.WriteString("\n")
	}
}
