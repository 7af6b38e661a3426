package ingest

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"investor-rag/internal/contextutil"
	"investor-rag/internal/llm"
	"investor-rag/internal/storage"
	"investor-rag/internal/vectorstore"
)

// DocumentInput describes a document submitted for ingestion.
type DocumentInput struct {
	Company            string
	Filename           string
	SourceType         string // sec-filing, internal-document, web-content, ...
	Source             string // human-readable source label, e.g. "SEC Filing: 10-Q"
	DocumentType       string
	Content            string
	Markdown           bool // flatten markdown syntax before chunking
	Incognito          bool
	SellSideAnonymized bool
}

// Result summarizes an ingestion run for one document.
type Result struct {
	DocumentID string `json:"documentId"`
	ChunkCount int    `json:"chunkCount"`
	Skipped    bool   `json:"skipped"`
}

// Pipeline orchestrates document ingestion: extract, chunk, embed, upsert.
// The vector store owns chunk content; the catalog tracks document records
// and vector ids so that re-ingestion can replace prior chunks.
type Pipeline struct {
	docs       storage.DocumentStore
	embedder   llm.Embedder
	store      vectorstore.VectorStore
	collection string
	chunker    *Chunker
	fetcher    *WebPageFetcher
	now        func() time.Time
}

// NewPipeline creates a new ingestion pipeline.
func NewPipeline(
	docs storage.DocumentStore,
	embedder llm.Embedder,
	store vectorstore.VectorStore,
	collection string,
) *Pipeline {
	return &Pipeline{
		docs:       docs,
		embedder:   embedder,
		store:      store,
		collection: collection,
		chunker:    NewChunker(),
		fetcher:    NewWebPageFetcher(),
		now:        time.Now,
	}
}

// IngestDocument chunks, embeds and stores a document under fresh chunk ids.
// Unchanged re-uploads (same content hash) are skipped. Re-ingesting changed
// content removes the prior chunks from the vector store first.
func (p *Pipeline) IngestDocument(ctx context.Context, input DocumentInput) (*Result, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if input.Company == "" || input.Filename == "" || input.Content == "" {
		return nil, fmt.Errorf("company, filename and content are required")
	}
	if input.SourceType == "" {
		input.SourceType = "other"
	}

	hash := sha256.Sum256([]byte(input.Content))
	hashHex := fmt.Sprintf("%x", hash)

	existing, err := p.docs.GetByCompanyAndFilename(ctx, input.Company, input.Filename)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing document: %w", err)
	}

	if existing != nil && existing.Hash == hashHex {
		logger.DebugContext(ctx, "skipping unchanged document",
			"company", input.Company, "filename", input.Filename, "hash", hashHex)
		return &Result{DocumentID: existing.ID, ChunkCount: existing.ChunkCount, Skipped: true}, nil
	}

	var chunks []string
	if input.Markdown {
		chunks = p.chunker.ChunkMarkdown([]byte(input.Content))
	} else {
		chunks = p.chunker.Chunk(input.Content)
	}
	if len(chunks) == 0 {
		return nil, fmt.Errorf("no chunks generated for %s", input.Filename)
	}

	embeddings, err := p.embedder.EmbedTexts(ctx, chunks)
	if err != nil {
		return nil, fmt.Errorf("failed to embed chunks: %w", err)
	}
	if len(embeddings) != len(chunks) {
		return nil, fmt.Errorf("embedding count mismatch: expected %d, got %d", len(chunks), len(embeddings))
	}

	documentID := uuid.New().String()
	if existing != nil {
		documentID = existing.ID

		// Remove the prior version's chunks before upserting the new ones.
		oldChunkIDs, err := p.docs.ListChunkIDsByDocument(ctx, documentID)
		if err != nil {
			return nil, fmt.Errorf("failed to list old chunk ids: %w", err)
		}
		if len(oldChunkIDs) > 0 {
			if err := p.store.Delete(ctx, p.collection, oldChunkIDs); err != nil {
				logger.WarnContext(ctx, "failed to delete old chunks from vector store",
					"error", err, "count", len(oldChunkIDs))
			}
			if err := p.docs.DeleteChunksByDocument(ctx, documentID); err != nil {
				return nil, fmt.Errorf("failed to delete old chunk ids: %w", err)
			}
		}
	}

	uploadDate := p.now().UTC().Format(time.RFC3339)

	records := make([]vectorstore.Record, len(chunks))
	chunkIDs := make([]string, len(chunks))
	for i, chunk := range chunks {
		chunkID := uuid.New().String()
		chunkIDs[i] = chunkID

		records[i] = vectorstore.Record{
			ID:  chunkID,
			Vec: embeddings[i],
			Meta: map[string]any{
				"company":            input.Company,
				"source":             sourceLabel(input),
				"sourceType":         input.SourceType,
				"content":            chunk,
				"documentType":       input.DocumentType,
				"uploadDate":         uploadDate,
				"originalFilename":   input.Filename,
				"chunkIndex":         i,
				"incognito":          input.Incognito,
				"sellSideAnonymized": input.SellSideAnonymized,
			},
		}
	}

	doc := &storage.Document{
		ID:         documentID,
		Company:    input.Company,
		Filename:   input.Filename,
		SourceType: input.SourceType,
		Hash:       hashHex,
		ChunkCount: len(chunks),
	}
	if err := p.docs.Upsert(ctx, doc); err != nil {
		return nil, fmt.Errorf("failed to upsert document record: %w", err)
	}
	if err := p.docs.InsertChunkIDs(ctx, documentID, chunkIDs); err != nil {
		return nil, fmt.Errorf("failed to record chunk ids: %w", err)
	}

	if err := p.store.Upsert(ctx, p.collection, records); err != nil {
		return nil, fmt.Errorf("failed to upsert vectors: %w", err)
	}

	logger.InfoContext(ctx, "ingested document",
		"company", input.Company, "filename", input.Filename,
		"source_type", input.SourceType, "chunks", len(chunks))

	return &Result{DocumentID: documentID, ChunkCount: len(chunks)}, nil
}

// IngestURL fetches a web page and ingests its visible text as web-content.
func (p *Pipeline) IngestURL(ctx context.Context, company, url string) (*Result, error) {
	if company == "" || url == "" {
		return nil, fmt.Errorf("company and url are required")
	}

	text, err := p.fetcher.FetchText(url)
	if err != nil {
		return nil, fmt.Errorf("failed to extract web page: %w", err)
	}

	return p.IngestDocument(ctx, DocumentInput{
		Company:    company,
		Filename:   url,
		SourceType: "web-content",
		Source:     "Web: " + url,
		Content:    text,
	})
}

// sourceLabel returns the label stored with each chunk. An explicit label
// wins; otherwise one is derived from the source type and filename.
func sourceLabel(input DocumentInput) string {
	if input.Source != "" {
		return input.Source
	}
	switch input.SourceType {
	case "sec-filing":
		return "SEC Filing: " + input.Filename
	case "internal-document":
		return "Internal Document: " + input.Filename
	case "web-content":
		return "Web: " + input.Filename
	default:
		return input.Filename
	}
}
