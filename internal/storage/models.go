package storage

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// Document represents an ingested document in the catalog.
// The vector store owns chunk content; the catalog tracks only which
// documents exist and which vector ids belong to them.
type Document struct {
	ID         string    // UUID
	Company    string    // Ticker-like company scope
	Filename   string    // Original filename or URL
	SourceType string    // sec-filing, internal-document, web-content, ...
	Hash       string    // SHA256 hex string of extracted text
	ChunkCount int       // Number of chunks upserted to the vector store
	CreatedAt  time.Time
}
