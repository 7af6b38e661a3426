package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_document_store.go -package=mocks investor-rag/internal/storage DocumentStore

import (
	"context"
	"database/sql"
	"fmt"
)

// DocumentStore defines the interface for document catalog operations.
type DocumentStore interface {
	// Upsert inserts or replaces a document record.
	// The document.ID must be set (UUID) before calling this method.
	Upsert(ctx context.Context, doc *Document) error
	// GetByCompanyAndFilename gets a document. Returns ErrNotFound if not found.
	GetByCompanyAndFilename(ctx context.Context, company, filename string) (*Document, error)
	// ListByCompany returns all documents for a company, newest first.
	ListByCompany(ctx context.Context, company string) ([]Document, error)
	// CountAll returns the total number of cataloged documents.
	CountAll(ctx context.Context) (int, error)
	// InsertChunkIDs records the vector ids that belong to a document.
	InsertChunkIDs(ctx context.Context, documentID string, chunkIDs []string) error
	// ListChunkIDsByDocument returns all vector ids for a document.
	ListChunkIDsByDocument(ctx context.Context, documentID string) ([]string, error)
	// DeleteChunksByDocument removes the chunk id records for a document.
	DeleteChunksByDocument(ctx context.Context, documentID string) error
}

// DocumentRepo provides methods for document catalog operations.
// It implements the DocumentStore interface.
type DocumentRepo struct {
	db *sql.DB
}

// NewDocumentRepo creates a new DocumentRepo.
func NewDocumentRepo(db *sql.DB) *DocumentRepo {
	return &DocumentRepo{db: db}
}

// Upsert inserts or replaces a document record.
func (r *DocumentRepo) Upsert(ctx context.Context, doc *Document) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO documents (id, company, filename, source_type, hash, chunk_count)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT (company, filename) DO UPDATE SET
		   hash = excluded.hash,
		   chunk_count = excluded.chunk_count,
		   source_type = excluded.source_type`,
		doc.ID, doc.Company, doc.Filename, doc.SourceType, doc.Hash, doc.ChunkCount,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert document: %w", err)
	}
	return nil
}

// GetByCompanyAndFilename gets a document. Returns ErrNotFound if not found.
func (r *DocumentRepo) GetByCompanyAndFilename(ctx context.Context, company, filename string) (*Document, error) {
	var doc Document
	err := r.db.QueryRowContext(ctx,
		`SELECT id, company, filename, source_type, hash, chunk_count, created_at
		 FROM documents WHERE company = ? AND filename = ?`,
		company, filename,
	).Scan(&doc.ID, &doc.Company, &doc.Filename, &doc.SourceType, &doc.Hash, &doc.ChunkCount, &doc.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query document: %w", err)
	}

	return &doc, nil
}

// ListByCompany returns all documents for a company, newest first.
func (r *DocumentRepo) ListByCompany(ctx context.Context, company string) ([]Document, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, company, filename, source_type, hash, chunk_count, created_at
		 FROM documents WHERE company = ? ORDER BY created_at DESC`,
		company,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query documents: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var docs []Document
	for rows.Next() {
		var doc Document
		if err := rows.Scan(&doc.ID, &doc.Company, &doc.Filename, &doc.SourceType, &doc.Hash, &doc.ChunkCount, &doc.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		docs = append(docs, doc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return docs, nil
}

// CountAll returns the total number of cataloged documents.
func (r *DocumentRepo) CountAll(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM documents").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count documents: %w", err)
	}
	return count, nil
}

// InsertChunkIDs records the vector ids that belong to a document.
func (r *DocumentRepo) InsertChunkIDs(ctx context.Context, documentID string, chunkIDs []string) error {
	if len(chunkIDs) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, chunkID := range chunkIDs {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO document_chunks (chunk_id, document_id) VALUES (?, ?)",
			chunkID, documentID,
		); err != nil {
			return fmt.Errorf("failed to insert chunk id: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit chunk ids: %w", err)
	}
	return nil
}

// ListChunkIDsByDocument returns all vector ids for a document.
// Returns an empty slice if no chunks exist (not an error).
func (r *DocumentRepo) ListChunkIDsByDocument(ctx context.Context, documentID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT chunk_id FROM document_chunks WHERE document_id = ?",
		documentID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query chunk ids: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan chunk id: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return ids, nil
}

// DeleteChunksByDocument removes the chunk id records for a document.
// Used when re-ingesting a changed document.
func (r *DocumentRepo) DeleteChunksByDocument(ctx context.Context, documentID string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM document_chunks WHERE document_id = ?", documentID)
	if err != nil {
		return fmt.Errorf("failed to delete chunk ids: %w", err)
	}
	return nil
}
