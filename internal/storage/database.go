package storage

import (
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// New opens a SQLite database connection at the given path.
// It enables foreign keys and sets connection pool settings.
func New(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	// Enable foreign keys (disabled by default in SQLite)
	if _, err := db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		_ = db.Close()
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// Migrate runs database migrations to create the required tables.
// It is idempotent and can be run multiple times safely.
//
// The catalog records which documents have been ingested and which vector
// ids belong to each; chunk content itself lives only in the vector store.
func Migrate(db *sql.DB) error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS documents (
			id TEXT PRIMARY KEY,
			company TEXT NOT NULL,
			filename TEXT NOT NULL,
			source_type TEXT NOT NULL,
			hash TEXT NOT NULL,
			chunk_count INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			UNIQUE (company, filename)
		);`,
		`CREATE TABLE IF NOT EXISTS document_chunks (
			chunk_id TEXT PRIMARY KEY,
			document_id TEXT NOT NULL,
			FOREIGN KEY (document_id) REFERENCES documents(id)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_documents_company ON documents(company);`,
		`CREATE INDEX IF NOT EXISTS idx_document_chunks_document ON document_chunks(document_id);`,
	}

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}

	return nil
}
