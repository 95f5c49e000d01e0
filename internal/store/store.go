// Package store persists insight records in SQLite. Records are append-only:
// there is no update or delete, and identifiers are assigned by the database
// exactly once at insert.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when no record holds the requested id.
var ErrNotFound = errors.New("insight record not found")

// InsightRecord is the derived summary plus metadata for one uploaded
// document. UploadDate is an RFC 3339 UTC timestamp; WordCount counts
// whitespace-delimited tokens of the extracted text, not the summary.
type InsightRecord struct {
	ID            int64  `json:"id"`
	Filename      string `json:"filename"`
	UploadDate    string `json:"upload_date"`
	Summary       string `json:"summary"`
	IsAIGenerated bool   `json:"is_ai_generated"`
	WordCount     int    `json:"word_count"`
}

const schema = `
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;

CREATE TABLE IF NOT EXISTS documents (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    filename TEXT NOT NULL,
    upload_date TEXT NOT NULL,
    summary TEXT NOT NULL,
    is_ai_generated BOOLEAN NOT NULL,
    word_count INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_documents_upload_date ON documents(upload_date);
`

// Store wraps the documents table. Connections are pooled by database/sql
// and scoped to a single operation each.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at path and ensures the schema exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Create inserts a new record and returns the assigned id. Every call
// creates a new row; nothing is ever overwritten.
func (s *Store) Create(ctx context.Context, rec InsightRecord) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO documents (filename, upload_date, summary, is_ai_generated, word_count)
		VALUES (?, ?, ?, ?, ?)
	`, rec.Filename, rec.UploadDate, rec.Summary, rec.IsAIGenerated, rec.WordCount)
	if err != nil {
		return 0, fmt.Errorf("insert document: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("read assigned id: %w", err)
	}
	return id, nil
}

// GetByID returns the record with the given id, or ErrNotFound.
func (s *Store) GetByID(ctx context.Context, id int64) (*InsightRecord, error) {
	var rec InsightRecord
	err := s.db.QueryRowContext(ctx, `
		SELECT id, filename, upload_date, summary, is_ai_generated, word_count
		FROM documents WHERE id = ?
	`, id).Scan(&rec.ID, &rec.Filename, &rec.UploadDate, &rec.Summary, &rec.IsAIGenerated, &rec.WordCount)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query document %d: %w", id, err)
	}
	return &rec, nil
}

// ListAll returns every record, newest upload first. An empty store yields
// an empty slice, not an error.
func (s *Store) ListAll(ctx context.Context) ([]InsightRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, filename, upload_date, summary, is_ai_generated, word_count
		FROM documents
		ORDER BY upload_date DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	records := make([]InsightRecord, 0)
	for rows.Next() {
		var rec InsightRecord
		if err := rows.Scan(&rec.ID, &rec.Filename, &rec.UploadDate, &rec.Summary, &rec.IsAIGenerated, &rec.WordCount); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
