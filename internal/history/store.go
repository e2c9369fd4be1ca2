// Package history keeps a local log of generations. Writes are best-effort:
// a history failure never fails the invocation that produced the image.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS generations (
    id TEXT PRIMARY KEY,
    prompt TEXT NOT NULL,
    mode TEXT NOT NULL,
    model TEXT NOT NULL,
    aspect_ratio TEXT NOT NULL,
    resolution TEXT NOT NULL,
    reference_count INTEGER NOT NULL DEFAULT 0,
    image_path TEXT NOT NULL,
    metadata_path TEXT,
    created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_generations_created_at ON generations(created_at);
`

type Generation struct {
	ID             string
	Prompt         string
	Mode           string
	Model          string
	AspectRatio    string
	Resolution     string
	ReferenceCount int
	ImagePath      string
	MetadataPath   string
	CreatedAt      time.Time
}

type Store struct {
	db *sql.DB
}

func NewStore() (*Store, error) {
	dbPath, err := DefaultDBPath()
	if err != nil {
		return nil, err
	}
	return NewStoreWithPath(dbPath)
}

func NewStoreWithPath(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &Store{db: db}, nil
}

func DefaultDBPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".genimg", "history.db"), nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Record inserts a generation row, assigning an id and timestamp when the
// caller left them empty.
func (s *Store) Record(ctx context.Context, gen *Generation) error {
	if gen.ID == "" {
		gen.ID = uuid.New().String()
	}
	if gen.CreatedAt.IsZero() {
		gen.CreatedAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO generations (id, prompt, mode, model, aspect_ratio, resolution, reference_count, image_path, metadata_path, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		gen.ID, gen.Prompt, gen.Mode, gen.Model, gen.AspectRatio, gen.Resolution,
		gen.ReferenceCount, gen.ImagePath, nullString(gen.MetadataPath), gen.CreatedAt)
	return err
}

// List returns the most recent generations, newest first.
func (s *Store) List(ctx context.Context, limit int) ([]*Generation, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, prompt, mode, model, aspect_ratio, resolution, reference_count, image_path, metadata_path, created_at
		 FROM generations ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var gens []*Generation
	for rows.Next() {
		gen := &Generation{}
		var metadataPath sql.NullString
		if err := rows.Scan(&gen.ID, &gen.Prompt, &gen.Mode, &gen.Model, &gen.AspectRatio,
			&gen.Resolution, &gen.ReferenceCount, &gen.ImagePath, &metadataPath, &gen.CreatedAt); err != nil {
			return nil, err
		}
		gen.MetadataPath = metadataPath.String
		gens = append(gens, gen)
	}
	return gens, rows.Err()
}

// Count returns the number of recorded generations.
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM generations`).Scan(&count)
	return count, err
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func FormatTimestamp(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}
