// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history keeps an optional SQLite log of completed conversions.
// Nothing is written unless the user names a database file.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pdf2text/pkg/types"
)

// Format selects the encoding used by Export.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

const defaultLimit = 20

// timeLayout has a fixed width so timestamps sort correctly as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Store manages the history database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at path, creating parent directories
// and the schema as needed.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS conversions (
			id TEXT PRIMARY KEY,
			input_path TEXT NOT NULL,
			output_path TEXT NOT NULL,
			backend TEXT NOT NULL,
			raw_chars INTEGER NOT NULL,
			content_chars INTEGER NOT NULL,
			converted_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_conversions_converted_at ON conversions(converted_at)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record stores c. An empty ID is replaced with a new UUID and a zero
// ConvertedAt with the current time; the stored values are written back to c.
func (s *Store) Record(ctx context.Context, c *types.Conversion) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.ConvertedAt.IsZero() {
		c.ConvertedAt = time.Now()
	}
	c.ConvertedAt = c.ConvertedAt.UTC()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO conversions (id, input_path, output_path, backend, raw_chars, content_chars, converted_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.InputPath, c.OutputPath, string(c.Backend), c.RawChars, c.ContentChars,
		c.ConvertedAt.Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("recording conversion %s: %w", c.InputPath, err)
	}
	return nil
}

// List returns up to limit conversions, newest first. A limit of zero or less
// uses the default of 20.
func (s *Store) List(ctx context.Context, limit int) ([]types.Conversion, error) {
	if limit <= 0 {
		limit = defaultLimit
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, input_path, output_path, backend, raw_chars, content_chars, converted_at
		 FROM conversions ORDER BY converted_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var out []types.Conversion
	for rows.Next() {
		var (
			c       types.Conversion
			backend string
			at      string
		)
		if err := rows.Scan(&c.ID, &c.InputPath, &c.OutputPath, &backend, &c.RawChars, &c.ContentChars, &at); err != nil {
			return nil, fmt.Errorf("scanning history row: %w", err)
		}
		c.Backend = types.ExtractionBackend(backend)
		c.ConvertedAt, err = time.Parse(timeLayout, at)
		if err != nil {
			return nil, fmt.Errorf("parsing timestamp of %s: %w", c.ID, err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Export writes up to limit conversions to w in the given format.
func (s *Store) Export(ctx context.Context, w io.Writer, format Format, limit int) error {
	records, err := s.List(ctx, limit)
	if err != nil {
		return err
	}
	if records == nil {
		records = []types.Conversion{}
	}

	var data []byte
	switch format {
	case FormatYAML:
		data, err = yaml.Marshal(records)
		if err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
	case FormatJSON:
		data, err = json.MarshalIndent(records, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		data = append(data, '\n')
	default:
		return fmt.Errorf("unsupported export format %q", format)
	}

	_, err = w.Write(data)
	return err
}
