// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history persists formatting runs in a local SQLite database
// so earlier reference lists can be recalled and re-exported.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/refformat/pkg/types"
)

// Run is one recorded formatting run.
type Run struct {
	ID          int64     `json:"id" yaml:"id"`
	CreatedAt   time.Time `json:"created_at" yaml:"created_at"`
	Format      string    `json:"format" yaml:"format"`
	EntryCount  int       `json:"entry_count" yaml:"entry_count"`
	WasStripped bool      `json:"was_stripped" yaml:"was_stripped"`
	Plain       string    `json:"plain" yaml:"plain"`
}

// Store manages the run history SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the history database at cfg.DBPath, creating
// the parent directory and schema as needed.
func Open(cfg types.HistoryConfig) (*Store, error) {
	if cfg.DBPath == "" {
		return nil, fmt.Errorf("history: database path not configured")
	}

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	db, err := sql.Open("sqlite3", cfg.DBPath+"?_journal_mode=WAL")
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
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		created_at TEXT NOT NULL,
		format TEXT NOT NULL,
		entry_count INTEGER NOT NULL,
		was_stripped INTEGER NOT NULL,
		plain TEXT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("executing schema statement: %w", err)
	}
	return nil
}

// Record stores one run and returns its assigned ID. A zero CreatedAt
// is filled with the current time.
func (s *Store) Record(ctx context.Context, run Run) (int64, error) {
	created := run.CreatedAt
	if created.IsZero() {
		created = time.Now().UTC()
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (created_at, format, entry_count, was_stripped, plain) VALUES (?, ?, ?, ?, ?)`,
		created.Format(time.RFC3339Nano), run.Format, run.EntryCount, boolToInt(run.WasStripped), run.Plain)
	if err != nil {
		return 0, fmt.Errorf("recording run: %w", err)
	}
	return res.LastInsertId()
}

// List returns the most recent runs, newest first, without the plain
// text payload. limit <= 0 means all runs.
func (s *Store) List(ctx context.Context, limit int) ([]Run, error) {
	query := `SELECT id, created_at, format, entry_count, was_stripped FROM runs ORDER BY id DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows, false)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// Show returns one run by ID, including the plain text payload.
func (s *Store) Show(ctx context.Context, id int64) (Run, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, created_at, format, entry_count, was_stripped, plain FROM runs WHERE id = ?`, id)

	run, err := scanRun(row, true)
	if err == sql.ErrNoRows {
		return Run{}, fmt.Errorf("run %d not found", id)
	}
	if err != nil {
		return Run{}, fmt.Errorf("loading run %d: %w", id, err)
	}
	return run, nil
}

// ExportYAML writes all runs to w as a YAML document, newest first.
func (s *Store) ExportYAML(ctx context.Context, w io.Writer) error {
	runs, err := s.List(ctx, 0)
	if err != nil {
		return err
	}

	for i := range runs {
		full, err := s.Show(ctx, runs[i].ID)
		if err != nil {
			return err
		}
		runs[i] = full
	}

	enc := yaml.NewEncoder(w)
	defer enc.Close()
	if err := enc.Encode(runs); err != nil {
		return fmt.Errorf("encoding history: %w", err)
	}
	return nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner, withPlain bool) (Run, error) {
	var run Run
	var created string
	var stripped int

	dest := []any{&run.ID, &created, &run.Format, &run.EntryCount, &stripped}
	if withPlain {
		dest = append(dest, &run.Plain)
	}
	if err := sc.Scan(dest...); err != nil {
		return Run{}, err
	}

	t, err := time.Parse(time.RFC3339Nano, created)
	if err != nil {
		return Run{}, fmt.Errorf("parsing run timestamp %q: %w", created, err)
	}
	run.CreatedAt = t
	run.WasStripped = stripped != 0
	return run, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
