// Package sqlite implements [store.Store] on an embedded SQLite database
// (modernc.org/sqlite, no cgo).
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/matzehuels/bizreg/pkg/entity"
	"github.com/matzehuels/bizreg/pkg/store"
)

const schema = `
CREATE TABLE IF NOT EXISTS records (
	id         TEXT PRIMARY KEY,
	body       TEXT NOT NULL,
	updated_at DATETIME NOT NULL
);
CREATE TABLE IF NOT EXISTS searches (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	query      TEXT NOT NULL,
	body       TEXT NOT NULL,
	created_at DATETIME NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_searches_query ON searches(query);
`

// Store is a SQLite-backed store.
type Store struct {
	db   *sql.DB
	path string
}

// New opens (creating if needed) the database at path.
func New(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// SaveSummaries appends the search run to the searches table.
func (s *Store) SaveSummaries(ctx context.Context, query string, results []entity.Summary) error {
	run := store.NewSearchRun(query, results)
	body, err := json.Marshal(run.Results)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO searches (query, body, created_at) VALUES (?, ?, ?)`,
		run.Query, string(body), run.SavedAt)
	if err != nil {
		return fmt.Errorf("inserting search run: %w", err)
	}
	return nil
}

// SaveRecord upserts r keyed by its registration number.
func (s *Store) SaveRecord(ctx context.Context, r *entity.Record) error {
	if err := store.CheckRecord(r); err != nil {
		return err
	}
	body, err := json.Marshal(r)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO records (id, body, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at`,
		r.RegistrationNumber, string(body), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("upserting record %s: %w", r.RegistrationNumber, err)
	}
	return nil
}

// Record reads the record stored under id.
func (s *Store) Record(ctx context.Context, id string) (*entity.Record, bool, error) {
	var body string
	err := s.db.QueryRowContext(ctx, `SELECT body FROM records WHERE id = ?`, id).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("querying record %s: %w", id, err)
	}

	var r entity.Record
	if err := json.Unmarshal([]byte(body), &r); err != nil {
		return nil, false, fmt.Errorf("decoding record %s: %w", id, err)
	}
	return &r, true, nil
}

// SearchRun returns the newest stored run of query.
func (s *Store) SearchRun(ctx context.Context, query string) (*store.SearchRun, bool, error) {
	runs, err := s.SearchRuns(ctx, query, 1)
	if err != nil || len(runs) == 0 {
		return nil, false, err
	}
	return &runs[0], true, nil
}

// SearchRuns returns up to limit stored runs of query, newest first.
// A limit of zero or less returns every run.
func (s *Store) SearchRuns(ctx context.Context, query string, limit int) ([]store.SearchRun, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT body, created_at FROM searches WHERE query = ? ORDER BY id DESC LIMIT ?`, query, limit)
	if err != nil {
		return nil, fmt.Errorf("querying search runs: %w", err)
	}
	defer rows.Close()

	var runs []store.SearchRun
	for rows.Next() {
		var (
			body    string
			savedAt sql.NullTime
		)
		if err := rows.Scan(&body, &savedAt); err != nil {
			return nil, fmt.Errorf("scanning search run: %w", err)
		}
		run := store.SearchRun{Query: query, SavedAt: savedAt.Time}
		if err := json.Unmarshal([]byte(body), &run.Results); err != nil {
			return nil, fmt.Errorf("decoding search run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ensure Store implements store.Store.
var _ store.Store = (*Store)(nil)
