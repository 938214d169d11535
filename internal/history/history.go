// Package history records icon-set runs in a SQLite database so earlier
// generations can be listed and compared.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/juan-oclock/kansyl-assets/internal/paths"
	"github.com/juan-oclock/kansyl-assets/internal/report"

	_ "modernc.org/sqlite"
)

// Run is one recorded icon-set generation.
type Run struct {
	ID       int64
	Time     time.Time
	Command  string
	Theme    string
	Dir      string
	Written  int
	Failed   int
	Backup   string
	Duration time.Duration
}

// Store is the run history database.
type Store struct {
	db   *sql.DB
	path string
}

// DefaultPath is history.db in the user data directory.
func DefaultPath() string {
	return filepath.Join(paths.DataDir(), paths.HistoryFileName)
}

// Open opens (or creates) the database at path and creates the schema.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), paths.DirPerm); err != nil {
		return nil, fmt.Errorf("history: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("history: open: %w", err)
	}
	// foreign_keys is per connection.
	db.SetMaxOpenConns(1)

	// Set PRAGMAs before any DDL.
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys=ON",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("history: pragma: %w", err)
		}
	}

	ddl := `
CREATE TABLE IF NOT EXISTS runs (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    timestamp   TEXT    NOT NULL,
    command     TEXT    NOT NULL,
    theme       TEXT    NOT NULL DEFAULT '',
    dir         TEXT    NOT NULL,
    written     INTEGER NOT NULL,
    failed      INTEGER NOT NULL,
    backup      TEXT    NOT NULL DEFAULT '',
    duration_ms INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS run_entries (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id     INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
    entry_num  INTEGER NOT NULL,
    filename   TEXT    NOT NULL,
    pixel_size INTEGER NOT NULL,
    error      TEXT
);

CREATE INDEX IF NOT EXISTS idx_runs_timestamp ON runs(timestamp DESC);
CREATE INDEX IF NOT EXISTS idx_entries_run    ON run_entries(run_id, entry_num);
`
	if _, err := db.Exec(ddl); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: schema: %w", err)
	}
	return &Store{db: db, path: path}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Record stores a run and its entries, returning the new run ID.
func (s *Store) Record(sum report.Summary) (int64, error) {
	ts := sum.Started
	if ts.IsZero() {
		ts = time.Now()
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		`INSERT INTO runs (timestamp, command, theme, dir, written, failed, backup, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		ts.UTC().Format(time.RFC3339Nano), sum.Command, sum.Theme, sum.Dir,
		sum.Written, sum.Failed, sum.Backup, sum.DurationMS,
	)
	if err != nil {
		return 0, err
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	for i, e := range sum.Entries {
		var errText *string
		if e.Error != "" {
			errText = &e.Error
		}
		if _, err := tx.Exec(
			`INSERT INTO run_entries (run_id, entry_num, filename, pixel_size, error)
			 VALUES (?, ?, ?, ?, ?)`,
			runID, i+1, e.Filename, e.PixelSize, errText,
		); err != nil {
			return 0, err
		}
	}
	return runID, tx.Commit()
}

// Runs returns the most recent runs, newest first. limit <= 0 returns all.
func (s *Store) Runs(limit int) ([]Run, error) {
	query := `SELECT id, timestamp, command, theme, dir, written, failed, backup, duration_ms
		FROM runs ORDER BY id DESC`
	var args []any
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var ts string
		var ms int64
		if err := rows.Scan(&r.ID, &ts, &r.Command, &r.Theme, &r.Dir,
			&r.Written, &r.Failed, &r.Backup, &ms); err != nil {
			return nil, err
		}
		t, err := time.Parse(time.RFC3339Nano, ts)
		if err != nil {
			continue
		}
		r.Time = t
		r.Duration = time.Duration(ms) * time.Millisecond
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Entries returns the per-file outcomes of a run in catalog order.
func (s *Store) Entries(runID int64) ([]report.Entry, error) {
	rows, err := s.db.Query(
		`SELECT filename, pixel_size, error FROM run_entries
		 WHERE run_id = ? ORDER BY entry_num`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []report.Entry
	for rows.Next() {
		var e report.Entry
		var errText sql.NullString
		if err := rows.Scan(&e.Filename, &e.PixelSize, &errText); err != nil {
			return nil, err
		}
		e.Error = errText.String
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Clean removes runs older than days and returns how many were removed.
func (s *Store) Clean(days int) (int, error) {
	cutoff := time.Now().AddDate(0, 0, -days).UTC().Format(time.RFC3339Nano)
	res, err := s.db.Exec(`DELETE FROM runs WHERE timestamp < ?`, cutoff)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	return int(n), err
}

// Clear deletes all recorded runs.
func (s *Store) Clear() error {
	_, err := s.db.Exec(`DELETE FROM runs`)
	return err
}
