// Package store persists observation counts in a local SQLite database
// and loads them back as the time axis the navigator runs over.
package store

import (
	"context"
	"database/sql"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver.

	"github.com/fernvale/bloomwatch/internal/timeline"
)

// ErrNoObservations is returned when a garden has no recorded counts.
var ErrNoObservations = errors.New("no observations recorded for garden")

// schema contains the DDL executed on first open. Using IF NOT EXISTS
// makes it safe to run on every startup.
const schema = `
CREATE TABLE IF NOT EXISTS observations (
    garden_id   TEXT NOT NULL,
    year        INTEGER NOT NULL,
    month       INTEGER NOT NULL CHECK (month BETWEEN 1 AND 12),
    count       INTEGER NOT NULL CHECK (count >= 0),
    recorded_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    PRIMARY KEY (garden_id, year, month)
);
`

// Store wraps the observation database.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the observation database at dbPath, enables
// WAL mode and busy timeout, and creates the schema if missing.
func Open(ctx context.Context, dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("store: open database: %w", err)
	}

	// Limit to one connection. SQLite only supports a single writer;
	// one connection avoids SQLITE_BUSY contention between pooled
	// connections that each need their own PRAGMA setup.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: enable WAL mode: %w", err)
	}
	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout=5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: set busy timeout: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record upserts a monthly observation count for a garden.
func (s *Store) Record(ctx context.Context, gardenID string, year, month, count int) error {
	if month < 1 || month > 12 {
		return fmt.Errorf("store: %w: %d", timeline.ErrMonthOutOfRange, month)
	}
	if count < 0 {
		return fmt.Errorf("store: %w: %d", timeline.ErrNegativeCount, count)
	}

	const q = `
		INSERT INTO observations (garden_id, year, month, count, recorded_at)
		VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(garden_id, year, month) DO UPDATE SET
			count = excluded.count,
			recorded_at = CURRENT_TIMESTAMP`
	if _, err := s.db.ExecContext(ctx, q, gardenID, year, month, count); err != nil {
		return fmt.Errorf("store: record observation: %w", err)
	}
	return nil
}

// LoadAxis reads all observations for a garden and builds the navigator
// axis from them: the distinct years in ascending order plus the
// "YYYY-MM"-keyed counts. Gardens with no observations are an error;
// the navigator needs a non-empty year list.
func (s *Store) LoadAxis(ctx context.Context, gardenID string) (*timeline.Axis, error) {
	const q = `
		SELECT year, month, count FROM observations
		WHERE garden_id = ?
		ORDER BY year, month`
	rows, err := s.db.QueryContext(ctx, q, gardenID)
	if err != nil {
		return nil, fmt.Errorf("store: load observations: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	var years []int
	for rows.Next() {
		var year, month, count int
		if err := rows.Scan(&year, &month, &count); err != nil {
			return nil, fmt.Errorf("store: scan observation: %w", err)
		}
		if len(years) == 0 || years[len(years)-1] != year {
			years = append(years, year)
		}
		counts[timeline.Bucket{Year: year, Month: month}.Key()] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: iterate observations: %w", err)
	}
	if len(years) == 0 {
		return nil, fmt.Errorf("store: %w: %q", ErrNoObservations, gardenID)
	}

	axis, err := timeline.NewAxis(years, counts)
	if err != nil {
		return nil, fmt.Errorf("store: build axis: %w", err)
	}
	return axis, nil
}

// GardenIDs returns the distinct garden IDs with recorded observations.
func (s *Store) GardenIDs(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT garden_id FROM observations ORDER BY garden_id`)
	if err != nil {
		return nil, fmt.Errorf("store: list gardens: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("store: scan garden id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// ImportCSV bulk-loads observations from CSV rows of the form
// year,month,count (an optional header row is skipped). It returns the
// number of rows imported. The whole import runs in one transaction so
// a malformed row leaves the database untouched.
func (s *Store) ImportCSV(ctx context.Context, gardenID string, r io.Reader) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("store: begin import: %w", err)
	}
	defer tx.Rollback()

	const q = `
		INSERT INTO observations (garden_id, year, month, count, recorded_at)
		VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(garden_id, year, month) DO UPDATE SET
			count = excluded.count,
			recorded_at = CURRENT_TIMESTAMP`

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 3

	n := 0
	for line := 1; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("store: csv line %d: %w", line, err)
		}
		if line == 1 && rec[0] == "year" {
			continue // header
		}

		year, err := strconv.Atoi(rec[0])
		if err != nil {
			return 0, fmt.Errorf("store: csv line %d: bad year %q", line, rec[0])
		}
		month, err := strconv.Atoi(rec[1])
		if err != nil || month < 1 || month > 12 {
			return 0, fmt.Errorf("store: csv line %d: bad month %q", line, rec[1])
		}
		count, err := strconv.Atoi(rec[2])
		if err != nil || count < 0 {
			return 0, fmt.Errorf("store: csv line %d: bad count %q", line, rec[2])
		}

		if _, err := tx.ExecContext(ctx, q, gardenID, year, month, count); err != nil {
			return 0, fmt.Errorf("store: csv line %d: %w", line, err)
		}
		n++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("store: commit import: %w", err)
	}
	return n, nil
}
