package sqlite

import (
	"context"
	"database/sql"
	"time"

	_ "modernc.org/sqlite"

	"github.com/cognicore/lexsim/pkg/lexsim/dfm"
	"github.com/cognicore/lexsim/pkg/lexsim/pairs"
	"github.com/cognicore/lexsim/pkg/lexsim/store"
)

// sqliteStore implements the Store interface using SQLite
type sqliteStore struct {
	db *sql.DB
}

// Open opens a SQLite database with WAL mode enabled and initializes the
// schema.
func Open(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS unit_counts (
	corpus TEXT NOT NULL,
	unit_id TEXT NOT NULL,
	term TEXT NOT NULL,
	count INTEGER NOT NULL,
	PRIMARY KEY(corpus, unit_id, term)
);

CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	corpus TEXT NOT NULL,
	metric TEXT NOT NULL,
	linkage TEXT NOT NULL,
	created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS run_pairs (
	run_id TEXT NOT NULL,
	unit_a TEXT NOT NULL,
	unit_b TEXT NOT NULL,
	value REAL NOT NULL,
	ord INTEGER NOT NULL,
	PRIMARY KEY(run_id, ord),
	FOREIGN KEY(run_id) REFERENCES runs(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_runs_corpus ON runs(corpus);
`

	_, err := db.ExecContext(ctx, schema)
	return err
}

// UpsertUnit inserts or replaces one unit's term counts in a corpus.
func (s *sqliteStore) UpsertUnit(ctx context.Context, corpus string, u dfm.UnitCounts) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM unit_counts WHERE corpus=? AND unit_id=?`, corpus, u.ID); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO unit_counts (corpus, unit_id, term, count) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for term, count := range u.Counts {
		if term == "" || count <= 0 {
			continue
		}
		if _, err := stmt.ExecContext(ctx, corpus, u.ID, term, count); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// GetCorpus returns all units of a corpus, ordered by unit ID.
func (s *sqliteStore) GetCorpus(ctx context.Context, corpus string) ([]dfm.UnitCounts, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT unit_id, term, count FROM unit_counts WHERE corpus=? ORDER BY unit_id, term`, corpus)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var units []dfm.UnitCounts
	byID := make(map[string]int)
	for rows.Next() {
		var unitID, term string
		var count int64
		if err := rows.Scan(&unitID, &term, &count); err != nil {
			return nil, err
		}
		idx, ok := byID[unitID]
		if !ok {
			idx = len(units)
			byID[unitID] = idx
			units = append(units, dfm.UnitCounts{ID: unitID, Counts: make(map[string]int64)})
		}
		units[idx].Counts[term] = count
	}
	return units, rows.Err()
}

// ListCorpora returns the distinct corpus names.
func (s *sqliteStore) ListCorpora(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT DISTINCT corpus FROM unit_counts ORDER BY corpus`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// SaveRun persists a run and its pair records.
func (s *sqliteStore) SaveRun(ctx context.Context, r store.Run) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO runs (id, corpus, metric, linkage, created_at) VALUES (?, ?, ?, ?, ?)`,
		r.ID, r.Corpus, r.Metric, r.Linkage, r.CreatedAt.UTC().Format(time.RFC3339),
	); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO run_pairs (run_id, unit_a, unit_b, value, ord) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for ord, p := range r.Pairs {
		if _, err := stmt.ExecContext(ctx, r.ID, p.A, p.B, p.Value, ord); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// GetRun loads a run and its pair records by ID.
func (s *sqliteStore) GetRun(ctx context.Context, id string) (store.Run, bool, error) {
	var r store.Run
	var createdAt string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, corpus, metric, linkage, created_at FROM runs WHERE id=?`, id,
	).Scan(&r.ID, &r.Corpus, &r.Metric, &r.Linkage, &createdAt)
	if err == sql.ErrNoRows {
		return store.Run{}, false, nil
	}
	if err != nil {
		return store.Run{}, false, err
	}
	r.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return store.Run{}, false, err
	}

	r.Pairs, err = s.runPairs(ctx, id)
	if err != nil {
		return store.Run{}, false, err
	}
	return r, true, nil
}

// ListRuns returns all runs for a corpus, newest first, without pair
// payloads.
func (s *sqliteStore) ListRuns(ctx context.Context, corpus string) ([]store.Run, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, corpus, metric, linkage, created_at FROM runs WHERE corpus=? ORDER BY id DESC`, corpus)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []store.Run
	for rows.Next() {
		var r store.Run
		var createdAt string
		if err := rows.Scan(&r.ID, &r.Corpus, &r.Metric, &r.Linkage, &createdAt); err != nil {
			return nil, err
		}
		if r.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

func (s *sqliteStore) runPairs(ctx context.Context, runID string) ([]pairs.Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT unit_a, unit_b, value FROM run_pairs WHERE run_id=? ORDER BY ord`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []pairs.Record
	for rows.Next() {
		var r pairs.Record
		if err := rows.Scan(&r.A, &r.B, &r.Value); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
