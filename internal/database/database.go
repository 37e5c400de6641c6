// Package database stores the run journal in SQLite: one row per simulation
// run and one row per event the run emitted.
package database

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// DB wraps the SQLite connection and hands out repositories
type DB struct {
	db *sql.DB
}

// New creates and initializes a new database connection. dbPath may be
// ":memory:", in which case the journal lives only as long as the process.
func New(dbPath string) (*DB, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// every pooled connection to :memory: would be a separate empty database
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := optimizeSQLite(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to optimize database: %w", err)
	}

	database := &DB{db: db}

	if err := database.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return database, nil
}

// optimizeSQLite applies pragmas suited to many small append-only writes
func optimizeSQLite(db *sql.DB) error {
	pragmas := []struct {
		stmt string
		desc string
	}{
		// WAL falls back to "memory" silently for in-memory databases
		{"PRAGMA journal_mode=WAL", "enable WAL mode"},
		{"PRAGMA synchronous=NORMAL", "set synchronous mode"},
		{"PRAGMA temp_store=MEMORY", "set temp_store"},
		{"PRAGMA busy_timeout=5000", "set busy timeout"},
		{"PRAGMA foreign_keys=ON", "enable foreign keys"},
	}

	for _, p := range pragmas {
		if _, err := db.Exec(p.stmt); err != nil {
			return fmt.Errorf("failed to %s: %w", p.desc, err)
		}
	}

	return nil
}

// Close closes the database connection
func (d *DB) Close() error {
	return d.db.Close()
}

// RunRepository returns the repository for run rows
func (d *DB) RunRepository() RunRepository {
	return NewRunRepository(d.db)
}

// EventRepository returns the repository for journaled events
func (d *DB) EventRepository() EventRepository {
	return NewEventRepository(d.db)
}

// initSchema creates the database schema if it doesn't exist
func (d *DB) initSchema() error {
	runsSchema := `CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		director TEXT NOT NULL,
		mode TEXT NOT NULL,
		fuel_pool INTEGER NOT NULL,
		started_at TIMESTAMP NOT NULL,
		finished_at TIMESTAMP,
		launched INTEGER,
		depot_remaining INTEGER
	);`

	eventsSchema := `CREATE TABLE IF NOT EXISTS mission_events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL REFERENCES runs(id),
		seq INTEGER NOT NULL,
		timestamp TIMESTAMP NOT NULL,
		kind TEXT NOT NULL,
		subject TEXT,
		message TEXT,
		error TEXT,
		UNIQUE(run_id, seq)
	);`

	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_mission_events_run_id ON mission_events(run_id)`,
		`CREATE INDEX IF NOT EXISTS idx_mission_events_kind ON mission_events(run_id, kind)`,
	}

	if _, err := d.db.Exec(runsSchema); err != nil {
		return fmt.Errorf("failed to create runs table: %w", err)
	}

	if _, err := d.db.Exec(eventsSchema); err != nil {
		return fmt.Errorf("failed to create mission_events table: %w", err)
	}

	for _, idx := range indexes {
		if _, err := d.db.Exec(idx); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	return nil
}
