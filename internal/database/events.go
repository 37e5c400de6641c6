package database

import (
	"database/sql"
	"fmt"

	"stratosfear/internal/events"
)

// EventRecord is an event stamped with the run it belongs to and its
// position in that run
type EventRecord struct {
	RunID string
	Seq   int
	events.Event
}

type EventRepository interface {
	InsertBatch(records []*EventRecord) error
	CountByKind(runID string) (map[events.Kind]int, error)
}

type eventRepository struct {
	db *sql.DB
}

func NewEventRepository(db *sql.DB) EventRepository {
	return &eventRepository{db: db}
}

// InsertBatch inserts one or more events in a single transaction.
// Re-inserting a (run_id, seq) pair is ignored.
func (r *eventRepository) InsertBatch(records []*EventRecord) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT OR IGNORE INTO mission_events (
		run_id, seq, timestamp, kind, subject, message, error
	) VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, rec := range records {
		var errText sql.NullString
		if rec.Err != nil {
			errText = sql.NullString{String: rec.Err.Error(), Valid: true}
		}
		if _, err := stmt.Exec(
			rec.RunID,
			rec.Seq,
			rec.Time,
			string(rec.Kind),
			rec.Subject,
			rec.Message,
			errText,
		); err != nil {
			return fmt.Errorf("failed to insert event: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// CountByKind tallies a run's journaled events per kind
func (r *eventRepository) CountByKind(runID string) (map[events.Kind]int, error) {
	rows, err := r.db.Query(`SELECT kind, COUNT(*) FROM mission_events WHERE run_id = ? GROUP BY kind`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to count events: %w", err)
	}
	defer rows.Close()

	counts := make(map[events.Kind]int)
	for rows.Next() {
		var kind string
		var n int
		if err := rows.Scan(&kind, &n); err != nil {
			return nil, fmt.Errorf("failed to scan event count: %w", err)
		}
		counts[events.Kind(kind)] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read event counts: %w", err)
	}

	return counts, nil
}
