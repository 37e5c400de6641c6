package database

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ErrRunNotFound is returned when finishing a run that was never started
var ErrRunNotFound = errors.New("run not found")

// RunRecord is the journal header for one simulation run
type RunRecord struct {
	ID        string
	Director  string
	Mode      string
	FuelPool  int
	StartedAt time.Time
}

// RunSummary is written when a run ends
type RunSummary struct {
	FinishedAt     time.Time
	Launched       int
	DepotRemaining int
}

type RunRepository interface {
	Start(run *RunRecord) error
	Finish(id string, summary RunSummary) error
}

type runRepository struct {
	db *sql.DB
}

func NewRunRepository(db *sql.DB) RunRepository {
	return &runRepository{db: db}
}

// Start records the beginning of a run
func (r *runRepository) Start(run *RunRecord) error {
	_, err := r.db.Exec(`INSERT INTO runs (id, director, mode, fuel_pool, started_at) VALUES (?, ?, ?, ?, ?)`,
		run.ID, run.Director, run.Mode, run.FuelPool, run.StartedAt)
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}
	return nil
}

// Finish stamps the end-of-run summary onto an existing run row
func (r *runRepository) Finish(id string, summary RunSummary) error {
	res, err := r.db.Exec(`UPDATE runs SET finished_at = ?, launched = ?, depot_remaining = ? WHERE id = ?`,
		summary.FinishedAt, summary.Launched, summary.DepotRemaining, id)
	if err != nil {
		return fmt.Errorf("failed to update run: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	return nil
}
