// Package journal records every event of a simulation run to the database.
// A Journal is an events.Sink; events are stamped with the run id and a
// sequence number and handed to a background batch collector.
package journal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"stratosfear/internal/database"
	"stratosfear/internal/events"
	"stratosfear/internal/tasks"

	"github.com/google/uuid"
)

// ErrClosed is returned when closing a journal twice
var ErrClosed = errors.New("journal already closed")

// Store is the database surface the journal writes through
type Store interface {
	RunRepository() database.RunRepository
	EventRepository() database.EventRepository
}

// Config holds batch settings for the collector
type Config struct {
	BatchSize    int           // records per committed batch
	BatchTimeout time.Duration // flush pending records after this long
}

// Run describes the run being journaled
type Run struct {
	Director string
	Mode     string
	FuelPool int
}

// Summary is what the run reports when it ends
type Summary struct {
	Launched       int
	DepotRemaining int
}

// Stats reports what happened to the run's events
type Stats struct {
	RunID   string
	Emitted int
	Written int
	Dropped int
	ByKind  map[events.Kind]int // journaled events per kind
}

// Journal is one run's event log
type Journal struct {
	id        string
	runs      database.RunRepository
	events    database.EventRepository
	collector *tasks.EventCollector
	records   chan *database.EventRecord
	cancel    context.CancelFunc
	done      chan struct{}
	now       func() time.Time

	mu     sync.Mutex
	seq    int
	closed bool
}

// Open starts a journal for a new run: the run row is written immediately
// and the collector starts consuming events in the background
func Open(store Store, run Run, cfg Config) (*Journal, error) {
	batchSize := 50
	if cfg.BatchSize > 0 {
		batchSize = cfg.BatchSize
	}
	batchTimeout := 250 * time.Millisecond
	if cfg.BatchTimeout > 0 {
		batchTimeout = cfg.BatchTimeout
	}

	j := &Journal{
		id:      uuid.NewString(),
		runs:    store.RunRepository(),
		events:  store.EventRepository(),
		records: make(chan *database.EventRecord, 1000), // Buffered channel
		done:    make(chan struct{}),
		now:     time.Now,
	}

	err := j.runs.Start(&database.RunRecord{
		ID:        j.id,
		Director:  run.Director,
		Mode:      run.Mode,
		FuelPool:  run.FuelPool,
		StartedAt: j.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start run journal: %w", err)
	}

	j.collector = tasks.NewEventCollectorWithConfig(j.events, j.records, batchSize, batchTimeout)

	ctx, cancel := context.WithCancel(context.Background())
	j.cancel = cancel
	go func() {
		defer close(j.done)
		if err := j.collector.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			slog.Error("Event collector stopped", "run_id", j.id, "error", err)
		}
	}()

	slog.Info("Run journal opened", "run_id", j.id, "director", run.Director, "mode", run.Mode)
	return j, nil
}

// ID is the run's unique identifier
func (j *Journal) ID() string {
	return j.id
}

// Emit stamps e with the run id and next sequence number and queues it.
// Events emitted after Close are ignored.
func (j *Journal) Emit(e events.Event) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.closed {
		slog.Warn("Event emitted after journal closed", "run_id", j.id, "kind", e.Kind)
		return
	}

	if e.Time.IsZero() {
		e.Time = j.now()
	}
	j.seq++
	j.records <- &database.EventRecord{RunID: j.id, Seq: j.seq, Event: e}
}

// Close flushes every queued event, records the run summary and returns
// the journal's statistics, including a per-kind tally read back from the
// database
func (j *Journal) Close(summary Summary) (Stats, error) {
	j.mu.Lock()
	if j.closed {
		j.mu.Unlock()
		return Stats{}, ErrClosed
	}
	j.closed = true
	emitted := j.seq
	close(j.records)
	j.mu.Unlock()

	<-j.done
	j.cancel()

	stats := Stats{
		RunID:   j.id,
		Emitted: emitted,
		Written: j.collector.Written(),
		Dropped: j.collector.Dropped(),
	}

	byKind, err := j.events.CountByKind(j.id)
	if err != nil {
		slog.Warn("Failed to tally journaled events", "run_id", j.id, "error", err)
	}
	stats.ByKind = byKind

	err = j.runs.Finish(j.id, database.RunSummary{
		FinishedAt:     j.now(),
		Launched:       summary.Launched,
		DepotRemaining: summary.DepotRemaining,
	})
	if err != nil {
		return stats, fmt.Errorf("failed to finish run journal: %w", err)
	}

	slog.Info("Run journal closed",
		"run_id", j.id,
		"emitted", stats.Emitted,
		"written", stats.Written,
		"dropped", stats.Dropped,
	)
	return stats, nil
}
