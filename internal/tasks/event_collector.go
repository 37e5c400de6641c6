package tasks

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"stratosfear/internal/database"
)

// EventCollector collects journal records and commits them to the database in batches
type EventCollector struct {
	repo          database.EventRepository
	recordChan    <-chan *database.EventRecord
	batchSize     int           // maximum number of records in a batch before committing to database
	flushInterval time.Duration // time to flush batch even if not full

	written atomic.Int64
	dropped atomic.Int64
}

// Default batch size is 50 records and flush interval is 250ms
func NewEventCollector(repo database.EventRepository, recordChan <-chan *database.EventRecord) *EventCollector {
	return NewEventCollectorWithConfig(repo, recordChan, 50, 250*time.Millisecond)
}

// NewEventCollectorWithConfig creates a new collector with custom batch settings
func NewEventCollectorWithConfig(repo database.EventRepository, recordChan <-chan *database.EventRecord, batchSize int, flushInterval time.Duration) *EventCollector {
	return &EventCollector{
		repo:          repo,
		recordChan:    recordChan,
		batchSize:     batchSize,
		flushInterval: flushInterval,
	}
}

// Written is the number of records committed so far
func (c *EventCollector) Written() int {
	return int(c.written.Load())
}

// Dropped is the number of records lost to failed inserts
func (c *EventCollector) Dropped() int {
	return int(c.dropped.Load())
}

// Start begins collecting records and writing them to the database in batches.
// It blocks until the context is cancelled or the record channel is closed.
// Batches are flushed when they reach batchSize or when flushInterval passes
// with records pending.
func (c *EventCollector) Start(ctx context.Context) error {
	batch := make([]*database.EventRecord, 0, c.batchSize)

	flushBatch := func() {
		if len(batch) == 0 {
			return
		}
		if err := c.repo.InsertBatch(batch); err != nil {
			c.dropped.Add(int64(len(batch)))
			slog.Error("Error inserting batch of events", "batch_size", len(batch), "error", err)
		} else {
			c.written.Add(int64(len(batch)))
			slog.Debug("Inserted batch of events", "batch_size", len(batch))
		}
		batch = batch[:0] // Reset slice but keep capacity
	}

	ticker := time.NewTicker(c.flushInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			// Flush any remaining records before exiting
			flushBatch()
			return ctx.Err()

		case <-ticker.C:
			flushBatch()

		case rec, ok := <-c.recordChan:
			if !ok {
				flushBatch()
				return nil
			}

			if rec == nil {
				continue
			}

			batch = append(batch, rec)

			slog.Debug("Added event to batch",
				"run_id", rec.RunID,
				"seq", rec.Seq,
				"kind", rec.Kind,
				"current_batch_size", len(batch),
				"max_batch_size", c.batchSize,
			)

			if len(batch) >= c.batchSize {
				flushBatch()
			}
		}
	}
}
