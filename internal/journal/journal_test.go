package journal

import (
	"path/filepath"
	"testing"
	"time"

	"stratosfear/internal/database"
	"stratosfear/internal/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openDB(t *testing.T) *database.DB {
	t.Helper()
	db, err := database.New(filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestJournal_RecordsRun(t *testing.T) {
	db := openDB(t)

	j, err := Open(db, Run{Director: "Ripley", Mode: "full", FuelPool: 25000}, Config{BatchSize: 2, BatchTimeout: time.Hour})
	require.NoError(t, err)

	_, err = uuid.Parse(j.ID())
	require.NoError(t, err)

	j.Emit(events.Event{Kind: events.KindHeading, Message: "MISSION PLANNING PHASE"})
	j.Emit(events.Event{Kind: events.KindFuelAllocated, Subject: "Serenity", Message: "Serenity refueled"})
	j.Emit(events.Event{Kind: events.KindFuelAllocated, Subject: "Nostromo", Message: "Nostromo refueled"})

	stats, err := j.Close(Summary{Launched: 3, DepotRemaining: 2500})
	require.NoError(t, err)

	assert.Equal(t, j.ID(), stats.RunID)
	assert.Equal(t, 3, stats.Emitted)
	assert.Equal(t, 3, stats.Written)
	assert.Zero(t, stats.Dropped)
	assert.Equal(t, map[events.Kind]int{
		events.KindHeading:       1,
		events.KindFuelAllocated: 2,
	}, stats.ByKind)

	counts, err := db.EventRepository().CountByKind(j.ID())
	require.NoError(t, err)
	assert.Equal(t, stats.ByKind, counts)
}

func TestJournal_SeparateRuns(t *testing.T) {
	db := openDB(t)

	first, err := Open(db, Run{Director: "Ripley", Mode: "quick"}, Config{})
	require.NoError(t, err)
	second, err := Open(db, Run{Director: "Ripley", Mode: "full"}, Config{})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID(), second.ID())

	first.Emit(events.Event{Kind: events.KindInfo})
	second.Emit(events.Event{Kind: events.KindInfo})
	second.Emit(events.Event{Kind: events.KindInfo})

	s1, err := first.Close(Summary{})
	require.NoError(t, err)
	s2, err := second.Close(Summary{})
	require.NoError(t, err)

	assert.Equal(t, 1, s1.Written)
	assert.Equal(t, 2, s2.Written)
	assert.Equal(t, 1, s1.ByKind[events.KindInfo])
	assert.Equal(t, 2, s2.ByKind[events.KindInfo])
}

func TestJournal_EmitAfterClose(t *testing.T) {
	db := openDB(t)

	j, err := Open(db, Run{Director: "Ripley", Mode: "full"}, Config{})
	require.NoError(t, err)

	stats, err := j.Close(Summary{})
	require.NoError(t, err)
	assert.Zero(t, stats.Emitted)

	assert.NotPanics(t, func() {
		j.Emit(events.Event{Kind: events.KindInfo})
	})

	_, err = j.Close(Summary{})
	assert.ErrorIs(t, err, ErrClosed)
}

func TestJournal_AsSink(t *testing.T) {
	db := openDB(t)
	j, err := Open(db, Run{Director: "Ripley", Mode: "full"}, Config{})
	require.NoError(t, err)

	rec := &events.Recorder{}
	sink := events.Fanout(rec, j)
	sink.Emit(events.Event{Kind: events.KindMissionLaunched, Message: "lift off"})

	stats, err := j.Close(Summary{Launched: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Written)
	assert.Len(t, rec.Events(), 1)
}
