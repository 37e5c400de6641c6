package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFanout(t *testing.T) {
	var first, second Recorder
	var order []string

	sink := Fanout(
		&first,
		nil,
		SinkFunc(func(e Event) { order = append(order, e.Message) }),
		&second,
	)

	sink.Emit(Event{Kind: KindInfo, Message: "one"})
	sink.Emit(Event{Kind: KindNotice, Message: "two"})

	assert.Len(t, first.Events(), 2)
	assert.Len(t, second.Events(), 2)
	assert.Equal(t, []string{"one", "two"}, order)
}

func TestRecorder_OfKind(t *testing.T) {
	var r Recorder
	r.Emit(Event{Kind: KindFuelAllocated, Subject: "Serenity"})
	r.Emit(Event{Kind: KindRejected, Subject: "Serenity"})
	r.Emit(Event{Kind: KindFuelAllocated, Subject: "Nostromo"})

	got := r.OfKind(KindFuelAllocated)
	assert.Len(t, got, 2)
	assert.Equal(t, "Nostromo", got[1].Subject)
	assert.Empty(t, r.OfKind(KindMissionLaunched))
}
