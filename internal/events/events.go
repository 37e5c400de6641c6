// Package events carries what happened during a simulation run to whoever
// presents or records it. Core packages never print; the simulation turns
// their results into Events and hands them to a Sink.
package events

import (
	"sync"
	"time"
)

// Kind classifies an event
type Kind string

const (
	KindHeading Kind = "heading"
	KindInfo    Kind = "info"
	KindNotice  Kind = "notice"
	KindSummary Kind = "summary"
	KindCheck   Kind = "check"
	KindWarning Kind = "warning"

	KindFuelAllocated Kind = "fuel_allocated"
	KindFuelReclaimed Kind = "fuel_reclaimed"
	KindDepot         Kind = "depot"

	KindCrewAssigned   Kind = "crew_assigned"
	KindCrewUnassigned Kind = "crew_unassigned"
	KindCrewExperience Kind = "crew_experience"

	KindSpacecraftReady    Kind = "spacecraft_ready"
	KindSpacecraftNotReady Kind = "spacecraft_not_ready"
	KindSpacecraftFit      Kind = "spacecraft_fit"
	KindSpacecraftUnfit    Kind = "spacecraft_unfit"
	KindSpacecraftAssigned Kind = "spacecraft_assigned"

	KindPassengerBooked Kind = "passenger_booked"
	KindMissionReady    Kind = "mission_ready"
	KindMissionLaunched Kind = "mission_launched"
	KindMissionHeld     Kind = "mission_held"
	KindMissionSkipped  Kind = "mission_skipped"

	KindRejected Kind = "rejected"
)

// Event is one display-worthy occurrence in a run
type Event struct {
	Time    time.Time
	Kind    Kind
	Subject string // entity the event concerns, empty for run-level lines
	Message string
	Err     error // set for KindRejected
}

// Sink receives events in the order they happen
type Sink interface {
	Emit(e Event)
}

// SinkFunc adapts a function to Sink
type SinkFunc func(e Event)

// Emit calls f(e)
func (f SinkFunc) Emit(e Event) {
	f(e)
}

type fanout []Sink

// Fanout delivers each event to every non-nil sink in order
func Fanout(sinks ...Sink) Sink {
	out := make(fanout, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			out = append(out, s)
		}
	}
	return out
}

func (f fanout) Emit(e Event) {
	for _, s := range f {
		s.Emit(e)
	}
}

// Recorder keeps every event in memory
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

// Emit appends e
func (r *Recorder) Emit(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

// Events returns a copy of everything recorded so far
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

// OfKind returns recorded events of the given kind
func (r *Recorder) OfKind(kind Kind) []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Event
	for _, e := range r.events {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}
