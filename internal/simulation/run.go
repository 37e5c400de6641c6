// Package simulation sequences one mission-control run: fuel allocation,
// crew assignment, readiness checks, mission planning, booking and launch.
// All state for the run lives on Run; nothing survives past Execute.
package simulation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"stratosfear/internal/depot"
	"stratosfear/internal/events"
	"stratosfear/internal/models"
	"stratosfear/internal/roster"

	"github.com/dustin/go-humanize"
)

// Prompter supplies the director's interactive answers
type Prompter interface {
	AskInt(ctx context.Context, prompt string, minValue, maxValue int) (int, error)
	AskYesNo(ctx context.Context, prompt string) (bool, error)
	// Choose returns the index of the chosen item, or -1 when cancelled
	Choose(ctx context.Context, prompt string, items []string) (int, error)
}

// Mode selects how much of the simulation runs
type Mode int

const (
	// Full runs planning, booking and the launch sequence
	Full Mode = iota
	// Quick skips passenger booking and launches
	Quick
)

func (m Mode) String() string {
	if m == Quick {
		return "quick"
	}
	return "full"
}

// Label is the banner shown when the run starts
func (m Mode) Label() string {
	if m == Quick {
		return "QUICK STATUS MODE"
	}
	return "FULL SIMULATION"
}

// Settings configures a single run
type Settings struct {
	Director string
	Mode     Mode
	FuelPool int
	Catalog  roster.Catalog
}

// Outcome summarizes a finished run
type Outcome struct {
	Mode     Mode
	Fuel     depot.Audit
	Missions map[string]models.MissionStatus
	Launched int
}

// Run is the context object for one simulation: it owns the depot, the
// roster entities and the collaborators the run talks to
type Run struct {
	settings Settings
	prompt   Prompter
	sink     events.Sink
	now      func() time.Time

	depot  *depot.Depot
	roster *roster.Roster
}

// New builds a run with a fresh depot and fresh entities from the catalog
func New(settings Settings, prompt Prompter, sink events.Sink) (*Run, error) {
	d, err := depot.New(settings.FuelPool)
	if err != nil {
		return nil, fmt.Errorf("failed to create fuel depot: %w", err)
	}
	r, err := settings.Catalog.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build roster: %w", err)
	}
	if settings.Director == "" {
		settings.Director = "Director"
	}
	return &Run{
		settings: settings,
		prompt:   prompt,
		sink:     sink,
		now:      time.Now,
		depot:    d,
		roster:   r,
	}, nil
}

// Depot exposes the run's fuel depot
func (r *Run) Depot() *depot.Depot {
	return r.depot
}

// Fleet exposes the run's spacecraft
func (r *Run) Fleet() []*models.Spacecraft {
	return r.roster.Fleet
}

// Missions exposes the run's missions
func (r *Run) Missions() []*models.Mission {
	return r.roster.Missions
}

type phase struct {
	name string
	run  func(context.Context) error
}

// Execute runs every phase for the configured mode. Domain failures are
// reported as events; only prompt failures and cancellation end the run early.
func (r *Run) Execute(ctx context.Context) (Outcome, error) {
	phases := []phase{
		{"welcome", r.welcome},
		{"refuel", r.allocateFuel},
		{"rebalance", r.rebalanceFuel},
		{"crew", r.assignCrew},
		{"fleet status", r.reportFleet},
		{"fleet readiness", r.checkFleet},
		{"missions", r.loadMissions},
		{"planning", r.planMissions},
		{"fuel report", r.reportFuel},
	}
	if r.settings.Mode == Full {
		phases = append(phases, phase{"booking", r.bookPassengers})
	}
	phases = append(phases, phase{"mission readiness", r.checkMissions})
	if r.settings.Mode == Full {
		phases = append(phases, phase{"launch", r.launchMissions})
	}
	phases = append(phases, phase{"wrap up", r.wrapUp})

	for _, ph := range phases {
		if err := ctx.Err(); err != nil {
			return Outcome{}, err
		}
		slog.Debug("Starting simulation phase", "phase", ph.name, "mode", r.settings.Mode)
		if err := ph.run(ctx); err != nil {
			return Outcome{}, fmt.Errorf("%s phase: %w", ph.name, err)
		}
	}

	return r.outcome(), nil
}

func (r *Run) outcome() Outcome {
	o := Outcome{
		Mode:     r.settings.Mode,
		Fuel:     r.depot.Audit(r.roster.Fleet),
		Missions: make(map[string]models.MissionStatus, len(r.roster.Missions)),
	}
	for _, m := range r.roster.Missions {
		o.Missions[m.Name] = m.Status
		if m.Status == models.StatusLaunched {
			o.Launched++
		}
	}
	return o
}

func (r *Run) welcome(context.Context) error {
	r.info("\n[%s] Welcome, %s! Let's prepare today's missions.\n", r.settings.Mode.Label(), r.settings.Director)
	r.info("--- INITIALIZING CREW ROSTER ---")
	r.info("Crew roster initialized.")
	r.info("\n--- INITIALIZING SPACECRAFT FLEET ---")
	r.info("%d spacecraft standing by.", len(r.roster.Fleet))
	return nil
}

func (r *Run) wrapUp(context.Context) error {
	r.heading("END OF SIMULATION RUN")
	return nil
}

func (r *Run) emit(kind events.Kind, subject, format string, args ...any) {
	r.sink.Emit(events.Event{
		Time:    r.now(),
		Kind:    kind,
		Subject: subject,
		Message: fmt.Sprintf(format, args...),
	})
}

func (r *Run) info(format string, args ...any) {
	r.emit(events.KindInfo, "", format, args...)
}

func (r *Run) heading(title string) {
	r.emit(events.KindHeading, "", "%s", title)
}

func (r *Run) reject(subject string, err error) {
	r.sink.Emit(events.Event{
		Time:    r.now(),
		Kind:    events.KindRejected,
		Subject: subject,
		Message: err.Error(),
		Err:     err,
	})
}

func units(n int) string {
	return humanize.Comma(int64(n))
}
