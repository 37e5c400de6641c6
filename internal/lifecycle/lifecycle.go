// Package lifecycle moves missions through planning -> ready -> launched.
package lifecycle

import (
	"errors"
	"fmt"

	"stratosfear/internal/models"
	"stratosfear/internal/readiness"
)

var (
	// ErrNotReady matches every *NotReadyError
	ErrNotReady = errors.New("mission not ready")
	// ErrInvalidTransition is returned when the current status does not allow the step
	ErrInvalidTransition = errors.New("invalid mission status transition")
)

// NotReadyReason names the first unmet condition for launch clearance
type NotReadyReason int

const (
	NoSpacecraft NotReadyReason = iota + 1
	SpacecraftNotReady
	NoPassengers
)

func (r NotReadyReason) String() string {
	switch r {
	case NoSpacecraft:
		return "no spacecraft assigned"
	case SpacecraftNotReady:
		return "spacecraft is not ready"
	case NoPassengers:
		return "no passengers booked"
	default:
		return "unknown"
	}
}

// NotReadyError reports why a mission could not be marked ready
type NotReadyError struct {
	Mission string
	Reason  NotReadyReason
	// Readiness is set when the spacecraft check ran
	Readiness *readiness.Result
}

func (e *NotReadyError) Error() string {
	return fmt.Sprintf("%s: %s", e.Mission, e.Reason)
}

func (e *NotReadyError) Unwrap() error {
	return ErrNotReady
}

// MarkReady clears a planning mission for launch. The spacecraft is
// re-evaluated at call time, so its Ready flag is refreshed as a side effect.
func MarkReady(m *models.Mission) (readiness.Result, error) {
	if m.Status != models.StatusPlanning {
		return readiness.Result{}, fmt.Errorf("%w: %s is %s, not %s", ErrInvalidTransition, m.Name, m.Status, models.StatusPlanning)
	}
	if m.Spacecraft == nil {
		return readiness.Result{}, &NotReadyError{Mission: m.Name, Reason: NoSpacecraft}
	}

	result := readiness.Check(m.Spacecraft)
	if !result.Ready {
		return result, &NotReadyError{Mission: m.Name, Reason: SpacecraftNotReady, Readiness: &result}
	}
	if len(m.Passengers) == 0 {
		return result, &NotReadyError{Mission: m.Name, Reason: NoPassengers, Readiness: &result}
	}

	m.Status = models.StatusReady
	return result, nil
}

// LaunchReport describes a mission that lifted off
type LaunchReport struct {
	Mission     string
	Spacecraft  string
	Captain     string
	Passengers  int
	Destination string
	Tier        readiness.Tier
}

func (r LaunchReport) String() string {
	return fmt.Sprintf("%s! %s has lifted off under Captain %s with %d passengers bound for %s %s!",
		r.Mission, r.Spacecraft, r.Captain, r.Passengers, r.Destination, r.Tier.Flavor())
}

// Launch moves a ready mission to launched
func Launch(m *models.Mission) (LaunchReport, error) {
	if m.Status != models.StatusReady {
		return LaunchReport{}, fmt.Errorf("%w: %s status is '%s', not '%s'", ErrInvalidTransition, m.Name, m.Status, models.StatusReady)
	}

	sc := m.Spacecraft
	captain := "Unknown"
	if c := sc.Captain(); c != nil {
		captain = c.Name
	}

	m.Status = models.StatusLaunched
	return LaunchReport{
		Mission:     m.Name,
		Spacecraft:  sc.Name,
		Captain:     captain,
		Passengers:  len(m.Passengers),
		Destination: m.Destination,
		Tier:        readiness.TierFor(sc.CrewExperienceScore()),
	}, nil
}
