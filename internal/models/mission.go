package models

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// MissionStatus is a stage in the mission lifecycle
type MissionStatus string

const (
	StatusPlanning MissionStatus = "planning"
	StatusReady    MissionStatus = "ready"
	StatusLaunched MissionStatus = "launched"
)

// Mission is a tourism flight to a destination
type Mission struct {
	Name         string
	Destination  string
	FuelRequired int
	Spacecraft   *Spacecraft
	Passengers   []string
	Status       MissionStatus
}

// NewMission creates a mission in planning status
func NewMission(name, destination string, fuelRequired int) (*Mission, error) {
	if fuelRequired < 0 {
		return nil, fmt.Errorf("%w: %s requires %d", ErrInvalidMission, name, fuelRequired)
	}
	return &Mission{
		Name:         name,
		Destination:  destination,
		FuelRequired: fuelRequired,
		Status:       StatusPlanning,
	}, nil
}

// AssignSpacecraft attaches a spacecraft that carries enough fuel for the
// mission and seats everyone already booked. Only planning missions can
// change spacecraft.
func (m *Mission) AssignSpacecraft(sc *Spacecraft) error {
	switch m.Status {
	case StatusPlanning:
	case StatusLaunched:
		return fmt.Errorf("%w: %s", ErrAlreadyLaunched, m.Name)
	default:
		return fmt.Errorf("%w: %s is %s", ErrNotPlanning, m.Name, m.Status)
	}
	if len(m.Passengers) > sc.Seats {
		return fmt.Errorf("%w: %s has %d passengers booked, %s seats %d",
			ErrMissionFull, m.Name, len(m.Passengers), sc.Name, sc.Seats)
	}
	if !sc.CanHandleMission(m) {
		return fmt.Errorf("%w: %s needs %s units, %s has %s",
			ErrInsufficientFuel, m.Name, humanize.Comma(int64(m.FuelRequired)), sc.Name, humanize.Comma(int64(sc.CurrentFuel)))
	}
	m.Spacecraft = sc
	return nil
}

// AddPassenger books a passenger if the assigned spacecraft has a free seat
func (m *Mission) AddPassenger(name string) error {
	if m.Spacecraft == nil {
		return fmt.Errorf("%w: cannot book %s on %s", ErrNoSpacecraft, name, m.Name)
	}
	if len(m.Passengers) >= m.Spacecraft.Seats {
		return fmt.Errorf("%w: %s (%d/%d)", ErrMissionFull, m.Name, len(m.Passengers), m.Spacecraft.Seats)
	}
	m.Passengers = append(m.Passengers, name)
	return nil
}

// SeatsRemaining returns free seats, or 0 when no spacecraft is assigned
func (m *Mission) SeatsRemaining() int {
	if m.Spacecraft == nil {
		return 0
	}
	return m.Spacecraft.Seats - len(m.Passengers)
}

func (m *Mission) String() string {
	return fmt.Sprintf("%s -> %s (Fuel required: %s)", m.Name, m.Destination, humanize.Comma(int64(m.FuelRequired)))
}
