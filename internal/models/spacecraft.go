package models

import (
	"fmt"
)

// Spacecraft is a vessel in the fleet. Fuel is only moved through the depot.
type Spacecraft struct {
	Name         string
	Seats        int // passenger capacity
	FuelCapacity int // maximum fuel units
	CurrentFuel  int // 0 <= CurrentFuel <= FuelCapacity

	// Ready caches the result of the last readiness check
	Ready bool

	crew [roleCount]*CrewMember
}

// NewSpacecraft creates an empty, uncrewed spacecraft
func NewSpacecraft(name string, seats, fuelCapacity int) (*Spacecraft, error) {
	if seats <= 0 || fuelCapacity <= 0 {
		return nil, fmt.Errorf("%w: %s (seats=%d, fuel_capacity=%d)", ErrInvalidSpacecraft, name, seats, fuelCapacity)
	}
	return &Spacecraft{Name: name, Seats: seats, FuelCapacity: fuelCapacity}, nil
}

// AssignCrewMember places a member into the slot for their role and links both sides
func (s *Spacecraft) AssignCrewMember(member *CrewMember) error {
	if !member.Role.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownRole, int(member.Role))
	}
	if occupant := s.crew[member.Role]; occupant != nil {
		return fmt.Errorf("%w: %s already has a %s (%s)", ErrRoleConflict, s.Name, member.Role, occupant.Name)
	}
	if member.assigned != nil {
		return fmt.Errorf("%w: %s serves on %s", ErrAlreadyAssigned, member.Name, member.assigned.Name)
	}
	s.crew[member.Role] = member
	member.assigned = s
	return nil
}

// UnassignCrewMember detaches the member in the given role slot and returns them
func (s *Spacecraft) UnassignCrewMember(role Role) (*CrewMember, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownRole, int(role))
	}
	member := s.crew[role]
	if member == nil {
		return nil, fmt.Errorf("%w: %s has no %s", ErrEmptySlot, s.Name, role)
	}
	s.crew[role] = nil
	member.assigned = nil
	return member, nil
}

// CrewMember returns the occupant of a role slot, or nil when vacant
func (s *Spacecraft) CrewMember(role Role) *CrewMember {
	if !role.Valid() {
		return nil
	}
	return s.crew[role]
}

// Captain returns the assigned captain, or nil
func (s *Spacecraft) Captain() *CrewMember {
	return s.crew[RoleCaptain]
}

// HasCaptain reports whether the captain slot is occupied
func (s *Spacecraft) HasCaptain() bool {
	return s.crew[RoleCaptain] != nil
}

// CrewCount returns the number of occupied role slots
func (s *Spacecraft) CrewCount() int {
	n := 0
	for _, m := range s.crew {
		if m != nil {
			n++
		}
	}
	return n
}

// CrewExperienceScore sums experience across occupied role slots
func (s *Spacecraft) CrewExperienceScore() int {
	score := 0
	for _, m := range s.crew {
		if m != nil {
			score += m.Experience
		}
	}
	return score
}

// CanHandleMission reports whether the fuel on board covers the mission's requirement
func (s *Spacecraft) CanHandleMission(m *Mission) bool {
	return s.CurrentFuel >= m.FuelRequired
}

// FreeCapacity returns how much more fuel the tanks can take
func (s *Spacecraft) FreeCapacity() int {
	return s.FuelCapacity - s.CurrentFuel
}

// FuelPercent returns the truncated fill percentage
func (s *Spacecraft) FuelPercent() int {
	if s.FuelCapacity <= 0 {
		return 0
	}
	return s.CurrentFuel * 100 / s.FuelCapacity
}

// String renders the one-line fleet status used in selection lists and reports
func (s *Spacecraft) String() string {
	status := "Not Ready"
	if s.Ready {
		status = "Ready"
	}
	return fmt.Sprintf("%s | Seats: %d | Fuel: %d%% | Crew: %d/%d | %s",
		s.Name, s.Seats, s.FuelPercent(), s.CrewCount(), roleCount, status)
}
