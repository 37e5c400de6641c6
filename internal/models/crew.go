package models

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Role is a crew position aboard a spacecraft
type Role int

const (
	RoleCaptain Role = iota
	RoleCopilot
	RoleAttendant
	RoleFlightOps

	roleCount
)

// Roles lists every crew role in roster order
var Roles = [roleCount]Role{RoleCaptain, RoleCopilot, RoleAttendant, RoleFlightOps}

var roleNames = [roleCount]string{"captain", "copilot", "attendant", "flight_ops"}

var titleCaser = cases.Title(language.English)

// ParseRole maps a role name such as "flight_ops" to its Role
func ParseRole(name string) (Role, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.ReplaceAll(normalized, " ", "_")
	for i, n := range roleNames {
		if n == normalized {
			return Role(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRole, name)
}

// Valid reports whether r is one of the four defined roles
func (r Role) Valid() bool {
	return r >= 0 && r < roleCount
}

func (r Role) String() string {
	if !r.Valid() {
		return fmt.Sprintf("role(%d)", int(r))
	}
	return roleNames[r]
}

// Title returns a display form of the role, e.g. "Flight Ops"
func (r Role) Title() string {
	return titleCaser.String(strings.ReplaceAll(r.String(), "_", " "))
}

// CrewMember is a captain, copilot, attendant or flight ops specialist
type CrewMember struct {
	Name       string
	Role       Role
	Experience int // summed across a crew to pick the readiness tier

	// assigned is a lookup link only; the spacecraft owns the slot
	assigned *Spacecraft
}

// NewCrewMember creates an unassigned crew member
func NewCrewMember(name string, role Role, experience int) (*CrewMember, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownRole, int(role))
	}
	if experience < 0 {
		return nil, fmt.Errorf("%w: %s has %d", ErrInvalidExperience, name, experience)
	}
	return &CrewMember{Name: name, Role: role, Experience: experience}, nil
}

// AssignedSpacecraft returns the spacecraft this member serves on, or nil
func (c *CrewMember) AssignedSpacecraft() *Spacecraft {
	return c.assigned
}

// Assigned reports whether the member currently serves on a spacecraft
func (c *CrewMember) Assigned() bool {
	return c.assigned != nil
}

func (c *CrewMember) String() string {
	assignment := "Unassigned"
	if c.assigned != nil {
		assignment = c.assigned.Name
	}
	return fmt.Sprintf("%s (%s, XP %d, %s)", c.Name, c.Role, c.Experience, assignment)
}
