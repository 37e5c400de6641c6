// Package roster describes the agency's crew, fleet and missions. A Catalog
// holds plain specs; Build turns them into fresh entities for each run so no
// two runs ever share mutable state.
package roster

import (
	"fmt"

	"stratosfear/internal/models"
)

// CrewSpec describes one crew member
type CrewSpec struct {
	Name       string
	Role       models.Role
	Experience int
}

// SpacecraftSpec describes one fleet vessel
type SpacecraftSpec struct {
	Name         string
	Seats        int
	FuelCapacity int
}

// MissionSpec describes one mission offering
type MissionSpec struct {
	Name         string
	Destination  string
	FuelRequired int
}

// Catalog is everything a run starts from
type Catalog struct {
	Crew       []CrewSpec
	Fleet      []SpacecraftSpec
	Missions   []MissionSpec
	Passengers []string
}

// Roster is a built catalog: live entities owned by a single run
type Roster struct {
	Crew       map[models.Role][]*models.CrewMember
	Fleet      []*models.Spacecraft
	Missions   []*models.Mission
	Passengers []string
}

// Build instantiates every spec in the catalog
func (c Catalog) Build() (*Roster, error) {
	r := &Roster{
		Crew:       make(map[models.Role][]*models.CrewMember, len(models.Roles)),
		Fleet:      make([]*models.Spacecraft, 0, len(c.Fleet)),
		Missions:   make([]*models.Mission, 0, len(c.Missions)),
		Passengers: append([]string(nil), c.Passengers...),
	}

	for _, spec := range c.Crew {
		m, err := models.NewCrewMember(spec.Name, spec.Role, spec.Experience)
		if err != nil {
			return nil, fmt.Errorf("failed to build crew member: %w", err)
		}
		r.Crew[spec.Role] = append(r.Crew[spec.Role], m)
	}

	for _, spec := range c.Fleet {
		sc, err := models.NewSpacecraft(spec.Name, spec.Seats, spec.FuelCapacity)
		if err != nil {
			return nil, fmt.Errorf("failed to build spacecraft: %w", err)
		}
		r.Fleet = append(r.Fleet, sc)
	}

	for _, spec := range c.Missions {
		m, err := models.NewMission(spec.Name, spec.Destination, spec.FuelRequired)
		if err != nil {
			return nil, fmt.Errorf("failed to build mission: %w", err)
		}
		r.Missions = append(r.Missions, m)
	}

	return r, nil
}

// Default returns the agency's standing roster
func Default() Catalog {
	return Catalog{
		Crew: []CrewSpec{
			{"Zaphod Beeblebrox", models.RoleCaptain, 15},
			{"Han Solo", models.RoleCaptain, 20},
			{"Malcolm Reynolds", models.RoleCaptain, 12},
			{"Jean-Luc Picard", models.RoleCaptain, 25},
			{"Ellen Ripley", models.RoleCaptain, 18},

			{"Data", models.RoleCopilot, 10},
			{"TARS", models.RoleCopilot, 8},
			{"K-2SO", models.RoleCopilot, 6},
			{"Marvin the Paranoid Android", models.RoleCopilot, 100},
			{"C-3PO", models.RoleCopilot, 50},

			{"Trillian", models.RoleAttendant, 5},
			{"Leela", models.RoleAttendant, 7},
			{"Kaylee Frye", models.RoleAttendant, 4},
			{"Nyota Uhura", models.RoleAttendant, 15},
			{"Jadzia Dax", models.RoleAttendant, 12},

			{"Scotty", models.RoleFlightOps, 30},
			{"Geordi La Forge", models.RoleFlightOps, 15},
			{"Montgomery Scott", models.RoleFlightOps, 35},
			{"B'Elanna Torres", models.RoleFlightOps, 10},
			{"Reginald Barclay", models.RoleFlightOps, 8},
		},
		Fleet: []SpacecraftSpec{
			{"The Panic Capsule", 2, 1000},
			{"Event Horizon", 5, 2500},
			{"Serenity", 8, 4000},
			{"Millennium Falcon", 10, 5000},
			{"Nostromo", 25, 10000},
		},
		Missions: []MissionSpec{
			{"Edge-of-Space Thrill Ride", "Low Earth Orbit", 500},
			{"Aurora Orbit Experience", "Polar Orbit", 1200},
			{"Lunar Flyby Adventure", "The Moon", 3500},
		},
		Passengers: []string{
			"Alex", "Blake", "Casey", "Devon", "Emery",
			"Frankie", "Gale", "Harper", "Indigo", "Jordan",
		},
	}
}
