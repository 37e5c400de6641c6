package simulation

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"stratosfear/internal/events"
	"stratosfear/internal/lifecycle"
	"stratosfear/internal/models"
)

func (r *Run) loadMissions(context.Context) error {
	r.info("\n--- LOADING MISSIONS ---")
	for _, m := range r.roster.Missions {
		r.emit(events.KindSummary, m.Name, "%s", m.String())
	}
	return nil
}

func (r *Run) planMissions(ctx context.Context) error {
	r.heading("MISSION PLANNING PHASE")

	available := slices.Clone(r.roster.Fleet)
	for _, m := range r.roster.Missions {
		r.info("\nAssign a spacecraft to mission: %s", m.Name)

		items := make([]string, len(available))
		for i, sc := range available {
			items[i] = sc.String()
		}
		idx, err := r.prompt.Choose(ctx, "Available spacecraft:", items)
		if err != nil {
			return err
		}
		if idx < 0 {
			r.info("  Skipping assignment for this mission.")
			continue
		}

		sc := available[idx]
		if err := m.AssignSpacecraft(sc); err != nil {
			r.emit(events.KindSpacecraftUnfit, sc.Name, "%s cannot take on %s", sc.Name, m.Name)
			r.reject(m.Name, err)
			continue
		}
		r.emit(events.KindSpacecraftFit, sc.Name, "%s has enough fuel for %s", sc.Name, m.Name)
		r.emit(events.KindSpacecraftAssigned, m.Name, "%s assigned to %s", sc.Name, m.Name)
		available = slices.Delete(available, idx, idx+1)
	}
	return nil
}

func (r *Run) reportFuel(context.Context) error {
	r.heading("FUEL VS MISSION REQUIREMENTS REPORT")

	audit := r.depot.Audit(r.roster.Fleet)
	required, assigned := 0, 0
	for _, m := range r.roster.Missions {
		required += m.FuelRequired
		if m.Spacecraft != nil {
			assigned += m.FuelRequired
		}
	}

	r.info("Initial depot fuel:        %s units", units(audit.Initial))
	r.info("Fuel loaded on ships:      %s units", units(audit.OnShips))
	r.info("Fuel remaining in depot:   %s units", units(audit.InDepot))
	r.info("Total fuel accounted for:  %s units", units(audit.Accounted))
	r.info("Fuel required (all):       %s units", units(required))
	r.info("Fuel required (assigned):  %s units\n", units(assigned))

	if !audit.Balanced() {
		r.emit(events.KindWarning, "", "Fuel ledger is off by %s units.", units(audit.Accounted-audit.Initial))
	}
	if audit.Accounted >= required {
		r.emit(events.KindCheck, "", "You have enough total fuel to cover all missions.")
	} else {
		r.emit(events.KindWarning, "", "You are short by %s units for all missions combined.", units(required-audit.Accounted))
	}
	if audit.OnShips >= assigned {
		r.emit(events.KindCheck, "", "Ships collectively carry enough fuel for assigned missions.")
	} else {
		r.emit(events.KindWarning, "", "Ships are short by %s units for assigned missions.", units(assigned-audit.OnShips))
	}
	return nil
}

func (r *Run) bookPassengers(context.Context) error {
	r.info("\n--- PASSENGER BOOKING SIMULATION ---")
	for _, m := range r.roster.Missions {
		if m.Spacecraft == nil {
			continue
		}
		r.info("\nBooking passengers for %s (%d seats open)", m.Name, m.SeatsRemaining())

		limit := min(m.Spacecraft.Seats, len(r.roster.Passengers))
		for _, p := range r.roster.Passengers[:limit] {
			if err := m.AddPassenger(p); err != nil {
				r.reject(m.Name, err)
				break
			}
			r.emit(events.KindPassengerBooked, m.Name, "%s added to %s", p, m.Name)
		}
	}
	return nil
}

func (r *Run) checkMissions(context.Context) error {
	r.info("\n--- FINAL MISSION READINESS CHECK ---")
	for _, m := range r.roster.Missions {
		r.info("\n==============================\nChecking %s...", m.Name)
		r.markReady(m)
	}
	return nil
}

func (r *Run) markReady(m *models.Mission) {
	res, err := lifecycle.MarkReady(m)
	if err == nil {
		r.emit(events.KindCrewExperience, m.Name, "%s is crewed by the %s (XP %d).", m.Spacecraft.Name, res.Tier, res.Score)
		r.emit(events.KindMissionReady, m.Name, "Mission %s is GO FOR LAUNCH!", m.Name)
		return
	}

	var notReady *lifecycle.NotReadyError
	if errors.As(err, &notReady) && notReady.Readiness != nil {
		r.reportReadiness(*notReady.Readiness)
	}
	r.reject(m.Name, err)
}

func (r *Run) launchMissions(ctx context.Context) error {
	r.heading("LAUNCH SEQUENCE")
	for _, m := range r.roster.Missions {
		if m.Status != models.StatusReady {
			r.emit(events.KindMissionSkipped, m.Name, "%s is not ready to launch.", m.Name)
			continue
		}

		launch, err := r.prompt.AskYesNo(ctx, fmt.Sprintf("Launch mission '%s' now?", m.Name))
		if err != nil {
			return err
		}
		if !launch {
			r.emit(events.KindMissionHeld, m.Name, "%s launch postponed.", m.Name)
			continue
		}

		report, err := lifecycle.Launch(m)
		if err != nil {
			r.reject(m.Name, err)
			continue
		}
		r.emit(events.KindMissionLaunched, m.Name, "%s", report.String())
	}
	return nil
}
